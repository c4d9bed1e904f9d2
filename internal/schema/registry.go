package schema

import "iter"

// Registry maps country codes to entries and remembers insertion order.
// Replacing an existing code keeps its original position.
type Registry struct {
	order   []string
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Put stores e under its country code. When the code was already present
// the previous entry is returned with replaced set.
func (r *Registry) Put(e Entry) (prev Entry, replaced bool) {
	prev, replaced = r.entries[e.CountryCode]
	if !replaced {
		r.order = append(r.order, e.CountryCode)
	}
	r.entries[e.CountryCode] = e
	return prev, replaced
}

func (r *Registry) Get(code string) (Entry, bool) {
	e, ok := r.entries[code]
	return e, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// All iterates entries in insertion order.
func (r *Registry) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, code := range r.order {
			if !yield(r.entries[code]) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for e := range r.All() {
		out = append(out, e)
	}
	return out
}
