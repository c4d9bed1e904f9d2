package schema

import "fmt"

// Record is the slice of a registry row the generator cares about.
type Record struct {
	Line        int // 1-based row number (column number for column-oriented tables)
	CountryCode string
	SEPA        string
	Structure   string
	Length      string
}

// Entry is the generated specification for one country.
type Entry struct {
	CountryCode string
	Length      int
	Pattern     string
	SEPA        bool
}

// Columns holds the zero-based positions of the consumed fields.
type Columns struct {
	CountryCode int `mapstructure:"country_code"`
	SEPA        int `mapstructure:"sepa"`
	Structure   int `mapstructure:"structure"`
	Length      int `mapstructure:"length"`
}

// DefaultColumns matches the layout of the published SWIFT registry.
func DefaultColumns() Columns {
	return Columns{
		CountryCode: 2,
		SEPA:        4,
		Structure:   18,
		Length:      19,
	}
}

// Width is the minimum number of fields a row must carry.
func (c Columns) Width() int {
	return max(c.CountryCode, c.SEPA, c.Structure, c.Length) + 1
}

// Validate rejects negative or shared indices.
func (c Columns) Validate() error {
	named := []struct {
		name string
		idx  int
	}{
		{"country_code", c.CountryCode},
		{"sepa", c.SEPA},
		{"structure", c.Structure},
		{"length", c.Length},
	}

	seen := make(map[int]string, len(named))
	for _, n := range named {
		if n.idx < 0 {
			return fmt.Errorf("column %s: index %d must be non-negative", n.name, n.idx)
		}
		if other, ok := seen[n.idx]; ok {
			return fmt.Errorf("column %s: index %d already used by %s", n.name, n.idx, other)
		}
		seen[n.idx] = n.name
	}
	return nil
}

// Pick builds a Record from a row that is at least Width fields long.
func (c Columns) Pick(line int, fields []string) Record {
	return Record{
		Line:        line,
		CountryCode: fields[c.CountryCode],
		SEPA:        fields[c.SEPA],
		Structure:   fields[c.Structure],
		Length:      fields[c.Length],
	}
}
