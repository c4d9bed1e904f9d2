package schema_test

import (
	"testing"

	"iban-gen/internal/schema"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_KeepsInsertionOrder(t *testing.T) {
	reg := schema.NewRegistry()
	for _, code := range []string{"GB", "AD", "DE"} {
		reg.Put(schema.Entry{CountryCode: code})
	}

	var got []string
	for e := range reg.All() {
		got = append(got, e.CountryCode)
	}

	if diff := cmp.Diff([]string{"GB", "AD", "DE"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	reg := schema.NewRegistry()
	reg.Put(schema.Entry{CountryCode: "DE", Length: 22})
	reg.Put(schema.Entry{CountryCode: "FR", Length: 27})

	prev, replaced := reg.Put(schema.Entry{CountryCode: "DE", Length: 99, SEPA: true})

	assert.True(t, replaced)
	assert.Equal(t, 22, prev.Length)
	assert.Equal(t, 2, reg.Len())

	want := []schema.Entry{
		{CountryCode: "DE", Length: 99, SEPA: true},
		{CountryCode: "FR", Length: 27},
	}
	if diff := cmp.Diff(want, reg.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	reg := schema.NewRegistry()
	_, ok := reg.Get("XX")
	assert.False(t, ok)
}
