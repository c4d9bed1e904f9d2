package table_test

import (
	"iter"
	"testing"

	"iban-gen/internal/schema"
	"iban-gen/internal/table"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = schema.Columns{CountryCode: 0, SEPA: 1, Structure: 2, Length: 3}

func collect(t *testing.T, seq iter.Seq2[schema.Record, error]) ([]schema.Record, error) {
	t.Helper()
	var out []schema.Record
	for rec, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func TestExtract_Rows(t *testing.T) {
	rows := [][]string{
		{"DE", "Yes", "DE2!n18!n", "22", "extra"},
		{"GB", "No", "GB2!n4!a6!n8!n", "22"},
	}

	got, err := collect(t, table.Extract(rows, testColumns))
	require.NoError(t, err)

	want := []schema.Record{
		{Line: 1, CountryCode: "DE", SEPA: "Yes", Structure: "DE2!n18!n", Length: "22"},
		{Line: 2, CountryCode: "GB", SEPA: "No", Structure: "GB2!n4!a6!n8!n", Length: "22"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_ShortRowStops(t *testing.T) {
	rows := [][]string{
		{"DE", "Yes", "DE2!n18!n", "22"},
		{"GB", "No"},
		{"FR", "Yes", "FR2!n5!n5!n11!c2!n", "27"},
	}

	got, err := collect(t, table.Extract(rows, testColumns))

	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrIndex)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, got, 1)
}

func TestExtract_Lazy(t *testing.T) {
	rows := [][]string{
		{"DE", "Yes", "DE2!n18!n", "22"},
		{"short"},
	}

	// Stopping after the first record never reaches the short row.
	for rec, err := range table.Extract(rows, testColumns) {
		require.NoError(t, err)
		assert.Equal(t, "DE", rec.CountryCode)
		break
	}
}

func TestExtractColumns_Transposed(t *testing.T) {
	rows := [][]string{
		{"IBAN prefix country code (ISO 3166)", "AD", "AE"},
		{"SEPA country", "Yes", "No"},
		{"IBAN structure", "AD2!n4!n4!n12!c", "AE2!n3!n16!n"},
		{"IBAN length", "24", "23", "dangling"},
	}

	seq, n := table.Records(rows, testColumns, table.LayoutColumns)
	assert.Equal(t, 3, n)

	got, err := collect(t, seq)
	require.NoError(t, err)

	want := []schema.Record{
		{Line: 1, CountryCode: "IBAN prefix country code (ISO 3166)", SEPA: "SEPA country", Structure: "IBAN structure", Length: "IBAN length"},
		{Line: 2, CountryCode: "AD", SEPA: "Yes", Structure: "AD2!n4!n4!n12!c", Length: "24"},
		{Line: 3, CountryCode: "AE", SEPA: "No", Structure: "AE2!n3!n16!n", Length: "23"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractColumns_TooFewRows(t *testing.T) {
	_, err := collect(t, table.ExtractColumns([][]string{{"a"}}, testColumns))
	assert.ErrorIs(t, err, schema.ErrIndex)
}

func TestParseLayout(t *testing.T) {
	l, err := table.ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, table.LayoutRows, l)

	l, err = table.ParseLayout("columns")
	require.NoError(t, err)
	assert.Equal(t, table.LayoutColumns, l)

	_, err = table.ParseLayout("diagonal")
	assert.Error(t, err)
}
