package table

import (
	"fmt"
	"iter"

	"iban-gen/internal/schema"
)

// Layout says whether each registry entry occupies a row or a column.
type Layout string

const (
	// LayoutRows: one country per row, fields addressed by column index.
	LayoutRows Layout = "rows"
	// LayoutColumns: one country per column, fields addressed by row index.
	// This is how SWIFT ships the text registry.
	LayoutColumns Layout = "columns"
)

func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case LayoutRows, LayoutColumns:
		return l, nil
	case "":
		return LayoutRows, nil
	default:
		return "", fmt.Errorf("unknown table layout %q (want %q or %q)", s, LayoutRows, LayoutColumns)
	}
}

// Records extracts rows according to layout and reports how many records
// the sequence will yield if no row is short.
func Records(rows [][]string, cols schema.Columns, layout Layout) (iter.Seq2[schema.Record, error], int) {
	if layout == LayoutColumns {
		return ExtractColumns(rows, cols), columnCount(rows, cols)
	}
	return Extract(rows, cols), len(rows)
}

// Extract yields one Record per row. A row shorter than cols.Width() yields
// an index error and ends the sequence.
func Extract(rows [][]string, cols schema.Columns) iter.Seq2[schema.Record, error] {
	width := cols.Width()
	return func(yield func(schema.Record, error) bool) {
		for i, row := range rows {
			line := i + 1
			if len(row) < width {
				yield(schema.Record{Line: line}, &schema.Error{
					Kind: schema.ErrIndex,
					Line: line,
					Err:  fmt.Errorf("row has %d fields, need at least %d", len(row), width),
				})
				return
			}
			if !yield(cols.Pick(line, row), nil) {
				return
			}
		}
	}
}

// ExtractColumns is Extract for a transposed table: cols index rows and
// every column becomes a Record. Iteration stops at the end of the
// shortest of the four consumed rows.
func ExtractColumns(rows [][]string, cols schema.Columns) iter.Seq2[schema.Record, error] {
	width := cols.Width()
	return func(yield func(schema.Record, error) bool) {
		if len(rows) < width {
			yield(schema.Record{}, &schema.Error{
				Kind: schema.ErrIndex,
				Err:  fmt.Errorf("table has %d rows, need at least %d", len(rows), width),
			})
			return
		}

		n := columnCount(rows, cols)
		for j := range n {
			rec := schema.Record{
				Line:        j + 1,
				CountryCode: rows[cols.CountryCode][j],
				SEPA:        rows[cols.SEPA][j],
				Structure:   rows[cols.Structure][j],
				Length:      rows[cols.Length][j],
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func columnCount(rows [][]string, cols schema.Columns) int {
	if len(rows) < cols.Width() {
		return 0
	}
	return min(
		len(rows[cols.CountryCode]),
		len(rows[cols.SEPA]),
		len(rows[cols.Structure]),
		len(rows[cols.Length]),
	)
}
