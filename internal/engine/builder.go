package engine

import (
	"iter"
	"strconv"
	"strings"

	"iban-gen/internal/schema"

	"go.uber.org/zap"
)

const (
	// DefaultHeaderLabel is the country-code cell of the header row.
	DefaultHeaderLabel = "IBAN prefix country code (ISO 3166)"
	// DefaultSEPAToken marks SEPA members; any other value means not SEPA.
	DefaultSEPAToken = "Yes"

	// country code plus check digits
	prefixLength = 4
)

// DuplicateFunc is called when a country code shows up again. prev is the
// entry being replaced. Returning an error aborts the build.
type DuplicateFunc func(prev, next schema.Entry) error

type BuildOptions struct {
	HeaderLabel string // defaults to DefaultHeaderLabel
	SEPAToken   string // defaults to DefaultSEPAToken

	// OnDuplicate is consulted before a later row replaces an earlier one.
	// nil keeps the last row silently.
	OnDuplicate DuplicateFunc

	// CheckLength requires the declared IBAN length to equal the country
	// code, the check digits and the BBAN structure added together.
	CheckLength bool

	// OnRecord is called for every record read, header rows included.
	OnRecord func(schema.Record)
}

// Summary is the outcome of a successful Build.
type Summary struct {
	Registry   *schema.Registry
	Records    int
	HeaderRows int
	Duplicates int
}

// Build turns extracted records into a registry. It stops at the first
// error; the registry is only returned when every record was accepted.
func Build(records iter.Seq2[schema.Record, error], opts BuildOptions) (*Summary, error) {
	if opts.HeaderLabel == "" {
		opts.HeaderLabel = DefaultHeaderLabel
	}
	if opts.SEPAToken == "" {
		opts.SEPAToken = DefaultSEPAToken
	}

	sum := &Summary{Registry: schema.NewRegistry()}
	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		sum.Records++
		if opts.OnRecord != nil {
			opts.OnRecord(rec)
		}

		if rec.CountryCode == opts.HeaderLabel {
			sum.HeaderRows++
			continue
		}

		entry, err := buildEntry(rec, opts)
		if err != nil {
			return nil, schema.AtLine(err, rec.Line)
		}

		if prev, ok := sum.Registry.Get(entry.CountryCode); ok {
			sum.Duplicates++
			if opts.OnDuplicate != nil {
				if err := opts.OnDuplicate(prev, entry); err != nil {
					return nil, schema.AtLine(err, rec.Line)
				}
			}
		}
		sum.Registry.Put(entry)
	}
	return sum, nil
}

func buildEntry(rec schema.Record, opts BuildOptions) (schema.Entry, error) {
	embedded := rec.Structure
	if len(embedded) > 2 {
		embedded = embedded[:2]
	}
	if rec.CountryCode != embedded {
		return schema.Entry{}, schema.NewError(schema.ErrConsistency, rec.Structure,
			"country code %q does not match structure", rec.CountryCode)
	}
	if strings.Contains(rec.Structure, "e") {
		return schema.Entry{}, schema.NewError(schema.ErrFormat, rec.Structure, "space class 'e' is not supported")
	}

	pattern, err := Translate(rec.Structure)
	if err != nil {
		return schema.Entry{}, err
	}

	length, err := strconv.Atoi(strings.TrimSpace(rec.Length))
	if err != nil || length <= 0 {
		return schema.Entry{}, schema.NewError(schema.ErrFormat, rec.Length, "IBAN length must be a positive integer")
	}

	if opts.CheckLength {
		bban, err := PatternLength(rec.Structure)
		if err != nil {
			return schema.Entry{}, err
		}
		if want := prefixLength + bban; length != want {
			return schema.Entry{}, schema.NewError(schema.ErrConsistency, rec.Length,
				"IBAN length %d, structure describes %d characters", length, want)
		}
	}

	return schema.Entry{
		CountryCode: rec.CountryCode,
		Length:      length,
		Pattern:     pattern,
		SEPA:        rec.SEPA == opts.SEPAToken,
	}, nil
}

// WarnDuplicates logs every replaced entry and keeps the later one.
func WarnDuplicates(logger *zap.Logger) DuplicateFunc {
	return func(prev, next schema.Entry) error {
		logger.Warn("duplicate country code, keeping later row",
			zap.String("country_code", next.CountryCode),
			zap.String("previous_pattern", prev.Pattern),
			zap.String("pattern", next.Pattern))
		return nil
	}
}

// RejectDuplicates fails the build on the first repeated country code.
func RejectDuplicates(prev, next schema.Entry) error {
	return schema.NewError(schema.ErrConsistency, next.CountryCode, "country code appears more than once")
}
