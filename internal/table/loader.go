// Package table reads the tab-separated SWIFT registry export and pulls the
// consumed fields out of each row.
package table

import (
	"errors"
	"strings"
	"unicode/utf8"

	"iban-gen/internal/schema"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is what SWIFT publishes the text registry in.
const DefaultEncoding = "ISO-8859-1"

// Load reads path from fsys, decodes it with the named encoding and splits
// it into tab-separated rows. There is no quoting: a tab always separates
// fields and a newline always ends a row.
func Load(fsys afero.Fs, path, encodingName string) ([][]string, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &schema.Error{Kind: schema.ErrIO, Value: path, Err: err}
	}

	text, err := decode(enc, raw)
	if err != nil {
		return nil, err
	}

	return split(text), nil
}

// LookupEncoding resolves an IANA charset name such as "latin1" or
// "windows-1252". An empty name selects DefaultEncoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &schema.Error{Kind: schema.ErrDecode, Value: name, Err: err}
	}
	if enc == nil {
		return nil, schema.NewError(schema.ErrDecode, name, "encoding is known but not supported")
	}
	return enc, nil
}

func decode(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &schema.Error{Kind: schema.ErrDecode, Err: err}
	}

	// Single-byte decoders substitute U+FFFD for bytes they do not define.
	text := string(out)
	if i := strings.IndexRune(text, utf8.RuneError); i >= 0 {
		return "", &schema.Error{
			Kind: schema.ErrDecode,
			Line: strings.Count(text[:i], "\n") + 1,
			Err:  errUndefinedByte,
		}
	}
	return text, nil
}

var errUndefinedByte = errors.New("byte not defined in the declared encoding")

func split(text string) [][]string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(strings.TrimSuffix(line, "\r"), "\t")
	}
	return rows
}
