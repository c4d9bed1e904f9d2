package engine

import (
	"regexp"
	"strconv"
	"strings"

	"iban-gen/internal/schema"
)

// checksumToken follows the country code in every structure string.
const checksumToken = "2!n"

var (
	tokenSeqRe = regexp.MustCompile(`^([0-9]+![nac])+$`)
	tokenRe    = regexp.MustCompile(`([0-9]+)!([nac])`)
)

// Character classes by SWIFT type letter. "e" (space) is never used in IBANs.
var charClasses = map[string]string{
	"n": "0-9",
	"a": "A-Z",
	"c": "A-Za-z0-9",
}

type token struct {
	count string
	class string
}

// Translate turns SWIFT structure notation such as "GB2!n4!a6!n8!n" into an
// anchored pattern for the BBAN part: "^[A-Z]{4}[0-9]{6}[0-9]{8}$".
func Translate(structure string) (string, error) {
	tokens, err := parseTokens(structure)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('^')
	for _, t := range tokens {
		b.WriteByte('[')
		b.WriteString(charClasses[t.class])
		b.WriteString("]{")
		b.WriteString(t.count)
		b.WriteByte('}')
	}
	b.WriteByte('$')
	return b.String(), nil
}

// PatternLength is the number of characters the BBAN part of structure
// describes.
func PatternLength(structure string) (int, error) {
	tokens, err := parseTokens(structure)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, t := range tokens {
		n, err := strconv.Atoi(t.count)
		if err != nil {
			return 0, schema.NewError(schema.ErrFormat, structure, "token count %q: %v", t.count, err)
		}
		total += n
	}
	return total, nil
}

func parseTokens(structure string) ([]token, error) {
	if len(structure) < 2+len(checksumToken) {
		return nil, schema.NewError(schema.ErrFormat, structure, "too short for country code and check digits")
	}
	if !isASCIILetter(structure[0]) || !isASCIILetter(structure[1]) {
		return nil, schema.NewError(schema.ErrFormat, structure, "does not start with a country code")
	}
	if structure[2:5] != checksumToken {
		return nil, schema.NewError(schema.ErrFormat, structure, "check digits are %q, want %q", structure[2:5], checksumToken)
	}

	rest := structure[5:]
	if !tokenSeqRe.MatchString(rest) {
		return nil, schema.NewError(schema.ErrFormat, structure, "malformed token sequence %q", rest)
	}

	matches := tokenRe.FindAllStringSubmatch(rest, -1)
	tokens := make([]token, len(matches))
	for i, m := range matches {
		tokens[i] = token{count: m[1], class: m[2]}
	}
	return tokens, nil
}

func isASCIILetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
