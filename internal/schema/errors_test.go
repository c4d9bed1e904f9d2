package schema_test

import (
	"errors"
	"io/fs"
	"testing"

	"iban-gen/internal/schema"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesKindAndCause(t *testing.T) {
	err := error(&schema.Error{Kind: schema.ErrIO, Value: "in.txt", Err: fs.ErrNotExist})

	assert.ErrorIs(t, err, schema.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, schema.ErrFormat)
	assert.Equal(t, `io error ("in.txt"): file does not exist`, err.Error())
}

func TestAtLine(t *testing.T) {
	err := schema.AtLine(schema.NewError(schema.ErrFormat, "DE2!n", "no tokens"), 7)
	assert.Equal(t, `format error at line 7 ("DE2!n"): no tokens`, err.Error())

	// An existing line number is not overwritten.
	err = schema.AtLine(err, 9)
	assert.Contains(t, err.Error(), "line 7")

	plain := errors.New("plain")
	assert.Same(t, plain, schema.AtLine(plain, 3))
}
