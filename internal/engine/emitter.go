package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"iban-gen/internal/schema"

	"github.com/spf13/afero"
)

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// Emit writes one addSpecification statement per entry, in registry order.
func Emit(w io.Writer, reg *schema.Registry) error {
	bw := bufio.NewWriter(w)
	for e := range reg.All() {
		if _, err := fmt.Fprintf(bw, "addSpecification(%s, %d, %s, %t);\n",
			quote(e.CountryCode), e.Length, quote(e.Pattern), e.SEPA); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Render returns the statements Emit would write.
func Render(reg *schema.Registry) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	_ = Emit(&buf, reg)
	return buf.Bytes()
}

// WriteFile renders reg and writes it to path in one go, replacing any
// previous content.
func WriteFile(fsys afero.Fs, path string, reg *schema.Registry) error {
	if err := afero.WriteFile(fsys, path, Render(reg), 0o644); err != nil {
		return &schema.Error{Kind: schema.ErrIO, Value: path, Err: err}
	}
	return nil
}
