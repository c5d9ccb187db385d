package archive

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// DefaultCharset decodes bulletin payloads unless a path hint overrides
// it. The historical feed was published in Latin-1.
const DefaultCharset = "latin1"

// charsets maps configurable charset names to their decoders.
var charsets = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"windows-1252": charmap.Windows1252,
	"utf-8":        unicode.UTF8,
}

// DefaultHints maps a substring of an archive's base name to the charset
// used instead of the default.
func DefaultHints() map[string]string {
	return map[string]string{
		"UTF8":   "utf-8",
		"8859-2": "iso-8859-2",
	}
}

// decode converts raw payload bytes to text using the named charset.
func decode(raw []byte, charset string) (string, error) {
	enc, ok := charsets[strings.ToLower(charset)]
	if !ok {
		return "", fmt.Errorf("%q: %w", charset, domain.ErrUnknownCharset)
	}
	text, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", charset, err)
	}
	return string(text), nil
}

// charsetFor picks the charset for an archive path: the first hint whose
// substring occurs in the base name wins, otherwise the default.
func charsetFor(base, fallback string, hints map[string]string) string {
	upper := strings.ToUpper(base)
	for hint, charset := range hints {
		if strings.Contains(upper, strings.ToUpper(hint)) {
			return charset
		}
	}
	return fallback
}
