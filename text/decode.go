// Package text decodes raw file bytes into searchable text.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Replacement is the character substituted for invalid byte sequences.
const Replacement = "\uFFFD"

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	return utf8.Valid(b)
}

// Decode returns b as a string, or false if b is not valid UTF-8.
func Decode(b []byte) (string, bool) {
	if !Valid(b) {
		return "", false
	}
	return string(b), true
}

// Lossy decodes b as UTF-8, replacing every invalid byte with Replacement.
func Lossy(b []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), Replacement)
	}
	return string(out)
}
