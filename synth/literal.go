package synth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnencodable is returned when a value has no textual encoding.
var ErrUnencodable = errors.New("value cannot be encoded")

// JSON encodes v with sorted keys and two-space indentation. HTML
// characters are left as is.
func JSON(v any) (string, error) {
	return encode(v, "  ")
}

// CompactJSON encodes v on a single line with sorted keys.
func CompactJSON(v any) (string, error) {
	return encode(v, "")
}

func encode(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// Quote returns s as a single-quoted JavaScript string literal.
func Quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// Literal renders a scalar as JavaScript source. Absent values render as
// undefined, strings are quoted and everything else is compact JSON.
func Literal(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "undefined", nil
	case string:
		return Quote(t), nil
	}
	return CompactJSON(v)
}
