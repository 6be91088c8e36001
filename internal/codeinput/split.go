package codeinput

import (
	"strings"

	"github.com/rivo/uniseg"
)

// AdvisoryFunc receives non-fatal diagnostics. A nil sink drops them.
type AdvisoryFunc func(format string, args ...any)

// Split lays value out across fields slots, one grapheme cluster per slot.
// Characters past the last slot are dropped; when that happens the advisory
// sink, if any, is told once.
func Split(value string, fields int, advise AdvisoryFunc) []string {
	if fields < 0 {
		fields = 0
	}
	out := make([]string, fields)
	chars := graphemes(value)
	if len(chars) > fields && advise != nil {
		advise(
			"codeinput: value longer than field count (%d > %d), extra characters dropped",
			len(chars),
			fields,
		)
	}
	copy(out, chars)
	return out
}

// Join concatenates slots in order; empty slots contribute nothing.
func Join(slots []string) string {
	return strings.Join(slots, "")
}

func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
