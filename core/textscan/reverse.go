// core/textscan/reverse.go

// Package textscan provides stateless, single-pass scanning primitives over
// text. All operations work on Unicode scalar values: offsets and lengths
// count characters, never bytes.
package textscan

// Reverse returns text with its characters in reverse order.
//
// Reversal is over Unicode scalar values, not grapheme clusters: a combining
// sequence composed of several scalars is split apart, so the result may
// differ from a user-perceived "visual" reversal. Empty input returns empty.
func Reverse(text string) string {
	if text == "" {
		return text
	}
	r := []rune(text)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
