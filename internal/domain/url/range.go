package url

import "unicode/utf8"

// Range is a contiguous substring of an input text. Start and Length count
// runes, not bytes, so a Range computed on "пример.рф" indexes characters.
//
// A Range is only meaningful for the text it was computed from.
type Range struct {
	Start  int
	Length int
}

// End returns the offset one past the last rune of the range.
func (r Range) End() int {
	return r.Start + r.Length
}

// IsEmpty reports whether the range covers no runes.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Slice returns the substring of text covered by r.
// Out-of-bounds ranges are clipped to the text instead of panicking.
func (r Range) Slice(text string) string {
	startByte, ok := byteOffset(text, r.Start)
	if !ok {
		return ""
	}
	endByte, ok := byteOffset(text, r.End())
	if !ok {
		endByte = len(text)
	}
	return text[startByte:endByte]
}

// byteOffset converts a rune offset into a byte offset.
// Offset len(runes) maps to len(text).
func byteOffset(text string, runeOffset int) (int, bool) {
	if runeOffset < 0 {
		return 0, false
	}
	n := 0
	for i := range text {
		if n == runeOffset {
			return i, true
		}
		n++
	}
	if n == runeOffset {
		return len(text), true
	}
	return 0, false
}

// runeLen is the length unit used by every Range.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
