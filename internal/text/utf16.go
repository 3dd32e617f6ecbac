package text

import (
	"unicode/utf16"
)

// Encode converts a UTF-8 string to UTF-16 code units.
// Invalid UTF-8 bytes become U+FFFD, one unit each.
func Encode(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// Decode converts UTF-16 code units back to a UTF-8 string.
// Unpaired surrogates decode to U+FFFD.
func Decode(u []uint16) string {
	if len(u) == 0 {
		return ""
	}
	return string(utf16.Decode(u))
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	count := 0
	for _, r := range s {
		count += runeUnits(r)
	}
	return count
}

// UTF16ToByteOffset converts a UTF-16 offset within s to a byte offset.
// Offsets past the end return len(s). An offset that lands inside a
// surrogate pair resolves to the start of that rune.
func UTF16ToByteOffset(s string, utf16Off int) int {
	if utf16Off <= 0 {
		return 0
	}

	units := 0
	for i, r := range s {
		n := runeUnits(r)
		if units+n > utf16Off {
			return i
		}
		units += n
	}
	return len(s)
}

// ByteToUTF16Offset converts a byte offset within s to a UTF-16 offset.
func ByteToUTF16Offset(s string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff >= len(s) {
		return UTF16Len(s)
	}
	return UTF16Len(s[:byteOff])
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2 // Surrogate pair
	}
	return 1
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u < 0xDC00
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u < 0xE000
}

func equalUnits(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// commonPrefixLen returns the number of leading units shared by a and b,
// never splitting a surrogate pair.
func commonPrefixLen(a, b []uint16) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	if i > 0 && isHighSurrogate(a[i-1]) {
		i--
	}
	return i
}

// commonSuffixLen returns the number of trailing units shared by a and b,
// at most limit, never splitting a surrogate pair.
func commonSuffixLen(a, b []uint16, limit int) int {
	n := min(len(a), len(b), limit)
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	if i > 0 && isLowSurrogate(a[len(a)-i]) {
		i--
	}
	return i
}
