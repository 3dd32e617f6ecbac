package text

import (
	"slices"
	"testing"
	"unicode/utf16"
)

func TestIndexLineStarts(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		starts []int
	}{
		{"empty", "", []int{0}},
		{"single line", "hello", []int{0}},
		{"trailing LF", "foo\nbar\n", []int{0, 4, 8}},
		{"CRLF", "a\r\nb", []int{0, 3}},
		{"bare CR is not a boundary", "a\rb", []int{0}},
		{"CR then CRLF", "a\r\r\nb", []int{0, 4}},
		{"blank lines", "\n\n", []int{0, 1, 2}},
		{"surrogate pair", "😀\nx", []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := IndexLineStarts(tt.text)
			if got := idx.Starts(); !slices.Equal(got, tt.starts) {
				t.Errorf("expected starts %v, got %v", tt.starts, got)
			}
			if idx.LineCount() != len(tt.starts) {
				t.Errorf("expected %d lines, got %d", len(tt.starts), idx.LineCount())
			}
		})
	}
}

func TestLineIndex_ScenarioFooBar(t *testing.T) {
	idx := IndexLineStarts("foo\nbar\n")

	pos := idx.PositionAt(5)
	if pos != (Position{Line: 1, Character: 1}) {
		t.Fatalf("expected (1:1), got %s", pos)
	}
	if off := idx.OffsetAt(pos); off != 5 {
		t.Errorf("expected offset 5, got %d", off)
	}
}

func TestLineIndex_PositionAt(t *testing.T) {
	idx := IndexLineStarts("line1\nline2\r\nline3")

	tests := []struct {
		offset int
		line   int
		char   int
	}{
		{0, 0, 0},
		{5, 0, 5},  // before LF
		{6, 1, 0},  // start of line2
		{11, 1, 5}, // before CRLF
		{12, 1, 6}, // between CR and LF
		{13, 2, 0}, // start of line3
		{18, 2, 5}, // end of text
		{-3, 0, 0}, // clamped low
		{99, 2, 5}, // clamped high
	}

	for _, tt := range tests {
		pos := idx.PositionAt(tt.offset)
		if pos.Line != tt.line || pos.Character != tt.char {
			t.Errorf("offset %d: expected (%d:%d), got %s", tt.offset, tt.line, tt.char, pos)
		}
	}
}

func TestLineIndex_OffsetAt(t *testing.T) {
	idx := IndexLineStarts("foo\nbar\n")

	tests := []struct {
		pos    Position
		offset int
	}{
		{Position{0, 0}, 0},
		{Position{1, 2}, 6},
		{Position{2, 0}, 8},
		{Position{-1, -3}, 0}, // negative values floor to zero
		{Position{7, 1}, 9},   // line clamped to last line, character kept
		{Position{0, 10}, 10}, // character may run past the line end
	}

	for _, tt := range tests {
		if got := idx.OffsetAt(tt.pos); got != tt.offset {
			t.Errorf("%s: expected offset %d, got %d", tt.pos, tt.offset, got)
		}
	}
}

func TestLineIndex_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"x",
		"foo\nbar\n",
		"a\r\nb\r\n\r\nc",
		"a\rb\nc",
		"😀 emoji\n\tü\r\n",
		"\n\n\n",
	}

	for _, text := range texts {
		idx := IndexLineStarts(text)
		for o := 0; o <= idx.Len(); o++ {
			if got := idx.OffsetAt(idx.PositionAt(o)); got != o {
				t.Errorf("%q: offset %d round-tripped to %d", text, o, got)
			}
		}
	}
}

func TestLineIndex_Len(t *testing.T) {
	idx := IndexLineStarts("😀ab")
	if idx.Len() != 4 {
		t.Errorf("expected UTF-16 length 4, got %d", idx.Len())
	}
}

func TestLineIndex_LineBounds(t *testing.T) {
	idx := IndexLineStarts("ab\ncd")

	start, next := idx.LineBounds(0)
	if start != 0 || next != 3 {
		t.Errorf("line 0: expected [0,3), got [%d,%d)", start, next)
	}
	start, next = idx.LineBounds(1)
	if start != 3 || next != 5 {
		t.Errorf("line 1: expected [3,5), got [%d,%d)", start, next)
	}
	start, next = idx.LineBounds(9)
	if start != 3 || next != 5 {
		t.Errorf("line 9 (clamped): expected [3,5), got [%d,%d)", start, next)
	}
}

func TestLineIndex_ClampPosition(t *testing.T) {
	idx := IndexLineStarts("a\nb")
	got := idx.ClampPosition(Position{Line: 5, Character: -2})
	if got != (Position{Line: 1, Character: 0}) {
		t.Errorf("expected (1:0), got %s", got)
	}
}

func TestSnapshot_LineText(t *testing.T) {
	snap := NewSnapshot("one\r\ntwo\nthree")

	tests := []struct {
		line int
		text string
		len  int
	}{
		{0, "one", 3},
		{1, "two", 3},
		{2, "three", 5},
		{9, "three", 5},
	}
	for _, tt := range tests {
		if got := snap.LineText(tt.line); got != tt.text {
			t.Errorf("line %d: expected %q, got %q", tt.line, tt.text, got)
		}
		if got := snap.LineLength(tt.line); got != tt.len {
			t.Errorf("line %d: expected length %d, got %d", tt.line, tt.len, got)
		}
	}
}

func TestSnapshot_Ranges(t *testing.T) {
	snap := NewSnapshot("foo\nbar")

	if got := snap.FullRange(); got != NewRange(0, 0, 1, 3) {
		t.Errorf("expected full range [(0:0)-(1:3)), got %s", got)
	}
	if got := snap.SliceRange(NewRange(1, 3, 0, 2)); got != "o\nbar" {
		t.Errorf("expected reversed range to slice %q, got %q", "o\nbar", got)
	}
	if got := snap.ClampRange(NewRange(0, 1, 4, 9)); got != NewRange(0, 1, 1, 3) {
		t.Errorf("expected clamped range [(0:1)-(1:3)), got %s", got)
	}
	if got := ClampRangeToText("foo\nbar", NewRange(0, 1, 4, 9)); got != NewRange(0, 1, 1, 3) {
		t.Errorf("expected clamped range [(0:1)-(1:3)), got %s", got)
	}
	if got := snap.LineRange(0); got != NewRange(0, 0, 1, 0) {
		t.Errorf("expected line range [(0:0)-(1:0)), got %s", got)
	}
}

func TestRuneUnits(t *testing.T) {
	for _, r := range []rune{'a', 'é', '\uFFFF', 0x10000, '😀', 0x10FFFF} {
		if got, want := runeUnits(r), len(utf16.Encode([]rune{r})); got != want {
			t.Errorf("%U: expected %d units, got %d", r, want, got)
		}
	}
	if got := UTF16Len("\U0010FFFF"); got != 2 {
		t.Errorf("expected 2 units for the last code point, got %d", got)
	}
}

func TestUTF16Helpers(t *testing.T) {
	s := "a😀b"
	if UTF16Len(s) != 4 {
		t.Errorf("expected 4 units, got %d", UTF16Len(s))
	}
	if got := UTF16ToByteOffset(s, 3); got != 5 {
		t.Errorf("expected byte offset 5, got %d", got)
	}
	if got := UTF16ToByteOffset(s, 2); got != 1 {
		t.Errorf("offset inside surrogate pair: expected byte 1, got %d", got)
	}
	if got := ByteToUTF16Offset(s, 5); got != 3 {
		t.Errorf("expected UTF-16 offset 3, got %d", got)
	}
	if got := Decode(Encode(s)); got != s {
		t.Errorf("expected %q after round trip, got %q", s, got)
	}
}

func TestCountLines(t *testing.T) {
	if n := CountLines("a\nb\r\nc\rd"); n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
}
