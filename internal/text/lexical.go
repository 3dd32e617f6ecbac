package text

import (
	"regexp"
	"strings"
)

// DefaultWordPattern matches ASCII letters, digits and underscore. Any other
// character, including non-ASCII letters, ends a word.
var DefaultWordPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Word is a word found in a document and where it sits.
type Word struct {
	Text  string
	Range Range
}

// WordBoundaries scans lineText with re and returns the UTF-16 columns of the
// first match whose span contains col. Both ends of a match count as inside,
// so a cursor just after a word still selects it. col is clamped to the line.
// A nil re uses DefaultWordPattern.
func WordBoundaries(lineText string, col int, re *regexp.Regexp) (start, end int, ok bool) {
	if re == nil {
		re = DefaultWordPattern
	}
	col = min(max(col, 0), UTF16Len(lineText))

	for _, m := range re.FindAllStringIndex(lineText, -1) {
		if m[0] == m[1] {
			continue
		}
		s := ByteToUTF16Offset(lineText, m[0])
		e := s + UTF16Len(lineText[m[0]:m[1]])
		if s <= col && col <= e {
			return s, e, true
		}
	}
	return 0, 0, false
}

// WordAt returns the word at pos. The line is clamped into range.
func (s *Snapshot) WordAt(pos Position, re *regexp.Regexp) (Word, bool) {
	line := s.index.clampLine(pos.Line)
	lineText := s.LineText(line)

	start, end, ok := WordBoundaries(lineText, pos.Character, re)
	if !ok {
		return Word{}, false
	}
	lineStart := s.index.LineStart(line)
	return Word{
		Text:  Decode(s.units[lineStart+start : lineStart+end]),
		Range: NewRange(line, start, line, end),
	}, true
}

// WordAtPosition returns the word of text at pos. See Snapshot.WordAt.
func WordAtPosition(text string, pos Position, re *regexp.Regexp) (Word, bool) {
	return NewSnapshot(text).WordAt(pos, re)
}

// bracketPairs maps each opening bracket to its closer.
var bracketPairs = map[uint16]uint16{
	'(': ')',
	'[': ']',
	'{': '}',
}

// closingBrackets maps each closing bracket to its opener.
var closingBrackets = map[uint16]uint16{
	')': '(',
	']': '[',
	'}': '{',
}

// MatchBracket finds the bracket matching the one at pos. On an opener it
// scans forward, on a closer it scans backward, counting depth for that one
// bracket pair only. The returned range runs from the opener to just past
// the closer.
func (s *Snapshot) MatchBracket(pos Position) (Range, bool) {
	off := s.index.OffsetAt(pos)
	ch, ok := s.UnitAt(off)
	if !ok {
		return Range{}, false
	}

	if closer, isOpen := bracketPairs[ch]; isOpen {
		depth := 0
		for i := off; i < len(s.units); i++ {
			switch s.units[i] {
			case ch:
				depth++
			case closer:
				depth--
				if depth == 0 {
					return s.OffsetsToRange(off, i+1), true
				}
			}
		}
		return Range{}, false
	}

	if opener, isClose := closingBrackets[ch]; isClose {
		depth := 0
		for i := off; i >= 0; i-- {
			switch s.units[i] {
			case ch:
				depth++
			case opener:
				depth--
				if depth == 0 {
					return s.OffsetsToRange(i, off+1), true
				}
			}
		}
	}
	return Range{}, false
}

// FindMatchingBracket finds the bracket in text matching the one at pos.
// See Snapshot.MatchBracket.
func FindMatchingBracket(text string, pos Position) (Range, bool) {
	return NewSnapshot(text).MatchBracket(pos)
}

// ExpandSelectionToEnclosingBrackets returns the range strictly inside the
// bracket pair at pos.
func (s *Snapshot) ExpandSelectionToEnclosingBrackets(pos Position) (Range, bool) {
	r, ok := s.MatchBracket(pos)
	if !ok {
		return Range{}, false
	}
	lo, hi := s.RangeToOffsets(r)
	return s.OffsetsToRange(lo+1, hi-1), true
}

// IndentationLevel returns the visual width of the leading whitespace of
// lineText, counting a tab as tabSize columns.
func IndentationLevel(lineText string, tabSize int) int {
	col := 0
	for _, r := range lineText {
		switch r {
		case ' ':
			col++
		case '\t':
			col += tabSize
		default:
			return col
		}
	}
	return col
}

// NormalizeIndentation rewrites leading indentation on every line. With
// insertSpaces, leading tabs become tabSize spaces each; otherwise leading
// runs of tabSize spaces become tabs. Line terminators are preserved.
func NormalizeIndentation(text string, insertSpaces bool, tabSize int) string {
	tabSize = max(tabSize, 1)
	unit := strings.Repeat(" ", tabSize)

	s := NewSnapshot(text)
	var b strings.Builder
	b.Grow(len(text))
	for line := 0; line < s.LineCount(); line++ {
		start, next := s.index.LineBounds(line)
		raw := Decode(s.units[start:next])
		if insertSpaces {
			body := strings.TrimLeft(raw, "\t")
			b.WriteString(strings.Repeat(unit, len(raw)-len(body)))
			b.WriteString(body)
			continue
		}
		body := strings.TrimLeft(raw, " ")
		spaces := len(raw) - len(body)
		tabs := spaces / tabSize
		b.WriteString(strings.Repeat("\t", tabs))
		b.WriteString(raw[tabs*tabSize:])
	}
	return b.String()
}

// NextNonWhitespaceColumn returns the first column at or after from that is
// not a space or tab, or the line length if there is none.
func NextNonWhitespaceColumn(lineText string, from int) int {
	u := Encode(lineText)
	for i := max(0, from); i < len(u); i++ {
		if u[i] != ' ' && u[i] != '\t' {
			return i
		}
	}
	return len(u)
}

// PrevNonWhitespaceColumn returns the last column at or before from that is
// not a space or tab, or 0 if there is none.
func PrevNonWhitespaceColumn(lineText string, from int) int {
	u := Encode(lineText)
	for i := min(len(u)-1, max(0, from)); i >= 0; i-- {
		if u[i] != ' ' && u[i] != '\t' {
			return i
		}
	}
	return 0
}

// IsBlankLine reports whether line of s holds only whitespace.
func (s *Snapshot) IsBlankLine(line int) bool {
	return strings.TrimSpace(s.LineText(line)) == ""
}
