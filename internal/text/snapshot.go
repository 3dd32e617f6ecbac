package text

// Snapshot is an immutable document version held as UTF-16 code units,
// together with its LineIndex. It is safe for concurrent readers.
type Snapshot struct {
	text  string
	units []uint16
	index *LineIndex
}

// NewSnapshot converts s to its UTF-16 view and indexes its lines.
func NewSnapshot(s string) *Snapshot {
	return &Snapshot{
		text:  s,
		units: Encode(s),
		index: IndexLineStarts(s),
	}
}

// String returns the snapshot content.
func (s *Snapshot) String() string {
	return s.text
}

// Len returns the length in UTF-16 code units.
func (s *Snapshot) Len() int {
	return len(s.units)
}

// Index returns the snapshot's line index.
func (s *Snapshot) Index() *LineIndex {
	return s.index
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.index.LineCount()
}

// UnitAt returns the code unit at offset.
func (s *Snapshot) UnitAt(offset int) (uint16, bool) {
	if offset < 0 || offset >= len(s.units) {
		return 0, false
	}
	return s.units[offset], true
}

// PositionAt converts an offset to a Position.
func (s *Snapshot) PositionAt(offset int) Position {
	return s.index.PositionAt(offset)
}

// OffsetAt converts a Position to an offset. See LineIndex.OffsetAt.
func (s *Snapshot) OffsetAt(pos Position) int {
	return s.index.OffsetAt(pos)
}

// clampOffset clamps offset into [0, Len].
func (s *Snapshot) clampOffset(offset int) int {
	return min(max(offset, 0), len(s.units))
}

// Slice returns the text between two offsets. The offsets are clamped and
// may be given in either order.
func (s *Snapshot) Slice(start, end int) string {
	start, end = s.clampOffset(start), s.clampOffset(end)
	if start > end {
		start, end = end, start
	}
	return Decode(s.units[start:end])
}

// RangeToOffsets converts r to a pair of offsets with lo <= hi, both clamped
// into [0, Len].
func (s *Snapshot) RangeToOffsets(r Range) (lo, hi int) {
	a := s.clampOffset(s.index.OffsetAt(r.Start))
	b := s.clampOffset(s.index.OffsetAt(r.End))
	return min(a, b), max(a, b)
}

// OffsetsToRange converts two offsets to a Range.
func (s *Snapshot) OffsetsToRange(start, end int) Range {
	return Range{Start: s.index.PositionAt(start), End: s.index.PositionAt(end)}
}

// ClampRange returns r with both ends resolved to real positions inside the
// text.
func (s *Snapshot) ClampRange(r Range) Range {
	lo, hi := s.RangeToOffsets(r)
	return s.OffsetsToRange(lo, hi)
}

// SliceRange returns the text covered by r.
func (s *Snapshot) SliceRange(r Range) string {
	lo, hi := s.RangeToOffsets(r)
	return Decode(s.units[lo:hi])
}

// FullRange returns the range covering the whole document.
func (s *Snapshot) FullRange() Range {
	return Range{Start: Position{}, End: s.index.PositionAt(len(s.units))}
}

// LineEnd returns the offset where line's content ends, before its "\n" or
// "\r\n" terminator.
func (s *Snapshot) LineEnd(line int) int {
	start, next := s.index.LineBounds(line)
	end := next
	if end > start && s.units[end-1] == '\n' {
		end--
		if end > start && s.units[end-1] == '\r' {
			end--
		}
	}
	return end
}

// LineText returns the content of line without its terminator.
func (s *Snapshot) LineText(line int) string {
	start, _ := s.index.LineBounds(line)
	return Decode(s.units[start:s.LineEnd(line)])
}

// LineLength returns the length of line in UTF-16 units, without its
// terminator.
func (s *Snapshot) LineLength(line int) int {
	start, _ := s.index.LineBounds(line)
	return s.LineEnd(line) - start
}

// LineRange returns the range of line including its terminator.
func (s *Snapshot) LineRange(line int) Range {
	start, next := s.index.LineBounds(line)
	return s.OffsetsToRange(start, next)
}

// lines returns every line as a unit slice that includes its terminator.
func (s *Snapshot) lines() [][]uint16 {
	out := make([][]uint16, s.index.LineCount())
	for i := range out {
		start, next := s.index.LineBounds(i)
		out[i] = s.units[start:next]
	}
	return out
}

// Package-level helpers for callers that hold a plain string. Each call
// indexes the text; build a Snapshot to reuse the index across queries.

// FullDocumentRange returns the range covering all of s.
func FullDocumentRange(s string) Range {
	return NewSnapshot(s).FullRange()
}

// SliceByRange returns the text of s covered by r.
func SliceByRange(s string, r Range) string {
	return NewSnapshot(s).SliceRange(r)
}

// ClampRangeToText resolves both ends of r to positions that exist in s.
func ClampRangeToText(s string, r Range) Range {
	return NewSnapshot(s).ClampRange(r)
}

// ReplaceRange replaces the text covered by r with replacement.
func ReplaceRange(s string, r Range, replacement string) string {
	return NewSnapshot(s).ApplyEdits([]Edit{{Range: r, NewText: replacement}})
}

// LineText returns the content of line in s without its terminator.
func LineText(s string, line int) string {
	return NewSnapshot(s).LineText(line)
}

// LineLength returns the UTF-16 length of line in s without its terminator.
func LineLength(s string, line int) int {
	return NewSnapshot(s).LineLength(line)
}

// CountLines returns the number of lines in s as the line index sees them.
func CountLines(s string) int {
	return IndexLineStarts(s).LineCount()
}
