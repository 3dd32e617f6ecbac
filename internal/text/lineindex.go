package text

import (
	"slices"
)

// LineIndex is the sorted table of line-start offsets for one text snapshot.
// starts[0] is always 0, entries are strictly increasing, and the last entry
// is at most the text length. A LineIndex belongs to exactly one snapshot;
// rebuild it whenever the text changes.
type LineIndex struct {
	starts []int
	length int // UTF-16 length of the indexed text
}

// IndexLineStarts scans s once and records the offset of every line start.
// "\r\n" counts as one boundary and bare "\n" as one boundary. A bare "\r"
// is not a boundary.
func IndexLineStarts(s string) *LineIndex {
	starts := []int{0}
	units := 0

	for _, r := range s {
		units += runeUnits(r)
		// "\r\n" needs no special case: the boundary lands after the '\n'.
		if r == '\n' {
			starts = append(starts, units)
		}
	}

	return &LineIndex{starts: starts, length: units}
}

// Starts returns a copy of the line-start offsets.
func (li *LineIndex) Starts() []int {
	return slices.Clone(li.starts)
}

// LineCount returns the number of lines. An empty text has one line.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Len returns the UTF-16 length of the indexed text.
func (li *LineIndex) Len() int {
	return li.length
}

// LastLine returns the index of the final line.
func (li *LineIndex) LastLine() int {
	return len(li.starts) - 1
}

// clampLine clamps line into [0, LineCount-1].
func (li *LineIndex) clampLine(line int) int {
	return min(max(line, 0), len(li.starts)-1)
}

// LineStart returns the offset of the first unit of line. Out-of-range lines
// are clamped.
func (li *LineIndex) LineStart(line int) int {
	return li.starts[li.clampLine(line)]
}

// LineBounds returns the start of line and the start of the following line
// (or the text length for the last line). The span includes the line's
// terminator.
func (li *LineIndex) LineBounds(line int) (start, next int) {
	line = li.clampLine(line)
	start = li.starts[line]
	if line+1 < len(li.starts) {
		return start, li.starts[line+1]
	}
	return start, li.length
}

// PositionAt converts an offset to a Position by binary search for the
// greatest line start <= offset. Offsets are clamped into [0, Len].
func (li *LineIndex) PositionAt(offset int) Position {
	offset = min(max(offset, 0), li.length)

	line, found := slices.BinarySearch(li.starts, offset)
	if !found {
		line--
	}
	return Position{Line: line, Character: offset - li.starts[line]}
}

// OffsetAt converts a Position to an offset. The line is clamped into the
// valid range and a negative character counts as zero. The character is not
// clamped to the line's length, so the result may point past the line end.
func (li *LineIndex) OffsetAt(pos Position) int {
	return li.starts[li.clampLine(pos.Line)] + max(0, pos.Character)
}

// ClampPosition clamps the line into the valid range and floors the
// character at zero.
func (li *LineIndex) ClampPosition(pos Position) Position {
	return Position{Line: li.clampLine(pos.Line), Character: max(0, pos.Character)}
}

// PositionAt converts offset to a Position using idx.
func PositionAt(offset int, idx *LineIndex) Position {
	return idx.PositionAt(offset)
}

// OffsetAt converts pos to an offset using idx.
func OffsetAt(pos Position, idx *LineIndex) int {
	return idx.OffsetAt(pos)
}
