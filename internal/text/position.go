package text

import (
	"cmp"
	"fmt"
	"slices"
)

// Position is a zero-based line and character pair. Character counts UTF-16
// code units from the start of the line. A Position is not required to be in
// bounds; lookups clamp it.
type Position struct {
	Line      int `yaml:"line" json:"line"`
	Character int `yaml:"character" json:"character"`
}

// NewPosition creates a Position.
func NewPosition(line, character int) Position {
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	return ComparePosition(p, other)
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return ComparePosition(p, other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return ComparePosition(p, other) > 0
}

// Equal returns true if p and other denote the same location.
func (p Position) Equal(other Position) bool {
	return p.Line == other.Line && p.Character == other.Character
}

// ComparePosition orders positions lexicographically by (line, character).
// It returns -1, 0 or 1.
func ComparePosition(a, b Position) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Character, b.Character)
}

// Range is a span between two positions. Start is inclusive, End is
// exclusive. A Range in canonical form has Start <= End.
type Range struct {
	Start Position `yaml:"start" json:"start"`
	End   Position `yaml:"end" json:"end"`
}

// NewRange creates a Range from line/character pairs.
func NewRange(startLine, startChar, endLine, endChar int) Range {
	return Range{
		Start: Position{Line: startLine, Character: startChar},
		End:   Position{Line: endLine, Character: endChar},
	}
}

// CursorAt returns the empty range at p.
func CursorAt(p Position) Range {
	return Range{Start: p, End: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Equal(r.End)
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Normalize returns r with Start <= End.
func (r Range) Normalize() Range {
	return NormalizeRange(r)
}

// Contains reports whether p lies in [Start, End).
func (r Range) Contains(p Position) bool {
	return RangeContains(r, p)
}

// NormalizeRange swaps Start and End when Start > End. It is idempotent.
func NormalizeRange(r Range) Range {
	if ComparePosition(r.Start, r.End) > 0 {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// RangeContains reports whether pos lies in the half-open range
// [range.Start, range.End).
func RangeContains(r Range, pos Position) bool {
	return ComparePosition(pos, r.Start) >= 0 && ComparePosition(pos, r.End) < 0
}

// RangeContainsRange returns true if inner lies entirely within outer.
func RangeContainsRange(outer, inner Range) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}

// RangesOverlap returns true if two ranges share at least one position.
// Ranges that only touch do not overlap.
func RangesOverlap(a, b Range) bool {
	a, b = NormalizeRange(a), NormalizeRange(b)
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// UnionRange returns the smallest range that contains both ranges.
func UnionRange(a, b Range) Range {
	a, b = NormalizeRange(a), NormalizeRange(b)
	start := a.Start
	if b.Start.Before(start) {
		start = b.Start
	}
	end := a.End
	if b.End.After(end) {
		end = b.End
	}
	return Range{Start: start, End: end}
}

// ExpandRangeOnLine moves Start left by startDelta and End right by endDelta
// characters without crossing lines. Characters floor at zero.
func ExpandRangeOnLine(r Range, startDelta, endDelta int) Range {
	return Range{
		Start: Position{Line: r.Start.Line, Character: max(0, r.Start.Character-startDelta)},
		End:   Position{Line: r.End.Line, Character: max(0, r.End.Character+endDelta)},
	}
}

// MergeRanges normalizes and sorts ranges, then merges every range that
// overlaps or touches the running range. The result is the minimal set of
// disjoint, non-touching ranges in start order.
func MergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	rs := make([]Range, len(ranges))
	for i, r := range ranges {
		rs[i] = NormalizeRange(r)
	}
	slices.SortFunc(rs, func(a, b Range) int {
		return ComparePosition(a.Start, b.Start)
	})

	out := make([]Range, 0, len(rs))
	cur := rs[0]
	for _, r := range rs[1:] {
		if ComparePosition(r.Start, cur.End) <= 0 {
			if r.End.After(cur.End) {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}
