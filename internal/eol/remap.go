package eol

import (
	"sort"

	"github.com/dshills/doctext/internal/text"
)

// Marks holds, in ascending order, the UTF-16 offset in the LF-normalized
// view of every "\n" that was part of a "\r\n" pair in the original text.
type Marks []int

// BuildCRLFToLFMap returns the CRLF marks of s. Bare "\r" becomes "\n"
// without changing length, so only pairs produce marks.
func BuildCRLFToLFMap(s string) Marks {
	var marks Marks
	unit := 0
	pendingCR := false
	for _, r := range s {
		if r == '\n' && pendingCR {
			// The "\r" one unit back is dropped, so the "\n" lands on its
			// offset less one per earlier collapse.
			marks = append(marks, unit-1-len(marks))
		}
		pendingCR = r == '\r'
		if r >= 0x10000 {
			unit += 2
		} else {
			unit++
		}
	}
	return marks
}

// RemapLFOffsetToCRLF maps an offset in the LF view back to the original
// text by adding one unit per mark strictly before it.
func RemapLFOffsetToCRLF(off int, marks Marks) int {
	return off + sort.SearchInts(marks, off)
}

// RemapCRLFOffsetToLF maps an offset in the original text to the LF view.
// An offset between "\r" and "\n" maps onto the surviving "\n".
func RemapCRLFOffsetToLF(off int, marks Marks) int {
	// The k-th pair's "\n" sits at marks[k]+k+1 in the original text.
	n := sort.Search(len(marks), func(k int) bool {
		return marks[k]+k+1 > off
	})
	return off - n
}

// RemapRangeLFToCRLF converts r from LF-view positions to original-text
// positions. lfIdx indexes the LF view and origIdx the original text.
func RemapRangeLFToCRLF(r text.Range, marks Marks, lfIdx, origIdx *text.LineIndex) text.Range {
	return text.Range{
		Start: origIdx.PositionAt(RemapLFOffsetToCRLF(lfIdx.OffsetAt(r.Start), marks)),
		End:   origIdx.PositionAt(RemapLFOffsetToCRLF(lfIdx.OffsetAt(r.End), marks)),
	}
}

// RemapRangeCRLFToLF converts r from original-text positions to LF-view
// positions.
func RemapRangeCRLFToLF(r text.Range, marks Marks, origIdx, lfIdx *text.LineIndex) text.Range {
	return text.Range{
		Start: lfIdx.PositionAt(RemapCRLFOffsetToLF(origIdx.OffsetAt(r.Start), marks)),
		End:   lfIdx.PositionAt(RemapCRLFOffsetToLF(origIdx.OffsetAt(r.End), marks)),
	}
}

// Remapper translates offsets and ranges between a text and its LF view.
type Remapper struct {
	marks   Marks
	origIdx *text.LineIndex
	lfIdx   *text.LineIndex
	lfText  string
}

// NewRemapper indexes original and its LF normalization.
func NewRemapper(original string) *Remapper {
	lf := Normalize(original, LF)
	return &Remapper{
		marks:   BuildCRLFToLFMap(original),
		origIdx: text.IndexLineStarts(original),
		lfIdx:   text.IndexLineStarts(lf),
		lfText:  lf,
	}
}

// Marks returns the CRLF marks.
func (m *Remapper) Marks() Marks {
	return m.marks
}

// LFText returns the LF-normalized text.
func (m *Remapper) LFText() string {
	return m.lfText
}

// ToOriginal maps an LF-view offset to the original text.
func (m *Remapper) ToOriginal(off int) int {
	return RemapLFOffsetToCRLF(off, m.marks)
}

// ToLF maps an original offset to the LF view.
func (m *Remapper) ToLF(off int) int {
	return RemapCRLFOffsetToLF(off, m.marks)
}

// RangeToOriginal maps an LF-view range to the original text.
func (m *Remapper) RangeToOriginal(r text.Range) text.Range {
	return RemapRangeLFToCRLF(r, m.marks, m.lfIdx, m.origIdx)
}

// RangeToLF maps an original range to the LF view.
func (m *Remapper) RangeToLF(r text.Range) text.Range {
	return RemapRangeCRLFToLF(r, m.marks, m.origIdx, m.lfIdx)
}
