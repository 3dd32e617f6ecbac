package text

import (
	"fmt"
	"slices"
)

// Edit replaces the text covered by Range with NewText.
type Edit struct {
	Range   Range  `yaml:"range" json:"range"`
	NewText string `yaml:"newText" json:"newText"`
}

// NewEdit creates an Edit with a normalized range.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: NormalizeRange(r), NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(pos Position, text string) Edit {
	return Edit{Range: CursorAt(pos), NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(r Range) Edit {
	return NewEdit(r, "")
}

// FullReplaceEdit returns a single edit that replaces all of oldText with
// newText.
func FullReplaceEdit(oldText, newText string) Edit {
	return Edit{Range: FullDocumentRange(oldText), NewText: newText}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert%s %q", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return !e.Range.IsEmpty() && e.NewText != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// sortedEdits normalizes every range and sorts by (start, end). The sort is
// stable, so edits with equal ranges keep their input order.
func sortedEdits(edits []Edit) []Edit {
	es := make([]Edit, len(edits))
	for i, e := range edits {
		es[i] = Edit{Range: NormalizeRange(e.Range), NewText: e.NewText}
	}
	slices.SortStableFunc(es, func(a, b Edit) int {
		if c := ComparePosition(a.Range.Start, b.Range.Start); c != 0 {
			return c
		}
		return ComparePosition(a.Range.End, b.Range.End)
	})
	return es
}

// CompactEdits normalizes and sorts edits, then folds every edit whose start
// is at or before the running edit's end into that edit. The folded edit
// covers the farther of the two ends and takes the later edit's text, so on
// overlap the last writer wins.
func CompactEdits(edits []Edit) []Edit {
	es := sortedEdits(edits)
	out := es[:0]
	for _, e := range es {
		if n := len(out); n > 0 && ComparePosition(e.Range.Start, out[n-1].Range.End) <= 0 {
			last := &out[n-1]
			if e.Range.End.After(last.Range.End) {
				last.Range.End = e.Range.End
			}
			last.NewText = e.NewText
			continue
		}
		out = append(out, e)
	}
	return out
}

// span is an edit resolved to clamped offsets in one snapshot.
type span struct {
	lo, hi int
	edit   Edit
}

// resolve converts edits to offset spans and stably sorts them by
// (lo, hi). Ordering by offset rather than by Position keeps positions that
// run past their line end in document order.
func (s *Snapshot) resolve(edits []Edit) []span {
	spans := make([]span, len(edits))
	for i, e := range edits {
		e.Range = NormalizeRange(e.Range)
		lo, hi := s.RangeToOffsets(e.Range)
		spans[i] = span{lo: lo, hi: hi, edit: e}
	}
	slices.SortStableFunc(spans, func(a, b span) int {
		if a.lo != b.lo {
			return a.lo - b.lo
		}
		return a.hi - b.hi
	})
	return spans
}

// ApplyEdits applies edits to the snapshot and returns the new text.
// Edits are resolved to offsets first; spans that overlap or touch are
// folded together as CompactEdits does, so the last writer wins.
// An empty list returns the text unchanged.
func (s *Snapshot) ApplyEdits(edits []Edit) string {
	if len(edits) == 0 {
		return s.text
	}

	spans := s.resolve(edits)
	out := spans[:0]
	for _, sp := range spans {
		if n := len(out); n > 0 && sp.lo <= out[n-1].hi {
			last := &out[n-1]
			last.hi = max(last.hi, sp.hi)
			last.edit.NewText = sp.edit.NewText
			continue
		}
		out = append(out, sp)
	}
	return s.splice(out)
}

// ApplyEditsStrict applies edits like ApplyEdits but fails with an
// *OverlapError wrapping ErrOverlappingEdits if any two resolved edits
// intersect or touch. On failure nothing is applied.
func (s *Snapshot) ApplyEditsStrict(edits []Edit) (string, error) {
	if len(edits) == 0 {
		return s.text, nil
	}

	spans := s.resolve(edits)
	for i := 1; i < len(spans); i++ {
		if spans[i].lo <= spans[i-1].hi {
			return "", &OverlapError{First: spans[i-1].edit, Second: spans[i].edit}
		}
	}
	return s.splice(spans), nil
}

// splice rebuilds the text from sorted, disjoint spans.
func (s *Snapshot) splice(spans []span) string {
	size := len(s.units)
	repl := make([][]uint16, len(spans))
	for i, sp := range spans {
		repl[i] = Encode(sp.edit.NewText)
		size += len(repl[i])
	}

	out := make([]uint16, 0, size)
	cursor := 0
	for i, sp := range spans {
		out = append(out, s.units[cursor:sp.lo]...)
		out = append(out, repl[i]...)
		cursor = sp.hi
	}
	out = append(out, s.units[cursor:]...)
	return Decode(out)
}

// ApplyEdits applies edits to text. See Snapshot.ApplyEdits.
func ApplyEdits(text string, edits []Edit) string {
	if len(edits) == 0 {
		return text
	}
	return NewSnapshot(text).ApplyEdits(edits)
}

// ApplyEditsStrict applies edits to text and fails on any overlap. See
// Snapshot.ApplyEditsStrict.
func ApplyEditsStrict(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}
	return NewSnapshot(text).ApplyEditsStrict(edits)
}
