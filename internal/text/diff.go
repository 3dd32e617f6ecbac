package text

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStrategy selects how edits between two texts are computed.
type DiffStrategy uint8

const (
	// DiffLine replaces the block between the common line prefix and suffix.
	DiffLine DiffStrategy = iota

	// DiffSmart narrows a line block to the changed characters when both
	// texts have the same number of lines, and otherwise falls back to
	// DiffLine.
	DiffSmart

	// DiffChar emits one edit per changed run of characters.
	DiffChar
)

// String returns the strategy name.
func (ds DiffStrategy) String() string {
	switch ds {
	case DiffLine:
		return "line"
	case DiffSmart:
		return "smart"
	case DiffChar:
		return "char"
	default:
		return "unknown"
	}
}

// ParseDiffStrategy parses a strategy name.
func ParseDiffStrategy(s string) (DiffStrategy, error) {
	switch strings.ToLower(s) {
	case "line", "":
		return DiffLine, nil
	case "smart":
		return DiffSmart, nil
	case "char":
		return DiffChar, nil
	default:
		return 0, fmt.Errorf("unknown diff strategy %q", s)
	}
}

// DiffOptions configures edit computation.
type DiffOptions struct {
	// Strategy selects the algorithm. Default is DiffSmart.
	Strategy DiffStrategy

	// Timeout bounds character diffing. When exceeded the character diff
	// returns a coarser but still correct result. Zero means no limit.
	Timeout time.Duration

	// SemanticCleanup merges character edits into human-sized chunks.
	SemanticCleanup bool
}

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		Strategy:        DiffSmart,
		Timeout:         DefaultDiffTimeout,
		SemanticCleanup: true,
	}
}

// DefaultDiffTimeout is the default limit for character diffing.
const DefaultDiffTimeout = time.Second

// ComputeEdits computes edits turning oldText into newText with the
// configured strategy.
func ComputeEdits(oldText, newText string, opts DiffOptions) []Edit {
	switch opts.Strategy {
	case DiffChar:
		return ComputeCharEdits(oldText, newText, opts)
	case DiffSmart:
		if edits, ok := ComputeSmartLineEdit(oldText, newText); ok {
			return edits
		}
		return ComputeMinimalSmartEdits(oldText, newText)
	default:
		return ComputeEditsByLine(oldText, newText)
	}
}

// ComputeMinimalEdits returns a single full-document replacement, or nothing
// when the texts are equal.
func ComputeMinimalEdits(oldText, newText string) []Edit {
	if oldText == newText {
		return nil
	}
	return []Edit{FullReplaceEdit(oldText, newText)}
}

// ComputeEditsByLine trims the common prefix and suffix of whole lines and
// emits one edit replacing the remaining middle block. It is deliberately
// coarse: good for formatter output, not a minimal diff.
//
// Lines are compared with their terminators, so a change of line ending is
// a change, and applying the result to oldText yields newText exactly.
func ComputeEditsByLine(oldText, newText string) []Edit {
	if oldText == newText {
		return nil
	}

	o, n := NewSnapshot(oldText), NewSnapshot(newText)
	ol, nl := o.lines(), n.lines()

	prefix := 0
	for prefix < len(ol) && prefix < len(nl) && equalUnits(ol[prefix], nl[prefix]) {
		prefix++
	}
	suffix := 0
	for suffix < len(ol)-prefix && suffix < len(nl)-prefix &&
		equalUnits(ol[len(ol)-1-suffix], nl[len(nl)-1-suffix]) {
		suffix++
	}

	oldStart, oldEnd := blockOffsets(o, prefix, suffix)
	newStart, newEnd := blockOffsets(n, prefix, suffix)

	return []Edit{{
		Range:   o.OffsetsToRange(oldStart, oldEnd),
		NewText: Decode(n.units[newStart:newEnd]),
	}}
}

// blockOffsets returns the span left after dropping prefix leading and
// suffix trailing lines.
func blockOffsets(s *Snapshot, prefix, suffix int) (start, end int) {
	start = s.Len()
	if prefix < s.LineCount() {
		start = s.index.LineStart(prefix)
	}
	end = s.Len()
	if suffix > 0 {
		end = s.index.LineStart(s.LineCount() - suffix)
	}
	return start, max(start, end)
}

// ComputeSmartLineEdit narrows the changed block to characters. It requires
// both texts to have the same number of lines and reports false otherwise.
// The first differing line loses its common character prefix and the last
// differing line its common character suffix. Equal texts return no edits
// and true.
func ComputeSmartLineEdit(oldText, newText string) ([]Edit, bool) {
	if oldText == newText {
		return nil, true
	}

	o, n := NewSnapshot(oldText), NewSnapshot(newText)
	if o.LineCount() != n.LineCount() {
		return nil, false
	}
	ol, nl := o.lines(), n.lines()

	first := 0
	for first < len(ol) && equalUnits(ol[first], nl[first]) {
		first++
	}
	last := len(ol) - 1
	for last > first && equalUnits(ol[last], nl[last]) {
		last--
	}

	head := commonPrefixLen(ol[first], nl[first])
	limit := min(len(ol[last]), len(nl[last]))
	if first == last {
		limit -= head
	}
	tail := commonSuffixLen(ol[last], nl[last], limit)

	oldStart := o.index.LineStart(first) + head
	newStart := n.index.LineStart(first) + head
	_, oldNext := o.index.LineBounds(last)
	_, newNext := n.index.LineBounds(last)

	return []Edit{{
		Range:   o.OffsetsToRange(oldStart, oldNext-tail),
		NewText: Decode(n.units[newStart : newNext-tail]),
	}}, true
}

// ComputeMinimalSmartEdits prefers the line-block edit, and collapses it to
// a full-document replacement when the block spans the whole document.
func ComputeMinimalSmartEdits(oldText, newText string) []Edit {
	byLine := ComputeEditsByLine(oldText, newText)
	if len(byLine) != 1 {
		return byLine
	}

	o := NewSnapshot(oldText)
	lo, hi := o.RangeToOffsets(byLine[0].Range)
	if lo == 0 && hi == o.Len() {
		return []Edit{FullReplaceEdit(oldText, newText)}
	}
	return byLine
}

// ComputeCharEdits diffs the texts character by character and returns one
// edit per changed run, in document order. The edits neither overlap nor
// touch, so they also satisfy ApplyEditsStrict.
func ComputeCharEdits(oldText, newText string, opts DiffOptions) []Edit {
	if oldText == newText {
		return nil
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = opts.Timeout
	diffs := dmp.DiffMain(oldText, newText, false)
	if opts.SemanticCleanup {
		diffs = dmp.DiffCleanupSemantic(diffs)
	}

	o := NewSnapshot(oldText)
	var (
		edits   []Edit
		offset  int
		pending bool
		start   int
		end     int
		insert  strings.Builder
	)
	flush := func() {
		if !pending {
			return
		}
		edits = append(edits, Edit{
			Range:   o.OffsetsToRange(start, end),
			NewText: insert.String(),
		})
		insert.Reset()
		pending = false
	}
	begin := func() {
		if !pending {
			pending = true
			start, end = offset, offset
		}
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			offset += UTF16Len(d.Text)
		case diffmatchpatch.DiffDelete:
			begin()
			offset += UTF16Len(d.Text)
			end = offset
		case diffmatchpatch.DiffInsert:
			begin()
			insert.WriteString(d.Text)
		}
	}
	flush()
	return edits
}
