package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/dshills/doctext/internal/document"
	"github.com/dshills/doctext/internal/text"
)

// ToProtocolTextEdits converts model edits.
func ToProtocolTextEdits(edits []text.Edit) []protocol.TextEdit {
	if edits == nil {
		return nil
	}
	out := make([]protocol.TextEdit, len(edits))
	for i, e := range edits {
		out[i] = protocol.TextEdit{Range: ToProtocolRange(e.Range), NewText: e.NewText}
	}
	return out
}

// FromProtocolTextEdits converts protocol edits.
func FromProtocolTextEdits(edits []protocol.TextEdit) []text.Edit {
	if edits == nil {
		return nil
	}
	out := make([]text.Edit, len(edits))
	for i, e := range edits {
		out[i] = text.Edit{Range: FromProtocolRange(e.Range), NewText: e.NewText}
	}
	return out
}

// ToContentChange builds a document change from the fields of an LSP
// content change event. A nil range means a full replacement.
func ToContentChange(r *protocol.Range, newText string) document.ContentChange {
	ch := document.ContentChange{Text: newText}
	if r != nil {
		mr := FromProtocolRange(*r)
		ch.Range = &mr
	}
	return ch
}

// ApplyTextEdits applies protocol edits to the converter's snapshot.
// Overlapping edits are compacted, last writer wins.
func (c *Converter) ApplyTextEdits(edits []protocol.TextEdit) string {
	return c.snap.ApplyEdits(FromProtocolTextEdits(edits))
}

// ApplyTextEditsStrict applies protocol edits and fails with
// text.ErrOverlappingEdits if any two intersect or touch.
func (c *Converter) ApplyTextEditsStrict(edits []protocol.TextEdit) (string, error) {
	return c.snap.ApplyEditsStrict(FromProtocolTextEdits(edits))
}

// ComputeTextEdits returns the edits that turn the snapshot into newText.
func (c *Converter) ComputeTextEdits(newText string, opts text.DiffOptions) []protocol.TextEdit {
	return ToProtocolTextEdits(text.ComputeEdits(c.snap.String(), newText, opts))
}
