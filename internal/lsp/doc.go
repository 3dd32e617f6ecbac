// Package lsp converts between the document model and Language Server
// Protocol types from go.lsp.dev/protocol.
//
// LSP positions are zero-based (line, character) pairs where character counts
// UTF-16 code units, which is the same unit the text package uses, so the
// conversion is a change of integer width. protocol uses uint32 coordinates;
// negative model values clamp to zero and values above math.MaxUint32 clamp
// to the maximum.
//
// A Converter binds conversions to one document snapshot. It adds what the
// core model leaves to callers: clamping a character to its line length as
// LSP clients expect, and translating to and from Go byte offsets for code
// that works on the UTF-8 string directly.
//
//	conv := lsp.NewConverter(content)
//	off := conv.PositionToByteOffset(protocol.Position{Line: 3, Character: 7})
//	edits := conv.ComputeTextEdits(formatted, text.DefaultDiffOptions())
package lsp
