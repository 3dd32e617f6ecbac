package lsp

import (
	"math"
	"regexp"

	"go.lsp.dev/protocol"

	"github.com/dshills/doctext/internal/text"
)

func toUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

// ToProtocolPosition converts a model position.
func ToProtocolPosition(p text.Position) protocol.Position {
	return protocol.Position{Line: toUint32(p.Line), Character: toUint32(p.Character)}
}

// FromProtocolPosition converts a protocol position.
func FromProtocolPosition(p protocol.Position) text.Position {
	return text.Position{Line: int(p.Line), Character: int(p.Character)}
}

// ToProtocolRange converts a model range.
func ToProtocolRange(r text.Range) protocol.Range {
	return protocol.Range{Start: ToProtocolPosition(r.Start), End: ToProtocolPosition(r.End)}
}

// FromProtocolRange converts a protocol range.
func FromProtocolRange(r protocol.Range) text.Range {
	return text.Range{Start: FromProtocolPosition(r.Start), End: FromProtocolPosition(r.End)}
}

// Converter maps positions for one document snapshot.
type Converter struct {
	snap *text.Snapshot
}

// NewConverter creates a converter for content.
func NewConverter(content string) *Converter {
	return &Converter{snap: text.NewSnapshot(content)}
}

// NewSnapshotConverter creates a converter over an existing snapshot.
func NewSnapshotConverter(s *text.Snapshot) *Converter {
	return &Converter{snap: s}
}

// Snapshot returns the underlying snapshot.
func (c *Converter) Snapshot() *text.Snapshot {
	return c.snap
}

// LineCount returns the number of lines.
func (c *Converter) LineCount() int {
	return c.snap.LineCount()
}

// ClampPosition moves pos inside the document. The line is clamped to the
// last line and the character to that line's length.
func (c *Converter) ClampPosition(pos protocol.Position) protocol.Position {
	p := c.snap.Index().ClampPosition(FromProtocolPosition(pos))
	p.Character = min(p.Character, c.snap.LineLength(p.Line))
	return ToProtocolPosition(p)
}

// PositionToOffset returns the UTF-16 offset of pos after clamping it.
func (c *Converter) PositionToOffset(pos protocol.Position) int {
	return c.snap.OffsetAt(FromProtocolPosition(c.ClampPosition(pos)))
}

// OffsetToPosition returns the position of a UTF-16 offset.
func (c *Converter) OffsetToPosition(offset int) protocol.Position {
	return ToProtocolPosition(c.snap.PositionAt(offset))
}

// PositionToByteOffset returns the byte offset of pos in the UTF-8 content.
func (c *Converter) PositionToByteOffset(pos protocol.Position) int {
	return text.UTF16ToByteOffset(c.snap.String(), c.PositionToOffset(pos))
}

// ByteOffsetToPosition returns the position of a byte offset in the UTF-8
// content. The offset is clamped to the content.
func (c *Converter) ByteOffsetToPosition(byteOffset int) protocol.Position {
	return c.OffsetToPosition(text.ByteToUTF16Offset(c.snap.String(), byteOffset))
}

// FullRange returns the range covering the whole document.
func (c *Converter) FullRange() protocol.Range {
	return ToProtocolRange(c.snap.FullRange())
}

// WordAt returns the word under pos and its range.
func (c *Converter) WordAt(pos protocol.Position, re *regexp.Regexp) (string, protocol.Range, bool) {
	w, ok := c.snap.WordAt(FromProtocolPosition(pos), re)
	if !ok {
		return "", protocol.Range{}, false
	}
	return w.Text, ToProtocolRange(w.Range), true
}

// MatchBracket returns the range from the bracket at pos to its partner.
func (c *Converter) MatchBracket(pos protocol.Position) (protocol.Range, bool) {
	r, ok := c.snap.MatchBracket(FromProtocolPosition(pos))
	if !ok {
		return protocol.Range{}, false
	}
	return ToProtocolRange(r), true
}
