// Package text is the single-document text model used by the editor tooling
// backend. It converts between raw text, line/character positions and linear
// offsets, applies batches of edits, and computes edits between two versions
// of a document.
//
// # Units
//
// Every offset, length and character column is measured in UTF-16 code
// units, matching what LSP clients send. Go strings are UTF-8, so the package
// converts at the boundary (Encode, Decode, UTF16Len) and never counts bytes
// or runes when it reports a position.
//
// # Snapshots and line indexes
//
// A Snapshot is an immutable view of one document version together with its
// LineIndex. Build the Snapshot once per version and reuse it for any number
// of lookups:
//
//	snap := text.NewSnapshot("foo\nbar\n")
//	pos := snap.PositionAt(5)   // {1 1}
//	off := snap.OffsetAt(pos)   // 5
//
// Edits never mutate a Snapshot. ApplyEdits returns the new text; callers
// build a new Snapshot (and so a new LineIndex) from it.
//
// # Line boundaries
//
// For editing purposes a line ends at "\n" or "\r\n". A bare "\r" is not a
// line boundary here, although the eol package counts it when classifying
// line endings.
//
// # Thread Safety
//
// Snapshot and LineIndex are read-only after construction and safe to share
// between goroutines. All package functions are pure.
package text
