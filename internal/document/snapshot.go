// Package document holds a single evolving text document as a chain of
// immutable snapshots, plus a cache of structures derived from each snapshot.
//
// A Snapshot is identified by a random ID and a version number. Derived
// structures (line index, line ending statistics, CRLF marks) are cached per
// snapshot ID and dropped explicitly when the document moves on, so a new
// snapshot never sees data computed for an old one.
package document

import (
	"github.com/google/uuid"

	"github.com/dshills/doctext/internal/text"
)

// Snapshot is one immutable version of a document.
type Snapshot struct {
	id      uuid.UUID
	version int
	view    *text.Snapshot
}

// NewSnapshot creates version 1 of a document.
func NewSnapshot(content string) *Snapshot {
	return newSnapshot(content, 1)
}

func newSnapshot(content string, version int) *Snapshot {
	return &Snapshot{
		id:      uuid.New(),
		version: version,
		view:    text.NewSnapshot(content),
	}
}

// Next returns the snapshot that follows s with the given content.
func (s *Snapshot) Next(content string) *Snapshot {
	return newSnapshot(content, s.version+1)
}

// ID returns the snapshot identity.
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

// Version returns the snapshot version, starting at 1.
func (s *Snapshot) Version() int {
	return s.version
}

// Text returns the snapshot content.
func (s *Snapshot) Text() string {
	return s.view.String()
}

// View returns the UTF-16 view used for position arithmetic.
func (s *Snapshot) View() *text.Snapshot {
	return s.view
}
