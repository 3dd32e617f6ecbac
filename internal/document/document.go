package document

import (
	"fmt"
	"sync"

	"github.com/dshills/doctext/internal/eol"
	"github.com/dshills/doctext/internal/logging"
	"github.com/dshills/doctext/internal/text"
)

// ContentChange is an incremental or full change to a document. A nil Range
// replaces the whole document.
type ContentChange struct {
	Range *text.Range `yaml:"range,omitempty" json:"range,omitempty"`
	Text  string      `yaml:"text" json:"text"`
}

// Document tracks the current snapshot of a single document.
type Document struct {
	mu    sync.RWMutex
	snap  *Snapshot
	cache *Cache
	log   *logging.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for snapshot transitions.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		d.log = l
	}
}

// WithCache shares a cache between documents.
func WithCache(c *Cache) Option {
	return func(d *Document) {
		d.cache = c
	}
}

// New creates a document whose first snapshot holds content.
func New(content string, opts ...Option) *Document {
	d := &Document{
		snap: NewSnapshot(content),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cache == nil {
		d.cache = NewCache()
	}
	if d.log == nil {
		d.log = logging.Nop()
	}
	d.log = d.log.WithComponent("document")
	return d
}

// Snapshot returns the current snapshot.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap
}

// Text returns the current content.
func (d *Document) Text() string {
	return d.Snapshot().Text()
}

// Version returns the current version.
func (d *Document) Version() int {
	return d.Snapshot().Version()
}

// Derived returns the cached derived structures of the current snapshot.
func (d *Document) Derived() *Derived {
	return d.cache.Derived(d.Snapshot())
}

// Cache returns the document's cache.
func (d *Document) Cache() *Cache {
	return d.cache
}

// Apply applies changes in order, each against the result of the previous
// one, and commits the result as one new snapshot.
func (d *Document) Apply(changes ...ContentChange) *Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	content := d.snap.Text()
	for _, ch := range changes {
		if ch.Range == nil {
			content = ch.Text
			continue
		}
		content = text.ReplaceRange(content, *ch.Range, ch.Text)
	}
	return d.commit(content, len(changes))
}

// ApplyEdits applies a batch of edits to the current snapshot. Overlapping
// edits are compacted as text.ApplyEdits does. An empty batch returns the
// current snapshot.
func (d *Document) ApplyEdits(edits []text.Edit) *Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(edits) == 0 {
		return d.snap
	}
	return d.commit(d.snap.View().ApplyEdits(edits), len(edits))
}

// ApplyEditsStrict applies a batch of edits and fails if any two intersect
// or touch. On failure the current snapshot is unchanged.
func (d *Document) ApplyEditsStrict(edits []text.Edit) (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(edits) == 0 {
		return d.snap, nil
	}

	content, err := d.snap.View().ApplyEditsStrict(edits)
	if err != nil {
		d.log.WithError(err).Warn("rejected edit batch for version %d", d.snap.Version())
		return nil, fmt.Errorf("apply edits to version %d: %w", d.snap.Version(), err)
	}
	return d.commit(content, len(edits)), nil
}

// ApplyPolicy rewrites line endings according to p. It returns the edits
// that were applied, or none when the document already conforms, in which
// case no new snapshot is created.
func (d *Document) ApplyPolicy(p eol.Policy) ([]text.Edit, *Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	old := d.snap.Text()
	updated := eol.ApplyPolicy(old, p)
	if updated == old {
		return nil, d.snap
	}

	edits := text.ComputeEditsByLine(old, updated)
	return edits, d.commit(updated, len(edits))
}

// Diff computes the edits that turn the current content into content.
func (d *Document) Diff(content string, opts text.DiffOptions) []text.Edit {
	return text.ComputeEdits(d.Text(), content, opts)
}

// commit installs content as the next snapshot and drops the old snapshot's
// cache entry. The caller holds d.mu.
func (d *Document) commit(content string, changes int) *Snapshot {
	prev := d.snap
	d.snap = prev.Next(content)
	d.cache.Invalidate(prev.ID())

	d.log.WithFields(map[string]any{
		"from":    prev.Version(),
		"to":      d.snap.Version(),
		"changes": changes,
	}).Debug("new snapshot")
	return d.snap
}
