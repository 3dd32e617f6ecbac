package text

import (
	"errors"
	"fmt"
)

// ErrOverlappingEdits is returned by ApplyEditsStrict when two edits
// intersect or touch.
var ErrOverlappingEdits = errors.New("overlapping edits not allowed")

// OverlapError identifies the pair of edits that collided.
type OverlapError struct {
	First  Edit
	Second Edit
}

// Error implements the error interface.
func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: %s and %s", ErrOverlappingEdits, e.First.Range, e.Second.Range)
}

// Unwrap returns ErrOverlappingEdits.
func (e *OverlapError) Unwrap() error {
	return ErrOverlappingEdits
}
