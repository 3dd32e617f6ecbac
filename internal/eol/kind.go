// Package eol measures, classifies and converts line endings.
//
// The analyzer treats "\r\n", a bare "\n" and a bare "\r" as line
// terminators. Conversion comes in three forms: whole-string (Normalize),
// chunked with explicit carry state (NormalizeChunkToLF), and as
// golang.org/x/text transformers for io.Reader pipelines. Offsets that cross
// between an original text and its LF-normalized view are remapped with CRLF
// marks (BuildCRLFToLFMap, Remapper), measured in UTF-16 code units.
package eol

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects a line ending style.
type Kind uint8

const (
	// LF is "\n".
	LF Kind = iota

	// CRLF is "\r\n".
	CRLF

	// Auto keeps or detects the style of the input.
	Auto
)

// Terminator sequences.
const (
	SeqLF   = "\n"
	SeqCRLF = "\r\n"
	SeqCR   = "\r"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("unknown line ending")

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Sequence returns the terminator written for k. Auto writes "\n".
func (k Kind) Sequence() string {
	if k == CRLF {
		return SeqCRLF
	}
	return SeqLF
}

// ParseKind parses a line ending name. "preserve" is accepted as Auto.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "auto", "preserve", "":
		return Auto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
