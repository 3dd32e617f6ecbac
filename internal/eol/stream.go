package eol

import "strings"

// ChunkState carries a split "\r\n" across chunk boundaries.
type ChunkState struct {
	// CarryCR is set when the previous chunk ended with a "\r" whose
	// meaning depends on the next chunk.
	CarryCR bool
}

// NormalizeChunkToLF converts one chunk to LF line endings. Feeding any
// split of a text through the same state, then appending Flush, gives the
// same result as Normalize(text, LF).
//
// An empty chunk leaves the carry untouched.
func NormalizeChunkToLF(chunk string, st *ChunkState) string {
	if chunk == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(chunk) + 1)

	i := 0
	if st.CarryCR {
		// The carried "\r" becomes this "\n" either way. If the chunk opens
		// with "\n", the pair was a split CRLF and the "\n" is consumed.
		b.WriteByte('\n')
		if chunk[0] == '\n' {
			i = 1
		}
		st.CarryCR = false
	}

	for ; i < len(chunk); i++ {
		c := chunk[i]
		if c != '\r' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(chunk) {
			st.CarryCR = true
			break
		}
		b.WriteByte('\n')
		if chunk[i+1] == '\n' {
			i++
		}
	}
	return b.String()
}

// Flush ends the stream. It returns "\n" when a final bare "\r" is still
// carried, and clears the state.
func (st *ChunkState) Flush() string {
	if !st.CarryCR {
		return ""
	}
	st.CarryCR = false
	return SeqLF
}

// ExpandLFChunk converts an LF-normalized chunk to k. Chunks can be expanded
// independently because every "\n" stands alone.
func ExpandLFChunk(chunk string, k Kind) string {
	if k != CRLF {
		return chunk
	}
	return strings.ReplaceAll(chunk, SeqLF, SeqCRLF)
}
