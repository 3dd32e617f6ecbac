package eol

import (
	"golang.org/x/text/transform"
)

// lfTransformer rewrites "\r\n" and bare "\r" to "\n".
type lfTransformer struct{ transform.NopResetter }

// NewLFTransformer returns a transformer that normalizes line endings to LF.
// It is stateless: a "\r" at the end of src is held back with ErrShortSrc
// until the next byte or EOF decides it.
func NewLFTransformer() transform.Transformer {
	return lfTransformer{}
}

func (lfTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' && nSrc+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if c != '\r' {
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		dst[nDst] = '\n'
		nDst++
		nSrc++
		if nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// crlfExpander rewrites every "\n" to "\r\n". Its input must already be LF
// normalized.
type crlfExpander struct{ transform.NopResetter }

func (crlfExpander) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\n' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if nDst+2 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '\r'
		dst[nDst+1] = '\n'
		nDst += 2
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewCRLFTransformer returns a transformer that normalizes line endings to
// CRLF.
func NewCRLFTransformer() transform.Transformer {
	return transform.Chain(lfTransformer{}, crlfExpander{})
}

// NewTransformer returns the transformer for k. Auto passes bytes through.
func NewTransformer(k Kind) transform.Transformer {
	switch k {
	case LF:
		return NewLFTransformer()
	case CRLF:
		return NewCRLFTransformer()
	default:
		return transform.Nop
	}
}
