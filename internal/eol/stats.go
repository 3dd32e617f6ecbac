package eol

import "strings"

// Stats counts the line terminators of a text.
type Stats struct {
	// LF counts "\n" not preceded by "\r".
	LF int `yaml:"lf" json:"lf"`

	// CRLF counts "\r\n" pairs.
	CRLF int `yaml:"crlf" json:"crlf"`

	// CR counts "\r" not followed by "\n".
	CR int `yaml:"cr" json:"cr"`

	// LastLineHasTerminator is set when the text ends in "\n" or "\r".
	LastLineHasTerminator bool `yaml:"lastLineHasTerminator" json:"lastLineHasTerminator"`
}

// Bare returns the number of single-character terminators.
func (s Stats) Bare() int {
	return s.LF + s.CR
}

// Mixed reports whether CRLF and bare terminators both occur.
func (s Stats) Mixed() bool {
	return s.CRLF > 0 && s.Bare() > 0
}

// Dominant returns CRLF when CRLF pairs outnumber bare terminators, and LF
// otherwise.
func (s Stats) Dominant() Kind {
	if s.CRLF > s.Bare() {
		return CRLF
	}
	return LF
}

// Measure scans s once and counts its terminators.
func Measure(s string) Stats {
	if s == "" {
		return Stats{}
	}

	if strings.IndexByte(s, '\r') < 0 {
		return Stats{
			LF:                    strings.Count(s, SeqLF),
			LastLineHasTerminator: s[len(s)-1] == '\n',
		}
	}

	var st Stats
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				st.CRLF++
				i++
			} else {
				st.CR++
			}
		case '\n':
			st.LF++
		}
	}
	st.LastLineHasTerminator = IsTerminated(s)
	return st
}

// Detect returns the dominant line ending of s. Ties, including a text with
// no terminators at all, resolve to LF.
func Detect(s string) Kind {
	return Measure(s).Dominant()
}

// DetectThreshold is Detect with a dead zone: when the CRLF count and the
// bare count differ by at most bias, tiebreak wins.
func DetectThreshold(s string, bias int, tiebreak Kind) Kind {
	st := Measure(s)
	diff := st.CRLF - st.Bare()
	if diff < 0 {
		diff = -diff
	}
	if diff <= bias {
		return tiebreak
	}
	return st.Dominant()
}

// HasMixed reports whether s mixes CRLF with bare LF or CR.
func HasMixed(s string) bool {
	return Measure(s).Mixed()
}

// CountLines counts lines treating "\r\n", "\n" and a bare "\r" as
// terminators. The empty text has one line.
func CountLines(s string) int {
	st := Measure(s)
	return 1 + st.LF + st.CRLF + st.CR
}

// IsTerminated reports whether s ends with "\n" or "\r".
func IsTerminated(s string) bool {
	return strings.HasSuffix(s, SeqLF) || strings.HasSuffix(s, SeqCR)
}
