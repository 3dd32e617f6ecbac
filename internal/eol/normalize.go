package eol

import "strings"

var toLF = strings.NewReplacer(SeqCRLF, SeqLF, SeqCR, SeqLF)

// Normalize converts every terminator in s to k. "\r\n" and bare "\r"
// collapse to "\n" first; for CRLF every "\n" is then expanded. Auto returns
// s unchanged.
func Normalize(s string, k Kind) string {
	if k == Auto {
		return s
	}

	out := s
	if strings.IndexByte(s, '\r') >= 0 {
		out = toLF.Replace(s)
	}
	if k == CRLF {
		out = strings.ReplaceAll(out, SeqLF, SeqCRLF)
	}
	return out
}

// EnsureFinalNewline appends k's terminator unless s already ends with one.
func EnsureFinalNewline(s string, k Kind) string {
	if IsTerminated(s) {
		return s
	}
	return s + k.Sequence()
}

// StripFinalNewline removes one trailing "\r\n", "\n" or "\r".
func StripFinalNewline(s string) string {
	switch {
	case strings.HasSuffix(s, SeqCRLF):
		return s[:len(s)-2]
	case IsTerminated(s):
		return s[:len(s)-1]
	default:
		return s
	}
}

// SplitLines splits s on any terminator. A trailing terminator yields a
// final empty line; the empty text yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(Normalize(s, LF), SeqLF)
}

// JoinLines joins lines with k's terminator.
func JoinLines(lines []string, k Kind) string {
	return strings.Join(lines, k.Sequence())
}

// Line is one line of text and the terminator that ended it. Delim is empty
// only for the last line.
type Line struct {
	Text  string
	Delim string
}

// SplitLinesWithDelimiters splits s into lines, keeping each terminator. The
// result always ends with a Line whose Delim is empty, which is empty text
// when s ends with a terminator.
func SplitLinesWithDelimiters(s string) []Line {
	var out []Line
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				out = append(out, Line{Text: s[start:i], Delim: SeqCRLF})
				i++
			} else {
				out = append(out, Line{Text: s[start:i], Delim: SeqCR})
			}
			start = i + 1
		case '\n':
			out = append(out, Line{Text: s[start:i], Delim: SeqLF})
			start = i + 1
		}
	}
	return append(out, Line{Text: s[start:]})
}

// JoinLinesPreserveLastTerminator joins lines, replacing every non-empty
// Delim with k's terminator. Whether the text ends in a terminator is kept.
func JoinLinesPreserveLastTerminator(lines []Line, k Kind) string {
	sep := k.Sequence()
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		if l.Delim != "" {
			b.WriteString(sep)
		}
	}
	return b.String()
}

// ChooseOutput resolves Auto to the dominant style of source.
func ChooseOutput(preferred Kind, source string) Kind {
	if preferred == Auto {
		return Detect(source)
	}
	return preferred
}

// Policy describes how a document's line endings are written.
type Policy struct {
	// Target is the output style. Auto normalizes to the dominant style of
	// the input.
	Target Kind

	// EnsureFinalNewline appends a terminator when the text has none.
	EnsureFinalNewline bool

	// StripFinalNewline removes one trailing terminator. When both flags are
	// set the text ends with exactly one terminator.
	StripFinalNewline bool
}

// ApplyPolicy normalizes s according to p.
func ApplyPolicy(s string, p Policy) string {
	target := ChooseOutput(p.Target, s)
	out := Normalize(s, target)
	if p.StripFinalNewline {
		out = StripFinalNewline(out)
	}
	if p.EnsureFinalNewline {
		out = EnsureFinalNewline(out, target)
	}
	return out
}
