package eol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Stats
	}{
		{"empty", "", Stats{}},
		{"single CRLF", "a\r\nb", Stats{CRLF: 1}},
		{"LF only", "a\nb\n", Stats{LF: 2, LastLineHasTerminator: true}},
		{"lone CR", "a\rb\r", Stats{CR: 2, LastLineHasTerminator: true}},
		{"mixed", "a\r\nb\nc\rd", Stats{LF: 1, CRLF: 1, CR: 1}},
		{"CR before CRLF", "\r\r\n", Stats{CRLF: 1, CR: 1, LastLineHasTerminator: true}},
		{"no terminator", "abc", Stats{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Measure(tc.input))
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, CRLF, Detect("a\r\nb"))
	assert.Equal(t, LF, Detect(""))
	assert.Equal(t, LF, Detect("a\r\nb\nc"), "ties resolve to LF")
	assert.Equal(t, LF, Detect("a\r\nb\r\nc\rd\re"), "CR counts with LF")
	assert.Equal(t, CRLF, Detect("a\r\nb\r\nc\nd"))
}

func TestDetectThreshold(t *testing.T) {
	s := "a\r\nb\r\nc\r\nd\n"

	assert.Equal(t, CRLF, DetectThreshold(s, 0, LF))
	assert.Equal(t, CRLF, DetectThreshold(s, 1, LF))
	assert.Equal(t, LF, DetectThreshold(s, 2, LF), "difference within bias")
	assert.Equal(t, CRLF, DetectThreshold("x", 0, CRLF), "no terminators is a tie")
}

func TestHasMixed(t *testing.T) {
	assert.True(t, HasMixed("a\r\nb\n"))
	assert.True(t, HasMixed("a\r\nb\r"))
	assert.False(t, HasMixed("a\r\nb\r\n"))
	assert.False(t, HasMixed("a\nb\rc"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 1, CountLines(""))
	assert.Equal(t, 4, CountLines("a\nb\r\nc\rd"))
	assert.Equal(t, 3, CountLines("a\n\n"))
}

func TestIsTerminated(t *testing.T) {
	assert.True(t, IsTerminated("a\n"))
	assert.True(t, IsTerminated("a\r"))
	assert.True(t, IsTerminated("a\r\n"))
	assert.False(t, IsTerminated("a"))
	assert.False(t, IsTerminated(""))
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input    string
		expected Kind
	}{
		{"lf", LF},
		{"CRLF", CRLF},
		{" auto ", Auto},
		{"preserve", Auto},
		{"", Auto},
	}
	for _, tc := range testCases {
		k, err := ParseKind(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, k, tc.input)
	}

	_, err := ParseKind("cr")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestKind_Sequence(t *testing.T) {
	assert.Equal(t, "\n", LF.Sequence())
	assert.Equal(t, "\r\n", CRLF.Sequence())
	assert.Equal(t, "\n", Auto.Sequence())
	assert.Equal(t, "crlf", CRLF.String())
}
