package eol

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

var streamInputs = []string{
	"",
	"plain",
	"a\r\nb",
	"a\rb\nc",
	"a\r\r\nb\r",
	"\r\n\r\n",
	"\r",
	"x\r",
	"😀\r\nü\rend\n",
}

func streamNormalize(chunks ...string) string {
	var st ChunkState
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(NormalizeChunkToLF(c, &st))
	}
	b.WriteString(st.Flush())
	return b.String()
}

func TestNormalizeChunkToLF_AnySplit(t *testing.T) {
	for _, in := range streamInputs {
		want := Normalize(in, LF)
		for k := 0; k <= len(in); k++ {
			got := streamNormalize(in[:k], in[k:])
			assert.Equal(t, want, got, "%q split at %d", in, k)
		}
	}
}

func TestNormalizeChunkToLF_ByteAtATime(t *testing.T) {
	for _, in := range streamInputs {
		chunks := make([]string, len(in))
		for i := 0; i < len(in); i++ {
			chunks[i] = in[i : i+1]
		}
		assert.Equal(t, Normalize(in, LF), streamNormalize(chunks...), "%q", in)
	}
}

func TestNormalizeChunkToLF_SplitPair(t *testing.T) {
	var st ChunkState

	assert.Equal(t, "a", NormalizeChunkToLF("a\r", &st))
	assert.True(t, st.CarryCR)

	assert.Equal(t, "", NormalizeChunkToLF("", &st))
	assert.True(t, st.CarryCR, "an empty chunk keeps the carry")

	assert.Equal(t, "\nb", NormalizeChunkToLF("\nb", &st))
	assert.False(t, st.CarryCR)
	assert.Equal(t, "", st.Flush())
}

func TestNormalizeChunkToLF_CarriedLoneCR(t *testing.T) {
	var st ChunkState
	assert.Equal(t, "a", NormalizeChunkToLF("a\r", &st))
	assert.Equal(t, "\nb", NormalizeChunkToLF("b", &st))
	assert.False(t, st.CarryCR)
}

func TestExpandLFChunk(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\n", ExpandLFChunk("a\nb\n", CRLF))
	assert.Equal(t, "a\nb", ExpandLFChunk("a\nb", LF))
	assert.Equal(t, "a\nb", ExpandLFChunk("a\nb", Auto))
}

func TestTransformers(t *testing.T) {
	for _, in := range streamInputs {
		for _, k := range []Kind{LF, CRLF, Auto} {
			r := transform.NewReader(iotest.OneByteReader(strings.NewReader(in)), NewTransformer(k))
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, Normalize(in, k), string(got), "%q as %s", in, k)
		}
	}
}

func TestTransformers_String(t *testing.T) {
	out, _, err := transform.String(NewCRLFTransformer(), "a\rb\nc\r\n")
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\nc\r\n", out)

	out, _, err = transform.String(NewLFTransformer(), "a\r")
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)
}
