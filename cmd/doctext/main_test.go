package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dshills/doctext/internal/text"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOptions_ParseFlags(t *testing.T) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs([]string{"--log-level", "debug", "normalize", "--eol", "crlf", "--ensure-final-newline", "in.txt"})
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "crlf", opts.Normalize.EOL)
	assert.True(t, opts.Normalize.Ensure)
	assert.Equal(t, "in.txt", opts.Normalize.Args.File)
	require.NotNil(t, parser.Active)
	assert.Equal(t, "normalize", parser.Active.Name)

	cmd, ok := opts.command(parser.Active.Name)
	assert.True(t, ok)
	assert.Same(t, &opts.Normalize, cmd)
}

func TestRun_Version(t *testing.T) {
	r := runCLI(t, "", "--version")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "doctext dev")
}

func TestRun_Usage(t *testing.T) {
	r := runCLI(t, "", "--help")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "normalize")

	r = runCLI(t, "")
	assert.Equal(t, 2, r.code)

	r = runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "Error:")
}

func TestRun_Stats(t *testing.T) {
	r := runCLI(t, "a\r\nb\nc", "stats")
	require.Equal(t, 0, r.code, r.stderr)

	var report statsReport
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &report))
	assert.Equal(t, "stdin", report.File)
	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 1, report.Endings.CRLF)
	assert.Equal(t, 1, report.Endings.LF)
	assert.True(t, report.Mixed)
	assert.False(t, report.Endings.LastLineHasTerminator)
}

func TestRun_StatsDecodesUTF16WithBOM(t *testing.T) {
	// "a\r\nb" as UTF-16LE with a byte order mark.
	data := string([]byte{0xFF, 0xFE, 'a', 0, '\r', 0, '\n', 0, 'b', 0})
	path := writeFile(t, "utf16.txt", data)

	r := runCLI(t, "", "stats", path)
	require.Equal(t, 0, r.code, r.stderr)

	var report statsReport
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &report))
	assert.Equal(t, 2, report.Lines)
	assert.Equal(t, 4, report.UTF16Length)
	assert.Equal(t, "crlf", report.Dominant)
}

func TestRun_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"stream to crlf", "a\nb\r\nc\rd", []string{"--eol", "crlf"}, "a\r\nb\r\nc\r\nd"},
		{"stream to lf", "a\r\nb\rc\n", []string{"--eol", "lf"}, "a\nb\nc\n"},
		{"ensure final newline", "a\r\nb", []string{"--eol", "lf", "--ensure-final-newline"}, "a\nb\n"},
		{"strip final newline", "a\nb\n", []string{"--eol", "crlf", "--strip-final-newline"}, "a\r\nb"},
		{"auto keeps dominant", "a\r\nb\r\nc\n", []string{"--eol", "auto"}, "a\r\nb\r\nc\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.input, append([]string{"normalize"}, tt.args...)...)
			require.Equal(t, 0, r.code, r.stderr)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestRun_NormalizeToFile(t *testing.T) {
	in := writeFile(t, "in.txt", "x\ny\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	r := runCLI(t, "", "normalize", "--eol", "crlf", "-o", out, in)
	require.Equal(t, 0, r.code, r.stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "x\r\ny\r\n", string(got))
}

func TestRun_NormalizePrintEdits(t *testing.T) {
	r := runCLI(t, "a\r\nb\r\n", "normalize", "--eol", "lf", "--print-edits")
	require.Equal(t, 0, r.code, r.stderr)

	var edits []text.Edit
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &edits))
	assert.Equal(t, "a\nb\n", text.ApplyEdits("a\r\nb\r\n", edits))
}

func TestRun_Diff(t *testing.T) {
	oldPath := writeFile(t, "old.txt", "foo\nbar\nbaz\n")
	newPath := writeFile(t, "new.txt", "foo\nBAR\nbaz\n")

	r := runCLI(t, "", "diff", "--strategy", "smart", oldPath, newPath)
	require.Equal(t, 0, r.code, r.stderr)

	var edits []text.Edit
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &edits))
	require.Len(t, edits, 1)
	assert.Equal(t, text.NewRange(1, 0, 1, 3), edits[0].Range)
	assert.Equal(t, "BAR", edits[0].NewText)

	r = runCLI(t, "", "diff", "--strategy", "sideways", oldPath, newPath)
	assert.Equal(t, 1, r.code)

	r = runCLI(t, "", "diff", oldPath, oldPath)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "[]\n", r.stdout)
}

const editsYAML = `
- range:
    start: {line: 0, character: 0}
    end: {line: 0, character: 1}
  newText: X
- range:
    start: {line: 0, character: 1}
    end: {line: 0, character: 2}
  newText: Y
`

func TestRun_Apply(t *testing.T) {
	edits := writeFile(t, "edits.yaml", editsYAML)

	r := runCLI(t, "abc", "apply", "--edits", edits)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Yc", r.stdout, "touching edits are folded together")

	r = runCLI(t, "abc", "apply", "--strict", "--edits", edits)
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "overlapping edits")
}

func TestRun_ApplyJSONEdits(t *testing.T) {
	edits := writeFile(t, "edits.json", `[{"range":{"start":{"line":1,"character":0},"end":{"line":1,"character":3}},"newText":"BAR"}]`)

	r := runCLI(t, "foo\nbar\n", "apply", "--strict", "--edits", edits)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "foo\nBAR\n", r.stdout)
}

func TestRun_PositionAndOffset(t *testing.T) {
	r := runCLI(t, "ab\ncd", "position", "--offset", "4")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "1:1\n", r.stdout)

	r = runCLI(t, "ab\ncd", "position", "--offset", "99")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "1:2\n", r.stdout)

	r = runCLI(t, "ab\ncd", "offset", "-l", "1", "-C", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "4\n", r.stdout)

	r = runCLI(t, "ab", "offset")
	assert.Equal(t, 2, r.code, "line is required")
}

func TestRun_Word(t *testing.T) {
	r := runCLI(t, "foo bar", "word", "--line", "0", "--character", "5")
	require.Equal(t, 0, r.code, r.stderr)

	var w text.Word
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &w))
	assert.Equal(t, "bar", w.Text)
	assert.Equal(t, text.NewRange(0, 4, 0, 7), w.Range)

	r = runCLI(t, "a  b", "word", "-l", "0", "-C", "2")
	assert.Equal(t, 1, r.code)
}

func TestRun_WordUsesConfiguredPattern(t *testing.T) {
	cfg := writeFile(t, "doctext.yaml", "word_pattern: '[\\w-]+'\n")

	r := runCLI(t, "foo-bar baz", "-c", cfg, "word", "-l", "0", "-C", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "text: foo-bar")
}

func TestRun_Bracket(t *testing.T) {
	r := runCLI(t, "f(a[1])", "bracket", "-l", "0", "-C", "1")
	require.Equal(t, 0, r.code, r.stderr)

	var got text.Range
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, text.NewRange(0, 1, 0, 7), got)
}

func TestRun_Indent(t *testing.T) {
	r := runCLI(t, "\tx\n\t\ty\n", "indent", "--spaces", "-t", "2")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "  x\n    y\n", r.stdout)

	r = runCLI(t, "    x\n", "indent", "--tabs")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "\tx\n", r.stdout)

	r = runCLI(t, "x", "indent", "--tabs", "--spaces")
	assert.Equal(t, 1, r.code)
}

func TestRun_Remap(t *testing.T) {
	r := runCLI(t, "a\r\nb", "remap", "--offset", "3")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "2\n", r.stdout)

	r = runCLI(t, "a\r\nb", "remap", "--offset", "2", "--to", "original")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "3\n", r.stdout)
}

func TestRun_Config(t *testing.T) {
	cfg := writeFile(t, "doctext.toml", "eol = \"crlf\"\nensure_final_newline = true\n")

	r := runCLI(t, "a\nb", "--config", cfg, "normalize")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a\r\nb\r\n", r.stdout)

	bad := writeFile(t, "bad.toml", "eol = \"mac\"\n")
	r = runCLI(t, "a", "--config", bad, "normalize")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "eol")
}

func TestRun_DebugLogging(t *testing.T) {
	r := runCLI(t, "a\n", "--log-level", "debug", "normalize", "--eol", "crlf")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a\r\n", r.stdout)
	assert.Contains(t, r.stderr, "streamed stdin")
}
