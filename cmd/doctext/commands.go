package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/dshills/doctext/internal/document"
	"github.com/dshills/doctext/internal/eol"
	"github.com/dshills/doctext/internal/text"
)

// fileArg is the single positional input file. "-" or nothing reads stdin.
type fileArg struct {
	File string `positional-arg-name:"file"`
}

// StatsCmd reports the line ending statistics of a file.
type StatsCmd struct {
	Args fileArg `positional-args:"yes"`
}

type statsReport struct {
	File        string    `yaml:"file"`
	Lines       int       `yaml:"lines"`
	UTF16Length int       `yaml:"utf16Length"`
	Endings     eol.Stats `yaml:"endings"`
	Dominant    string    `yaml:"dominant"`
	Mixed       bool      `yaml:"mixed"`
}

func (c *StatsCmd) run(a *app, _ []string) error {
	content, err := a.readInput(c.Args.File)
	if err != nil {
		return err
	}

	doc := document.New(content, document.WithLogger(a.log))
	d := doc.Derived()
	return writeYAML(a.stdout, statsReport{
		File:        inputName(c.Args.File),
		Lines:       d.Index.LineCount(),
		UTF16Length: d.Index.Len(),
		Endings:     d.Stats,
		Dominant:    d.Kind.String(),
		Mixed:       d.Stats.Mixed(),
	})
}

// NormalizeCmd rewrites the line endings of a file.
type NormalizeCmd struct {
	EOL        string  `short:"e" long:"eol" description:"target line ending: lf, crlf or auto (default from config)"`
	Ensure     bool    `long:"ensure-final-newline" description:"end the output with a line terminator"`
	Strip      bool    `long:"strip-final-newline" description:"remove one trailing line terminator"`
	PrintEdits bool    `long:"print-edits" description:"print the edits instead of the normalized text"`
	Output     string  `short:"o" long:"output" description:"output file (default stdout)"`
	Args       fileArg `positional-args:"yes"`
}

func (c *NormalizeCmd) policy(a *app) (eol.Policy, error) {
	p := a.settings.Policy
	if c.EOL != "" {
		k, err := eol.ParseKind(c.EOL)
		if err != nil {
			return eol.Policy{}, err
		}
		p.Target = k
	}
	p.EnsureFinalNewline = p.EnsureFinalNewline || c.Ensure
	p.StripFinalNewline = p.StripFinalNewline || c.Strip
	return p, nil
}

func (c *NormalizeCmd) run(a *app, _ []string) error {
	p, err := c.policy(a)
	if err != nil {
		return err
	}

	streaming := p.Target != eol.Auto && !p.EnsureFinalNewline && !p.StripFinalNewline && !c.PrintEdits
	if streaming {
		return c.stream(a, p.Target)
	}

	content, err := a.readInput(c.Args.File)
	if err != nil {
		return err
	}
	doc := document.New(content, document.WithLogger(a.log))
	edits, _ := doc.ApplyPolicy(p)
	a.log.WithField("edits", len(edits)).Debug("normalized %s", inputName(c.Args.File))

	if c.PrintEdits {
		return writeYAML(a.stdout, edits)
	}
	return a.writeOutput(c.Output, doc.Text())
}

func (c *NormalizeCmd) stream(a *app, target eol.Kind) error {
	in, err := a.openInput(c.Args.File)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := a.createOutput(c.Output)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, transform.NewReader(in, eol.NewTransformer(target)))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("normalize %s: %w", inputName(c.Args.File), err)
	}
	a.log.Debug("streamed %s to %s", inputName(c.Args.File), target)
	return nil
}

// DiffCmd prints the edits that turn one file into another.
type DiffCmd struct {
	Strategy string `short:"s" long:"strategy" description:"line, smart or char (default from config)"`
	Args     struct {
		Old string `positional-arg-name:"old" required:"yes"`
		New string `positional-arg-name:"new" required:"yes"`
	} `positional-args:"yes"`
}

func (c *DiffCmd) run(a *app, _ []string) error {
	opts := a.settings.Diff
	if c.Strategy != "" {
		s, err := text.ParseDiffStrategy(c.Strategy)
		if err != nil {
			return err
		}
		opts.Strategy = s
	}

	oldText, err := a.readInput(c.Args.Old)
	if err != nil {
		return err
	}
	newText, err := a.readInput(c.Args.New)
	if err != nil {
		return err
	}

	edits := document.New(oldText, document.WithLogger(a.log)).Diff(newText, opts)
	if edits == nil {
		edits = []text.Edit{}
	}
	return writeYAML(a.stdout, edits)
}

// ApplyCmd applies a YAML or JSON edit list to a file.
type ApplyCmd struct {
	Edits  string  `long:"edits" required:"yes" description:"YAML or JSON file holding the edit list"`
	Strict bool    `long:"strict" description:"reject overlapping or touching edits"`
	Output string  `short:"o" long:"output" description:"output file (default stdout)"`
	Args   fileArg `positional-args:"yes"`
}

func (c *ApplyCmd) run(a *app, _ []string) error {
	edits, err := readEdits(c.Edits)
	if err != nil {
		return err
	}
	content, err := a.readInput(c.Args.File)
	if err != nil {
		return err
	}

	doc := document.New(content, document.WithLogger(a.log))
	if c.Strict {
		if _, err := doc.ApplyEditsStrict(edits); err != nil {
			return err
		}
	} else {
		doc.ApplyEdits(edits)
	}
	return a.writeOutput(c.Output, doc.Text())
}

func readEdits(path string) ([]text.Edit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edits: %w", err)
	}
	var edits []text.Edit
	if err := yaml.Unmarshal(data, &edits); err != nil {
		return nil, fmt.Errorf("parse edits %s: %w", path, err)
	}
	return edits, nil
}

// PositionCmd converts an offset to a position.
type PositionCmd struct {
	Offset int     `long:"offset" required:"yes" description:"UTF-16 offset"`
	Args   fileArg `positional-args:"yes"`
}

func (c *PositionCmd) run(a *app, _ []string) error {
	snap, err := a.snapshot(c.Args.File)
	if err != nil {
		return err
	}
	pos := snap.PositionAt(c.Offset)
	_, err = fmt.Fprintf(a.stdout, "%d:%d\n", pos.Line, pos.Character)
	return err
}

// PositionFlags select a position in the input.
type PositionFlags struct {
	Line      int `short:"l" long:"line" required:"yes" description:"zero-based line"`
	Character int `short:"C" long:"character" description:"zero-based UTF-16 column"`
}

func (p PositionFlags) position() text.Position {
	return text.NewPosition(p.Line, p.Character)
}

// OffsetCmd converts a position to an offset.
type OffsetCmd struct {
	PositionFlags
	Args fileArg `positional-args:"yes"`
}

func (c *OffsetCmd) run(a *app, _ []string) error {
	snap, err := a.snapshot(c.Args.File)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, snap.OffsetAt(c.position()))
	return err
}

// WordCmd prints the word at a position.
type WordCmd struct {
	PositionFlags
	Args fileArg `positional-args:"yes"`
}

func (c *WordCmd) run(a *app, _ []string) error {
	snap, err := a.snapshot(c.Args.File)
	if err != nil {
		return err
	}
	w, ok := snap.WordAt(c.position(), a.settings.WordPattern)
	if !ok {
		return fmt.Errorf("no word at %s", c.position())
	}
	return writeYAML(a.stdout, w)
}

// BracketCmd prints the range between a bracket and its partner.
type BracketCmd struct {
	PositionFlags
	Args fileArg `positional-args:"yes"`
}

func (c *BracketCmd) run(a *app, _ []string) error {
	snap, err := a.snapshot(c.Args.File)
	if err != nil {
		return err
	}
	r, ok := snap.MatchBracket(c.position())
	if !ok {
		return fmt.Errorf("no matching bracket at %s", c.position())
	}
	return writeYAML(a.stdout, r)
}

// IndentCmd rewrites leading indentation.
type IndentCmd struct {
	TabSize int     `short:"t" long:"tab-size" description:"columns per tab (default from config)"`
	Tabs    bool    `long:"tabs" description:"indent with tabs"`
	Spaces  bool    `long:"spaces" description:"indent with spaces"`
	Output  string  `short:"o" long:"output" description:"output file (default stdout)"`
	Args    fileArg `positional-args:"yes"`
}

func (c *IndentCmd) run(a *app, _ []string) error {
	if c.Tabs && c.Spaces {
		return errors.New("--tabs and --spaces are mutually exclusive")
	}
	tabSize := a.settings.TabSize
	if c.TabSize > 0 {
		tabSize = c.TabSize
	}
	insertSpaces := (a.settings.InsertSpaces || c.Spaces) && !c.Tabs

	content, err := a.readInput(c.Args.File)
	if err != nil {
		return err
	}
	return a.writeOutput(c.Output, text.NormalizeIndentation(content, insertSpaces, tabSize))
}

// RemapCmd maps an offset between a CRLF document and its LF view.
type RemapCmd struct {
	Offset int     `long:"offset" required:"yes" description:"UTF-16 offset"`
	To     string  `long:"to" default:"lf" choice:"lf" choice:"original" description:"direction of the mapping"`
	Args   fileArg `positional-args:"yes"`
}

func (c *RemapCmd) run(a *app, _ []string) error {
	content, err := a.readInput(c.Args.File)
	if err != nil {
		return err
	}

	marks := document.New(content, document.WithLogger(a.log)).Derived().Marks
	var off int
	if c.To == "original" {
		off = eol.RemapLFOffsetToCRLF(c.Offset, marks)
	} else {
		off = eol.RemapCRLFOffsetToLF(c.Offset, marks)
	}
	_, err = fmt.Fprintln(a.stdout, off)
	return err
}

func (a *app) snapshot(path string) (*text.Snapshot, error) {
	content, err := a.readInput(path)
	if err != nil {
		return nil, err
	}
	return document.New(content, document.WithLogger(a.log)).Snapshot().View(), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// createOutput creates path, or wraps stdout for "" and "-".
func (a *app) createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{a.stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

func (a *app) writeOutput(path, content string) error {
	out, err := a.createOutput(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, content)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
