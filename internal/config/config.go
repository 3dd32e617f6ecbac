package config

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/dshills/doctext/internal/eol"
	"github.com/dshills/doctext/internal/logging"
	"github.com/dshills/doctext/internal/text"
)

// Config is the file representation of the settings.
type Config struct {
	// EOL is the output line ending: "lf", "crlf" or "auto".
	EOL                string `toml:"eol" yaml:"eol"`
	EnsureFinalNewline bool   `toml:"ensure_final_newline" yaml:"ensure_final_newline"`
	StripFinalNewline  bool   `toml:"strip_final_newline" yaml:"strip_final_newline"`

	// WordPattern overrides the word regexp used for word lookups.
	WordPattern string `toml:"word_pattern" yaml:"word_pattern"`

	Indent IndentConfig `toml:"indent" yaml:"indent"`
	Diff   DiffConfig   `toml:"diff" yaml:"diff"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// IndentConfig controls indentation rewriting.
type IndentConfig struct {
	TabSize      int  `toml:"tab_size" yaml:"tab_size"`
	InsertSpaces bool `toml:"insert_spaces" yaml:"insert_spaces"`
}

// DiffConfig controls edit computation.
type DiffConfig struct {
	Strategy        string `toml:"strategy" yaml:"strategy"`
	TimeoutMS       int    `toml:"timeout_ms" yaml:"timeout_ms"`
	SemanticCleanup bool   `toml:"semantic_cleanup" yaml:"semantic_cleanup"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	JSON  bool   `toml:"json" yaml:"json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		EOL: eol.Auto.String(),
		Indent: IndentConfig{
			TabSize:      4,
			InsertSpaces: true,
		},
		Diff: DiffConfig{
			Strategy:        text.DiffSmart.String(),
			TimeoutMS:       int(text.DefaultDiffTimeout / time.Millisecond),
			SemanticCleanup: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Settings are the typed, validated form of a Config.
type Settings struct {
	Policy       eol.Policy
	WordPattern  *regexp.Regexp
	TabSize      int
	InsertSpaces bool
	Diff         text.DiffOptions
	LogLevel     logging.Level
	LogJSON      bool
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Resolve validates c and parses it into Settings. All invalid settings are
// reported together; each is a *ValidationError.
func (c Config) Resolve() (*Settings, error) {
	var errs []error
	invalid := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	s := &Settings{
		TabSize:      c.Indent.TabSize,
		InsertSpaces: c.Indent.InsertSpaces,
		LogJSON:      c.Log.JSON,
	}

	kind, err := eol.ParseKind(c.EOL)
	if err != nil {
		invalid("eol", "must be lf, crlf or auto", c.EOL)
	}
	s.Policy = eol.Policy{
		Target:             kind,
		EnsureFinalNewline: c.EnsureFinalNewline,
		StripFinalNewline:  c.StripFinalNewline,
	}

	if c.WordPattern != "" {
		re, err := regexp.Compile(c.WordPattern)
		if err != nil {
			invalid("word_pattern", err.Error(), c.WordPattern)
		}
		s.WordPattern = re
	}

	if c.Indent.TabSize < 1 {
		invalid("indent.tab_size", "must be at least 1", c.Indent.TabSize)
	}

	strategy, err := text.ParseDiffStrategy(c.Diff.Strategy)
	if err != nil {
		invalid("diff.strategy", "must be line, smart or char", c.Diff.Strategy)
	}
	if c.Diff.TimeoutMS < 0 {
		invalid("diff.timeout_ms", "must not be negative", c.Diff.TimeoutMS)
	}
	s.Diff = text.DiffOptions{
		Strategy:        strategy,
		Timeout:         time.Duration(c.Diff.TimeoutMS) * time.Millisecond,
		SemanticCleanup: c.Diff.SemanticCleanup,
	}

	if c.Log.Level != "" && !logLevels[strings.ToLower(c.Log.Level)] {
		invalid("log.level", "must be debug, info, warn or error", c.Log.Level)
	}
	s.LogLevel = logging.ParseLevel(c.Log.Level)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Validate reports whether c resolves cleanly.
func (c Config) Validate() error {
	_, err := c.Resolve()
	return err
}
