package main

import (
	"io"
	"os"

	"github.com/dshills/doctext/internal/config"
	"github.com/dshills/doctext/internal/logging"
)

// Options are the root command line options.
type Options struct {
	Config   string `short:"c" long:"config" description:"TOML or YAML configuration file"`
	LogLevel string `long:"log-level" description:"override the log level (debug, info, warn, error)"`
	Version  bool   `short:"v" long:"version" description:"print version information and exit"`

	Stats     StatsCmd     `command:"stats" description:"report line endings and line count"`
	Normalize NormalizeCmd `command:"normalize" description:"rewrite line endings"`
	Diff      DiffCmd      `command:"diff" description:"print the edits turning one file into another"`
	Apply     ApplyCmd     `command:"apply" description:"apply an edit list to a file"`
	Position  PositionCmd  `command:"position" description:"convert a UTF-16 offset to line and character"`
	Offset    OffsetCmd    `command:"offset" description:"convert line and character to a UTF-16 offset"`
	Word      WordCmd      `command:"word" description:"print the word at a position"`
	Bracket   BracketCmd   `command:"bracket" description:"find the bracket matching the one at a position"`
	Indent    IndentCmd    `command:"indent" description:"rewrite leading indentation"`
	Remap     RemapCmd     `command:"remap" description:"map an offset between CRLF text and its LF view"`
}

type command interface {
	run(a *app, args []string) error
}

func (o *Options) command(name string) (command, bool) {
	cmds := map[string]command{
		"stats":     &o.Stats,
		"normalize": &o.Normalize,
		"diff":      &o.Diff,
		"apply":     &o.Apply,
		"position":  &o.Position,
		"offset":    &o.Offset,
		"word":      &o.Word,
		"bracket":   &o.Bracket,
		"indent":    &o.Indent,
		"remap":     &o.Remap,
	}
	cmd, ok := cmds[name]
	return cmd, ok
}

// app is the state shared by every command.
type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	settings *config.Settings
	log      *logging.Logger
}

func newApp(opts *Options, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	settings, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{
		Level:  settings.LogLevel,
		Output: stderr,
		Prefix: "doctext",
		JSON:   settings.LogJSON,
	})
	log.Debug("configuration loaded from %q", opts.Config)

	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		settings: settings,
		log:      log,
	}, nil
}

// loadConfig reads path, or the defaults and environment when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
