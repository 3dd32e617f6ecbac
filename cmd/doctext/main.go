// Package main is the entry point for the doctext command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "doctext %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if parser.Active == nil {
		if len(rest) > 0 {
			fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
		}
		parser.WriteHelp(stderr)
		return 2
	}

	cmd, ok := opts.command(parser.Active.Name)
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n", parser.Active.Name)
		return 2
	}

	a, err := newApp(opts, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := cmd.run(a, rest); err != nil {
		a.log.WithComponent(parser.Active.Name).WithError(err).Debug("command failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
