// Package config loads settings for the doctext tool.
//
// Settings come from three layers, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. DOCTEXT_* environment variables
//
// Command line flags are applied on top by the caller. Enum-like settings
// such as the line ending style are plain strings in the file and are parsed
// once by Resolve into typed values.
//
// # Example
//
//	# doctext.toml
//	eol = "crlf"
//	ensure_final_newline = true
//
//	[diff]
//	strategy = "char"
//	timeout_ms = 500
//
//	[log]
//	level = "debug"
package config
