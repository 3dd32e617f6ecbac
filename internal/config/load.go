package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format uint8

const (
	// FormatTOML is parsed with go-toml.
	FormatTOML Format = iota
	// FormatYAML is parsed with yaml.v3.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads the file at path over the defaults, applies the environment,
// and validates the result.
func Load(path string) (Config, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS is Load against a file system.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return Config{}, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", name, err)
	}

	cfg, err := decode(name, bytes.NewReader(data), format)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a configuration over the defaults. It neither
// reads the environment nor validates.
func LoadFromReader(r io.Reader, format Format) (Config, error) {
	return decode("<reader>", r, format)
}

func decode(source string, r io.Reader, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, tomlParseError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, &ParseError{Path: source, Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return cfg, nil
}

func tomlParseError(source string, err error) error {
	pe := &ParseError{Path: source, Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}
