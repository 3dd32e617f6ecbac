package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "DOCTEXT_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetters maps each variable, without the prefix, to the setting it
// overrides.
var envSetters = map[string]func(c *Config, v string) error{
	"EOL":                  func(c *Config, v string) error { c.EOL = v; return nil },
	"WORD_PATTERN":         func(c *Config, v string) error { c.WordPattern = v; return nil },
	"DIFF_STRATEGY":        func(c *Config, v string) error { c.Diff.Strategy = v; return nil },
	"LOG_LEVEL":            func(c *Config, v string) error { c.Log.Level = v; return nil },
	"ENSURE_FINAL_NEWLINE": boolSetter(func(c *Config) *bool { return &c.EnsureFinalNewline }),
	"STRIP_FINAL_NEWLINE":  boolSetter(func(c *Config) *bool { return &c.StripFinalNewline }),
	"INSERT_SPACES":        boolSetter(func(c *Config) *bool { return &c.Indent.InsertSpaces }),
	"LOG_JSON":             boolSetter(func(c *Config) *bool { return &c.Log.JSON }),
	"TAB_SIZE":             intSetter(func(c *Config) *int { return &c.Indent.TabSize }),
	"DIFF_TIMEOUT_MS":      intSetter(func(c *Config) *int { return &c.Diff.TimeoutMS }),
}

// ApplyEnv overrides settings from DOCTEXT_* variables. Empty values are
// treated as set.
func ApplyEnv(c *Config, lookup LookupFunc) error {
	for name, set := range envSetters {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := set(c, v); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
	}
	return nil
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
