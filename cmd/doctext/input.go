package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// openInput opens path, or returns stdin for "" and "-". A leading byte
// order mark selects UTF-8 or UTF-16 decoding; without one the input is
// read as UTF-8. The mark itself is dropped.
func (a *app) openInput(path string) (io.ReadCloser, error) {
	var r io.Reader = a.stdin
	closer := io.NopCloser(nil)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		r, closer = f, f
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return struct {
		io.Reader
		io.Closer
	}{transform.NewReader(r, dec), closer}, nil
}

// readInput reads the whole of path as text.
func (a *app) readInput(path string) (string, error) {
	rc, err := a.openInput(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", inputName(path), err)
	}
	return string(data), nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
