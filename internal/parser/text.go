package parser

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotUTF8 is returned for caption files that are not valid UTF-8 text.
var ErrNotUTF8 = errors.New("not valid utf-8")

// ReadOptionalText reads a description or caption file and returns its content
// with surrounding whitespace removed. A missing file is not an error and
// yields "". Files that exist but cannot be read are reported.
func ReadOptionalText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &fs.PathError{Op: "decode", Path: path, Err: ErrNotUTF8}
	}
	// strip a BOM left by some editors
	return strings.TrimSpace(strings.TrimPrefix(string(b), "\ufeff")), nil
}
