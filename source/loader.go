// Package source reads the text that gets searched.
package source

import (
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadFile loads the whole file as text.
// Errors from the filesystem are returned as they are.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return Read(f)
}

// Read loads everything from r and checks that it is valid UTF-8.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", ErrInvalidUTF8
		}
		return "", err
	}
	return string(data), nil
}
