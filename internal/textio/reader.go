// Package textio reads text files of unknown encoding. Decoding is
// attempted as UTF-8 first, then through a sequence of common single-byte
// codepages, and finally permissively with undecodable bytes discarded, so
// a file is never rejected for its encoding alone.
package textio

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// fallbacks are tried in order when the raw bytes are not valid UTF-8.
var fallbacks = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// ReadLines reads the file at path and returns its decoded lines. Line
// endings (LF or CRLF) are stripped.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text := Decode(data)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	// A trailing newline produces one empty phantom line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// Decode converts raw bytes to a UTF-8 string using the fallback chain.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	for _, cm := range fallbacks {
		out, _, err := transform.Bytes(cm.NewDecoder(), data)
		if err == nil && utf8.Valid(out) {
			return string(out)
		}
	}
	return strings.ToValidUTF8(string(data), "")
}
