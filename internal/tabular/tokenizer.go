package tabular

import (
	"strings"
	"unicode"
)

// SplitTokens splits a line on any run of commas, semicolons, pipes, tabs
// or whitespace. Empty tokens are discarded, so pipe-framed rows like
// "| 12 | 3.4 |" tokenize the same as "12 3.4".
func SplitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', ';', '|', '\t':
			return true
		}
		return unicode.IsSpace(r)
	})
}

// IsNumericToken reports whether a token parses as a float literal,
// including the Fortran D-exponent form ParseValue accepts. Classification
// and parsing must agree or D-exponent lines never reach the row parser.
func IsNumericToken(tok string) bool {
	_, ok := ParseValue(tok)
	return ok
}

// IsNumericLine reports whether at least threshold of the line's tokens are
// numeric. A data line need not be 100% numeric; stray artifacts like a
// trailing comment marker don't disqualify it.
func IsNumericLine(line string, threshold float64) bool {
	toks := SplitTokens(line)
	if len(toks) == 0 {
		return false
	}
	numeric := 0
	for _, tok := range toks {
		if IsNumericToken(tok) {
			numeric++
		}
	}
	return float64(numeric)/float64(len(toks)) >= threshold
}

// IsAllNumericLine is the strict variant: every token must be numeric.
// It distinguishes "definitely pure data" from "numeric-ish", which matters
// when deciding whether a line could instead be a header.
func IsAllNumericLine(line string) bool {
	toks := SplitTokens(line)
	if len(toks) == 0 {
		return false
	}
	for _, tok := range toks {
		if !IsNumericToken(tok) {
			return false
		}
	}
	return true
}
