package tabular

import (
	"strings"
	"unicode"
)

// commentPrefixes mark declaration/comment lines. "Variables =" is the
// Tecplot-style declaration handled separately by the marker rule.
var commentPrefixes = []string{"#", "%", "//"}

// headerScan carries detection state across the line scan.
type headerScan struct {
	opt       Options
	lines     []string
	names     []string
	dataStart int // -1 until established
}

// headerRule inspects one line. handled stops the remaining rules for this
// line; done terminates the whole scan.
type headerRule func(s *headerScan, idx int, line string) (handled, done bool)

// The rules form an ordered arbitration contract: an explicit marker beats
// the data-line commit, which beats the speculative header-before-data
// guess. Adding a heuristic means appending a rule, not nesting conditions.
var headerRules = []headerRule{
	markerRule,
	dataLineRule,
	speculativeRule,
}

// DetectHeader scans lines top to bottom and returns the detected column
// names (possibly nil) and the index of the first data line. Blank lines
// are skipped. If no data line is ever found, dataStart is len(lines).
func DetectHeader(lines []string, opt Options) ([]string, int) {
	s := &headerScan{opt: opt.sane(), lines: lines, dataStart: -1}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, rule := range headerRules {
			handled, done := rule(s, i, line)
			if done {
				return s.names, s.dataStart
			}
			if handled {
				break
			}
		}
	}
	if s.dataStart < 0 {
		s.dataStart = len(lines)
	}
	return s.names, s.dataStart
}

// markerRule matches explicit header declarations: "Variables = ..." (any
// case) and comment-prefixed lines. Every match advances the data-start
// candidate past the line; a later marker overrides an earlier one.
func markerRule(s *headerScan, idx int, line string) (bool, bool) {
	rest, ok := markerRemainder(line)
	if !ok {
		return false, false
	}
	if names := splitHeaderFields(rest); len(names) > 0 {
		s.names = names
	}
	s.dataStart = idx + 1
	return true, false
}

// dataLineRule commits the scan once a numeric line is reached. A loosely
// numeric line (e.g. one with an index column) may still be read as a
// header; a strictly numeric one triggers the lookback for a header line
// just above and terminates detection.
func dataLineRule(s *headerScan, idx int, line string) (bool, bool) {
	if !IsNumericLine(line, s.opt.NumericLineThreshold) {
		return false, false
	}
	if s.names == nil && !IsAllNumericLine(line) {
		if names := extractNames(SplitTokens(line)); names != nil {
			s.names = names
			s.dataStart = idx + 1
			return true, false
		}
	}
	if s.names == nil {
		for back := idx - 1; back >= 0 && back >= idx-s.opt.HeaderLookback; back-- {
			prev := strings.TrimSpace(s.lines[back])
			if prev == "" {
				continue
			}
			if !looksHeaderLike(prev, s.opt.HeaderAlphaThreshold) {
				continue
			}
			s.names = extractNames(SplitTokens(prev))
			break
		}
	}
	if s.dataStart < 0 {
		s.dataStart = idx
	}
	return true, true
}

// speculativeRule guesses that a header-like line immediately followed by a
// numeric line is the header. The scan keeps going so a later explicit
// marker can still override. Known risk: a data row whose tokens happen to
// look alphabetic can be consumed as a header.
func speculativeRule(s *headerScan, idx int, line string) (bool, bool) {
	if s.names != nil {
		return false, false
	}
	if !looksHeaderLike(line, s.opt.HeaderAlphaThreshold) {
		return false, false
	}
	if idx+1 >= len(s.lines) || !IsNumericLine(s.lines[idx+1], s.opt.NumericLineThreshold) {
		return false, false
	}
	names := extractNames(SplitTokens(line))
	if names == nil {
		return false, false
	}
	s.names = names
	s.dataStart = idx + 1
	return true, false
}

// markerRemainder strips a recognized header marker and returns the rest of
// the line.
func markerRemainder(line string) (string, bool) {
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "variables") {
		rest := strings.TrimSpace(line[len("variables"):])
		if strings.HasPrefix(rest, "=") {
			return strings.TrimSpace(rest[1:]), true
		}
	}
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

// splitHeaderFields splits a declaration remainder into field names, trying
// delimiters in priority order; the first that yields more than one
// non-empty field wins, with whitespace splitting as the fallback. Purely
// numeric tokens are discarded, same as extractNames.
func splitHeaderFields(rest string) []string {
	if rest == "" {
		return nil
	}
	for _, delim := range []string{",", "\t", " ", ";", "|"} {
		fields := headerFields(strings.Split(rest, delim))
		if len(fields) > 1 {
			return fields
		}
	}
	return headerFields(strings.Fields(rest))
}

func headerFields(raw []string) []string {
	var fields []string
	for _, f := range raw {
		if f = trimNameDecorations(f); f != "" && !IsNumericToken(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// extractNames turns candidate tokens into header names: decorations are
// stripped and purely numeric tokens discarded. Fewer than 2 survivors
// means the line is data-like, not a header.
func extractNames(tokens []string) []string {
	var names []string
	for _, tok := range tokens {
		tok = trimNameDecorations(tok)
		if tok == "" || IsNumericToken(tok) {
			continue
		}
		names = append(names, tok)
	}
	if len(names) < 2 {
		return nil
	}
	return names
}

// trimNameDecorations removes surrounding quotes and brackets from a token.
func trimNameDecorations(tok string) string {
	return strings.TrimFunc(strings.TrimSpace(tok), func(r rune) bool {
		switch r {
		case '"', '\'', '`', '(', ')', '[', ']', '{', '}':
			return true
		}
		return unicode.IsSpace(r)
	})
}

// looksHeaderLike reports whether a line reads as a header: not a comment
// line, with at least alphaThreshold of its tokens containing a letter.
func looksHeaderLike(line string, alphaThreshold float64) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return false
		}
	}
	toks := SplitTokens(line)
	if len(toks) == 0 {
		return false
	}
	alpha := 0
	for _, tok := range toks {
		if strings.IndexFunc(tok, unicode.IsLetter) >= 0 {
			alpha++
		}
	}
	return float64(alpha)/float64(len(toks)) >= alphaThreshold
}
