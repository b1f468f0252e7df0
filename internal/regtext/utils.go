package regtext

import (
	"strings"
)

// unescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \"
func unescapeRegString(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	s = strings.ReplaceAll(s, EscapedBackslash, Backslash)
	s = strings.ReplaceAll(s, EscapedQuote, Quote)
	return s
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found.
// The search starts at position 1 (assuming the opening quote is at position 0).
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		numBackslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			numBackslashes++
		}
		if numBackslashes%2 == 1 {
			continue
		}
		return i
	}
	return -1
}

// unquote strips one pair of surrounding double quotes and unescapes the
// content. Values that are not quoted are returned trimmed but otherwise
// untouched, so "hex:..." and "dword:..." payloads pass through verbatim.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, Quote) && findClosingQuote(s) == len(s)-1 {
		return unescapeRegString(s[1 : len(s)-1])
	}
	return s
}

// SplitPath splits a key path into its segments. Empty segments produced by
// a leading, trailing or doubled separator are dropped.
func SplitPath(path string) []string {
	raw := strings.Split(path, PathSeparator)
	segs := raw[:0]
	for _, s := range raw {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
