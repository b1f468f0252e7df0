// Package regtext parses registry exports in the .reg text layout written by
// regedit and by chntpw's reged into a map of key path to raw values.
package regtext

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
)

// Values maps an unquoted value name to its raw, still encoded data
// ("hex:c2,90,...", "dword:00000000", or an unquoted string).
type Values map[string]string

// Export maps a full key path to the values stored directly under it.
type Export map[string]Values

// Paths returns the key paths in lexical order.
func (e Export) Paths() []string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SyntaxError reports a line that is neither a key header nor a value.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regtext: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads export text into an Export.
//
// Key headers may be bracketed ([HKEY_LOCAL_MACHINE\...]) or quoted. Value
// lines are "Name"=data, Name=data or @=data. Blank lines, comments, a leading regedit
// header, CRLF endings and backslash continued hex data are accepted.
// Anything else is a *SyntaxError, as is a value that appears before the
// first key.
func Parse(text string) (Export, error) {
	exp := make(Export)

	scanner := bufio.NewScanner(strings.NewReader(text))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var (
		current Values
		lineNo  int
		pending strings.Builder
		startNo int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))

		// Join backslash continued lines before interpreting them.
		if pending.Len() > 0 || strings.HasSuffix(line, LineContinuation) {
			if pending.Len() == 0 {
				startNo = lineNo
			}
			if strings.HasSuffix(line, LineContinuation) {
				pending.WriteString(strings.TrimSuffix(line, LineContinuation))
				continue
			}
			pending.WriteString(line)
			line = pending.String()
			pending.Reset()
		} else {
			startNo = lineNo
		}

		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if strings.HasPrefix(line, RegFileHeaderPrefix) || line == Regedit4Header {
			continue
		}

		if path, ok := parseHeader(line); ok {
			if _, seen := exp[path]; !seen {
				exp[path] = make(Values)
			}
			current = exp[path]
			continue
		}

		name, data, ok := parseValueLine(line)
		if !ok {
			return nil, &SyntaxError{Line: startNo, Text: line, Msg: "expected key header or value"}
		}
		if current == nil {
			return nil, &SyntaxError{Line: startNo, Text: line, Msg: "value outside of any key"}
		}
		current[name] = data
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("regtext: scanning export: %w", err)
	}
	if pending.Len() > 0 {
		return nil, &SyntaxError{Line: startNo, Text: pending.String(), Msg: "unterminated continuation"}
	}

	return exp, nil
}

// parseHeader recognises [path] and "path" key headers.
func parseHeader(line string) (string, bool) {
	if strings.HasPrefix(line, KeyOpenBracket) {
		if !strings.HasSuffix(line, KeyCloseBracket) {
			return "", false
		}
		return strings.TrimSuffix(strings.TrimPrefix(line, KeyOpenBracket), KeyCloseBracket), true
	}
	if strings.HasPrefix(line, Quote) && findClosingQuote(line) == len(line)-1 && len(line) > 1 {
		// A quoted line with nothing after the closing quote is a header;
		// values always carry "=".
		return line[1 : len(line)-1], true
	}
	return "", false
}

// parseValueLine splits "Name"=data, Name=data and @=data lines. A bare
// name runs up to the first "=".
func parseValueLine(line string) (name, data string, ok bool) {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return "", unquote(line[len(DefaultValuePrefix):]), true
	}
	if !strings.HasPrefix(line, Quote) {
		bare, rest, found := strings.Cut(line, ValueAssignment)
		bare = strings.TrimSpace(bare)
		if !found || bare == "" {
			return "", "", false
		}
		return bare, unquote(strings.TrimSpace(rest)), true
	}
	end := findClosingQuote(line)
	if end < 0 {
		return "", "", false
	}
	rest := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(rest, ValueAssignment) {
		return "", "", false
	}
	return unescapeRegString(line[1:end]), unquote(rest[len(ValueAssignment):]), true
}
