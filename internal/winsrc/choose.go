package winsrc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Choose picks one of candidates. A single candidate is returned as is;
// with several, the user is asked on in/out until a valid number is given.
func Choose(candidates []string, in io.Reader, out io.Writer) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoWindows
	case 1:
		return candidates[0], nil
	}

	fmt.Fprintln(out, "Multiple Windows partitions detected. Which one to use?")
	for i, c := range candidates {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Select [1-%d]: ", len(candidates))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("winsrc: read choice: %w", err)
			}
			return "", fmt.Errorf("winsrc: no partition selected")
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1], nil
		}
		fmt.Fprintln(out, "Invalid choice.")
	}
}
