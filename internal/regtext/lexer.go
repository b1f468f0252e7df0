package regtext

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts raw export bytes into text.
//
// regedit writes UTF-16LE with a byte order mark. reged (chntpw) writes in
// the local 8-bit encoding, which on the systems it ships for is
// Windows-1252, so input that is not valid UTF-8 is decoded as such.
func Decode(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("regtext: decode utf-16: %w", err)
		}
		return string(out), nil
	case bytes.HasPrefix(data, UTF8BOM):
		return string(data[len(UTF8BOM):]), nil
	case utf8.Valid(data):
		return string(data), nil
	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("regtext: decode windows-1252: %w", err)
		}
		return string(out), nil
	}
}
