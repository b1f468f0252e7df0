// Package bluez reads, merges and rewrites BlueZ per-device "info" files.
//
// The info file is a GLib key file: [Section] headers followed by Key=Value
// lines. Record keeps every line as found so that serialising an unmodified
// record reproduces the input byte for byte; Set rewrites only the value
// part of an existing line.
package bluez

import (
	"errors"
	"fmt"
	"strings"
)

// Section names used in BlueZ info files.
const (
	SectionGeneral               = "General"
	SectionDeviceID              = "DeviceID"
	SectionConnectionParameters  = "ConnectionParameters"
	SectionLinkKey               = "LinkKey"
	SectionIdentityResolvingKey  = "IdentityResolvingKey"
	SectionSlaveLongTermKey      = "SlaveLongTermKey"
	SectionPeripheralLongTermKey = "PeripheralLongTermKey"
	SectionLocalSignatureKey     = "LocalSignatureKey"
	SectionLongTermKey           = "LongTermKey"
)

// Key names inside key-bearing sections.
const (
	KeyKey           = "Key"
	KeyType          = "Type"
	KeyPINLength     = "PINLength"
	KeyAuthenticated = "Authenticated"
	KeyEncSize       = "EncSize"
	KeyEDiv          = "EDiv"
	KeyRand          = "Rand"
)

const (
	commentPrefix = "#"
	sectionOpen   = "["
	sectionClose  = "]"
	assignment    = "="
)

// ErrSyntax indicates a line that is not a section header, comment, blank
// line or Key=Value pair.
var ErrSyntax = errors.New("bluez: malformed info file")

type lineKind uint8

const (
	lineOther lineKind = iota // blank or comment
	lineSection
	lineEntry
)

type line struct {
	kind lineKind
	text string // without the line ending
	cr   bool   // line ended in \r\n

	section string // owning section (header name for lineSection)
	key     string // lineEntry only
	eq      int    // index of '=' in text, lineEntry only
}

// Record is a parsed info file.
type Record struct {
	lines      []line
	noFinalEOL bool
}

// Parse reads an info file. Unknown sections and keys are kept.
func Parse(text string) (*Record, error) {
	rec := &Record{}
	if text == "" {
		return rec, nil
	}

	raw := strings.Split(text, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	} else {
		rec.noFinalEOL = true
	}

	var current string
	for i, s := range raw {
		l := line{text: s}
		if strings.HasSuffix(s, "\r") {
			l.text, l.cr = s[:len(s)-1], true
		}
		trim := strings.TrimSpace(l.text)

		switch {
		case trim == "" || strings.HasPrefix(trim, commentPrefix):
			l.kind = lineOther
		case strings.HasPrefix(trim, sectionOpen):
			if !strings.HasSuffix(trim, sectionClose) {
				return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, i+1, l.text)
			}
			current = trim[1 : len(trim)-1]
			l.kind = lineSection
		default:
			eq := strings.Index(l.text, assignment)
			if eq < 0 || current == "" {
				return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, i+1, l.text)
			}
			l.kind = lineEntry
			l.key = strings.TrimSpace(l.text[:eq])
			l.eq = eq
		}
		l.section = current
		rec.lines = append(rec.lines, l)
	}
	return rec, nil
}

// String serialises the record.
func (r *Record) String() string {
	var sb strings.Builder
	for i, l := range r.lines {
		sb.WriteString(l.text)
		if l.cr {
			sb.WriteString("\r")
		}
		if i < len(r.lines)-1 || !r.noFinalEOL {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Clone returns an independent copy.
func (r *Record) Clone() *Record {
	return &Record{
		lines:      append([]line(nil), r.lines...),
		noFinalEOL: r.noFinalEOL,
	}
}

// Sections returns the section names in file order.
func (r *Record) Sections() []string {
	var names []string
	for _, l := range r.lines {
		if l.kind == lineSection {
			names = append(names, l.section)
		}
	}
	return names
}

// HasSection reports whether the record has the named section.
func (r *Record) HasSection(section string) bool {
	for _, l := range r.lines {
		if l.kind == lineSection && l.section == section {
			return true
		}
	}
	return false
}

// Get returns the value of key in section.
func (r *Record) Get(section, key string) (string, bool) {
	if i := r.find(section, key); i >= 0 {
		l := r.lines[i]
		return strings.TrimSpace(l.text[l.eq+1:]), true
	}
	return "", false
}

// Set replaces the value of an existing key and returns the previous value.
// Missing sections and keys are never created; ok is false in that case.
func (r *Record) Set(section, key, value string) (old string, ok bool) {
	i := r.find(section, key)
	if i < 0 {
		return "", false
	}
	l := &r.lines[i]
	raw := l.text[l.eq+1:]
	old = strings.TrimSpace(raw)
	lead := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
	l.text = l.text[:l.eq+1] + lead + value
	return old, true
}

// find returns the index of the last line for key in section, matching
// GLib's last-wins lookup, or -1.
func (r *Record) find(section, key string) int {
	for i := len(r.lines) - 1; i >= 0; i-- {
		l := r.lines[i]
		if l.kind == lineEntry && l.section == section && l.key == key {
			return i
		}
	}
	return -1
}
