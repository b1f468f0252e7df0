package device

import (
	"strings"

	"github.com/joshuapare/btdualboot/internal/codec"
	"github.com/joshuapare/btdualboot/internal/regtext"
)

// Entry is one registry key resolved to its schema shape. Classification
// happens once; Assemble only reads the tag.
type Entry struct {
	Shape Shape
	Path  string

	// AdapterKey is the compact-hex key name of the owning adapter.
	AdapterKey string
	// RecordKey is the last path segment of an extended entry.
	RecordKey string

	Values regtext.Values
}

// Classify selects the keys of exp that live below the pairing-keys branch
// and tags each with its shape:
//
//   - one level below the branch, named by an address: ShapeLegacy
//   - two or more levels below: ShapeExtended
//
// The branch key itself and keys elsewhere in the export are dropped, as
// are legacy-depth keys whose name is not an address. Entries are returned
// in path order.
func Classify(exp regtext.Export) []Entry {
	var entries []Entry
	for _, path := range exp.Paths() {
		segs := regtext.SplitPath(path)
		base := branchEnd(segs)
		if base < 0 {
			continue
		}

		switch depth := len(segs) - base; {
		case depth == 1:
			last := segs[len(segs)-1]
			if !codec.IsCompactAddress(last) {
				continue
			}
			entries = append(entries, Entry{
				Shape:      ShapeLegacy,
				Path:       path,
				AdapterKey: last,
				Values:     exp[path],
			})
		case depth > 1:
			entries = append(entries, Entry{
				Shape:      ShapeExtended,
				Path:       path,
				AdapterKey: segs[len(segs)-2],
				RecordKey:  segs[len(segs)-1],
				Values:     exp[path],
			})
		}
	}
	return entries
}

// branchEnd returns the index just past the keysBranch run in segs, or -1
// when segs is not below the branch.
func branchEnd(segs []string) int {
	for i := 0; i+len(keysBranch) <= len(segs); i++ {
		match := true
		for j, want := range keysBranch {
			if !strings.EqualFold(segs[i+j], want) {
				match = false
				break
			}
		}
		if match {
			return i + len(keysBranch)
		}
	}
	return -1
}
