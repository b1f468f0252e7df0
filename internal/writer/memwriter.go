package writer

import "sort"

// MemWriter captures file images in memory instead of touching disk.
// Tests use it to inspect what a Store would write.
type MemWriter struct {
	Files map[string][]byte
}

// WriteFile stores a copy of buf under path.
func (w *MemWriter) WriteFile(path string, buf []byte) error {
	if w.Files == nil {
		w.Files = make(map[string][]byte)
	}
	w.Files[path] = append([]byte(nil), buf...)
	return nil
}

// Paths returns the captured paths in lexical order.
func (w *MemWriter) Paths() []string {
	paths := make([]string, 0, len(w.Files))
	for p := range w.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
