package bluez

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joshuapare/btdualboot/internal/device"
	"github.com/joshuapare/btdualboot/internal/writer"
)

const (
	// DefaultRoot is where BlueZ keeps per-adapter storage.
	DefaultRoot = "/var/lib/bluetooth"

	// InfoFile is the per-device record file name.
	InfoFile = "info"

	// BackupSuffix is appended to InfoFile for the pre-merge copy.
	BackupSuffix = ".bak"
)

// ErrNotPaired indicates Linux has no record for the device on that adapter.
var ErrNotPaired = errors.New("bluez: device not paired on this adapter")

// Store locates and rewrites info files below Root.
type Store struct {
	Root   string
	Backup bool          // keep the previous info as info.bak
	Writer writer.Writer // defaults to an atomic FileWriter
}

// NewStore returns a Store writing to disk under root.
func NewStore(root string, backup bool) *Store {
	return &Store{Root: root, Backup: backup, Writer: &writer.FileWriter{}}
}

// Dir is the device directory: Root/<adapter>/<device>.
func (s *Store) Dir(adapter, dev device.Address) string {
	return filepath.Join(s.Root, adapter.String(), dev.String())
}

// Path is the device's info file.
func (s *Store) Path(adapter, dev device.Address) string {
	return filepath.Join(s.Dir(adapter, dev), InfoFile)
}

// Load reads the info file for dev. A missing device directory or info
// file yields ErrNotPaired.
func (s *Store) Load(adapter, dev device.Address) (*Record, error) {
	path := s.Path(adapter, dev)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotPaired, s.Dir(adapter, dev))
	}
	if err != nil {
		return nil, fmt.Errorf("bluez: read %s: %w", path, err)
	}
	rec, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Save writes rec over the info file for dev. prev, when non-nil and
// Backup is set, is written to info.bak first.
func (s *Store) Save(adapter, dev device.Address, prev, rec *Record) error {
	w := s.Writer
	if w == nil {
		w = &writer.FileWriter{}
	}
	path := s.Path(adapter, dev)
	if s.Backup && prev != nil {
		if err := w.WriteFile(path+BackupSuffix, []byte(prev.String())); err != nil {
			return fmt.Errorf("bluez: backup %s: %w", path, err)
		}
	}
	if err := w.WriteFile(path, []byte(rec.String())); err != nil {
		return fmt.Errorf("bluez: write %s: %w", path, err)
	}
	return nil
}
