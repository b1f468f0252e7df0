package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// BluetoothRecord describes one info file to lay out under a fake
// /var/lib/bluetooth.
type BluetoothRecord struct {
	Adapter string // BlueZ adapter directory name
	Device  string // BlueZ device directory name
	Info    string // info file content
}

// SetupBluetoothDir creates a temporary BlueZ storage root holding the given
// records and returns its path.
//
// Example:
//
//	root := testutil.SetupBluetoothDir(t, testutil.BluetoothRecord{
//	    Adapter: testutil.FixtureAdapter,
//	    Device:  testutil.FixtureLEDevice,
//	    Info:    testutil.LEInfo,
//	})
func SetupBluetoothDir(t *testing.T, records ...BluetoothRecord) string {
	t.Helper()

	root := t.TempDir()
	for _, r := range records {
		dir := filepath.Join(root, r.Adapter, r.Device)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "info"), []byte(r.Info), 0o600); err != nil {
			t.Fatalf("Failed to write info for %s: %v", r.Device, err)
		}
	}
	return root
}

// ReadInfo returns the info file content for a device under root.
func ReadInfo(t *testing.T, root, adapter, device string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, adapter, device, "info"))
	if err != nil {
		t.Fatalf("Failed to read info for %s: %v", device, err)
	}
	return string(data)
}
