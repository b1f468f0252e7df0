package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/btdualboot/internal/testutil"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// resetGlobals restores flag and config state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()

	verbose, quiet = false, false
	configFile, logFormat = "", ""
	cfg = settings{}
	syncSource, syncDryRun = sourceFlags{}, false
	listSource, listFormat = sourceFlags{}, formatTable
}

// writeExport stores the fixture registry export in a temp file.
func writeExport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keys.reg")
	if err := os.WriteFile(path, []byte(testutil.RegedExport), 0o644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

// fixtureBluetoothDir lays out BlueZ records for the LE and classic fixture
// devices; the partial device is left unpaired.
func fixtureBluetoothDir(t *testing.T) string {
	t.Helper()

	return testutil.SetupBluetoothDir(t,
		testutil.BluetoothRecord{Adapter: testutil.FixtureAdapter, Device: testutil.FixtureLEDevice, Info: testutil.LEInfo},
		testutil.BluetoothRecord{Adapter: testutil.FixtureAdapter, Device: testutil.FixtureClassicDevice, Info: testutil.ClassicInfo},
	)
}
