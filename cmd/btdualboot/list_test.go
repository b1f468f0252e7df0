package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/btdualboot/internal/testutil"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		wantErr     bool
		wantContain []string
	}{
		{
			name:   "table",
			format: formatTable,
			wantContain: []string{
				"ADAPTER", "CREDENTIALS",
				testutil.FixtureClassicDevice, "legacy",
				testutil.FixtureLEDevice, "LTK,IRK,CSRK,EDIV,ERand",
				testutil.FixturePartialDevice, "not paired",
			},
		},
		{
			name:        "json",
			format:      formatJSON,
			wantContain: []string{`"address": "` + testutil.FixtureLEDevice + `"`},
		},
		{
			name:        "yaml",
			format:      formatYAML,
			wantContain: []string{"address: " + testutil.FixtureLEDevice},
		},
		{
			name:    "unknown format",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			cfg = settings{BluetoothDir: fixtureBluetoothDir(t)}
			listSource.exportFile = writeExport(t)
			listFormat = tt.format

			output, err := captureOutput(t, func() error {
				return runList(context.Background())
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
			assert.NotContains(t, output, testutil.FixtureLTK)
		})
	}
}

func TestListCommand_Rows(t *testing.T) {
	resetGlobals(t)
	cfg = settings{BluetoothDir: fixtureBluetoothDir(t)}
	listSource.exportFile = writeExport(t)

	decode := map[string]func([]byte, any) error{
		formatJSON: json.Unmarshal,
		formatYAML: yaml.Unmarshal,
	}
	for format, unmarshal := range decode {
		listFormat = format
		output, err := captureOutput(t, func() error { return runList(context.Background()) })
		require.NoError(t, err)

		var rows []deviceRow
		require.NoError(t, unmarshal([]byte(output), &rows), format)
		require.Len(t, rows, 3, format)

		paired := map[string]bool{}
		for _, r := range rows {
			assert.Equal(t, testutil.FixtureAdapter, r.Adapter)
			paired[r.Address] = r.Paired
		}
		assert.Equal(t, map[string]bool{
			testutil.FixtureClassicDevice: true,
			testutil.FixtureLEDevice:      true,
			testutil.FixturePartialDevice: false,
		}, paired, format)
	}
}

func TestListCommand_UnreadableRecord(t *testing.T) {
	resetGlobals(t)
	cfg = settings{BluetoothDir: testutil.SetupBluetoothDir(t,
		testutil.BluetoothRecord{Adapter: testutil.FixtureAdapter, Device: testutil.FixtureLEDevice, Info: testutil.LEInfo},
		testutil.BluetoothRecord{Adapter: testutil.FixtureAdapter, Device: testutil.FixtureClassicDevice, Info: "not a keyfile\n"},
	)}
	listSource.exportFile = writeExport(t)

	listFormat = formatJSON
	output, err := captureOutput(t, func() error { return runList(context.Background()) })
	require.NoError(t, err)

	var rows []deviceRow
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	byAddr := map[string]deviceRow{}
	for _, r := range rows {
		byAddr[r.Address] = r
	}
	assert.False(t, byAddr[testutil.FixtureClassicDevice].Paired)
	assert.Contains(t, byAddr[testutil.FixtureClassicDevice].Error, "malformed info file")
	assert.True(t, byAddr[testutil.FixtureLEDevice].Paired)
	assert.Empty(t, byAddr[testutil.FixtureLEDevice].Error)
	assert.Empty(t, byAddr[testutil.FixturePartialDevice].Error)

	listFormat = formatTable
	output, err = captureOutput(t, func() error { return runList(context.Background()) })
	require.NoError(t, err)
	assert.Contains(t, output, "unreadable")
}
