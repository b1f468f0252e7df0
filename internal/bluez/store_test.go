package bluez

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/btdualboot/internal/testutil"
	"github.com/joshuapare/btdualboot/internal/writer"
)

func TestStore_LoadSave(t *testing.T) {
	root := testutil.SetupBluetoothDir(t, testutil.BluetoothRecord{
		Adapter: testutil.FixtureAdapter,
		Device:  testutil.FixtureLEDevice,
		Info:    testutil.LEInfo,
	})
	d := fixtureDevices(t)[testutil.FixtureLEDevice]

	s := NewStore(root, true)
	assert.Equal(t,
		filepath.Join(root, testutil.FixtureAdapter, testutil.FixtureLEDevice, InfoFile),
		s.Path(d.Adapter, d.Address))

	rec, err := s.Load(d.Adapter, d.Address)
	require.NoError(t, err)
	assert.Equal(t, testutil.LEInfo, rec.String())

	merged, _ := Merge(rec, d)
	require.NoError(t, s.Save(d.Adapter, d.Address, rec, merged))

	assert.Equal(t, merged.String(),
		testutil.ReadInfo(t, root, testutil.FixtureAdapter, testutil.FixtureLEDevice))

	backup, err := os.ReadFile(s.Path(d.Adapter, d.Address) + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, testutil.LEInfo, string(backup))

	fi, err := os.Stat(s.Path(d.Adapter, d.Address))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestStore_NotPaired(t *testing.T) {
	root := testutil.SetupBluetoothDir(t)
	d := fixtureDevices(t)[testutil.FixtureLEDevice]

	_, err := NewStore(root, false).Load(d.Adapter, d.Address)
	assert.ErrorIs(t, err, ErrNotPaired)
}

func TestStore_MalformedInfo(t *testing.T) {
	root := testutil.SetupBluetoothDir(t, testutil.BluetoothRecord{
		Adapter: testutil.FixtureAdapter,
		Device:  testutil.FixtureLEDevice,
		Info:    "garbage\n",
	})
	d := fixtureDevices(t)[testutil.FixtureLEDevice]

	_, err := NewStore(root, false).Load(d.Adapter, d.Address)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestStore_SaveToMemWriter(t *testing.T) {
	d := fixtureDevices(t)[testutil.FixtureClassicDevice]
	mem := &writer.MemWriter{}
	s := &Store{Root: "/var/lib/bluetooth", Writer: mem}

	rec, err := Parse(testutil.ClassicInfo)
	require.NoError(t, err)
	require.NoError(t, s.Save(d.Adapter, d.Address, rec, rec))

	assert.Equal(t, []string{"/var/lib/bluetooth/C0:FB:F9:60:1C:13/D0:C0:5F:6A:2B:1E/info"}, mem.Paths())
}
