package winsrc

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/btdualboot/internal/regtext"
	"github.com/joshuapare/btdualboot/internal/testutil"
)

// fakeWindows creates a directory that looks like a mounted Windows volume.
func fakeWindows(t *testing.T, parent, name string) string {
	t.Helper()
	mnt := filepath.Join(parent, name)
	cfg := filepath.Join(mnt, "Windows", "System32", "config")
	require.NoError(t, os.MkdirAll(cfg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg, "SYSTEM"), []byte("regf"), 0o644))
	return mnt
}

func TestFindWindowsMounts(t *testing.T) {
	dir := t.TempDir()
	win := fakeWindows(t, dir, "win")
	spaced := fakeWindows(t, dir, "Windows 11")
	loop := fakeWindows(t, dir, "iso")
	plain := filepath.Join(dir, "home")
	require.NoError(t, os.MkdirAll(plain, 0o755))

	mounts := strings.Join([]string{
		"proc /proc proc rw,nosuid 0 0",
		"/dev/nvme0n1p3 " + win + " ntfs3 rw 0 0",
		"/dev/nvme0n1p4 " + strings.ReplaceAll(spaced, " ", `\040`) + " ntfs3 rw 0 0",
		"/dev/loop0 " + loop + " iso9660 ro 0 0",
		"/dev/nvme0n1p5 " + plain + " ext4 rw 0 0",
		"tmpfs " + dir + " tmpfs rw 0 0",
		"",
	}, "\n")
	mountsFile := filepath.Join(dir, "mounts")
	require.NoError(t, os.WriteFile(mountsFile, []byte(mounts), 0o644))

	found, err := FindWindowsMounts(mountsFile)
	require.NoError(t, err)
	assert.Equal(t, []string{win, spaced}, found)
}

func TestFindWindowsMounts_MissingFile(t *testing.T) {
	_, err := FindWindowsMounts(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestHiveAt(t *testing.T) {
	dir := t.TempDir()
	win := fakeWindows(t, dir, "win")

	hive, err := HiveAt(win)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(win, "Windows", "System32", "config", "SYSTEM"), hive)

	_, err = HiveAt(dir)
	assert.ErrorIs(t, err, ErrNoHive)
}

func TestCleanOutput(t *testing.T) {
	clean := CleanOutput(testutil.RegedRawOutput)
	assert.NotContains(t, clean, "Windows Registry Editor")
	assert.NotContains(t, clean, "reged version")
	assert.NotContains(t, clean, "\r")

	exp, err := regtext.Parse(clean)
	require.NoError(t, err)
	assert.Len(t, exp, 1)
}

func TestReadExportFile_UTF16(t *testing.T) {
	text := "Windows Registry Editor Version 5.00\r\n\r\n" +
		"[HKEY_LOCAL_MACHINE\\SYSTEM\\CurrentControlSet\\Services\\BTHPORT\\Parameters\\Keys\\c0fbf9601c13]\r\n" +
		"\"d0c05f6a2b1e\"=hex:78,6d,c4,33,2d,38,5a,48,c4,e7,18,fe,0b,84,ff,20\r\n"

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, u := range utf16.Encode([]rune(text)) {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}
	path := filepath.Join(t.TempDir(), "bt.reg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := ReadExportFile(path)
	require.NoError(t, err)

	exp, err := regtext.Parse(got)
	require.NoError(t, err)
	require.Len(t, exp, 1)
	for _, values := range exp {
		assert.Contains(t, values, "d0c05f6a2b1e")
	}
}

func TestChoose(t *testing.T) {
	_, err := Choose(nil, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoWindows)

	got, err := Choose([]string{"/mnt/c"}, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/mnt/c", got)

	var out bytes.Buffer
	got, err = Choose([]string{"/mnt/c", "/mnt/d"}, strings.NewReader("7\nx\n2\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/d", got)
	assert.Contains(t, out.String(), "2) /mnt/d")
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice."))

	_, err = Choose([]string{"/mnt/c", "/mnt/d"}, strings.NewReader("0\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

// fakeReged writes a shell script standing in for reged.
func fakeReged(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reged")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestReged_Export(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	argsFile := filepath.Join(dir, "args")
	require.NoError(t, os.WriteFile(out, []byte(testutil.RegedRawOutput), 0o644))

	r := &Reged{Path: fakeReged(t, `printf '%s\n' "$*" > `+argsFile+"\ncat "+out+"\n")}
	text, err := r.Export(context.Background(), "/mnt/c/Windows/System32/config/SYSTEM")
	require.NoError(t, err)
	assert.Equal(t, CleanOutput(testutil.RegedRawOutput), text)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t,
		`-E -x /mnt/c/Windows/System32/config/SYSTEM HKEY_LOCAL_MACHINE\SYSTEM ControlSet001\Services\BTHPORT\Parameters\Keys /dev/stdout`,
		strings.TrimSpace(string(args)))
}

func TestReged_ExportFailure(t *testing.T) {
	r := &Reged{Path: fakeReged(t, "echo 'openHive(): error opening hive file' >&2\nexit 1\n")}
	_, err := r.Export(context.Background(), "/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening hive file")
}

func TestReged_KeyPath(t *testing.T) {
	r := &Reged{ControlSet: "ControlSet002"}
	assert.Equal(t, `ControlSet002\Services\BTHPORT\Parameters\Keys`, r.KeyPath())
}
