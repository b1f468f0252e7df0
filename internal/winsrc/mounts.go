// Package winsrc locates a Windows SYSTEM hive on the mounted filesystems and
// produces the text export of its Bluetooth pairing keys.
package winsrc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ProcMounts is the kernel's list of mounted filesystems.
	ProcMounts = "/proc/mounts"

	// HivePath is the SYSTEM hive relative to a Windows volume root.
	HivePath = "Windows/System32/config/SYSTEM"
)

var (
	// ErrNoWindows indicates no mounted filesystem carries a SYSTEM hive.
	ErrNoWindows = errors.New("winsrc: no mounted windows partition found")
	// ErrNoHive indicates the chosen mount has no SYSTEM hive.
	ErrNoHive = errors.New("winsrc: no SYSTEM hive on mount")
)

// FindWindowsMounts returns the mount points listed in mountsFile that are
// backed by a block device (loop devices excluded) and contain HivePath.
func FindWindowsMounts(mountsFile string) ([]string, error) {
	f, err := os.Open(mountsFile)
	if err != nil {
		return nil, fmt.Errorf("winsrc: read mounts: %w", err)
	}
	defer f.Close()

	var found []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		dev, mnt := fields[0], unescapeMount(fields[1])
		if !strings.HasPrefix(dev, "/dev/") || strings.HasPrefix(dev, "/dev/loop") {
			continue
		}
		if _, err := HiveAt(mnt); err == nil {
			found = append(found, mnt)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("winsrc: read mounts: %w", err)
	}
	return found, nil
}

// HiveAt returns the SYSTEM hive path under mount, or ErrNoHive.
func HiveAt(mount string) (string, error) {
	hive := filepath.Join(mount, filepath.FromSlash(HivePath))
	fi, err := os.Stat(hive)
	if err != nil || fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoHive, mount)
	}
	return hive, nil
}

// unescapeMount decodes the octal escapes (\040 for space) the kernel uses
// in /proc/mounts.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				sb.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
