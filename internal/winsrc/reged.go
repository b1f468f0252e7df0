package winsrc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/joshuapare/btdualboot/internal/logger"
	"github.com/joshuapare/btdualboot/internal/regtext"
)

const (
	// DefaultReged is the chntpw registry editor binary.
	DefaultReged = "reged"

	// DefaultControlSet is the control set Windows boots from by default.
	DefaultControlSet = "ControlSet001"

	// SystemPrefix is the key the SYSTEM hive is mounted under in exports.
	SystemPrefix = `HKEY_LOCAL_MACHINE\SYSTEM`

	// keysSubpath is the pairing-keys branch below a control set.
	keysSubpath = `\Services\BTHPORT\Parameters\Keys`

	// regedTrailer starts the banner reged prints after an export.
	regedTrailer = "reged version"
)

// Reged exports the pairing keys branch of a hive with chntpw's reged.
type Reged struct {
	Path       string // binary, DefaultReged when empty
	ControlSet string // DefaultControlSet when empty
}

// KeyPath is the exported key, relative to the hive root.
func (r *Reged) KeyPath() string {
	cs := r.ControlSet
	if cs == "" {
		cs = DefaultControlSet
	}
	return cs + keysSubpath
}

// Export runs reged against hive and returns the cleaned export text.
func (r *Reged) Export(ctx context.Context, hive string) (string, error) {
	bin := r.Path
	if bin == "" {
		bin = DefaultReged
	}
	args := []string{"-E", "-x", hive, SystemPrefix, r.KeyPath(), "/dev/stdout"}
	logger.Debug("running reged", zap.String("bin", bin), zap.Strings("args", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("winsrc: %s: %w: %s", bin, err, strings.TrimSpace(stderr.String()))
	}

	text, err := regtext.Decode(stdout.Bytes())
	if err != nil {
		return "", err
	}
	return CleanOutput(text), nil
}

// CleanOutput drops the banner line reged prints before an export and
// everything from its version trailer on.
func CleanOutput(raw string) string {
	lines := splitLines(raw)
	if len(lines) > 0 {
		lines = lines[1:]
	}
	return strings.Join(cutTrailer(lines), "\n")
}

// ReadExportFile loads an export saved earlier, either by regedit on
// Windows or by reged. Encoding is detected from the content.
func ReadExportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("winsrc: read export: %w", err)
	}
	text, err := regtext.Decode(data)
	if err != nil {
		return "", err
	}
	return strings.Join(cutTrailer(splitLines(text)), "\n"), nil
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func cutTrailer(lines []string) []string {
	for i, l := range lines {
		if strings.HasPrefix(l, regedTrailer) {
			return lines[:i]
		}
	}
	return lines
}
