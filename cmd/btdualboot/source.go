package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/btdualboot/internal/device"
	"github.com/joshuapare/btdualboot/internal/logger"
	"github.com/joshuapare/btdualboot/internal/reconcile"
	"github.com/joshuapare/btdualboot/internal/winsrc"
)

// sourceFlags select where the Windows pairing keys come from. At most one
// of them is set; with none, mounted Windows partitions are searched.
type sourceFlags struct {
	exportFile   string
	hivePath     string
	windowsMount string
}

// Injected by tests.
var (
	mountsFile           = winsrc.ProcMounts
	promptIn   io.Reader = os.Stdin
	promptOut  io.Writer = os.Stderr
)

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.exportFile, "export-file", "", "Read an existing .reg export instead of running reged")
	cmd.Flags().StringVar(&f.hivePath, "hive", "", "Path to the Windows SYSTEM hive")
	cmd.Flags().StringVar(&f.windowsMount, "windows-mount", "", "Mount point of the Windows partition")
	cmd.Flags().String("reged", "", "reged binary (default: reged from PATH)")
	cmd.Flags().String("control-set", "", "Registry control set holding the keys (default: ControlSet001)")
	cmd.MarkFlagsMutuallyExclusive("export-file", "hive", "windows-mount")
}

// exportText returns the cleaned registry export text.
func (f *sourceFlags) exportText(ctx context.Context) (string, error) {
	if f.exportFile != "" {
		printVerbose("Reading export: %s\n", f.exportFile)
		return winsrc.ReadExportFile(f.exportFile)
	}

	hive, err := f.hive()
	if err != nil {
		return "", err
	}
	printVerbose("Exporting pairing keys from hive: %s\n", hive)

	r := &winsrc.Reged{Path: cfg.RegedPath, ControlSet: cfg.ControlSet}
	return r.Export(ctx, hive)
}

func (f *sourceFlags) hive() (string, error) {
	if f.hivePath != "" {
		return f.hivePath, nil
	}

	mount := f.windowsMount
	if mount == "" {
		candidates, err := winsrc.FindWindowsMounts(mountsFile)
		if err != nil {
			return "", err
		}
		logger.Debug("windows partitions", zap.Strings("mounts", candidates))
		if mount, err = winsrc.Choose(candidates, promptIn, promptOut); err != nil {
			return "", err
		}
	}
	return winsrc.HiveAt(mount)
}

// devices reads the export and assembles its devices. Devices that cannot
// be decoded are reported and left out.
func (f *sourceFlags) devices(ctx context.Context) ([]device.Device, error) {
	text, err := f.exportText(ctx)
	if err != nil {
		return nil, err
	}
	devices, skipped, err := reconcile.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("read windows pairing keys: %w", err)
	}
	for _, e := range skipped {
		printVerbose("Skipping undecodable device: %v\n", e)
	}
	return devices, nil
}
