package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/btdualboot/internal/bluez"
	"github.com/joshuapare/btdualboot/internal/logger"
	"github.com/joshuapare/btdualboot/internal/reconcile"
)

var (
	syncSource sourceFlags
	syncDryRun bool
)

func init() {
	cmd := newSyncCmd()
	syncSource.register(cmd)
	cmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "Show what would change without writing")
	cmd.Flags().String("bluetooth-dir", "", "BlueZ storage root (default: /var/lib/bluetooth)")
	cmd.Flags().Bool("backup", false, "Keep the previous record as info.bak")
	rootCmd.AddCommand(cmd)
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy Windows pairing keys into BlueZ device records",
		Long: `The sync command reads the pairing keys stored by Windows and rewrites
the key fields of every matching BlueZ device record. Devices that are not
paired under Linux are skipped; pair them once under Linux first.

Exit status is 0 when at least one device was updated, 1 when none was and
2 on error.

Example:
  btdualboot sync
  btdualboot sync --windows-mount /mnt/windows
  btdualboot sync --hive /mnt/c/Windows/System32/config/SYSTEM --dry-run
  btdualboot sync --export-file keys.reg --backup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context())
		},
	}
	return cmd
}

func runSync(ctx context.Context) error {
	if !syncDryRun && !isRoot() {
		logger.Warn("not running as root, writing BlueZ records will likely fail")
	}

	devices, err := syncSource.devices(ctx)
	if err != nil {
		return err
	}
	printVerbose("Found %d device(s) in Windows\n", len(devices))

	store := bluez.NewStore(cfg.BluetoothDir, cfg.Backup)
	report, err := reconcile.Run(ctx, devices, store, reconcile.Options{DryRun: syncDryRun})
	printReport(report)
	if err != nil {
		return err
	}

	if !report.Any() {
		return errNothingUpdated
	}
	if !report.DryRun {
		printInfo("Restart the bluetooth service to load the new keys.\n")
	}
	return nil
}

func printReport(r *reconcile.Report) {
	updated := "Updated"
	if r.DryRun {
		updated = "Would update"
	}
	for _, o := range r.Updated {
		printInfo("%s %s\n", updated, describe(o))
		for _, c := range o.Changes {
			printVerbose("  [%s] %s\n", c.Section, c.Key)
		}
	}
	for _, o := range r.Unchanged {
		printVerbose("Up to date %s\n", describe(o))
	}
	for _, o := range r.Skipped {
		printInfo("Not paired in Linux %s\n", describe(o))
	}
	for _, o := range r.Failed {
		printError("%s: %v\n", describe(o), o.Err)
	}
	printInfo("%d device(s): %d %s, %d unchanged, %d not paired, %d failed\n",
		r.Total(), len(r.Updated), strings.ToLower(updated), len(r.Unchanged), len(r.Skipped), len(r.Failed))
}

func describe(o reconcile.Outcome) string {
	return fmt.Sprintf("%s on adapter %s", o.Device.Address, o.Device.Adapter)
}

