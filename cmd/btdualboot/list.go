package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/btdualboot/internal/bluez"
	"github.com/joshuapare/btdualboot/internal/device"
	"github.com/joshuapare/btdualboot/internal/logger"
)

// Output formats of the list command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	listSource sourceFlags
	listFormat string
)

func init() {
	cmd := newListCmd()
	listSource.register(cmd)
	cmd.Flags().StringVarP(&listFormat, "format", "o", formatTable, "Output format: table, json or yaml")
	cmd.Flags().String("bluetooth-dir", "", "BlueZ storage root (default: /var/lib/bluetooth)")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the devices paired under Windows",
		Long: `The list command shows every device found in the Windows pairing keys,
which credentials Windows holds for it, and whether Linux has a record for
it. Key material is never printed.

Example:
  btdualboot list
  btdualboot list --export-file keys.reg --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context())
		},
	}
	return cmd
}

// deviceRow is one listed device. Error is set when the Linux record
// exists but cannot be read.
type deviceRow struct {
	Adapter     string   `json:"adapter"     yaml:"adapter"`
	Address     string   `json:"address"     yaml:"address"`
	Shape       string   `json:"shape"       yaml:"shape"`
	Credentials []string `json:"credentials" yaml:"credentials"`
	Paired      bool     `json:"paired"      yaml:"paired"`
	Path        string   `json:"path"        yaml:"path"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func runList(ctx context.Context) error {
	switch listFormat {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, yaml)", listFormat)
	}

	devices, err := listSource.devices(ctx)
	if err != nil {
		return err
	}

	store := bluez.NewStore(cfg.BluetoothDir, false)
	rows := make([]deviceRow, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, newDeviceRow(store, d))
	}

	switch listFormat {
	case formatJSON:
		return printJSON(rows)
	case formatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return printTable(rows)
	}
}

func newDeviceRow(store *bluez.Store, d device.Device) deviceRow {
	creds := []string{device.ValueLTK}
	if d.IRK != nil {
		creds = append(creds, device.ValueIRK)
	}
	if d.CSRK != nil {
		creds = append(creds, device.ValueCSRK)
	}
	if d.EDiv != nil {
		creds = append(creds, device.ValueEDiv)
	}
	if d.ERand != nil {
		creds = append(creds, device.ValueERand)
	}

	row := deviceRow{
		Adapter:     d.Adapter.String(),
		Address:     d.Address.String(),
		Shape:       d.Shape.String(),
		Credentials: creds,
		Path:        store.Path(d.Adapter, d.Address),
	}
	switch _, err := store.Load(d.Adapter, d.Address); {
	case err == nil:
		row.Paired = true
	case !errors.Is(err, bluez.ErrNotPaired):
		logger.Warn("cannot read linux record", zap.String("path", row.Path), zap.Error(err))
		row.Error = err.Error()
	}
	return row
}

func printTable(rows []deviceRow) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADAPTER\tDEVICE\tSHAPE\tCREDENTIALS\tLINUX")
	for _, r := range rows {
		linux := "not paired"
		switch {
		case r.Paired:
			linux = "paired"
		case r.Error != "":
			linux = "unreadable"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Adapter, r.Address, r.Shape, strings.Join(r.Credentials, ","), linux)
	}
	return w.Flush()
}
