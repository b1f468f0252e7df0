// Package reconcile drives one run: registry export text in, rewritten
// BlueZ info files out.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/joshuapare/btdualboot/internal/bluez"
	"github.com/joshuapare/btdualboot/internal/device"
	"github.com/joshuapare/btdualboot/internal/logger"
	"github.com/joshuapare/btdualboot/internal/regtext"
)

// ErrNoDevices indicates the export held no pairing records at all.
var ErrNoDevices = errors.New("reconcile: no bluetooth devices in export")

// Extract parses export text and assembles its devices. A malformed export
// or one without any device entry is fatal. Devices that fail to decode
// are logged and returned in skipped.
func Extract(text string) (devices []device.Device, skipped []error, err error) {
	exp, err := regtext.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	devices, skipped = device.FromExport(exp)
	for _, e := range skipped {
		logger.Warn("skipping windows device", zap.Error(e))
	}
	if len(devices) == 0 && len(skipped) == 0 {
		return nil, nil, ErrNoDevices
	}
	logger.Debug("extracted devices", zap.Int("devices", len(devices)), zap.Int("skipped", len(skipped)))
	return devices, skipped, nil
}

// Store is the subset of *bluez.Store a run needs.
type Store interface {
	Path(adapter, dev device.Address) string
	Load(adapter, dev device.Address) (*bluez.Record, error)
	Save(adapter, dev device.Address, prev, rec *bluez.Record) error
}

// Options tune a run.
type Options struct {
	// DryRun computes every merge but writes nothing.
	DryRun bool
}

// Run merges each device into its Linux record. Devices are independent:
// a device without a Linux record is skipped, and a failed load or write
// is recorded and the run moves on. Only cancellation of ctx ends the run
// early; the report then covers the devices processed so far.
//
// Devices are processed in order, so when the same device appears twice
// the later record wins.
func Run(ctx context.Context, devices []device.Device, store Store, opts Options) (*Report, error) {
	report := &Report{DryRun: opts.DryRun}
	for _, d := range devices {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.add(reconcileOne(d, store, opts))
	}
	return report, nil
}

func reconcileOne(d device.Device, store Store, opts Options) Outcome {
	out := Outcome{Device: d, Path: store.Path(d.Adapter, d.Address)}
	log := logger.L.With(zap.Stringer("device", d.Address), zap.Stringer("adapter", d.Adapter))

	rec, err := store.Load(d.Adapter, d.Address)
	if errors.Is(err, bluez.ErrNotPaired) {
		log.Warn("device from windows is not paired in linux")
		out.Status, out.Err = StatusSkipped, err
		return out
	}
	if err != nil {
		log.Warn("cannot read linux record", zap.Error(err))
		out.Status, out.Err = StatusFailed, err
		return out
	}

	merged, changes := bluez.Merge(rec, d)
	out.Changes = changes
	if len(changes) == 0 {
		log.Info("linux record already up to date")
		out.Status = StatusUnchanged
		return out
	}

	for _, c := range changes {
		log.Debug("rewriting value", zap.String("section", c.Section), zap.String("key", c.Key))
	}
	if opts.DryRun {
		out.Status = StatusUpdated
		return out
	}
	if err := store.Save(d.Adapter, d.Address, rec, merged); err != nil {
		logger.Error("cannot write linux record",
			zap.Stringer("device", d.Address), zap.Stringer("adapter", d.Adapter), zap.Error(err))
		out.Status, out.Err = StatusFailed, fmt.Errorf("save: %w", err)
		return out
	}
	log.Info("updated device", zap.String("path", out.Path), zap.Int("changes", len(changes)))
	out.Status = StatusUpdated
	return out
}
