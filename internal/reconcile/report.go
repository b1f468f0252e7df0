package reconcile

import (
	"github.com/joshuapare/btdualboot/internal/bluez"
	"github.com/joshuapare/btdualboot/internal/device"
)

// Status is the result of reconciling one device.
type Status uint8

const (
	// StatusUpdated means the Linux record was rewritten (or would be, in a
	// dry run).
	StatusUpdated Status = iota + 1
	// StatusUnchanged means the Linux record already held these keys.
	StatusUnchanged
	// StatusSkipped means Linux does not know the device.
	StatusSkipped
	// StatusFailed means reading or writing the Linux record failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-device result.
type Outcome struct {
	Device  device.Device
	Path    string
	Status  Status
	Changes []bluez.Change
	Err     error
}

// Report groups outcomes by status, each group in processing order.
type Report struct {
	DryRun    bool
	Updated   []Outcome
	Unchanged []Outcome
	Skipped   []Outcome
	Failed    []Outcome
}

func (r *Report) add(o Outcome) {
	switch o.Status {
	case StatusUpdated:
		r.Updated = append(r.Updated, o)
	case StatusUnchanged:
		r.Unchanged = append(r.Unchanged, o)
	case StatusSkipped:
		r.Skipped = append(r.Skipped, o)
	default:
		r.Failed = append(r.Failed, o)
	}
}

// Total is the number of devices processed.
func (r *Report) Total() int {
	return len(r.Updated) + len(r.Unchanged) + len(r.Skipped) + len(r.Failed)
}

// Any reports whether at least one device was updated.
func (r *Report) Any() bool {
	return len(r.Updated) > 0
}
