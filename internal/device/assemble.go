package device

import (
	"sort"

	"go.uber.org/zap"

	"github.com/joshuapare/btdualboot/internal/codec"
	"github.com/joshuapare/btdualboot/internal/logger"
	"github.com/joshuapare/btdualboot/internal/regtext"
)

// FromExport classifies and assembles exp in one step.
func FromExport(exp regtext.Export) ([]Device, []error) {
	return Assemble(Classify(exp))
}

// Assemble builds one Device per device found in entries. A device whose
// values fail to decode is left out and reported as an *AssembleError; the
// remaining devices are still returned.
//
// The same physical device may appear under both shapes. Both records are
// returned.
func Assemble(entries []Entry) ([]Device, []error) {
	var (
		devices []Device
		errs    []error
	)
	for _, e := range entries {
		var (
			got []Device
			bad []error
		)
		switch e.Shape {
		case ShapeLegacy:
			got, bad = assembleLegacy(e)
		case ShapeExtended:
			got, bad = assembleExtended(e)
		}
		devices = append(devices, got...)
		errs = append(errs, bad...)
	}
	logger.Debug("assembled devices", zap.Int("devices", len(devices)), zap.Int("skipped", len(errs)))
	return devices, errs
}

// assembleLegacy expands an adapter key: every value named by an address
// is a device whose link key is the value data. Other values (MasterIRK,
// status dwords) belong to the adapter.
func assembleLegacy(e Entry) ([]Device, []error) {
	adapter, err := codec.DecodeCompactAddress(e.AdapterKey)
	if err != nil {
		return nil, []error{&AssembleError{Path: e.Path, Device: e.AdapterKey, Err: ErrBadAdapter}}
	}

	names := make([]string, 0, len(e.Values))
	for name := range e.Values {
		if codec.IsCompactAddress(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var (
		devices []Device
		errs    []error
	)
	for _, name := range names {
		addr, err := codec.DecodeCompactAddress(name)
		if err != nil {
			errs = append(errs, &AssembleError{Path: e.Path, Device: name, Err: err})
			continue
		}
		d, err := New(Fields{
			Address: addr,
			Adapter: adapter,
			Shape:   ShapeLegacy,
			LTK:     e.Values[name],
		})
		if err != nil {
			errs = append(errs, &AssembleError{Path: e.Path, Device: Address(addr).String(), Err: err})
			continue
		}
		logger.Debug("decoded legacy device", zap.Stringer("device", d.Address), zap.Stringer("adapter", d.Adapter))
		devices = append(devices, d)
	}
	return devices, errs
}

// assembleExtended decodes a per-device key. The adapter is the parent key.
func assembleExtended(e Entry) ([]Device, []error) {
	fail := func(id string, err error) ([]Device, []error) {
		return nil, []error{&AssembleError{Path: e.Path, Device: id, Err: err}}
	}

	adapter, err := codec.DecodeCompactAddress(e.AdapterKey)
	if err != nil {
		return fail(e.RecordKey, ErrBadAdapter)
	}

	rawAddr, ok := e.Values[ValueAddress]
	if !ok {
		return fail(e.RecordKey, ErrMissingAddress)
	}
	addr, err := codec.DecodeHexBAddress(rawAddr)
	if err != nil {
		return fail(e.RecordKey, codec.WithField(err, ValueAddress))
	}
	id := Address(addr).String()

	d, err := New(Fields{
		Address: addr,
		Adapter: adapter,
		Shape:   ShapeExtended,
		LTK:     e.Values[ValueLTK],
		EDiv:    e.Values[ValueEDiv],
		ERand:   e.Values[ValueERand],
		IRK:     e.Values[ValueIRK],
		CSRK:    e.Values[ValueCSRK],
	})
	if err != nil {
		return fail(id, err)
	}
	logger.Debug("decoded device",
		zap.Stringer("device", d.Address),
		zap.Stringer("adapter", d.Adapter),
		zap.Bool("irk", d.IRK != nil),
		zap.Bool("csrk", d.CSRK != nil),
		zap.Bool("ediv", d.EDiv != nil),
		zap.Bool("erand", d.ERand != nil),
	)
	return []Device{d}, nil
}
