// Package device turns the pairing-keys branch of a Windows registry export
// into canonical per-device credential records.
package device

import (
	"fmt"

	"github.com/joshuapare/btdualboot/internal/codec"
)

// Address is a Bluetooth device address in transmission order.
type Address [codec.AddressSize]byte

// String renders the address as a BlueZ directory name.
func (a Address) String() string { return codec.EncodeAddress(a) }

// Key is 128 bits of LTK, IRK or CSRK material.
type Key [codec.KeySize]byte

// String renders the key as BlueZ stores it.
func (k Key) String() string { return codec.EncodeKey(k[:]) }

// EDiv is the encrypted diversifier in host byte order.
type EDiv [codec.DwordSize]byte

// String renders the diversifier as BlueZ stores it.
func (e EDiv) String() string { return codec.EncodeEDiv(e) }

// ERand is the encrypted random value as stored in the registry.
type ERand [codec.QwordSize]byte

// String renders the random value as BlueZ stores it.
func (r ERand) String() string { return codec.EncodeRand(r) }

// Shape identifies which registry layout a record was read from.
type Shape uint8

const (
	// ShapeLegacy is an adapter key whose value names are device addresses
	// and whose values are link keys.
	ShapeLegacy Shape = iota + 1
	// ShapeExtended is a per-device subkey carrying Address, LTK and the
	// optional LE keys as named values.
	ShapeExtended
)

func (s Shape) String() string {
	switch s {
	case ShapeLegacy:
		return "legacy"
	case ShapeExtended:
		return "extended"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Device is the canonical credential record for one paired device.
// Optional keys are nil when Windows never negotiated them.
type Device struct {
	Address Address
	Adapter Address
	LTK     Key
	EDiv    *EDiv
	ERand   *ERand
	IRK     *Key
	CSRK    *Key

	// Shape is informational; nothing downstream depends on it.
	Shape Shape
}

// Fields is the input to New: decoded addresses plus the raw registry text
// of each key. Empty optional strings mean the value was absent.
type Fields struct {
	Address Address
	Adapter Address
	Shape   Shape

	LTK   string
	EDiv  string
	ERand string
	IRK   string
	CSRK  string
}

// New decodes every present field and returns a complete record, or an
// error naming the first field that failed. No partial record is returned.
func New(f Fields) (Device, error) {
	if f.LTK == "" {
		return Device{}, ErrMissingLTK
	}

	d := Device{Address: f.Address, Adapter: f.Adapter, Shape: f.Shape}

	ltk, err := codec.DecodeHex16(f.LTK)
	if err != nil {
		return Device{}, codec.WithField(err, ValueLTK)
	}
	d.LTK = ltk

	if f.EDiv != "" {
		raw, err := codec.DecodeDword(f.EDiv)
		if err != nil {
			return Device{}, codec.WithField(err, ValueEDiv)
		}
		ediv := EDiv(raw)
		d.EDiv = &ediv
	}
	if f.ERand != "" {
		raw, err := codec.DecodeHexB(f.ERand)
		if err != nil {
			return Device{}, codec.WithField(err, ValueERand)
		}
		erand := ERand(raw)
		d.ERand = &erand
	}
	if f.IRK != "" {
		raw, err := codec.DecodeHex16(f.IRK)
		if err != nil {
			return Device{}, codec.WithField(err, ValueIRK)
		}
		irk := Key(raw)
		d.IRK = &irk
	}
	if f.CSRK != "" {
		raw, err := codec.DecodeHex16(f.CSRK)
		if err != nil {
			return Device{}, codec.WithField(err, ValueCSRK)
		}
		csrk := Key(raw)
		d.CSRK = &csrk
	}

	return d, nil
}
