package bluez

import (
	"github.com/joshuapare/btdualboot/internal/device"
)

// Change records one rewritten value.
type Change struct {
	Section string
	Key     string
	Old     string
	New     string
}

// Merge returns a copy of rec carrying d's key material. rec is not
// modified.
//
// Only the Key of LinkKey, SlaveLongTermKey and PeripheralLongTermKey is
// replaced with the LTK. IdentityResolvingKey and LocalSignatureKey are
// replaced only when d has an IRK or CSRK. LongTermKey gets Key, EDiv and
// Rand only when d has both EDiv and ERand; otherwise it is left alone.
// Type, PINLength, Authenticated, EncSize and everything outside these
// sections are never touched, and sections are never added.
//
// The returned changes list only values that actually differ, so merging
// the result again yields no changes.
func Merge(rec *Record, d device.Device) (*Record, []Change) {
	out := rec.Clone()
	m := merger{rec: out}

	ltk := d.LTK.String()
	m.set(SectionLinkKey, KeyKey, ltk)
	m.set(SectionSlaveLongTermKey, KeyKey, ltk)
	m.set(SectionPeripheralLongTermKey, KeyKey, ltk)

	if d.IRK != nil {
		m.set(SectionIdentityResolvingKey, KeyKey, d.IRK.String())
	}
	if d.CSRK != nil {
		m.set(SectionLocalSignatureKey, KeyKey, d.CSRK.String())
	}
	if d.EDiv != nil && d.ERand != nil {
		m.set(SectionLongTermKey, KeyKey, ltk)
		m.set(SectionLongTermKey, KeyEDiv, d.EDiv.String())
		m.set(SectionLongTermKey, KeyRand, d.ERand.String())
	}

	return out, m.changes
}

type merger struct {
	rec     *Record
	changes []Change
}

func (m *merger) set(section, key, value string) {
	old, ok := m.rec.Get(section, key)
	if !ok || old == value {
		return
	}
	m.rec.Set(section, key, value)
	m.changes = append(m.changes, Change{Section: section, Key: key, Old: old, New: value})
}
