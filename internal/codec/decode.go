// Package codec converts between the value encodings found in Windows
// registry exports and the fixed-width byte arrays used for Bluetooth
// pairing material, and renders those arrays in BlueZ's textual forms.
//
// Every decoder is total over its grammar: it either yields exactly the
// declared width or returns a *FieldError.
package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DecodeDword decodes a "dword:" value into four bytes in host byte order.
//
// The payload is parsed as a decimal number even though regedit writes
// dwords as hex. Existing exports of EDIV have always been round-tripped
// this way, so "dword:00000010" yields 10, not 16.
func DecodeDword(s string) ([DwordSize]byte, error) {
	var out [DwordSize]byte
	payload, ok := strings.CutPrefix(s, DwordPrefix)
	if !ok {
		return out, fieldErr(s, ErrPrefix)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(payload), 10, 32)
	if err != nil {
		return out, fieldErr(s, fmt.Errorf("%w: %w", ErrDecimal, err))
	}
	binary.NativeEndian.PutUint32(out[:], uint32(n))
	return out, nil
}

// DecodeHex16 decodes a "hex:" value carrying sixteen bytes of key material.
// Bytes are kept in the order written.
func DecodeHex16(s string) ([KeySize]byte, error) {
	var out [KeySize]byte
	if err := decodeList(s, HexPrefix, out[:]); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeHexB decodes a "hex(b):" value into its eight bytes as written.
func DecodeHexB(s string) ([QwordSize]byte, error) {
	var out [QwordSize]byte
	if err := decodeList(s, HexBPrefix, out[:]); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeHexBAddress decodes a device address stored as a little-endian
// reg_qword. The eight bytes are reversed and the two padding bytes that
// then lead are dropped:
//
//	hex(b):c1,f4,11,0a,29,c8,00,00 -> c8 29 0a 11 f4 c1
func DecodeHexBAddress(s string) ([AddressSize]byte, error) {
	var out [AddressSize]byte
	raw, err := DecodeHexB(s)
	if err != nil {
		return out, err
	}
	for i := 0; i < AddressSize; i++ {
		out[i] = raw[QwordSize-addressPadding-1-i]
	}
	return out, nil
}

// DecodeCompactAddress decodes an address written as twelve bare hex
// characters ("c0fbf9601c13"). The registry already stores these in
// transmission order so no reversal happens.
func DecodeCompactAddress(s string) ([AddressSize]byte, error) {
	var out [AddressSize]byte
	if len(s) != CompactAddressLen {
		return out, fieldErr(s, fmt.Errorf("%w: %d characters, want %d", ErrLength, len(s), CompactAddressLen))
	}
	for i := range out {
		b, ok := parseHexByte(s[2*i : 2*i+2])
		if !ok {
			return out, fieldErr(s, fmt.Errorf("%w: %q", ErrHexDigit, s[2*i:2*i+2]))
		}
		out[i] = b
	}
	return out, nil
}

// IsCompactAddress reports whether s is exactly twelve hex characters.
func IsCompactAddress(s string) bool {
	if len(s) != CompactAddressLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexNibble(s[i]) == 0xFF {
			return false
		}
	}
	return true
}

// decodeList parses prefix followed by comma separated two digit hex bytes
// into dst, which must be filled exactly.
func decodeList(s, prefix string, dst []byte) error {
	payload, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return fieldErr(s, ErrPrefix)
	}
	parts := strings.Split(payload, ByteSeparator)
	if len(parts) != len(dst) {
		return fieldErr(s, fmt.Errorf("%w: %d bytes, want %d", ErrLength, len(parts), len(dst)))
	}
	for i, p := range parts {
		b, ok := parseHexByte(strings.TrimSpace(p))
		if !ok {
			return fieldErr(s, fmt.Errorf("%w: %q", ErrHexDigit, p))
		}
		dst[i] = b
	}
	return nil
}

// parseHexByte parses exactly two hex digits.
func parseHexByte(p string) (byte, bool) {
	if len(p) != 2 {
		return 0, false
	}
	hi, lo := hexNibble(p[0]), hexNibble(p[1])
	if hi == 0xFF || lo == 0xFF {
		return 0, false
	}
	return hi<<4 | lo, true
}

// hexNibble converts a hex character to its 4-bit value.
// Returns 0xFF for invalid characters.
func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}
