package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// EncodeKey renders key material as BlueZ writes it: two uppercase hex
// digits per byte, no separators.
func EncodeKey(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		fmt.Fprintf(&sb, upperHex, c)
	}
	return sb.String()
}

// EncodeAddress renders an address as a BlueZ directory name
// ("C8:29:0A:11:F4:C1"). Byte order is kept as is.
func EncodeAddress(a [AddressSize]byte) string {
	parts := make([]string, len(a))
	for i, c := range a {
		parts[i] = fmt.Sprintf(upperHex, c)
	}
	return strings.Join(parts, AddressSeparator)
}

// EncodeEDiv renders a diversifier as the decimal integer BlueZ stores in
// LongTermKey.EDiv. It reads the bytes in the same host order DecodeDword
// wrote them, so the decimal digits of the export come back unchanged.
func EncodeEDiv(b [DwordSize]byte) string {
	return strconv.FormatUint(uint64(binary.NativeEndian.Uint32(b[:])), 10)
}

// EncodeRand renders ERand as the decimal integer BlueZ stores in
// LongTermKey.Rand. hex(b) values are little-endian qwords, so
// hex(b):01,00,00,00,00,00,00,00 is 1. Joining the bytes in written order
// as one big-endian hex number would give 72057594037927936 instead.
func EncodeRand(b [QwordSize]byte) string {
	return strconv.FormatUint(binary.LittleEndian.Uint64(b[:]), 10)
}
