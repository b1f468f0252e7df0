package codec

const (
	// ============================================================================
	// Windows registry export value prefixes
	// ============================================================================

	// DwordPrefix introduces a REG_DWORD value ("dword:00000000").
	DwordPrefix = "dword:"

	// HexPrefix introduces a REG_BINARY value ("hex:c2,90,...").
	HexPrefix = "hex:"

	// HexBPrefix introduces a REG_QWORD value in hex form ("hex(b):00,...").
	HexBPrefix = "hex(b):"

	// ByteSeparator separates bytes inside hex and hex(b) payloads.
	ByteSeparator = ","

	// ============================================================================
	// Field widths
	// ============================================================================

	// AddressSize is the width of a Bluetooth device address.
	AddressSize = 6

	// KeySize is the width of LTK, IRK and CSRK material.
	KeySize = 16

	// DwordSize is the width of a decoded dword (EDIV).
	DwordSize = 4

	// QwordSize is the width of a decoded hex(b) value (ERand, padded addresses).
	QwordSize = 8

	// addressPadding is the number of zero bytes reg_qword addresses carry
	// above the six address bytes.
	addressPadding = QwordSize - AddressSize

	// CompactAddressLen is the length of an address written as bare hex
	// ("c0fbf9601c13"), as used in registry key and value names.
	CompactAddressLen = AddressSize * 2

	// ============================================================================
	// Linux textual forms
	// ============================================================================

	// AddressSeparator joins address bytes in BlueZ directory names.
	AddressSeparator = ":"

	// upperHex renders one byte the way BlueZ writes keys and addresses.
	upperHex = "%02X"
)
