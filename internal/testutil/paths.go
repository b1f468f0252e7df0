package testutil

// Addresses used by the fixtures, in BlueZ directory form.
const (
	// FixtureAdapter is the adapter every fixture device is paired with.
	FixtureAdapter = "C0:FB:F9:60:1C:13"

	// FixtureLEDevice is the extended-shape device carrying LTK, IRK, CSRK,
	// EDIV and ERand.
	FixtureLEDevice = "C8:29:0A:11:F4:C1"

	// FixturePartialDevice is an extended-shape device with only an LTK.
	FixturePartialDevice = "E4:17:D8:00:1A:2B"

	// FixtureClassicDevice is the legacy-shape device keyed by value name.
	FixtureClassicDevice = "D0:C0:5F:6A:2B:1E"

	// FixtureBrokenDevice is the registry key name of a device whose LTK is
	// truncated.
	FixtureBrokenDevice = "aabbccddeeff"
)

// Expected BlueZ renderings of the fixture key material.
const (
	FixtureLTK     = "C290193B1EBEC7D018C64FE967AD6BD5"
	FixtureIRK     = "FCEAF83EE3EEEED09661962A6EB0338A"
	FixtureCSRK    = "00112233445566778899AABBCCDDEEFF"
	FixtureEDiv    = "12345"
	FixtureRand    = "513"
	FixtureLinkKey = "786DC4332D385A48C4E718FE0B84FF20"
)
