package device

// Registry value names under a per-device key.
const (
	ValueAddress = "Address"
	ValueLTK     = "LTK"
	ValueEDiv    = "EDIV"
	ValueERand   = "ERand"
	ValueIRK     = "IRK"
	ValueCSRK    = "CSRK"
)

// keysBranch is the segment run that ends the pairing-keys prefix in both
// ControlSet001 (reged) and CurrentControlSet (regedit) exports:
//
//	HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys
var keysBranch = []string{"Services", "BTHPORT", "Parameters", "Keys"}
