package testutil

// RegedExport is a cleaned reged export of the BTHPORT pairing keys branch:
// one legacy adapter key with a classic device, two extended LE devices and
// one LE device with a truncated LTK.
const RegedExport = `[HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys]

[HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys\c0fbf9601c13]
"MasterIRK"=hex:01,02,03,04,05,06,07,08,09,0a,0b,0c,0d,0e,0f,10
"d0c05f6a2b1e"=hex:78,6d,c4,33,2d,38,5a,48,c4,e7,18,fe,0b,84,ff,20
"CentralIRKStatus"=dword:00000001

[HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys\c0fbf9601c13\c829aa11f4c1]
"LTK"=hex:c2,90,19,3b,1e,be,c7,d0,18,c6,4f,e9,67,ad,6b,d5
"KeyLength"=dword:00000000
"ERand"=hex(b):01,02,00,00,00,00,00,00
"EDIV"=dword:00012345
"IRK"=hex:fc,ea,f8,3e,e3,ee,ee,d0,96,61,96,2a,6e,b0,33,8a
"Address"=hex(b):c1,f4,11,0a,29,c8,00,00
"AddressType"=dword:00000001
"CSRK"=hex:00,11,22,33,44,55,66,77,88,99,aa,bb,cc,dd,ee,ff
"AuthReq"=dword:0000002d
[HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys\c0fbf9601c13\e417d8001a2b]
"LTK"=hex:a0,a1,a2,a3,a4,a5,a6,a7,a8,a9,aa,ab,ac,ad,ae,af
"Address"=hex(b):2b,1a,00,d8,17,e4,00,00

[HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys\c0fbf9601c13\aabbccddeeff]
"LTK"=hex:c2,90,19
"Address"=hex(b):ff,ee,dd,cc,bb,aa,00,00
`

// RegedRawOutput is RegedExport as reged prints it, with its banner line,
// CRLF endings and version trailer.
const RegedRawOutput = "Windows Registry Editor Version 5.00\r\n" +
	"[HKEY_LOCAL_MACHINE\\SYSTEM\\ControlSet001\\Services\\BTHPORT\\Parameters\\Keys\\c0fbf9601c13\\c829aa11f4c1]\r\n" +
	"\"LTK\"=hex:c2,90,19,3b,1e,be,c7,d0,18,c6,4f,e9,67,ad,6b,d5\r\n" +
	"\"Address\"=hex(b):c1,f4,11,0a,29,c8,00,00\r\n" +
	"\r\n" +
	"reged version 0.1 140201, (c) Petter N Hagen\r\n"

// LEInfo is a BlueZ info file for FixtureLEDevice before reconciliation.
const LEInfo = `[General]
Name=MX Master 3
Appearance=0x03c2
AddressType=public
SupportedTechnologies=LE;
Trusted=true
Blocked=false
WakeAllowed=true
Services=00001800-0000-1000-8000-00805f9b34fb;00001801-0000-1000-8000-00805f9b34fb;

[DeviceID]
Source=2
Vendor=1133
Product=45091
Version=18

[IdentityResolvingKey]
Key=0000000000000000000000000000AAAA

[LocalSignatureKey]
Key=0000000000000000000000000000BBBB
Counter=0
Authenticated=false

[LongTermKey]
Key=0000000000000000000000000000CCCC
Authenticated=2
EncSize=16
EDiv=4
Rand=9

[PeripheralLongTermKey]
Key=0000000000000000000000000000DDDD
Authenticated=2
EncSize=16
EDiv=0
Rand=0

[ConnectionParameters]
MinInterval=6
MaxInterval=9
Latency=44
Timeout=216
`

// ClassicInfo is a BlueZ info file for FixtureClassicDevice.
const ClassicInfo = `[General]
Name=WH-1000XM4
Class=0x240404
SupportedTechnologies=BR/EDR;
Trusted=true
Blocked=false
Services=0000110b-0000-1000-8000-00805f9b34fb;

[LinkKey]
Key=00000000000000000000000000000000
Type=4
PINLength=0
`
