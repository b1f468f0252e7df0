// Command btdualboot copies Bluetooth pairing keys from a Windows
// installation into BlueZ storage so devices paired under Windows keep
// working under Linux.
package main

import "os"

func main() {
	os.Exit(execute())
}
