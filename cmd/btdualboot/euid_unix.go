//go:build unix

package main

import "golang.org/x/sys/unix"

func isRoot() bool {
	return unix.Geteuid() == 0
}
