//go:build unix

package main

import (
	"os"
	"syscall"
)

// newStdin. non-blocking duplicate of stdin, so closing it ends a pending read.
// the returned func restores blocking mode on the shared terminal.
func newStdin() (*os.File, func()) {
	fd, err := syscall.Dup(syscall.Stdin)
	if err != nil {
		return os.Stdin, func() {}
	}
	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = syscall.Close(fd)
		return os.Stdin, func() {}
	}

	restore := func() {
		_ = syscall.SetNonblock(syscall.Stdin, false)
	}
	return os.NewFile(uintptr(fd), "/dev/stdin"), restore
}
