//go:build !unix

package main

import "os"

func newStdin() (*os.File, func()) {
	return os.Stdin, func() {}
}
