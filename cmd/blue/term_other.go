//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package main

import (
	"os"
)

// lineDiscipline is a no-op where termios is unavailable.
func lineDiscipline(file *os.File) (restore func()) {
	return func() {}
}
