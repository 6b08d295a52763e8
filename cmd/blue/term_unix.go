//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"log"
	"os"

	"golang.org/x/sys/unix"
)

// lineDiscipline makes an interactive tape input canonical, so that each
// tape refill is one edited line. The returned function restores the
// terminal. Non-terminals are left alone.
func lineDiscipline(file *os.File) (restore func()) {
	restore = func() {}

	fd := int(file.Fd())

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		// Not a terminal.
		return
	}

	termRestore := *termios
	termstate := *termios

	termstate.Lflag |= unix.ICANON | unix.ECHO

	if termstate.Lflag == termRestore.Lflag {
		return
	}

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termstate); err != nil {
		log.Printf("tape: %v", err)
		return
	}

	restore = func() {
		if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termRestore); err != nil {
			log.Printf("tape: %v", err)
		}
	}

	return
}
