// Package io provides the character I/O channels for the Blue emulator.
// The paper Tape reads its input one line at a time from a LineSource,
// and writes its output one character at a time.
package io

// Channel defines the interface for character I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next input character. ok is false, with no
	// error, at the end of input.
	Receive() (value byte, ok bool, err error)
	// Send writes a single character to the channel.
	Send(value byte) error
}
