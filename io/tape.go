package io

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"
)

// Tape provides the "paper tape" character I/O of the machine.
// Input is consumed a byte at a time from a line buffer which is replaced
// by the next line of Source whenever it is exhausted. Output is written
// to Output a byte at a time.
type Tape struct {
	Verbose bool // If set, logs every refill.

	Source LineSource
	Output io.Writer

	buffer []byte // Current line.
	head   int    // Next byte of the line, 0 <= head <= len(buffer).
}

var _ Channel = (*Tape)(nil)

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TAPE_EOF":     "0x00",
		"TAPE_NEWLINE": "0x0a",
	})
}

// Rewind discards the buffered line.
func (tc *Tape) Rewind() {
	tc.buffer = nil
	tc.head = 0
}

// Head returns the position of the next byte in the buffered line.
func (tc *Tape) Head() int {
	return tc.head
}

// Buffer returns the buffered line.
func (tc *Tape) Buffer() []byte {
	return tc.buffer
}

// Receive returns the next byte of the buffered line, refilling the buffer
// from Source when it is exhausted. If the refill is empty, ok is false
// and the head does not move.
func (tc *Tape) Receive() (value byte, ok bool, err error) {
	if tc.head == len(tc.buffer) {
		if tc.Source == nil {
			err = ErrTapeNoInput
			return
		}

		var line []byte
		line, err = tc.Source.NextLine()
		if err != nil {
			err = errors.Join(ErrTapeInput, err)
			return
		}

		if tc.Verbose {
			log.Printf("tape: read %q", line)
		}

		tc.buffer = line
		tc.head = 0

		if tc.head == len(tc.buffer) {
			return
		}
	}

	value = tc.buffer[tc.head]
	tc.head++
	ok = true

	return
}

// Send writes a byte to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		err = ErrTapeNoOutput
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		err = errors.Join(ErrTapeOutput, err)
	}

	return
}
