package io

import (
	"bufio"
	"errors"
	"io"
)

// LineSource supplies the Tape with input, one line per refill.
// An empty line, with no error, is the end of input.
type LineSource interface {
	NextLine() (line []byte, err error)
}

// ReaderSource reads newline terminated lines from an io.Reader.
// The newline is kept as part of the line.
type ReaderSource struct {
	reader *bufio.Reader
}

var _ LineSource = (*ReaderSource)(nil)

// NewReaderSource creates a line source reading from r.
func NewReaderSource(r io.Reader) (rs *ReaderSource) {
	rs = &ReaderSource{
		reader: bufio.NewReader(r),
	}

	return
}

// NextLine blocks until a full line, or the end of input, is read.
func (rs *ReaderSource) NextLine() (line []byte, err error) {
	line, err = rs.reader.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		// A final unterminated line is still a line.
		err = nil
	}

	return
}

// Lines is a canned line source. Each refill takes the next string.
type Lines []string

var _ LineSource = (*Lines)(nil)

// NextLine removes and returns the first line. Returns an empty line
// once all lines are taken.
func (ls *Lines) NextLine() (line []byte, err error) {
	if len(*ls) == 0 {
		return
	}

	line = []byte((*ls)[0])
	*ls = (*ls)[1:]

	return
}
