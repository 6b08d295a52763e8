package cpu

import (
	"errors"

	"github.com/ezrec/blue/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt           = errors.New(f("halt"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
)

// ErrAddress is a memory access outside of the loaded image.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%03x out of range", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrOpcode identifies the instruction that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
