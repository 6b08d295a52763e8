package emulator

import (
	"errors"

	"github.com/ezrec/blue/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrImageMissing = errors.New(f("no image to run"))
	ErrTickLimit    = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%03x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
