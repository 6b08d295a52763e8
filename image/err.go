package image

import (
	"errors"

	"github.com/ezrec/blue/translate"
)

var f = translate.From

var (
	// Image errors
	ErrDataTooLong   = errors.New(f("data segment too long"))
	ErrImageTooLarge = errors.New(f("image too large"))
	ErrBinaryOdd     = errors.New(f("binary image has an odd number of bytes"))

	// Script errors
	ErrScriptRom  = errors.New(f("'rom' must be a list of words"))
	ErrScriptData = errors.New(f("'data' must be a string or bytes"))
)

// ErrScript indicates the image script that failed.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrScriptWord is a 'rom' entry that is not a 16-bit word.
type ErrScriptWord struct {
	Index int
	Value string
}

func (err ErrScriptWord) Error() string {
	return f("rom[%d] = %v is not a 16-bit word", err.Index, err.Value)
}
