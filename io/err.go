package io

import (
	"errors"

	"github.com/ezrec/blue/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrTapeInput    = errors.New(f("tape input"))
	ErrTapeOutput   = errors.New(f("tape output"))
	ErrTapeNoInput  = errors.New(f("tape has no input"))
	ErrTapeNoOutput = errors.New(f("tape has no output"))
)
