// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/blue/cpu"
	"github.com/ezrec/blue/image"
	"github.com/ezrec/blue/internal"
	"github.com/ezrec/blue/io"
)

var _emulator_defines = map[string]string{
	"DATA_SENTINEL_BASE": fmt.Sprintf("0x%04x", image.DATA_SENTINEL_BASE),
}

// Emulator state. CPU + paper tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Image    *image.Image // Image loaded on reset.

	Tape io.Tape // Paper tape IO channel.

	Limit int // If non-zero, the maximum ticks after a reset.
}

// NewEmulator creates a new emulator, loaded with the Hello World image.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:   cpu.NewCpu(),
		Image: image.HelloWorld(),
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Tape.Defines(),
	)
}

// Reset loads the image into memory, and rewinds the tape.
func (emu *Emulator) Reset() (err error) {
	if emu.Image == nil {
		err = ErrImageMissing
		return
	}

	words, err := emu.Image.Words()
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Tape.Verbose = emu.Verbose

	emu.Cpu.Reset(words)

	return
}

// Program returns a listing view of the image.
func (emu *Emulator) Program() (prog *cpu.Program, err error) {
	if emu.Image == nil {
		err = ErrImageMissing
		return
	}

	words, err := emu.Image.Words()
	if err != nil {
		return
	}

	base := -1
	if emu.Image.Data != nil {
		base = emu.Image.DataBase()
	}

	prog = &cpu.Program{Words: words, DataBase: base}
	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the address of the next instruction.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// Code returns the next instruction to execute.
func (emu *Emulator) Code() cpu.Code {
	word, err := emu.Cpu.Memory.Read(emu.Cpu.Pc)
	if err != nil {
		return cpu.Code(0)
	}

	return cpu.Code(word)
}

// Tick performs a single tick of the emulator.
// done is set once the machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set verbosity
	emu.Cpu.Verbose = emu.Verbose
	emu.Tape.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
