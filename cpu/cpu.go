package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"

	"github.com/ezrec/blue/io"
)

// Channel is a character I/O channel interface.
type Channel io.Channel

var _cpu_defines = func() (defines map[string]string) {
	defines = map[string]string{
		"CODE_ADDR": fmt.Sprintf("0x%04x", CODE_ADDR),
		"WORD_SIGN": fmt.Sprintf("0x%04x", WORD_SIGN),
	}
	for op := OP_HLT; op <= OP_NOP; op++ {
		defines[op.String()] = fmt.Sprintf("0x%04x", uint16(MakeCode(op, 0)))
	}
	return
}()

// State is a snapshot of the CPU registers.
type State struct {
	Pc    int    // Next word to fetch.
	Ir    Code   // Last fetched word.
	Acc   uint16 // Accumulator.
	Cs    uint16 // Status register.
	Ticks int    // Instructions executed since reset.
}

// Cpu is the simulation context for the Blue processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc     int    // Index of the next word to fetch.
	Ir     Code   // Instruction register.
	Acc    uint16 // Accumulator.
	Cs     uint16 // Status register. Read by CSA, never written by an opcode.
	Memory Memory // Loaded image.

	Ticks int // CPU ticks counter.

	channel Channel // Tape channel.
}

// NewCpu creates a new CPU with empty memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines returns the opcode constants of the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// State returns a snapshot of the registers.
func (cpu *Cpu) State() State {
	return State{
		Pc:    cpu.Pc,
		Ir:    cpu.Ir,
		Acc:   cpu.Acc,
		Cs:    cpu.Cs,
		Ticks: cpu.Ticks,
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "ir", "acc", "cs", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%03x", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%04x (%v)", uint16(cpu.Ir), cpu.Ir)
		case "acc":
			strval = fmt.Sprintf("%04x", cpu.Acc)
		case "cs":
			strval = fmt.Sprintf("%04x", cpu.Cs)
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Loads the image words into memory.
// - Clears the registers and tick counter.
// - Rewinds the I/O channel.
func (cpu *Cpu) Reset(words []uint16) {
	if cpu.Verbose {
		log.Printf("cpu: reset, %d words", len(words))
	}

	cpu.Memory.Load(words)
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Acc = 0
	cpu.Cs = 0
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// SetChannel attaches the character I/O channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel returns the character I/O channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// Fetch loads the word at Pc into Ir, and advances Pc.
func (cpu *Cpu) Fetch() (code Code, err error) {
	word, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Ir = Code(word)
	cpu.Pc++

	code = cpu.Ir
	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrHalt once the all-zero word has been fetched.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc-1, code)
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	if code.Halts() {
		err = ErrHalt
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	mem := &cpu.Memory
	op, addr := code.Decode()

	var value uint16

	switch op {
	case OP_HLT:
		// Halting is decided by the fetched word, not the opcode.
	case OP_ADD:
		value, err = mem.Read(int(addr))
		if err != nil {
			return
		}
		cpu.Acc += value
	case OP_XOR:
		value, err = mem.Read(int(addr))
		if err != nil {
			return
		}
		cpu.Acc ^= value
	case OP_AND:
		value, err = mem.Read(int(addr))
		if err != nil {
			return
		}
		cpu.Acc &= value
	case OP_OR:
		value, err = mem.Read(int(addr))
		if err != nil {
			return
		}
		cpu.Acc |= value
	case OP_NOT:
		cpu.Acc = ^cpu.Acc
	case OP_LDA:
		value, err = mem.Read(int(addr))
		if err != nil {
			return
		}
		cpu.Acc = value
	case OP_STA:
		err = mem.Write(int(addr), cpu.Acc)
	case OP_SRJ:
		cpu.Acc = uint16(cpu.Pc) & CODE_ADDR
		cpu.Pc = int(addr)
	case OP_JMA:
		if (cpu.Acc & WORD_SIGN) != 0 {
			cpu.Pc = int(addr)
		}
	case OP_JMP:
		cpu.Pc = int(addr)
	case OP_IN:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		var in byte
		var ok bool
		in, ok, err = channel.Receive()
		if err != nil {
			return
		}
		// End of input reads as zero.
		cpu.Acc = 0
		if ok {
			cpu.Acc = uint16(in)
		}
	case OP_OUT:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		err = channel.Send(byte(cpu.Acc & 0xff))
	case OP_RAL:
		cpu.Acc = bits.RotateLeft16(cpu.Acc, 1)
	case OP_CSA:
		cpu.Acc = cpu.Cs
	case OP_NOP:
		// pass
	default:
		panic("unknown opcode")
	}

	return
}
