package cpu

import (
	"fmt"
)

// CodeOp is the operation field of an instruction word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT = CodeOp(0)  // HLT
	OP_ADD = CodeOp(1)  // ADD
	OP_XOR = CodeOp(2)  // XOR
	OP_AND = CodeOp(3)  // AND
	OP_OR  = CodeOp(4)  // OR
	OP_NOT = CodeOp(5)  // NOT
	OP_LDA = CodeOp(6)  // LDA
	OP_STA = CodeOp(7)  // STA
	OP_SRJ = CodeOp(8)  // SRJ
	OP_JMA = CodeOp(9)  // JMA
	OP_JMP = CodeOp(10) // JMP
	OP_IN  = CodeOp(11) // IN
	OP_OUT = CodeOp(12) // OUT
	OP_RAL = CodeOp(13) // RAL
	OP_CSA = CodeOp(14) // CSA
	OP_NOP = CodeOp(15) // NOP
)

// Instruction word layout.
const (
	CODE_OP_SHIFT = 12
	CODE_OP_MASK  = uint16(0xf000) // Operation field.
	CODE_ADDR     = uint16(0x0fff) // Operand address field.
	WORD_SIGN     = uint16(0x8000) // Sign bit tested by JMA and RAL.
)

// UsesAddr returns true if the operation reads or transfers to its
// operand address.
func (op CodeOp) UsesAddr() bool {
	switch op {
	case OP_ADD, OP_XOR, OP_AND, OP_OR, OP_LDA, OP_STA, OP_SRJ, OP_JMA, OP_JMP:
		return true
	}
	return false
}

// Code is a single 16-bit instruction word.
type Code uint16

// MakeCode creates an instruction word from an operation and an address.
// The address is truncated to 12 bits.
func MakeCode(op CodeOp, addr uint16) Code {
	return Code((uint16(op) << CODE_OP_SHIFT) | (addr & CODE_ADDR))
}

// Word returns the instruction as a memory word.
func (code Code) Word() uint16 {
	return uint16(code)
}

// Op returns the operation field.
func (code Code) Op() CodeOp {
	return CodeOp((uint16(code) & CODE_OP_MASK) >> CODE_OP_SHIFT)
}

// Addr returns the operand address field.
func (code Code) Addr() uint16 {
	return uint16(code) & CODE_ADDR
}

// Decode splits the word into its operation and address. Every word
// decodes.
func (code Code) Decode() (op CodeOp, addr uint16) {
	op = code.Op()
	addr = code.Addr()
	return
}

// Halts returns true if fetching this word stops the machine.
// Only the all-zero word halts; HLT with a nonzero address does not.
func (code Code) Halts() bool {
	return code == 0
}

// String returns the disassembly of the instruction word.
func (code Code) String() string {
	op, addr := code.Decode()
	if op.UsesAddr() || addr != 0 {
		return fmt.Sprintf("%v 0x%03x", op, addr)
	}
	return op.String()
}
