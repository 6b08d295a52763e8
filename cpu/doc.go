// Package cpu implements Caxton Foster's "Blue" teaching processor.
//
// The processor has a 16-bit accumulator (acc), a 16-bit status register (cs),
// a program counter (pc) and an instruction register (ir). Memory is a flat
// sequence of 16-bit words sized to the loaded image.
//
// Each instruction word holds a 4-bit operation in its high bits and a 12-bit
// operand address in its low bits. The processor fetches, decodes and executes
// one word per tick, and stops after fetching the all-zero word.
package cpu
