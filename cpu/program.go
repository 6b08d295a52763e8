package cpu

import (
	"fmt"
	"iter"
	"strconv"
)

// Program is a listing view over a memory image.
type Program struct {
	Words    []uint16
	DataBase int // Address of the data sentinel, or -1 for no data segment.
}

// Codes iterates over the words of the program that precede the data
// segment, by address.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(addr int, code Code) bool) {
		for addr, word := range prog.Words {
			if prog.DataBase >= 0 && addr >= prog.DataBase {
				return
			}
			if !yield(addr, Code(word)) {
				return
			}
		}
	}
}

// Listing iterates over a text line per word of the program.
// Code words are disassembled, data words are shown as characters.
func (prog *Program) Listing() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for addr, word := range prog.Words {
			var text string
			switch {
			case prog.DataBase < 0 || addr < prog.DataBase:
				text = Code(word).String()
			case addr == prog.DataBase:
				text = fmt.Sprintf(".sentinel %d", int(word))
			default:
				text = ".data " + strconv.QuoteRune(rune(word))
			}
			if !yield(fmt.Sprintf("%03x: %04x  %v", addr, word, text)) {
				return
			}
		}
	}
}
