package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Words:    []uint16{0x600C, 0xC000, 0x0000, 0x7ffe, 'A'},
		DataBase: 3,
	}

	var addrs []int
	var codes []Code
	for addr, code := range prog.Codes() {
		addrs = append(addrs, addr)
		codes = append(codes, code)
	}

	assert.Equal([]int{0, 1, 2}, addrs)
	assert.Equal([]Code{0x600C, 0xC000, 0x0000}, codes)
}

func TestProgram_Codes_NoData(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Words:    []uint16{0x600C, 0x7ffe},
		DataBase: -1,
	}

	count := 0
	for range prog.Codes() {
		count++
	}
	assert.Equal(2, count)
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Words:    []uint16{0x600C, 0xC000, 0x0000, 0x7ffe, 'A'},
		DataBase: 3,
	}

	lines := slices.Collect(prog.Listing())
	assert.Equal([]string{
		"000: 600c  LDA 0x00c",
		"001: c000  OUT",
		"002: 0000  HLT",
		"003: 7ffe  .sentinel 32766",
		"004: 0041  .data 'A'",
	}, lines)
}

func TestProgram_Listing_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Words: make([]uint16, 10), DataBase: -1}

	count := 0
	for range prog.Listing() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
