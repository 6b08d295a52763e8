package image

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/blue/cpu"
)

func doScript(t *testing.T, text string) (img *Image, err error) {
	t.Helper()

	return Script("test.star", strings.NewReader(text), cpu.NewCpu().Defines())
}

func TestScript_Hello(t *testing.T) {
	assert := assert.New(t)

	inf, err := os.Open("testdata/hello.star")
	assert.NoError(err)
	defer inf.Close()

	img, err := Script("hello.star", inf, cpu.NewCpu().Defines())
	assert.NoError(err)

	assert.Equal(HelloWorld(), img)
}

func TestScript_Echo(t *testing.T) {
	assert := assert.New(t)

	inf, err := os.Open("testdata/echo.star")
	assert.NoError(err)
	defer inf.Close()

	img, err := Script("echo.star", inf, cpu.NewCpu().Defines())
	assert.NoError(err)
	assert.Len(img.Rom, 10)
	assert.Equal(uint16(0xB000), img.Rom[0])
	assert.Equal(uint16(0xffff), img.Rom[9])
	assert.Nil(img.Data)
}

func TestScript_Expressions(t *testing.T) {
	assert := assert.New(t)

	img, err := doScript(t, strings.Join([]string{
		"def op(code, addr):",
		"    return code | (addr & CODE_ADDR)",
		"rom = tuple([op(LDA, n) for n in range(3)]) + (NOP,)",
		`data = b"\x01\x02"`,
	}, "\n"))
	assert.NoError(err)
	assert.Equal([]uint16{0x6000, 0x6001, 0x6002, 0xF000}, img.Rom)
	assert.Equal([]byte{1, 2}, img.Data)
}

func TestScript_IgnoresNonIntegerPredefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{"ONE": "1", "NAME": "hello"}
	seq := func(yield func(string, string) bool) {
		for key, value := range defines {
			if !yield(key, value) {
				return
			}
		}
	}

	img, err := Script("t.star", strings.NewReader("rom = [ONE]"), seq)
	assert.NoError(err)
	assert.Equal([]uint16{1}, img.Rom)

	_, err = Script("t.star", strings.NewReader("rom = [NAME]"), seq)
	assert.Error(err)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"no_rom", "data = 'x'", ErrScriptRom},
		{"rom_string", "rom = 'abc'", ErrScriptRom},
		{"rom_int", "rom = 5", ErrScriptRom},
		{"bad_data", "rom = []\ndata = 5", ErrScriptData},
	}

	for _, entry := range table {
		img, err := doScript(t, entry.text)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(img, entry.name)

		var es *ErrScript
		assert.True(errors.As(err, &es), entry.name)
		assert.Equal("test.star", es.Name, entry.name)
	}
}

func TestScript_BadWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		index int
	}){
		{"rom = [0, 0x10000]", 1},
		{"rom = [-1]", 0},
		{"rom = [1, 2, 'x']", 2},
	}

	for _, entry := range table {
		_, err := doScript(t, entry.text)

		var ew ErrScriptWord
		assert.True(errors.As(err, &ew), entry.text)
		assert.Equal(entry.index, ew.Index, entry.text)
	}
}

func TestScript_SyntaxError(t *testing.T) {
	assert := assert.New(t)

	img, err := doScript(t, "rom = [")
	assert.Error(err)
	assert.Nil(img)

	var es *ErrScript
	assert.True(errors.As(err, &es))
}
