package image

import (
	"io"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script evaluates a Starlark image description.
//
// The script must bind 'rom' to a list of words, and may bind 'data' to a
// string or bytes. Every predefine with an integer value is available to
// the script by name, so opcodes can be written as `LDA | 0x00c`.
func Script(name string, src io.Reader, predefines iter.Seq2[string, string]) (img *Image, err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	prog, err := io.ReadAll(src)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	for key, str := range predefines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, prog, pred)
	if err != nil {
		return
	}

	img = &Image{}

	img.Rom, err = scriptRom(globals["rom"])
	if err != nil {
		img = nil
		return
	}

	img.Data, err = scriptData(globals["data"])
	if err != nil {
		img = nil
		return
	}

	return
}

// scriptRom converts the 'rom' global to words.
func scriptRom(value starlark.Value) (rom []uint16, err error) {
	list, ok := value.(starlark.Indexable)
	if !ok || value.Type() == "string" || value.Type() == "bytes" {
		err = ErrScriptRom
		return
	}

	rom = make([]uint16, 0, list.Len())
	for n := range list.Len() {
		item := list.Index(n)
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = ErrScriptWord{Index: n, Value: item.String()}
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < 0 || st_int64 > 0xffff {
			err = ErrScriptWord{Index: n, Value: item.String()}
			return
		}
		rom = append(rom, uint16(st_int64))
	}

	return
}

// scriptData converts the optional 'data' global to bytes.
func scriptData(value starlark.Value) (data []byte, err error) {
	switch st := value.(type) {
	case nil:
		// No data segment.
	case starlark.String:
		data = []byte(string(st))
	case starlark.Bytes:
		data = []byte(string(st))
	default:
		err = ErrScriptData
	}

	return
}
