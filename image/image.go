// Package image builds the memory images run by the Blue emulator.
//
// An image is a bootloader (Rom) optionally followed by a data segment.
// When a data segment is present the word after the bootloader holds the
// sentinel 0x7FFF - len(Data), followed by each data byte in its own word.
// The bootloader counts the sentinel up to 0x8000 to walk the data.
package image

import (
	"slices"
)

const (
	DATA_SENTINEL_BASE = 0x7fff  // Sentinel minus the data length.
	IMAGE_LIMIT        = 1 << 16 // Maximum words in an image.
)

// Image is a bootloader plus an optional data segment.
type Image struct {
	Rom  []uint16 // Bootloader words, loaded from address 0.
	Data []byte   // Data segment. nil for none.
}

// Sentinel returns the word stored between the bootloader and the data.
func (img *Image) Sentinel() (word uint16, err error) {
	if len(img.Data) > DATA_SENTINEL_BASE {
		err = ErrDataTooLong
		return
	}

	word = uint16(DATA_SENTINEL_BASE - len(img.Data))
	return
}

// DataBase returns the address of the sentinel word.
func (img *Image) DataBase() int {
	return len(img.Rom)
}

// Words returns the memory image.
func (img *Image) Words() (words []uint16, err error) {
	words = slices.Clone(img.Rom)

	if img.Data != nil {
		var sentinel uint16
		sentinel, err = img.Sentinel()
		if err != nil {
			words = nil
			return
		}
		words = append(words, sentinel)
		for _, c := range img.Data {
			words = append(words, uint16(c))
		}
	}

	if len(words) > IMAGE_LIMIT {
		words = nil
		err = ErrImageTooLarge
		return
	}

	return
}

// helloRom prints its data segment, one character per pass.
var helloRom = []uint16{
	0x600C, // 000: LDA 0x00c   ; load the counter
	0x100B, // 001: ADD 0x00b   ; count up
	0x900A, // 002: JMA 0x00a   ; done when it reaches 0x8000
	0x700C, // 003: STA 0x00c
	0x6007, // 004: LDA 0x007   ; advance the load at 007
	0x100B, // 005: ADD 0x00b
	0x7007, // 006: STA 0x007
	0x600C, // 007: LDA 0x00c   ; patched to walk the data
	0xC000, // 008: OUT
	0xA000, // 009: JMP 0x000
	0x0000, // 00a: halt
	0x0001, // 00b: constant 1
}

// HelloWorld returns the image that prints "Hello World!\n".
func HelloWorld() (img *Image) {
	img = &Image{
		Rom:  slices.Clone(helloRom),
		Data: []byte("Hello World!\n"),
	}

	return
}
