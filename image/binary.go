package image

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// ReadBinary reads an image stored as big-endian 16-bit words.
// The whole stream is the bootloader; there is no separate data segment.
func ReadBinary(reader io.Reader) (img *Image, err error) {
	in := bufio.NewReader(reader)
	scratch := make([]byte, 2)

	var words []uint16
	for {
		_, err = io.ReadFull(in, scratch)
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrBinaryOdd
			return
		}
		if err != nil {
			return
		}
		if len(words) == IMAGE_LIMIT {
			err = ErrImageTooLarge
			return
		}
		words = append(words, binary.BigEndian.Uint16(scratch))
	}

	img = &Image{Rom: words}
	return
}

// WriteBinary writes the memory image as big-endian 16-bit words.
func WriteBinary(writer io.Writer, img *Image) (err error) {
	words, err := img.Words()
	if err != nil {
		return
	}

	err = binary.Write(writer, binary.BigEndian, words)
	return
}
