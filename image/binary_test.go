package image

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBinary(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Rom: []uint16{0x600C, 0x0001}, Data: []byte("A")}

	buff := &bytes.Buffer{}
	err := WriteBinary(buff, img)
	assert.NoError(err)
	assert.Equal([]byte{0x60, 0x0C, 0x00, 0x01, 0x7f, 0xfe, 0x00, 0x41}, buff.Bytes())
}

func TestReadBinary(t *testing.T) {
	assert := assert.New(t)

	img, err := ReadBinary(bytes.NewReader([]byte{0x60, 0x0C, 0xA0, 0x00, 0x00, 0x00}))
	assert.NoError(err)
	assert.Equal([]uint16{0x600C, 0xA000, 0x0000}, img.Rom)
	assert.Nil(img.Data)
}

func TestReadBinary_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := WriteBinary(buff, HelloWorld())
	assert.NoError(err)

	img, err := ReadBinary(buff)
	assert.NoError(err)

	words, err := HelloWorld().Words()
	assert.NoError(err)

	loaded, err := img.Words()
	assert.NoError(err)
	assert.Equal(words, loaded)
}

func TestReadBinary_Errors(t *testing.T) {
	assert := assert.New(t)

	img, err := ReadBinary(bytes.NewReader([]byte{0x60, 0x0C, 0xA0}))
	assert.Equal(ErrBinaryOdd, err)
	assert.Nil(img)

	img, err = ReadBinary(bytes.NewReader(make([]byte, 2*IMAGE_LIMIT+2)))
	assert.Equal(ErrImageTooLarge, err)
	assert.Nil(img)
}

func TestReadBinary_Empty(t *testing.T) {
	assert := assert.New(t)

	img, err := ReadBinary(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Empty(img.Rom)
}
