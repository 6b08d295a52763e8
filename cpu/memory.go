package cpu

// Memory is the word-addressed store of the machine. Its length is the
// length of the loaded image.
type Memory struct {
	Data []uint16
}

// Load replaces the memory contents with a copy of the image words.
func (mem *Memory) Load(words []uint16) {
	mem.Data = append(mem.Data[:0], words...)
}

// Len returns the number of loaded words.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// Read returns the word at addr.
func (mem *Memory) Read(addr int) (value uint16, err error) {
	if addr < 0 || addr >= len(mem.Data) {
		err = ErrAddress(addr)
		return
	}

	value = mem.Data[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint16) (err error) {
	if addr < 0 || addr >= len(mem.Data) {
		err = ErrAddress(addr)
		return
	}

	mem.Data[addr] = value
	return
}
