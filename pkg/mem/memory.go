// Package mem models the 8085's address space and its sparse 8-bit I/O
// port map.
package mem

import "errors"

// ErrOutOfRange is returned by Read/Write when addr falls outside the
// configured memory size.
var ErrOutOfRange = errors.New("mem: address out of range")

// Memory is a fixed-size, zero-initialized byte store.
type Memory struct {
	data []byte
}

// New allocates a zero-filled memory of the given size in bytes. size is
// clamped to [0, 65536].
func New(size int) *Memory {
	if size < 0 {
		size = 0
	}
	if size > 65536 {
		size = 65536
	}
	return &Memory{data: make([]byte, size)}
}

// NewFromImage allocates a memory of the given size and copies img into
// its front. It is an error for img to be larger than size.
func NewFromImage(img []byte, size int) (*Memory, error) {
	if len(img) > size {
		return nil, errors.New("mem: image larger than memory size")
	}
	m := New(size)
	copy(m.data, img)
	return m, nil
}

// Size reports the memory's capacity in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Bytes returns the memory's backing slice. Callers must not retain it
// past the Memory's lifetime expectations; it is exposed read-mostly for
// host integrations that want to inspect the whole image at once.
func (m *Memory) Bytes() []byte {
	return m.data
}

// Read returns the byte at addr, or ErrOutOfRange if addr >= Size().
func (m *Memory) Read(addr uint16) (uint8, error) {
	if int(addr) >= len(m.data) {
		return 0, ErrOutOfRange
	}
	return m.data[addr], nil
}

// Write stores v at addr, or returns ErrOutOfRange if addr >= Size().
func (m *Memory) Write(addr uint16, v uint8) error {
	if int(addr) >= len(m.data) {
		return ErrOutOfRange
	}
	m.data[addr] = v
	return nil
}
