package dpfmt

import "fmt"

// Memory is a fixed-capacity byte buffer. The capacity is set at creation
// and never changes; writers address it by absolute offset and bounds
// violations surface as [ErrOutOfBounds] rather than growth.
//
// Memory does not track how much of it is in use. Each write returns the
// offset just past the written region and the caller threads that offset
// through subsequent writes. Nothing is synchronized: a buffer shared
// between goroutines needs external locking.
type Memory struct {
	data []byte
}

// NewMemory allocates a buffer of exactly capacity bytes, each initialized
// to fill. A negative capacity is treated as zero.
func NewMemory(capacity int, fill byte) *Memory {
	if capacity < 0 {
		capacity = 0
	}
	m := &Memory{data: make([]byte, capacity)}
	if fill != 0 {
		m.Reset(fill)
	}
	return m
}

// Cap returns the fixed capacity of the buffer.
func (m *Memory) Cap() int { return len(m.data) }

// Bytes returns the underlying storage. The slice aliases the buffer:
// mutating it mutates the buffer, and writes through the buffer show up in
// previously returned slices.
func (m *Memory) Bytes() []byte { return m.data }

// Reset restores every byte to fill. Capacity is unchanged; offsets held by
// the caller remain valid addresses into stale-free storage.
func (m *Memory) Reset(fill byte) {
	for i := range m.data {
		m.data[i] = fill
	}
}

// Get returns the byte at index i.
func (m *Memory) Get(i int) (byte, error) {
	if i < 0 || i >= len(m.data) {
		return 0, fmt.Errorf("%w: index %d outside capacity %d", ErrOutOfBounds, i, len(m.data))
	}
	return m.data[i], nil
}

// Set stores b at index i.
func (m *Memory) Set(i int, b byte) error {
	if i < 0 || i >= len(m.data) {
		return fmt.Errorf("%w: index %d outside capacity %d", ErrOutOfBounds, i, len(m.data))
	}
	m.data[i] = b
	return nil
}

// Put copies p into the buffer starting at off and returns the offset just
// past the copied bytes. Nothing is written when the copy would not fit.
func (m *Memory) Put(off int, p []byte) (int, error) {
	if off < 0 || off+len(p) > len(m.data) {
		return 0, fmt.Errorf("%w: write of %d byte(s) at offset %d exceeds capacity %d", ErrOutOfBounds, len(p), off, len(m.data))
	}
	copy(m.data[off:], p)
	return off + len(p), nil
}

// PutString copies the bytes of s into the buffer starting at off and
// returns the offset just past them.
func (m *Memory) PutString(off int, s string) (int, error) {
	if off < 0 || off+len(s) > len(m.data) {
		return 0, fmt.Errorf("%w: write of %d byte(s) at offset %d exceeds capacity %d", ErrOutOfBounds, len(s), off, len(m.data))
	}
	copy(m.data[off:], s)
	return off + len(s), nil
}

// PutByte stores b at off and returns off+1.
func (m *Memory) PutByte(off int, b byte) (int, error) {
	if off < 0 || off >= len(m.data) {
		return 0, fmt.Errorf("%w: write of 1 byte at offset %d exceeds capacity %d", ErrOutOfBounds, off, len(m.data))
	}
	m.data[off] = b
	return off + 1, nil
}

// Fill stores n copies of b starting at off and returns the offset just
// past the run. A zero-length run is a no-op; a negative n is out of bounds.
func (m *Memory) Fill(off, n int, b byte) (int, error) {
	if n < 0 || off < 0 || off+n > len(m.data) {
		return 0, fmt.Errorf("%w: fill of %d byte(s) at offset %d exceeds capacity %d", ErrOutOfBounds, n, off, len(m.data))
	}
	for i := off; i < off+n; i++ {
		m.data[i] = b
	}
	return off + n, nil
}
