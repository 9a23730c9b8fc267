package dpfmt

import (
	"encoding/binary"
	"unsafe"
)

// Fixed constrains endianness rendering to integer types whose byte width
// is part of the type. Platform-width int and uint are excluded so the
// rendered width never depends on the build target.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BigEndian renders v's full fixed-width binary representation most
// significant byte first: 1, 2, 4, or 8 bytes depending on the type, never
// trimmed. Signed values render as two's complement.
func BigEndian[T Fixed](v T) Formatter {
	return endianValue{v: uint64(v), width: int(unsafe.Sizeof(v)), order: binary.BigEndian}
}

// LittleEndian renders v's full fixed-width binary representation least
// significant byte first.
func LittleEndian[T Fixed](v T) Formatter {
	return endianValue{v: uint64(v), width: int(unsafe.Sizeof(v)), order: binary.LittleEndian}
}

type endianValue struct {
	v     uint64
	width int
	order binary.ByteOrder
}

// Count returns the byte width of the wrapped integer type.
func (e endianValue) Count() int { return e.width }

// Write emits exactly Count bytes in the configured byte order. Sign
// extension from the uint64 conversion is harmless: only the low width
// bytes are emitted, which is the value's two's complement form.
func (e endianValue) Write(m *Memory, off int) (int, error) {
	var scratch [8]byte
	switch e.width {
	case 1:
		scratch[0] = byte(e.v)
	case 2:
		e.order.PutUint16(scratch[:2], uint16(e.v))
	case 4:
		e.order.PutUint32(scratch[:4], uint32(e.v))
	case 8:
		e.order.PutUint64(scratch[:8], e.v)
	}
	return m.Put(off, scratch[:e.width])
}
