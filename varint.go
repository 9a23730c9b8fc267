package dpfmt

// Uvarint renders v as a base-128 varint: seven value bits per byte, least
// significant group first, the high bit marking continuation. The encoding
// matches [encoding/binary.PutUvarint].
func Uvarint(v uint64) Formatter { return uvarintValue(v) }

type uvarintValue uint64

// Count returns the number of 7-bit groups the value occupies, 1 to 10.
func (u uvarintValue) Count() int {
	n := 1
	for v := uint64(u); v >= 0x80; v >>= 7 {
		n++
	}
	return n
}

func (u uvarintValue) Write(m *Memory, off int) (int, error) {
	var scratch [10]byte // ceil(64/7) groups for a uint64
	i := 0
	v := uint64(u)
	for v >= 0x80 {
		scratch[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	scratch[i] = byte(v)
	return m.Put(off, scratch[:i+1])
}
