package dpfmt

// Unsigned constrains hex rendering to unsigned integer types. Signed
// values have no single minimal-digit hex form; callers wanting two's
// complement convert explicitly, e.g. HexLower(uint32(v)).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

const (
	hexLowerDigits = "0123456789abcdef"
	hexUpperDigits = "0123456789ABCDEF"
)

// HexLower renders v as lowercase hexadecimal using the minimal number of
// digits: no leading zeros, a single 0 for zero, most significant digit
// first.
func HexLower[T Unsigned](v T) Formatter {
	return hexValue{v: uint64(v), digits: hexLowerDigits}
}

// HexUpper renders v as uppercase hexadecimal using the minimal number of
// digits.
func HexUpper[T Unsigned](v T) Formatter {
	return hexValue{v: uint64(v), digits: hexUpperDigits}
}

type hexValue struct {
	v      uint64
	digits string
}

// Count returns the number of hex digits needed for the value.
func (h hexValue) Count() int { return digits16(h.v) }

// Write emits the digits most significant first.
func (h hexValue) Write(m *Memory, off int) (int, error) {
	var scratch [16]byte // a uint64 is at most 16 hex digits
	i := len(scratch)
	v := h.v
	for {
		i--
		scratch[i] = h.digits[v&0xf]
		v >>= 4
		if v == 0 {
			break
		}
	}
	return m.Put(off, scratch[i:])
}

// digits16 returns the minimal hex digit count for v, at least 1.
func digits16(v uint64) int {
	n := 1
	for v >>= 4; v != 0; v >>= 4 {
		n++
	}
	return n
}
