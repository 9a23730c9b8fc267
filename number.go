package dpfmt

// Int renders v as minimal-digit ASCII decimal with a leading '-' for
// negative values.
func Int(v int64) Formatter { return intValue(v) }

// Uint renders v as minimal-digit ASCII decimal.
func Uint(v uint64) Formatter { return uintValue(v) }

type intValue int64

// Count returns the digit count plus one for the sign when negative.
func (i intValue) Count() int {
	u, neg := magnitude(int64(i))
	if neg {
		return 1 + digits10(u)
	}
	return digits10(u)
}

func (i intValue) Write(m *Memory, off int) (int, error) {
	u, neg := magnitude(int64(i))
	var scratch [20]byte // "-9223372036854775808" is the longest form
	p := writeDecimal(scratch[:], u)
	if neg {
		p--
		scratch[p] = '-'
	}
	return m.Put(off, scratch[p:])
}

type uintValue uint64

// Count returns the minimal decimal digit count, at least 1.
func (u uintValue) Count() int { return digits10(uint64(u)) }

func (u uintValue) Write(m *Memory, off int) (int, error) {
	var scratch [20]byte // a uint64 is at most 20 decimal digits
	p := writeDecimal(scratch[:], uint64(u))
	return m.Put(off, scratch[p:])
}

// magnitude splits v into its absolute value and sign. The unsigned
// negation is exact even for the minimum int64, which has no positive
// counterpart in int64.
func magnitude(v int64) (uint64, bool) {
	u := uint64(v)
	if v < 0 {
		return -u, true
	}
	return u, false
}

// writeDecimal fills scratch from the end with the decimal digits of u and
// returns the index of the first digit.
func writeDecimal(scratch []byte, u uint64) int {
	p := len(scratch)
	for {
		p--
		scratch[p] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return p
}

// digits10 returns the minimal decimal digit count for v, at least 1.
func digits10(v uint64) int {
	n := 1
	for v /= 10; v != 0; v /= 10 {
		n++
	}
	return n
}
