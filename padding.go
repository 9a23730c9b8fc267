package dpfmt

// padMode selects which side(s) of the field receive fill bytes.
type padMode int

const (
	padLeft   padMode = iota // fill on the left, value right-aligned
	padRight                 // fill on the right, value left-aligned
	padCenter                // fill split across both sides
)

// PadLeft right-aligns inner's rendering in a field of width bytes, filling
// the shortfall on the left with fill. Padding never truncates: when the
// inner rendering is already width bytes or longer, the field is exactly the
// inner rendering.
func PadLeft(inner Formatter, width int, fill byte) Formatter {
	return padded{inner: inner, width: width, fill: fill, mode: padLeft}
}

// PadRight left-aligns inner's rendering in a field of width bytes, filling
// the shortfall on the right with fill.
func PadRight(inner Formatter, width int, fill byte) Formatter {
	return padded{inner: inner, width: width, fill: fill, mode: padRight}
}

// PadCenter centers inner's rendering in a field of width bytes, splitting
// the shortfall across both sides. An odd shortfall puts the extra fill
// byte on the right.
func PadCenter(inner Formatter, width int, fill byte) Formatter {
	return padded{inner: inner, width: width, fill: fill, mode: padCenter}
}

type padded struct {
	inner Formatter
	width int
	fill  byte
	mode  padMode
}

// Count returns the larger of the field width and the inner count.
func (p padded) Count() int {
	if n := p.inner.Count(); n > p.width {
		return n
	}
	return p.width
}

func (p padded) Write(m *Memory, off int) (int, error) {
	pad := p.width - p.inner.Count()
	if pad < 0 {
		pad = 0
	}
	var before, after int
	switch p.mode {
	case padLeft:
		before = pad
	case padRight:
		after = pad
	default:
		before = pad / 2
		after = pad - before
	}
	pos, err := m.Fill(off, before, p.fill)
	if err != nil {
		return 0, err
	}
	pos, err = p.inner.Write(m, pos)
	if err != nil {
		return 0, err
	}
	return m.Fill(pos, after, p.fill)
}
