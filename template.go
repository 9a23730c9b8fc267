package dpfmt

import "fmt"

// Count computes the exact number of bytes that [Write] will emit for the
// same template and arguments: the lengths of all literal runs plus each
// argument's Count, in template order. Placeholders and arguments must match
// one to one; a surplus on either side reports [ErrArityMismatch] and a
// malformed brace sequence reports [ErrInvalidTemplate].
func Count(template []byte, args ...Formatter) (int, error) {
	total := 0
	used := 0
	for pos := 0; pos < len(template); {
		lit, placeholder, next, err := nextToken(template, pos)
		if err != nil {
			return 0, err
		}
		if placeholder {
			if used < len(args) {
				total += args[used].Count()
			}
			used++
		} else {
			total += len(lit)
		}
		pos = next
	}
	if used != len(args) {
		return 0, fmt.Errorf("%w: template has %d placeholder(s) but %d argument(s)", ErrArityMismatch, used, len(args))
	}
	return total, nil
}

// Write renders the template into m starting at off: literal runs are
// copied verbatim and each {} placeholder consumes the next argument in
// order, writing it at the current offset. It returns the offset just past
// the rendered bytes, equal to off plus [Count] of the same inputs.
//
// Write scans the template independently of any prior [Count] call; the two
// passes share no state. On failure the buffer holds whatever was written
// before the error and the bytes past the last complete write are
// undefined.
func Write(m *Memory, off int, template []byte, args ...Formatter) (int, error) {
	used := 0
	pos := off
	for i := 0; i < len(template); {
		lit, placeholder, next, err := nextToken(template, i)
		if err != nil {
			return 0, err
		}
		if placeholder {
			if used >= len(args) {
				return 0, fmt.Errorf("%w: placeholder %d has no argument (%d supplied)", ErrArityMismatch, used+1, len(args))
			}
			pos, err = args[used].Write(m, pos)
			used++
		} else {
			pos, err = m.Put(pos, lit)
		}
		if err != nil {
			return 0, err
		}
		i = next
	}
	if used != len(args) {
		return 0, fmt.Errorf("%w: template has %d placeholder(s) but %d argument(s)", ErrArityMismatch, used, len(args))
	}
	return pos, nil
}

// nextToken scans a single template token starting at pos: either a literal
// run, returned as a subslice of tmpl, or one {} placeholder. Brace escapes
// collapse here: for {{ and }} the literal is the one-byte slice holding the
// first brace. next is where the following token starts. pos must be inside
// tmpl.
func nextToken(tmpl []byte, pos int) (lit []byte, placeholder bool, next int, err error) {
	switch tmpl[pos] {
	case '{':
		if pos+1 < len(tmpl) {
			switch tmpl[pos+1] {
			case '}':
				return nil, true, pos + 2, nil
			case '{':
				return tmpl[pos : pos+1], false, pos + 2, nil
			}
		}
		return nil, false, 0, fmt.Errorf("%w: unmatched '{' at offset %d", ErrInvalidTemplate, pos)
	case '}':
		if pos+1 < len(tmpl) && tmpl[pos+1] == '}' {
			return tmpl[pos : pos+1], false, pos + 2, nil
		}
		return nil, false, 0, fmt.Errorf("%w: unmatched '}' at offset %d", ErrInvalidTemplate, pos)
	}
	end := pos + 1
	for end < len(tmpl) && tmpl[end] != '{' && tmpl[end] != '}' {
		end++
	}
	return tmpl[pos:end], false, end, nil
}

// Template packages a pattern with its bound arguments as one composite
// [Formatter], so a formatted unit can nest inside other templates or
// combinators. The pattern and argument list are copied and validated at
// construction, which is what lets Count stay infallible afterwards.
type Template struct {
	pattern []byte
	args    []Formatter
}

// NewTemplate validates the pattern grammar and the placeholder/argument
// arity, then binds the arguments to the pattern. Validation errors are the
// same ones [Count] reports.
func NewTemplate(pattern []byte, args ...Formatter) (Template, error) {
	if _, err := Count(pattern, args...); err != nil {
		return Template{}, err
	}
	return Template{
		pattern: append([]byte(nil), pattern...),
		args:    append([]Formatter(nil), args...),
	}, nil
}

// Count re-scans the pattern, summing literal runs and argument counts.
func (t Template) Count() int {
	n, _ := Count(t.pattern, t.args...) // grammar and arity hold since NewTemplate
	return n
}

// Write renders the pattern and bound arguments into m at off.
func (t Template) Write(m *Memory, off int) (int, error) {
	return Write(m, off, t.pattern, t.args...)
}
