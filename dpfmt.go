package dpfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrArityMismatch   = errors.New("placeholder/argument arity mismatch")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrInvalidTemplate = errors.New("invalid template")
)

// Formatter is the capability every formattable value provides. Count
// returns the exact number of bytes Write will emit; Write renders those
// bytes into m starting at off and returns the offset just past the written
// region, so that on success Write(m, off) == off + Count().
//
// Count must be deterministic and side-effect free: composite formatters
// call it repeatedly and size enclosing layouts from its result. Write
// returns an error wrapping [ErrOutOfBounds] when the buffer is too small;
// buffer contents past the last complete write are undefined after such a
// failure.
type Formatter interface {
	Count() int
	Write(m *Memory, off int) (int, error)
}

// Bytes is a raw byte sequence rendered verbatim.
type Bytes []byte

// Count returns the length of the byte sequence.
func (b Bytes) Count() int { return len(b) }

// Write copies the bytes into m at off.
func (b Bytes) Write(m *Memory, off int) (int, error) {
	return m.Put(off, b)
}

// Str is a raw string rendered verbatim, byte for byte.
type Str string

// Count returns the length of the string in bytes.
func (s Str) Count() int { return len(s) }

// Write copies the string bytes into m at off.
func (s Str) Write(m *Memory, off int) (int, error) {
	return m.PutString(off, string(s))
}

// Marshal renders a template and its arguments into a freshly allocated
// buffer of exactly the counted size. It is the one-shot convenience over
// [Count], [NewMemory], and [Write]; callers formatting repeatedly into a
// reused buffer should drive those directly.
func Marshal(template []byte, args ...Formatter) ([]byte, error) {
	n, err := Count(template, args...)
	if err != nil {
		return nil, err
	}
	m := NewMemory(n, 0)
	if _, err := Write(m, 0, template, args...); err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}
