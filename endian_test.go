package dpfmt_test

import (
	"testing"

	"github.com/bjaus/dpfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigEndian(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		f    dpfmt.Formatter
		want []byte
	}{
		"uint8":       {f: dpfmt.BigEndian(uint8(0x12)), want: []byte{0x12}},
		"uint16":      {f: dpfmt.BigEndian(uint16(0x1234)), want: []byte{0x12, 0x34}},
		"uint32":      {f: dpfmt.BigEndian(uint32(0x12345678)), want: []byte{0x12, 0x34, 0x56, 0x78}},
		"uint64":      {f: dpfmt.BigEndian(uint64(0x0102030405060708)), want: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		"small value": {f: dpfmt.BigEndian(uint32(1)), want: []byte{0, 0, 0, 1}},
		"zero":        {f: dpfmt.BigEndian(uint16(0)), want: []byte{0, 0}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, len(tt.want), tt.f.Count())
			assert.Equal(t, tt.want, renderBytes(t, tt.f))
		})
	}
}

func TestLittleEndian(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		f    dpfmt.Formatter
		want []byte
	}{
		"uint8":       {f: dpfmt.LittleEndian(uint8(0x12)), want: []byte{0x12}},
		"uint16":      {f: dpfmt.LittleEndian(uint16(0x1234)), want: []byte{0x34, 0x12}},
		"uint32":      {f: dpfmt.LittleEndian(uint32(0x12345678)), want: []byte{0x78, 0x56, 0x34, 0x12}},
		"uint64":      {f: dpfmt.LittleEndian(uint64(0x0102030405060708)), want: []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		"small value": {f: dpfmt.LittleEndian(uint32(1)), want: []byte{1, 0, 0, 0}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, len(tt.want), tt.f.Count())
			assert.Equal(t, tt.want, renderBytes(t, tt.f))
		})
	}
}

func TestEndianSigned(t *testing.T) {
	t.Parallel()
	// Signed values render their full-width two's complement form.
	assert.Equal(t, []byte{0xff}, renderBytes(t, dpfmt.BigEndian(int8(-1))))
	assert.Equal(t, []byte{0xff, 0xfe}, renderBytes(t, dpfmt.BigEndian(int16(-2))))
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, renderBytes(t, dpfmt.LittleEndian(int32(-2))))
	assert.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, renderBytes(t, dpfmt.BigEndian(int64(1<<63-1))))
}

func TestEndianNamedType(t *testing.T) {
	t.Parallel()
	type seq uint16
	assert.Equal(t, []byte{0xbe, 0xef}, renderBytes(t, dpfmt.BigEndian(seq(0xbeef))))
}

func TestEndianWidthIsFixed(t *testing.T) {
	t.Parallel()
	// The emitted width never shrinks with the value.
	assert.Equal(t, 8, dpfmt.BigEndian(uint64(0)).Count())
	assert.Equal(t, 4, dpfmt.LittleEndian(int32(0)).Count())
	assert.Equal(t, 1, dpfmt.BigEndian(uint8(0xff)).Count())
}

// renderBytes is render for binary formatters, keeping byte-slice wants
// readable.
func renderBytes(t *testing.T, f dpfmt.Formatter) []byte {
	t.Helper()
	m := dpfmt.NewMemory(f.Count(), 0)
	end, err := f.Write(m, 0)
	require.NoError(t, err)
	require.Equal(t, f.Count(), end)
	return append([]byte(nil), m.Bytes()...)
}
