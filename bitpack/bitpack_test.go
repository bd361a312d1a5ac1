package bitpack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/savecode/errs"
)

func TestPack_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{name: "empty", input: []byte{}, expected: []byte{}},
		{name: "single zero", input: []byte{0x00}, expected: []byte{0x00, 0x00}},
		{name: "single ones", input: []byte{0xFF}, expected: []byte{0x7F, 0x40}},
		{name: "two bytes", input: []byte{0x80, 0x01}, expected: []byte{0x40, 0x00, 0x20}},
		{
			name:     "seven bytes fill eight septets",
			input:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			expected: []byte{0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(tt.input)
			require.Equal(t, tt.expected, got)
			require.Len(t, got, PackedLen(len(tt.input)))
		})
	}
}

func TestRoundTrip_BoundaryLengths(t *testing.T) {
	fills := map[string]func(i int) byte{
		"zeros":      func(int) byte { return 0x00 },
		"ones":       func(int) byte { return 0xFF },
		"ascending":  func(i int) byte { return byte(i) },
		"alternate":  func(i int) byte { return 0xAA ^ byte(i&1)*0xFF },
		"high bit":   func(int) byte { return 0x80 },
		"low nibble": func(i int) byte { return byte(i) & 0x0F },
	}

	for name, fill := range fills {
		t.Run(name, func(t *testing.T) {
			for n := 0; n <= 20; n++ {
				data := make([]byte, n)
				for i := range data {
					data[i] = fill(i)
				}

				got, err := Unpack(Pack(data))
				require.NoError(t, err)
				require.Equal(t, data, got, "length %d", n)
			}
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for n := 0; n <= 64; n++ {
		for range 16 {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(rng.UintN(256))
			}

			septets := Pack(data)
			for _, v := range septets {
				require.Less(t, v, byte(128))
			}

			got, err := Unpack(septets)
			require.NoError(t, err)
			require.Equal(t, data, got, "length %d (mod 7 = %d)", n, n%7)
		}
	}
}

func TestUnpack_DiscardsPadding(t *testing.T) {
	// one septet carries 7 bits, not enough for a byte
	got, err := Unpack([]byte{0x7F})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnpack_InvalidSeptet(t *testing.T) {
	_, err := Unpack([]byte{0x01, 0x80})
	require.ErrorIs(t, err, errs.ErrInvalidSeptet)
}

func BenchmarkPack(b *testing.B) {
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i * 31)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = Pack(data)
	}
}
