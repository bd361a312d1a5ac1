package savecode

import (
	"testing"

	"github.com/arloliu/savecode/format"
)

func BenchmarkEncode(b *testing.B) {
	for _, ct := range format.CompressionTypes {
		b.Run(ct.String(), func(b *testing.B) {
			c, err := New(WithCompression(ct))
			if err != nil {
				b.Fatal(err)
			}
			s := populated()

			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Encode(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	code, err := Encode(populated())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len([]rune(code))), "symbols")

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Decode(code); err != nil {
			b.Fatal(err)
		}
	}
}
