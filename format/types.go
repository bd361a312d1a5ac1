package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/savecode/errs"
)

// CompressionType selects the optional general-purpose byte stage applied
// after dictionary compression.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// CompressionTypes lists every supported compression type.
var CompressionTypes = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name.
func ParseCompressionType(s string) (CompressionType, error) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CompressionType) UnmarshalText(text []byte) error {
	parsed, err := ParseCompressionType(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
