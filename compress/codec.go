package compress

import (
	"fmt"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/format"
)

// maxDecodedSize bounds decompressed payloads; snapshots are far smaller, so
// anything larger is corrupt input.
const maxDecodedSize = 1 << 20

// Compressor compresses the byte form of a save code before bit packing.
//
// Inputs are small (the token and dictionary stages already removed most
// redundancy), so implementations favor low fixed overhead.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Decompress returns an error if the data is corrupted or was produced by a
// different algorithm. Implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression of a payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size (0 for an empty payload).
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when
// the codec expanded the payload, which is common for tiny inputs.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
//
// Returns errs.ErrInvalidCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Measure compresses data with the given type and reports the sizes.
func Measure(compressionType format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return Stats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
	}, nil
}
