package savecode

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/savecode/compress"
	"github.com/arloliu/savecode/format"
	"github.com/arloliu/savecode/internal/options"
)

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithLogger sets the logger for dropped-item warnings and stage diagnostics.
// Codecs log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *Codec) {
		c.logger = logger
	})
}

// WithCompression inserts a general-purpose codec between the dictionary
// stage and the bit packer. The default, format.CompressionNone, produces
// the canonical code format.
//
// Codes are not self-describing: a code encoded with one compression type
// only decodes with a Codec configured with the same type.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *Codec) error {
		codec, err := compress.GetCodec(compressionType)
		if err != nil {
			return fmt.Errorf("savecode: %w", err)
		}
		c.compression = compressionType
		c.byteCodec = codec

		return nil
	})
}
