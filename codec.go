package savecode

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/arloliu/savecode/alphabet"
	"github.com/arloliu/savecode/bitpack"
	"github.com/arloliu/savecode/compress"
	"github.com/arloliu/savecode/dict"
	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/format"
	"github.com/arloliu/savecode/internal/options"
	"github.com/arloliu/savecode/minimize"
	"github.com/arloliu/savecode/snapshot"
	"github.com/arloliu/savecode/token"
)

// Codec encodes snapshots into save codes and back.
//
// A Codec is immutable after New and safe for concurrent use.
type Codec struct {
	logger      zerolog.Logger
	compression format.CompressionType
	byteCodec   compress.Codec
	alphabet    *alphabet.Alphabet
	tokens      *token.Table
	defaults    *snapshot.Snapshot
}

// New creates a Codec.
//
// Parameters:
//   - opts: Optional configuration functions (WithLogger, WithCompression)
//
// Returns:
//   - *Codec: The configured codec
//   - error: An error if an option is invalid
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		logger:      zerolog.Nop(),
		compression: format.CompressionNone,
		byteCodec:   compress.NewNoOpCompressor(),
		alphabet:    alphabet.Default(),
		tokens:      token.Default(),
		defaults:    snapshot.Defaults(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compression returns the byte-stage compression type.
func (c *Codec) Compression() format.CompressionType {
	return c.compression
}

// Encode turns a snapshot into a save code.
//
// Items missing an identity field are dropped with a warning on the
// logger; the rest of the snapshot is still encoded. The same snapshot
// always yields the same code.
//
// Returns:
//   - string: the code, made only of alphabet symbols
//   - error: errs.ErrSerialize (wrapping the cause) when s is nil, carries
//     non-finite numbers, or cannot be serialized. No partial code is
//     returned.
func (c *Codec) Encode(s *snapshot.Snapshot) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSerialize, err)
	}

	compact, warnings := minimize.Minimize(s, c.defaults)
	for _, w := range warnings {
		c.logDropped(w)
	}

	text, err := json.Marshal(compact)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSerialize, err)
	}

	tokenized := c.tokens.Compress(string(text))
	packed := dict.Compress(tokenized)

	payload, err := c.byteCodec.Compress([]byte(packed))
	if err != nil {
		return "", fmt.Errorf("%w: %s compression: %w", errs.ErrSerialize, c.compression, err)
	}

	code, err := c.alphabet.Encode(bitpack.Pack(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSerialize, err)
	}

	c.logger.Debug().
		Int("json", len(text)).
		Int("tokens", len(tokenized)).
		Int("dict", len(packed)).
		Int("bytes", len(payload)).
		Int("symbols", bitpack.PackedLen(len(payload))).
		Stringer("compression", c.compression).
		Msg("snapshot encoded")

	return code, nil
}

// Decode turns a save code back into a snapshot.
//
// Derived item fields are recomputed (see minimize.RestoreItem), omitted
// fields take their defaults and Screen is set to snapshot.ScreenResume.
//
// Every failure, including a panic in any stage, is reported as an error
// matching errs.ErrInvalidCode; the underlying cause stays reachable through
// errors.Is for diagnostics.
func (c *Codec) Decode(code string) (s *snapshot.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %v", errs.ErrInvalidCode, r)
		}
		if err != nil {
			c.logger.Debug().Err(err).Int("length", len(code)).Msg("decode failed")
		}
	}()

	s, err = c.decode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCode, err)
	}

	return s, nil
}

func (c *Codec) decode(code string) (*snapshot.Snapshot, error) {
	septets, err := c.alphabet.Decode(code)
	if err != nil {
		return nil, err
	}

	payload, err := bitpack.Unpack(septets)
	if err != nil {
		return nil, err
	}

	raw, err := c.byteCodec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%s decompression: %w", c.compression, err)
	}

	tokenized, err := dict.Decompress(string(raw))
	if err != nil {
		return nil, err
	}

	text, err := c.tokens.Decompress(tokenized)
	if err != nil {
		return nil, err
	}

	var compact minimize.Snapshot
	if err := json.Unmarshal([]byte(text), &compact); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStructuralParse, err)
	}

	s, err := minimize.Restore(&compact, c.defaults)
	if err != nil {
		return nil, err
	}
	s.Screen = snapshot.ScreenResume

	return s, nil
}

func (c *Codec) logDropped(err error) {
	var w *errs.ItemValidationWarning
	if !errors.As(err, &w) {
		c.logger.Warn().Err(err).Msg("item dropped from snapshot")
		return
	}

	c.logger.Warn().
		Str("collection", w.Collection).
		Int("index", w.Index).
		Str("missing", w.Field).
		Msg("item dropped from snapshot")
}
