// Package savecode turns game snapshots into short, copyable save codes.
//
// A code is produced by a fixed pipeline:
//
//	snapshot -> minimize -> JSON -> token table -> dictionary -> [compress] -> 7-bit pack -> alphabet
//
// Decoding runs the same stages in reverse. Every stage is lossless for the
// data the previous stage produces, so decode(encode(s)) reproduces s, less
// the fields that are derived (item prices) or elided because they equal
// their defaults.
//
// Basic usage:
//
//	code, err := savecode.Encode(s)
//	if err != nil {
//	    return err
//	}
//	restored, err := savecode.Decode(code)
//	if errors.Is(err, errs.ErrInvalidCode) {
//	    // tell the player the code is invalid
//	}
//
// Use New with options to attach a logger or select byte-stage compression.
package savecode

import (
	"sync"

	"github.com/arloliu/savecode/alphabet"
	"github.com/arloliu/savecode/internal/hash"
	"github.com/arloliu/savecode/snapshot"
	"github.com/arloliu/savecode/token"
)

func init() {
	// Both constructors panic on a malformed table.
	_ = alphabet.Default()
	_ = token.Default()
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := New()
	if err != nil {
		panic(err)
	}

	return c
})

// Encode encodes s with the default codec. See Codec.Encode.
func Encode(s *snapshot.Snapshot) (string, error) {
	return defaultCodec().Encode(s)
}

// Decode decodes code with the default codec. See Codec.Decode.
func Decode(code string) (*snapshot.Snapshot, error) {
	return defaultCodec().Decode(code)
}

// Fingerprint returns a 64-bit hash of code, suitable for logging or
// de-duplicating codes without storing them.
func Fingerprint(code string) uint64 {
	return hash.ID(code)
}
