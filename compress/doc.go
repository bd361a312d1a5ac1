// Package compress provides the optional byte-stage codecs of save codes.
//
// Save codes are built from a fixed pipeline (token substitution, dictionary
// compression, 7-bit packing). A general-purpose codec can be inserted
// between the dictionary stage and the bit packer:
//
//   - None: no compression, the canonical code format
//   - Zstd: best ratio on larger snapshots, but a frame header of several bytes
//   - S2: low overhead, fast
//   - LZ4: block format, no frame header
//
// Codes carry no algorithm marker, so the decoder must be configured with the
// same type as the encoder.
//
// All codecs are stateless values (pooled internals where the library
// benefits from reuse) and safe for concurrent use.
//
// By default Zstd uses the pure-Go github.com/klauspost/compress/zstd. Build
// with the gozstd tag to use the cgo binding github.com/valyala/gozstd.
package compress
