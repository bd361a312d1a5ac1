// Package errs defines the errors returned by the savecode packages.
//
// Callers should match errors with errors.Is against the sentinel values
// below. Typed errors carry extra context and still match their sentinel.
package errs

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate a broken build and are fatal.
var (
	ErrInvalidAlphabet   = errors.New("alphabet must contain exactly 128 distinct symbols")
	ErrInvalidTokenTable = errors.New("invalid token table")
)

// Encode errors.
var (
	ErrNilSnapshot        = errors.New("snapshot is nil")
	ErrNonFinite          = errors.New("non-finite number")
	ErrSerialize          = errors.New("failed to serialize snapshot")
	ErrItemValidation     = errors.New("item is missing a mandatory field")
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Decode errors.
var (
	ErrInvalidCode            = errors.New("invalid code")
	ErrInvalidSymbol          = errors.New("invalid symbol")
	ErrInvalidSeptet          = errors.New("septet out of range")
	ErrInvalidToken           = errors.New("invalid token")
	ErrMalformedDictionary    = errors.New("malformed dictionary header")
	ErrInvalidDictionaryToken = errors.New("invalid dictionary token")
	ErrStructuralParse        = errors.New("malformed structured record")
	ErrMissingField           = errors.New("missing mandatory field")
)

// InvalidSymbolError reports a character that is not part of the alphabet.
type InvalidSymbolError struct {
	Symbol rune
	Offset int // rune offset within the input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at offset %d", e.Symbol, e.Offset)
}

// Is reports whether target is ErrInvalidSymbol.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// ItemValidationWarning reports an item dropped during minimization.
//
// It is recoverable: encoding continues without the item.
type ItemValidationWarning struct {
	Collection string // "inventory", "bossDrops" or "loadout.<slot>"
	Index      int
	Field      string
}

func (w *ItemValidationWarning) Error() string {
	return fmt.Sprintf("%s[%d]: item dropped, missing %s", w.Collection, w.Index, w.Field)
}

// Is reports whether target is ErrItemValidation.
func (w *ItemValidationWarning) Is(target error) bool {
	return target == ErrItemValidation
}
