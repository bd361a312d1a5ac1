// Package alphabet defines the fixed 128-symbol vocabulary of save codes.
//
// Every symbol stands for one septet (a 7-bit value, 0-127). The alphabet
// is assembled from four fixed ASCII ranges with easily confused glyphs
// removed, then padded from a pool of Latin letters until it holds exactly
// 128 symbols:
//
//   - uppercase letters without I and O
//   - lowercase letters without l
//   - digits without 0 and 1
//   - the unreserved URL punctuation "-._~"
//   - a prefix of Latin-1 Supplement and Latin Extended-A letters
//
// The alphabet is built once per process and never mutated, so it is safe
// for concurrent use.
package alphabet

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/arloliu/savecode/errs"
)

// Size is the number of symbols in the alphabet.
const Size = 128

const (
	upper       = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lower       = "abcdefghijkmnopqrstuvwxyz"
	digits      = "23456789"
	punctuation = "-._~"
)

// maxRune bounds the symbol lookup table, covering Latin Extended-A.
const maxRune = 0x180

// Alphabet maps septets to symbols and back.
type Alphabet struct {
	symbols [Size]rune
	index   [maxRune]int16 // symbol -> septet, -1 when absent
}

var std = sync.OnceValue(func() *Alphabet {
	a, err := Build()
	if err != nil {
		panic(fmt.Sprintf("savecode: %v", err))
	}

	return a
})

// Default returns the process-wide alphabet.
//
// It panics if the alphabet fails validation. That can only happen when the
// symbol ranges in this package are edited incorrectly.
func Default() *Alphabet {
	return std()
}

// Build assembles and validates the alphabet.
//
// Returns:
//   - *Alphabet: the validated alphabet
//   - error: errs.ErrInvalidAlphabet if the assembled symbols are not exactly
//     128 distinct printable runes
func Build() (*Alphabet, error) {
	return build(candidates())
}

func candidates() []rune {
	base := []rune(upper + lower + digits + punctuation)
	for _, r := range extendedPool() {
		if len(base) == Size {
			break
		}
		base = append(base, r)
	}

	return base
}

// extendedPool lists the Latin letters used to pad the base ranges, skipping
// the multiplication and division signs of Latin-1.
func extendedPool() []rune {
	pool := make([]rune, 0, 192)
	for r := rune(0xC0); r < maxRune; r++ {
		if r == 0xD7 || r == 0xF7 {
			continue
		}
		pool = append(pool, r)
	}

	return pool
}

func build(symbols []rune) (*Alphabet, error) {
	if len(symbols) != Size {
		return nil, fmt.Errorf("%w: got %d symbols", errs.ErrInvalidAlphabet, len(symbols))
	}

	a := &Alphabet{}
	for i := range a.index {
		a.index[i] = -1
	}

	for i, r := range symbols {
		if r < 0 || r >= maxRune || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return nil, fmt.Errorf("%w: symbol %q is not usable", errs.ErrInvalidAlphabet, r)
		}
		if a.index[r] >= 0 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", errs.ErrInvalidAlphabet, r)
		}
		a.symbols[i] = r
		a.index[r] = int16(i) //nolint:gosec
	}

	return a, nil
}

// Symbols returns a copy of the symbols in septet order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, Size)
	copy(out, a.symbols[:])

	return out
}

// Symbol returns the symbol for septet v. It panics if v >= 128.
func (a *Alphabet) Symbol(v byte) rune {
	return a.symbols[v]
}

// Index returns the septet of symbol r and whether r belongs to the alphabet.
func (a *Alphabet) Index(r rune) (byte, bool) {
	if r < 0 || r >= maxRune {
		return 0, false
	}
	v := a.index[r]
	if v < 0 {
		return 0, false
	}

	return byte(v), true
}

// Encode maps septets to their symbols.
//
// Returns errs.ErrInvalidSeptet if any value is not below 128.
func (a *Alphabet) Encode(septets []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(septets) * 2)
	for i, v := range septets {
		if v >= Size {
			return "", fmt.Errorf("%w: %d at %d", errs.ErrInvalidSeptet, v, i)
		}
		sb.WriteRune(a.symbols[v])
	}

	return sb.String(), nil
}

// Decode maps every symbol of text back to its septet.
//
// Returns an *errs.InvalidSymbolError for the first rune outside the alphabet.
func (a *Alphabet) Decode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	offset := 0
	for _, r := range text {
		v, ok := a.Index(r)
		if !ok {
			return nil, &errs.InvalidSymbolError{Symbol: r, Offset: offset}
		}
		out = append(out, v)
		offset++
	}

	return out, nil
}
