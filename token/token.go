// Package token substitutes known schema fragments with two-byte tokens.
//
// The table covers the field names and enum literals of the snapshot
// schema. Both directions use a single-pass longest-match scanner, so a
// pattern that prefixes a longer one can never corrupt it, regardless of
// table order.
//
//	Decompress(Compress(text)) == text
//
// holds for any text that does not contain the Escape byte.
package token

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/internal/pool"
)

// Table is an immutable bidirectional token table.
type Table struct {
	encode *trie
	decode *trie
	size   int
}

var std = sync.OnceValue(func() *Table {
	t, err := NewTable(patterns)
	if err != nil {
		panic(fmt.Sprintf("savecode: %v", err))
	}

	return t
})

// Default returns the process-wide table for the snapshot schema.
func Default() *Table {
	return std()
}

// NewTable builds a table; the token of patterns[i] is Escape followed by
// byte 0x21+i.
//
// Returns errs.ErrInvalidTokenTable for empty, duplicate or escape-carrying
// patterns, or when there are more patterns than token codes.
func NewTable(patterns []string) (*Table, error) {
	if len(patterns) > 0x7F-firstCode {
		return nil, fmt.Errorf("%w: %d patterns exceed the token space", errs.ErrInvalidTokenTable, len(patterns))
	}

	t := &Table{encode: newTrie(), decode: newTrie(), size: len(patterns)}
	for i, p := range patterns {
		if p == "" || strings.IndexByte(p, Escape) >= 0 {
			return nil, fmt.Errorf("%w: pattern %d is not usable", errs.ErrInvalidTokenTable, i)
		}
		tok := Code(i)
		if !t.encode.insert(p, tok) {
			return nil, fmt.Errorf("%w: duplicate pattern %q", errs.ErrInvalidTokenTable, p)
		}
		t.decode.insert(tok, p)
	}

	return t, nil
}

// Code returns the token for pattern index i.
func Code(i int) string {
	return string([]byte{Escape, byte(firstCode + i)}) //nolint:gosec
}

// Len returns the number of patterns.
func (t *Table) Len() int {
	return t.size
}

// Compress replaces every pattern occurrence with its token.
func (t *Table) Compress(text string) string {
	return t.scan(t.encode, text)
}

// Decompress expands tokens back to their patterns.
//
// Returns errs.ErrInvalidToken if an Escape byte does not start a known token.
func (t *Table) Decompress(text string) (string, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(text) * 2)

	for i := 0; i < len(text); {
		if value, n := t.decode.longest(text[i:]); n > 0 {
			_, _ = buf.WriteString(value)
			i += n

			continue
		}
		if text[i] == Escape {
			return "", fmt.Errorf("%w at offset %d", errs.ErrInvalidToken, i)
		}
		_ = buf.WriteByte(text[i])
		i++
	}

	return buf.String(), nil
}

func (t *Table) scan(tr *trie, text string) string {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if value, n := tr.longest(text[i:]); n > 0 {
			_, _ = buf.WriteString(value)
			i += n

			continue
		}
		_ = buf.WriteByte(text[i])
		i++
	}

	return buf.String()
}

// Compress applies the default table.
func Compress(text string) string {
	return Default().Compress(text)
}

// Decompress applies the default table.
func Decompress(text string) (string, error) {
	return Default().Decompress(text)
}
