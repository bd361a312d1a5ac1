// Package dict compresses residual repetition with a per-payload dictionary.
//
// Compress mines repeated substrings of length 4 to 15, keeps the ones that
// save characters, and replaces them with three-byte references
// Escape, 0x20+index, Escape. A header carrying the dictionary is prepended:
//
//	Start entry0 Separator entry1 ... End body
//
// Text without any profitable substring is returned unchanged and carries
// no header. Neither the input nor any entry may contain the reserved bytes
// Escape, Separator, Start or End.
package dict

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/internal/pool"
)

// Reserved bytes.
const (
	Escape    = 0x00
	Start     = 0x02
	End       = 0x03
	Separator = 0x1F
)

const (
	// MaxEntries bounds the dictionary size.
	MaxEntries = 30
	// MinPatternLen and MaxPatternLen bound mined substring lengths.
	MinPatternLen = 4
	MaxPatternLen = 15
	// MinOccurrences is the smallest count worth a dictionary entry.
	MinOccurrences = 3

	// referenceOverhead approximates the header and reference cost of an entry.
	referenceOverhead = 3
	referenceLen      = 3
	firstIndexCode    = 0x20
)

const reserved = "\x00\x02\x03\x1f"

type candidate struct {
	pattern string
	benefit int
}

// Compress returns text with repeated substrings replaced by references.
//
// The result is never longer than text: when the header would cost more
// than the references save, text is returned unchanged.
func Compress(text string) string {
	dictionary, body := substitute(text, mine(text))
	if len(dictionary) == 0 {
		return text
	}
	size := 2 + len(body) + len(dictionary) - 1
	for _, entry := range dictionary {
		size += len(entry)
	}
	if size >= len(text) {
		return text
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(body) + len(dictionary)*(MaxPatternLen+1) + 2)

	_ = buf.WriteByte(Start)
	for i, entry := range dictionary {
		if i > 0 {
			_ = buf.WriteByte(Separator)
		}
		_, _ = buf.WriteString(entry)
	}
	_ = buf.WriteByte(End)
	_, _ = buf.WriteString(body)

	return buf.String()
}

// mine returns the profitable substrings of text, best first.
//
// Counting includes overlapping occurrences. Ties keep discovery order
// (shorter length first, then earlier first occurrence), so the result is
// deterministic.
func mine(text string) []candidate {
	maxLen := min(MaxPatternLen, len(text)/3)

	var candidates []candidate
	for l := MinPatternLen; l <= maxLen; l++ {
		counts := make(map[string]int)
		var order []string
		for i := 0; i+l <= len(text); i++ {
			s := text[i : i+l]
			if strings.ContainsAny(s, reserved) {
				continue
			}
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}

		for _, s := range order {
			count := counts[s]
			if count < MinOccurrences {
				continue
			}
			benefit := l*count - (l + referenceOverhead)
			if benefit <= 0 {
				continue
			}
			candidates = append(candidates, candidate{pattern: s, benefit: benefit})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.benefit, a.benefit)
	})
	if len(candidates) > MaxEntries {
		candidates = candidates[:MaxEntries]
	}

	return candidates
}

// substitute replaces candidates, in order, while they still occur often
// enough in the partially substituted text to pay for their entry.
func substitute(text string, candidates []candidate) ([]string, string) {
	var dictionary []string
	for _, c := range candidates {
		if len(dictionary) == MaxEntries {
			break
		}
		if !profitable(strings.Count(text, c.pattern), len(c.pattern)) {
			continue
		}
		text = strings.ReplaceAll(text, c.pattern, reference(len(dictionary)))
		dictionary = append(dictionary, c.pattern)
	}

	return dictionary, text
}

// profitable reports whether count references save more than the entry
// and its separator cost.
func profitable(count, length int) bool {
	return count*(length-referenceLen) > length+1
}

func reference(index int) string {
	return string([]byte{Escape, byte(firstIndexCode + index), Escape}) //nolint:gosec
}

// Decompress reverses Compress.
//
// Text that does not start with the Start byte is returned unchanged.
//
// Returns:
//   - errs.ErrMalformedDictionary if the header has no End byte
//   - errs.ErrInvalidDictionaryToken if a reference is truncated or points
//     outside the dictionary
func Decompress(text string) (string, error) {
	dictionary, body, err := parseHeader(text)
	if err != nil {
		return "", err
	}
	if dictionary == nil {
		return text, nil
	}

	return expand(body, dictionary)
}

func parseHeader(text string) ([]string, string, error) {
	if len(text) == 0 || text[0] != Start {
		return nil, text, nil
	}

	end := strings.IndexByte(text, End)
	if end < 0 {
		return nil, "", fmt.Errorf("%w: missing terminator", errs.ErrMalformedDictionary)
	}
	dictionary := strings.Split(text[1:end], string(rune(Separator)))
	if len(dictionary) > MaxEntries {
		return nil, "", fmt.Errorf("%w: %d entries", errs.ErrMalformedDictionary, len(dictionary))
	}

	return dictionary, text[end+1:], nil
}

// expand resolves references in a single left-to-right pass. References are
// fixed-width and framed by Escape on both sides, so no index can be
// mistaken for part of another.
func expand(body string, dictionary []string) (string, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(body) * 2)

	for i := 0; i < len(body); {
		if body[i] != Escape {
			_ = buf.WriteByte(body[i])
			i++

			continue
		}
		if i+2 >= len(body) || body[i+2] != Escape {
			return "", fmt.Errorf("%w: truncated at offset %d", errs.ErrInvalidDictionaryToken, i)
		}
		index := int(body[i+1]) - firstIndexCode
		if index < 0 || index >= len(dictionary) {
			return "", fmt.Errorf("%w: index %d at offset %d", errs.ErrInvalidDictionaryToken, index, i)
		}
		_, _ = buf.WriteString(dictionary[index])
		i += 3
	}

	return buf.String(), nil
}

// Entries returns the dictionary embedded in compressed text, or nil when
// the text carries no header.
func Entries(text string) ([]string, error) {
	dictionary, _, err := parseHeader(text)

	return dictionary, err
}
