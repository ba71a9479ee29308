/*
Package fold implements the Unicode scalar walk and simple case folding
the matching engine scans over. It decodes a string into its sequence of
Unicode scalar values, pairing each with the byte offset and width of its
original (pre-fold) encoding, so that every span reported downstream is a
byte offset into the caller's original string rather than into any
folded copy.

Folding is deliberately the simple, per-scalar, single-rune-in/single-
rune-out mapping `unicode.ToLower` provides — not locale-sensitive and
not expanding (no ligature splitting, no Turkish-I special casing). That
matches the matcher's documented folding contract: the same mapping is
applied to keywords at insertion time and to text at scan time, so a
keyword and a text span compare equal under folding iff they are equal
under `strings.ToLower` applied scalar-by-scalar.
*/
package fold

import (
	"unicode"
	"unicode/utf8"
)

// Scalar is one decoded Unicode scalar value from an input string.
//
// Value is the scalar after folding (or the original scalar, if folding
// is disabled). Offset and Width describe the scalar's position in the
// *original*, pre-fold byte encoding — folding a scalar can change how
// many bytes it takes to encode (for example the Kelvin sign K, U+212A,
// is three bytes but folds to the one-byte ASCII 'k'), so spans must be
// computed from the original width, never the folded one, or they would
// point at the wrong byte in the caller's string.
type Scalar struct {
	Value  rune
	Offset int
	Width  int
}

// Stream is the decoded scalar sequence of one input string, plus the
// string's total UTF-8 byte length.
type Stream struct {
	Scalars []Scalar
	ByteLen int
}

// Fold returns the simple case fold of a single scalar value. When case
// folding is not wanted, callers should skip calling Fold entirely
// rather than rely on it being a no-op for any particular rune.
func Fold(r rune) rune {
	// unicode.ToLower is exactly the single-scalar, non-expanding mapping
	// the matcher's folding contract requires.
	return unicode.ToLower(r)
}

// Walk decodes s into a Stream. When caseSensitive is false, every
// decoded scalar is replaced by its simple case fold; the byte offset
// and width recorded for it still describe the ORIGINAL scalar's
// encoding in s, so spans computed from a folded scan remain byte-
// accurate against s.
func Walk(s string, caseSensitive bool) Stream {
	scalars := make([]Scalar, 0, len(s))
	offset := 0
	for _, r := range s {
		// Width as encoded in s: an invalid byte decodes to U+FFFD with
		// width 1, so it is treated as a single raw byte.
		_, width := utf8.DecodeRuneInString(s[offset:])
		value := r
		if !caseSensitive {
			value = Fold(r)
		}
		scalars = append(scalars, Scalar{Value: value, Offset: offset, Width: width})
		offset += width
	}
	return Stream{Scalars: scalars, ByteLen: len(s)}
}

// FoldString folds every scalar of s into a new string, used to
// normalize keywords at insertion time so that the trie's children maps
// and the scanner's lookups share one folded alphabet. When
// caseSensitive is true, s is returned unchanged.
func FoldString(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, Fold(r))
	}
	return string(out)
}
