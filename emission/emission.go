/*
Package emission turns the scanner's raw, unfiltered hits into the two
caller-visible result shapes: ALL (every hit, ordered by start then
length) and LONGEST (a non-overlapping, leftmost-longest cover).

LONGEST's "keep the longest hit per start offset" reduction is exactly a
group-by-key-then-scan, so it is built on the adapted treemap container:
raw hits are folded into a start-byte-keyed map (later insertions for
the same start only survive if they extend further), then walked in
ascending key order for the greedy acceptance pass.
*/
package emission

import (
	"errors"
	"sort"
	"strings"

	"github.com/Zubayear/textrush/internal/container/treemap"
	"github.com/Zubayear/textrush/scanner"
)

// Mode selects which hits survive emission.
type Mode int

const (
	// ALL keeps every raw hit, sorted by (start, end).
	ALL Mode = iota
	// Longest keeps a non-overlapping, leftmost-longest cover.
	Longest
)

// ErrInvalidMode is returned by ParseMode for any string other than the
// case-insensitive spellings of "all" and "longest".
var ErrInvalidMode = errors.New("emission: invalid mode")

// ParseMode accepts the case-insensitive strings "all"/"longest" at the
// public boundary and normalizes them to the internal enum immediately,
// per the package's mode-coercion convention.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "all":
		return ALL, nil
	case "longest":
		return Longest, nil
	default:
		return 0, ErrInvalidMode
	}
}

// Span is one emitted hit: a clean_name and the byte span it covers in
// the original text.
type Span struct {
	Payload string
	Start   int
	End     int
}

// Select filters/orders raw hits according to mode.
func Select(hits []scanner.Hit, mode Mode) []Span {
	switch mode {
	case Longest:
		return selectLongest(hits)
	default:
		return selectAll(hits)
	}
}

func selectAll(hits []scanner.Hit) []Span {
	spans := make([]Span, len(hits))
	for i, h := range hits {
		spans[i] = Span{Payload: h.Payload, Start: h.Start, End: h.End}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

func selectLongest(hits []scanner.Hit) []Span {
	byStart := treemap.New[int, scanner.Hit]()
	for _, h := range hits {
		if existing, ok := byStart.Get(h.Start); !ok || h.End > existing.End {
			byStart.Put(h.Start, h)
		}
	}

	var accepted []Span
	lastEnd := -1
	for _, start := range byStart.Keys() {
		h, _ := byStart.Get(start)
		if h.Start < lastEnd {
			continue
		}
		accepted = append(accepted, Span{Payload: h.Payload, Start: h.Start, End: h.End})
		lastEnd = h.End
	}
	return accepted
}
