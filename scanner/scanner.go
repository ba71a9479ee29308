/*
Package scanner implements the single-pass Aho-Corasick matcher over a
folded scalar stream: it walks the automaton's failure/output links once
per scalar and emits raw hits in end-position order. The scanner never
filters or orders hits beyond that — picking ALL vs. LONGEST is the
emission package's job.

Recovering a match's start byte without rescanning the input requires
remembering where the last few scalars started; the scanner keeps that
in a bounded ring (the adapted queue package, in its NewBounded form)
sized to the longest registered keyword, giving O(max-keyword-length)
auxiliary state as the component design calls for.
*/
package scanner

import (
	"github.com/Zubayear/textrush/fold"
	"github.com/Zubayear/textrush/internal/container/queue"
	"github.com/Zubayear/textrush/trie"
)

// Hit is one raw, unfiltered match.
type Hit struct {
	Payload string
	Start   int
	End     int
}

// Scan runs one linear pass of stream over a's automaton (the caller is
// responsible for having built it — see automaton.Build) and returns raw
// hits in order of increasing End; hits sharing an End are ordered
// deepest-match-first, following the output-link chain.
func Scan(a *trie.Arena, stream fold.Stream) []Hit {
	maxLen := a.MaxLen()
	if maxLen == 0 {
		return nil
	}

	var hits []Hit
	window := queue.NewBounded[int](maxLen)
	current := trie.RootIndex

	for _, sc := range stream.Scalars {
		for current != trie.RootIndex {
			if _, ok := a.Child(current, sc.Value); ok {
				break
			}
			current = a.Node(current).FailureLink()
		}
		if child, ok := a.Child(current, sc.Value); ok {
			current = child
		}

		window.Enqueue(sc.Offset)
		endByte := sc.Offset + sc.Width

		node := current
		if !a.Node(node).HasPayload() {
			node = a.Node(node).OutputLink()
		}
		for node != trie.NoNode {
			n := a.Node(node)
			k := n.KeywordLenScalars()
			startByte, _ := window.PeekFromRear(k - 1)
			hits = append(hits, Hit{Payload: n.Payload(), Start: startByte, End: endByte})
			node = n.OutputLink()
		}
	}
	return hits
}

// Contains reports whether any registered keyword occurs in stream,
// short-circuiting at the first raw hit. A pure performance addition
// over Scan: same single pass, no need to collect every hit when the
// caller only wants existence.
func Contains(a *trie.Arena, stream fold.Stream) bool {
	maxLen := a.MaxLen()
	if maxLen == 0 {
		return false
	}

	current := trie.RootIndex
	for _, sc := range stream.Scalars {
		for current != trie.RootIndex {
			if _, ok := a.Child(current, sc.Value); ok {
				break
			}
			current = a.Node(current).FailureLink()
		}
		if child, ok := a.Child(current, sc.Value); ok {
			current = child
		}

		if a.Node(current).HasPayload() || a.Node(current).OutputLink() != trie.NoNode {
			return true
		}
	}
	return false
}
