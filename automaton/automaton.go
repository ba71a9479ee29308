/*
Package automaton computes the failure and output links over a trie
arena — the Aho-Corasick construction step — and tracks whether those
links are still valid ("clean") or need recomputing ("dirty") after a
mutation.

Construction is a breadth-first walk of the trie, using the adapted
queue package as the BFS frontier: children are discovered level by
level so that, by the time a node's failure link is computed, every
node shallower than it already has a correct one.
*/
package automaton

import (
	"github.com/Zubayear/textrush/internal/container/queue"
	"github.com/Zubayear/textrush/trie"
)

// Automaton tracks build state for one trie arena. It does not own the
// arena; callers pass it in on each Build call so a single Automaton can
// be reused across the matcher's lifetime as the arena grows.
type Automaton struct {
	dirty bool
}

// New creates an automaton that starts dirty (an empty arena still needs
// its root's trivial links established on first use, and an empty build
// is cheap).
func New() *Automaton {
	return &Automaton{dirty: true}
}

// MarkDirty flags the automaton as needing a rebuild before the next
// query. Called after every AddKeyword/RemoveKeyword.
func (b *Automaton) MarkDirty() {
	b.dirty = true
}

// Dirty reports whether Build must run before the arena can be scanned.
func (b *Automaton) Dirty() bool {
	return b.dirty
}

// Build recomputes failure and output links over a, if dirty. A second
// call on a clean automaton is a no-op (idempotent, reentrant-safe).
func (b *Automaton) Build(a *trie.Arena) {
	if !b.dirty {
		return
	}

	root := trie.RootIndex
	frontier := queue.New[int]()

	for _, child := range a.Children(root) {
		a.Node(child).SetFailureLink(root)
		a.Node(child).SetOutputLink(trie.NoNode)
		frontier.Enqueue(child)
	}

	for !frontier.IsEmpty() {
		u, _ := frontier.Dequeue()
		for s, v := range a.Children(u) {
			fail := a.Node(u).FailureLink()
			for fail != root {
				if _, ok := a.Child(fail, s); ok {
					break
				}
				fail = a.Node(fail).FailureLink()
			}
			if w, ok := a.Child(fail, s); ok && w != v {
				a.Node(v).SetFailureLink(w)
			} else {
				a.Node(v).SetFailureLink(root)
			}

			failNode := a.Node(a.Node(v).FailureLink())
			if failNode.HasPayload() {
				a.Node(v).SetOutputLink(a.Node(v).FailureLink())
			} else {
				a.Node(v).SetOutputLink(failNode.OutputLink())
			}

			frontier.Enqueue(v)
		}
	}

	b.dirty = false
}
