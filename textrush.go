/*
Package textrush provides a Unicode-aware, multi-pattern keyword matcher
built on a dynamic Aho-Corasick automaton.

A Matcher holds a set of (keyword, clean_name) associations and answers
three kinds of question against arbitrary input text: which keywords
occur and where (Extract / ExtractWithSpans), what the text looks like
with every occurrence rewritten to its clean_name (Replace), and which
registered keywords look approximately like some query string
(FuzzySearch).

Key Features:
  - AddKeyword / RemoveKeyword: mutate the keyword set; the underlying
    automaton is rebuilt lazily on the next query, never eagerly.
  - BulkAdd / BulkRemove: ingest or drop many keywords in one call.
  - Extract / ExtractWithSpans: locate every occurrence under the ALL or
    Longest emission mode.
  - Replace: single-pass rewrite using the Longest, non-overlapping cover.
  - FuzzySearch: approximate match against the registered keyword set.
  - HasKeyword / Contains / Size / EnumerateKeywords: introspection.

Concurrency:
  - A Matcher is safe for concurrent read-only queries once no mutation
    is in flight. It is not safe for concurrent mutation, nor for a
    mutation racing a query; callers must serialize those themselves.
    Internally every operation is guarded by a read-write mutex matching
    that discipline: write lock across mutation and automaton rebuild,
    read lock across everything else.
*/
package textrush

import (
	"errors"
	"strings"
	"sync"

	"github.com/Zubayear/textrush/automaton"
	"github.com/Zubayear/textrush/emission"
	"github.com/Zubayear/textrush/fold"
	"github.com/Zubayear/textrush/fuzzy"
	"github.com/Zubayear/textrush/internal/container/deque"
	"github.com/Zubayear/textrush/internal/container/set"
	"github.com/Zubayear/textrush/internal/container/stack"
	"github.com/Zubayear/textrush/scanner"
	"github.com/Zubayear/textrush/trie"
)

// Mode selects how overlapping raw hits are filtered for Extract and
// ExtractWithSpans.
type Mode = emission.Mode

const (
	// All keeps every raw hit, ordered by start then length.
	All = emission.ALL
	// Longest keeps a non-overlapping, leftmost-longest cover.
	Longest = emission.Longest
)

// Error kinds surfaced by the public operations. ErrEmptyKeyword and
// ErrInvalidThreshold are defined by the packages that detect them;
// re-exported here so callers need only import textrush.
var (
	ErrEmptyKeyword     = trie.ErrEmptyKeyword
	ErrInvalidMode      = emission.ErrInvalidMode
	ErrInvalidThreshold = fuzzy.ErrInvalidThreshold
)

// ParseMode accepts the case-insensitive string "all"/"longest" at a
// public boundary (a CLI flag, a config file, a wire request) and
// normalizes it to the internal enum. Extract and ExtractWithSpans take
// the symbolic Mode value directly.
func ParseMode(s string) (Mode, error) {
	return emission.ParseMode(s)
}

// Match is one caller-visible hit: a clean_name and the byte span it
// covers in the queried text.
type Match struct {
	CleanName string
	Start     int
	End       int
}

// KeywordEntry is one registered keyword as returned by EnumerateKeywords.
type KeywordEntry struct {
	Keyword   string
	CleanName string
}

// DuplicatePolicy controls how BulkAdd treats an empty keyword among
// many: Ignore skips it silently, Raise stops the whole call and
// reports how many keywords were added before the failure.
type DuplicatePolicy int

const (
	// IgnoreEmptyKeywords skips empty keywords during BulkAdd instead of
	// failing the call.
	IgnoreEmptyKeywords DuplicatePolicy = iota
	// RaiseOnEmptyKeyword fails BulkAdd at the first empty keyword.
	RaiseOnEmptyKeyword
)

// Matcher is a long-lived, case-sensitivity-pinned keyword matcher. The
// zero value is not usable; construct with New.
type Matcher struct {
	mu            sync.RWMutex
	caseSensitive bool
	arena         *trie.Arena
	engine        *automaton.Automaton
	folded        *set.Set[string]
}

// New creates an empty Matcher. caseSensitive is fixed for the
// Matcher's lifetime.
func New(caseSensitive bool) *Matcher {
	return &Matcher{
		caseSensitive: caseSensitive,
		arena:         trie.New(),
		engine:        automaton.New(),
		folded:        set.New[string](),
	}
}

// AddKeyword registers keyword, matched under the Matcher's folding
// mode, with cleanName as its replacement string. An empty cleanName
// defaults to keyword itself. Fails with ErrEmptyKeyword if keyword has
// zero scalars.
func (m *Matcher) AddKeyword(keyword, cleanName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addKeywordLocked(keyword, cleanName)
}

func (m *Matcher) addKeywordLocked(keyword, cleanName string) error {
	folded := fold.FoldString(keyword, m.caseSensitive)
	scalars := []rune(folded)
	if cleanName == "" {
		cleanName = keyword
	}
	if err := m.arena.Add(scalars, cleanName, keyword); err != nil {
		return err
	}
	m.folded.Insert(folded)
	m.engine.MarkDirty()
	return nil
}

// RemoveKeyword unregisters keyword. A keyword that was never
// registered, or one registered under different casing than the
// Matcher's folding mode would match, is a no-op.
func (m *Matcher) RemoveKeyword(keyword string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeKeywordLocked(keyword)
}

func (m *Matcher) removeKeywordLocked(keyword string) {
	folded := fold.FoldString(keyword, m.caseSensitive)
	if m.arena.Remove([]rune(folded)) {
		m.folded.Remove(folded)
		m.engine.MarkDirty()
	}
}

// BulkAdd registers every (keyword, cleanName) pair in keywords. An
// empty cleanName within the map defaults to its keyword, same as
// AddKeyword. onEmpty decides what happens when a keyword is empty:
// IgnoreEmptyKeywords skips it and keeps going, RaiseOnEmptyKeyword
// stops at the first one. Returns the number of keywords actually
// added before any failure.
func (m *Matcher) BulkAdd(keywords map[string]string, onEmpty DuplicatePolicy) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	added := 0
	for keyword, cleanName := range keywords {
		err := m.addKeywordLocked(keyword, cleanName)
		if err != nil {
			if errors.Is(err, trie.ErrEmptyKeyword) && onEmpty == IgnoreEmptyKeywords {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

// BulkRemove unregisters every keyword in keywords; each is a no-op if
// not present, same as RemoveKeyword.
func (m *Matcher) BulkRemove(keywords []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keywords {
		m.removeKeywordLocked(k)
	}
}

// Size returns the number of registered keywords.
func (m *Matcher) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.arena.Size()
}

// HasKeyword reports whether keyword, under the Matcher's folding mode,
// is currently registered. O(1), independent of trie depth.
func (m *Matcher) HasKeyword(keyword string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.folded.Contains(fold.FoldString(keyword, m.caseSensitive))
}

// EnumerateKeywords returns every registered (keyword, clean_name) pair,
// in unspecified order. The traversal is an iterative depth-first walk
// of the trie arena.
func (m *Matcher) EnumerateKeywords() []KeywordEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	frontier := stack.New[int]()
	frontier.Push(trie.RootIndex)
	collected := deque.New[KeywordEntry]()

	for !frontier.IsEmpty() {
		idx, _ := frontier.Pop()
		node := m.arena.Node(idx)
		if node.HasPayload() {
			collected.PushBack(KeywordEntry{Keyword: node.Original(), CleanName: node.Payload()})
		}
		for _, child := range m.arena.Children(idx) {
			frontier.Push(child)
		}
	}
	return collected.Drain()
}

// ensureFresh rebuilds the automaton if a mutation has invalidated it.
// Building mutates node bookkeeping fields in the arena, so it runs
// under the write lock even though it is reached from read operations.
func (m *Matcher) ensureFresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine.Dirty() {
		m.engine.Build(m.arena)
	}
}

// ExtractWithSpans returns every clean_name hit in text along with its
// byte span, filtered under mode. Fails with ErrInvalidMode if mode is
// neither All nor Longest.
func (m *Matcher) ExtractWithSpans(text string, mode Mode) ([]Match, error) {
	if mode != All && mode != Longest {
		return nil, ErrInvalidMode
	}

	m.ensureFresh()
	m.mu.RLock()
	defer m.mu.RUnlock()

	stream := fold.Walk(text, m.caseSensitive)
	hits := scanner.Scan(m.arena, stream)
	spans := emission.Select(hits, mode)

	matches := make([]Match, len(spans))
	for i, s := range spans {
		matches[i] = Match{CleanName: s.Payload, Start: s.Start, End: s.End}
	}
	return matches, nil
}

// Extract returns every clean_name hit in text, filtered under mode.
// Fails with ErrInvalidMode if mode is neither All nor Longest.
func (m *Matcher) Extract(text string, mode Mode) ([]string, error) {
	matches, err := m.ExtractWithSpans(text, mode)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, mt := range matches {
		names[i] = mt.CleanName
	}
	return names, nil
}

// Replace rewrites text by substituting every Longest-mode hit with its
// clean_name, leaving everything else untouched. Infallible: Longest is
// always a valid mode.
func (m *Matcher) Replace(text string) string {
	matches, _ := m.ExtractWithSpans(text, Longest)

	var b strings.Builder
	last := 0
	for _, mt := range matches {
		b.WriteString(text[last:mt.Start])
		b.WriteString(mt.CleanName)
		last = mt.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Contains reports whether any registered keyword occurs anywhere in
// text, without collecting spans. Cheaper than a non-empty
// ExtractWithSpans result when only existence matters.
func (m *Matcher) Contains(text string) bool {
	m.ensureFresh()
	m.mu.RLock()
	defer m.mu.RUnlock()

	stream := fold.Walk(text, m.caseSensitive)
	return scanner.Contains(m.arena, stream)
}

// FuzzySearch scores every registered keyword against query using
// Levenshtein-normalized similarity and returns those at or above
// threshold, sorted by similarity descending and keyword ascending on
// ties. Fails with ErrInvalidThreshold if threshold is outside [0, 1].
func (m *Matcher) FuzzySearch(query string, threshold float64) ([]fuzzy.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fuzzy.Search(m.arena, query, threshold, m.caseSensitive)
}
