// Package splitter cuts extracted text into size-bounded fragments.
package splitter

import (
	"strings"
	"unicode"
)

// DefaultMaxChunkChars is the default per-chunk character ceiling.
const DefaultMaxChunkChars = 4000

// Splitter partitions document text into ordered fragments of at most
// maxChunkChars characters each. Splitting is lossless and non-overlapping:
// concatenating the fragments in index order reproduces the input exactly.
type Splitter struct {
	maxChunkChars int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithMaxChunkChars sets the per-fragment character ceiling.
func WithMaxChunkChars(n int) Option {
	return func(s *Splitter) {
		if n > 0 {
			s.maxChunkChars = n
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{maxChunkChars: DefaultMaxChunkChars}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxChunkChars returns the configured per-fragment ceiling.
func (s *Splitter) MaxChunkChars() int {
	return s.maxChunkChars
}

// Fragment is one ordered piece of a document's text.
// Index 0 means the whole document fit in a single fragment;
// fragments of a split document are indexed from 1, contiguously.
type Fragment struct {
	Index int
	Text  string
}

// Outcome is the result of splitting one document: either a fragment list
// or a skip reason. The caller branches on data, not on an error value.
type Outcome struct {
	Fragments  []Fragment
	SkipReason string
}

// Skipped reports whether the document was rejected.
func (o Outcome) Skipped() bool {
	return o.SkipReason != ""
}

// Split partitions text into fragments. Pure function: no I/O, no state.
//
// Text that fits within the ceiling becomes a single fragment with index 0.
// Longer text is cut greedily: each fragment takes at most maxChunkChars
// characters, ending at the nearest preceding whitespace boundary when one
// exists inside the window, otherwise hard-cut at the character limit.
// Characters are counted as runes, so a cut never lands inside a UTF-8
// sequence. Empty or whitespace-only text yields a skip outcome.
func (s *Splitter) Split(text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{SkipReason: "no extractable text"}
	}

	runes := []rune(text)
	if len(runes) <= s.maxChunkChars {
		return Outcome{Fragments: []Fragment{{Index: 0, Text: text}}}
	}

	fragments := make([]Fragment, 0, len(runes)/s.maxChunkChars+1)
	index := 1
	start := 0
	for start < len(runes) {
		end := start + s.maxChunkChars
		if end >= len(runes) {
			end = len(runes)
		} else {
			// Prefer the nearest whitespace boundary at or before the limit.
			// The fragment keeps the boundary rune so nothing is lost.
			for i := end - 1; i > start; i-- {
				if unicode.IsSpace(runes[i]) {
					end = i + 1
					break
				}
			}
		}
		fragments = append(fragments, Fragment{Index: index, Text: string(runes[start:end])})
		index++
		start = end
	}
	return Outcome{Fragments: fragments}
}
