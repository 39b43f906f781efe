package morphology

import (
	"fmt"
	"iter"
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kotaroooo0/hanfish/dictionary"
	"github.com/kotaroooo0/hanfish/lattice"
)

// Korean analyzes Korean text with a lattice over a dictionary.
// It is safe for concurrent use.
type Korean struct {
	dic              dictionary.Dictionary
	maxUnknownLength int
	cacheSize        int

	// analyzed chunks; offsets are relative to the chunk
	cache   *lru.Cache[string, []MorphologyToken]
	lattice sync.Pool
}

var _ Morphology = (*Korean)(nil)

type Option func(*Korean)

// WithMaxUnknownLength bounds the length of unknown Hangul words.
func WithMaxUnknownLength(n int) Option {
	return func(k *Korean) {
		k.maxUnknownLength = n
	}
}

// WithCacheSize sets how many analyzed chunks are kept. 0 disables caching.
func WithCacheSize(n int) Option {
	return func(k *Korean) {
		k.cacheSize = n
	}
}

func NewKorean(dic dictionary.Dictionary, opts ...Option) (*Korean, error) {
	k := &Korean{
		dic:              dic,
		maxUnknownLength: lattice.DefaultMaxUnknownLength,
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.cacheSize < 0 {
		return nil, fmt.Errorf("negative cache size %d", k.cacheSize)
	}
	if k.cacheSize > 0 {
		cache, err := lru.New[string, []MorphologyToken](k.cacheSize)
		if err != nil {
			return nil, err
		}
		k.cache = cache
	}
	k.lattice.New = func() any {
		return lattice.New(k.dic, k.maxUnknownLength)
	}
	return k, nil
}

func (k *Korean) Eojeols(text string) iter.Seq[Eojeol] {
	return func(yield func(Eojeol) bool) {
		runes := []rune(text)
		for start := 0; start < len(runes); {
			if isSpace(runes[start]) {
				start++
				continue
			}
			end := start + 1
			for end < len(runes) && !isSpace(runes[end]) {
				end++
			}
			chunk := runes[start:end]
			if !group(chunk, start, k.analyze(string(chunk)), yield) {
				return
			}
			start = end
		}
	}
}

// Analyze returns the morphemes of the best analysis of text.
func (k *Korean) Analyze(text string) []MorphologyToken {
	tokens := make([]MorphologyToken, 0)
	for e := range k.Eojeols(text) {
		tokens = append(tokens, e.Tokens...)
	}
	return tokens
}

// CacheLen returns the number of cached chunks.
func (k *Korean) CacheLen() int {
	if k.cache == nil {
		return 0
	}
	return k.cache.Len()
}

func (k *Korean) analyze(chunk string) []MorphologyToken {
	if k.cache != nil {
		if tokens, ok := k.cache.Get(chunk); ok {
			return tokens
		}
	}

	la := k.lattice.Get().(*lattice.Lattice)
	defer k.lattice.Put(la)
	la.Build(chunk)
	la.Forward()
	text := la.Text()
	var tokens []MorphologyToken
	for _, n := range la.Backward() {
		if n.Class == lattice.Space {
			continue
		}
		tokens = append(tokens, NewMorphologyToken(n.Surface(text), n.Start, n.End, n.Morpheme))
	}

	if k.cache != nil {
		k.cache.Add(chunk, tokens)
	}
	return tokens
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
