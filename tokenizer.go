package hanfish

import (
	"fmt"
	"unicode"

	"github.com/kotaroooo0/hanfish/dictionary"
	"github.com/kotaroooo0/hanfish/morphology"
	"go.uber.org/zap"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// StandardTokenizer splits text into runs of letters and digits.
type StandardTokenizer struct{}

func NewStandardTokenizer() *StandardTokenizer {
	return &StandardTokenizer{}
}

func (t *StandardTokenizer) Tokenize(s string) TokenStream {
	tokens := make([]Token, 0)
	start, pos := -1, 0
	runes := []rune(s)
	flush := func() {
		if start >= 0 {
			tokens = append(tokens, NewToken(string(runes[start:pos]), setType("word"), setOffsets(start, pos)))
			start = -1
		}
	}
	for ; pos < len(runes); pos++ {
		r := runes[pos]
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if start < 0 {
				start = pos
			}
			continue
		}
		flush()
	}
	flush()
	return NewTokenStream(tokens)
}

// MorphologicalTokenizer turns morphological analyses into tokens.
// It is safe for concurrent use; each Session is not.
type MorphologicalTokenizer struct {
	morphology  morphology.Morphology
	decompound  bool
	deinflect   bool
	indexPoses  map[dictionary.Class]bool
	indexEojeol bool
}

// New builds a tokenizer over the built-in dictionary.
func New(opts ...Option) (*MorphologicalTokenizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := dictionary.Default()
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	lines := o.userWords
	if o.storage != nil {
		stored, err := o.storage.GetUserWords()
		if err != nil {
			return nil, fmt.Errorf("load user words: %w", err)
		}
		lines = append(append([]string(nil), lines...), stored...)
	}
	words, err := dictionary.ParseUserWords(lines)
	if err != nil {
		return nil, err
	}

	var dic dictionary.Dictionary = store
	if len(words) > 0 {
		overlay, err := dictionary.NewOverlay(store, words)
		if err != nil {
			return nil, err
		}
		dic = overlay
	}

	korean, err := morphology.NewKorean(dic,
		morphology.WithMaxUnknownLength(o.maxUnknownLength),
		morphology.WithCacheSize(o.cacheSize),
	)
	if err != nil {
		return nil, err
	}

	t, err := newMorphologicalTokenizer(korean, o)
	if err != nil {
		return nil, err
	}
	o.logger.Info("tokenizer ready",
		zap.Int("dictionary_size", store.Len()),
		zap.Int("user_words", len(words)),
		zap.Int("cache_size", o.cacheSize),
		zap.Strings("index_poses", o.indexPoses),
		zap.Bool("decompound", o.decompound),
		zap.Bool("deinflect", o.deinflect),
	)
	return t, nil
}

// NewMorphologicalTokenizer builds a tokenizer over any analyzer. Options
// that configure the dictionary are ignored.
func NewMorphologicalTokenizer(m morphology.Morphology, opts ...Option) (*MorphologicalTokenizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newMorphologicalTokenizer(m, o)
}

func newMorphologicalTokenizer(m morphology.Morphology, o options) (*MorphologicalTokenizer, error) {
	classes, err := o.indexClasses()
	if err != nil {
		return nil, err
	}
	return &MorphologicalTokenizer{
		morphology:  m,
		decompound:  o.decompound,
		deinflect:   o.deinflect,
		indexPoses:  classes,
		indexEojeol: o.indexEojeol,
	}, nil
}

func (t *MorphologicalTokenizer) Tokenize(s string) TokenStream {
	session := t.NewSession()
	defer session.Close()
	session.Reset(s)
	tokens := make([]Token, 0)
	for token := range session.All() {
		tokens = append(tokens, token)
	}
	return NewTokenStream(tokens)
}
