package hanfish

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

const foreignPOS = "SL"

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Term = strings.ToLower(token.Term)
		r[i] = token
	}
	return NewTokenStream(r)
}

// StopWordFilter drops tokens by term. The position increment of a dropped
// token is carried over to the next kept one.
type StopWordFilter struct {
	stopWords []string
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	return StopWordFilter{
		stopWords: stopWords,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	stopwords := make(map[string]struct{})
	for _, w := range f.stopWords {
		stopwords[w] = struct{}{}
	}
	r := make([]Token, 0, tokenStream.Size())
	skipped := 0
	for _, token := range tokenStream.Tokens {
		if _, ok := stopwords[token.Term]; ok {
			skipped += token.PositionIncrement
			continue
		}
		token.PositionIncrement += skipped
		skipped = 0
		r = append(r, token)
	}
	return NewTokenStream(r)
}

// StemmerFilter stems foreign (SL) tokens with the English snowball stemmer.
type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.POS == foreignPOS {
			token.Term = english.Stem(token.Term, false)
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

// RomajiFilter rewrites foreign tokens written in kana as Hepburn romaji.
type RomajiFilter struct{}

func NewRomajiFilter() RomajiFilter {
	return RomajiFilter{}
}

func (f RomajiFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.POS == foreignPOS && isKana(token.Term) {
			token.Term = jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Term))
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

func isKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.In(r, unicode.Hiragana, unicode.Katakana) && r != 'ー' {
			return false
		}
	}
	return true
}

// PosTaggingFilter appends the POS label to every term, e.g. "꽃/N".
type PosTaggingFilter struct{}

func NewPosTaggingFilter() PosTaggingFilter {
	return PosTaggingFilter{}
}

func (f PosTaggingFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.POS != "" {
			token.Term = token.Term + "/" + token.POS
		}
		r[i] = token
	}
	return NewTokenStream(r)
}
