package morphology

import (
	"iter"

	"github.com/kotaroooo0/hanfish/dictionary"
)

type Morphology interface {
	// Eojeols yields the eojeols of text in order. Offsets are rune offsets
	// into text.
	Eojeols(text string) iter.Seq[Eojeol]
}

type MorphologyToken struct {
	Term     string
	Start    int
	End      int
	Morpheme *dictionary.Morpheme
}

func NewMorphologyToken(term string, start, end int, m *dictionary.Morpheme) MorphologyToken {
	return MorphologyToken{
		Term:     term,
		Start:    start,
		End:      end,
		Morpheme: m,
	}
}

// Eojeol is a word-spacing unit: a content morpheme followed by the
// particles, endings and suffixes attached to it.
type Eojeol struct {
	Surface string
	Start   int
	End     int
	Tokens  []MorphologyToken
}

// attaches reports whether cur continues the eojeol that prev belongs to.
// Punctuation always breaks the eojeol.
func attaches(prev, cur *dictionary.Morpheme) bool {
	if prev.LastTag().Class() == dictionary.Symbol || cur.FirstTag().Class() == dictionary.Symbol {
		return false
	}
	switch cur.FirstTag().Class() {
	case dictionary.Particle, dictionary.Ending, dictionary.PreEnding, dictionary.Suffix:
		return true
	}
	switch cur.FirstTag() {
	case dictionary.VCP, dictionary.VX:
		return true
	}
	return prev.LastTag().Class() == dictionary.Prefix
}

// group splits the morphemes of one whitespace-delimited chunk into
// eojeols. offset is the rune offset of the chunk in the text.
func group(chunk []rune, offset int, tokens []MorphologyToken, yield func(Eojeol) bool) bool {
	start := 0
	for i := 1; i <= len(tokens); i++ {
		if i < len(tokens) && attaches(tokens[i-1].Morpheme, tokens[i].Morpheme) {
			continue
		}
		e := Eojeol{
			Surface: string(chunk[tokens[start].Start:tokens[i-1].End]),
			Start:   offset + tokens[start].Start,
			End:     offset + tokens[i-1].End,
			Tokens:  make([]MorphologyToken, 0, i-start),
		}
		for _, t := range tokens[start:i] {
			e.Tokens = append(e.Tokens, NewMorphologyToken(t.Term, offset+t.Start, offset+t.End, t.Morpheme))
		}
		if !yield(e) {
			return false
		}
		start = i
	}
	return true
}
