package hanfish

import (
	"unicode/utf8"

	"github.com/kotaroooo0/hanfish/dictionary"
	"github.com/kotaroooo0/hanfish/morphology"
)

const eojeolPOS = "EOJ"

type unit struct {
	term    string
	start   int
	end     int
	label   string
	classes []dictionary.Class
	// absorbed units count towards the eojeol but are never emitted
	absorbed bool
}

// process appends the tokens of one eojeol to out.
func (t *MorphologicalTokenizer) process(out []Token, e morphology.Eojeol) []Token {
	var units []unit
	for _, mt := range e.Tokens {
		units = t.expand(units, mt)
	}

	wrapper := t.indexEojeol && t.indexPoses[dictionary.Eojeol] && len(units) > 1
	kept := 0
	for _, u := range units {
		if t.keep(u) {
			kept++
		}
	}

	emitted := false
	for _, u := range units {
		if !t.keep(u) {
			continue
		}
		out = append(out, NewToken(u.term, setPOS(u.label), setPosition(1, 1), setOffsets(u.start, u.end)))
		if wrapper && !emitted {
			out = append(out, eojeolToken(e, 0, kept))
		}
		emitted = true
	}
	if wrapper && !emitted {
		out = append(out, eojeolToken(e, 1, 1))
	}
	return out
}

func eojeolToken(e morphology.Eojeol, increment, length int) Token {
	return NewToken(e.Surface, setPOS(eojeolPOS), setPosition(increment, max(length, 1)), setOffsets(e.Start, e.End))
}

func (t *MorphologicalTokenizer) keep(u unit) bool {
	if u.absorbed || u.end <= u.start {
		return false
	}
	for _, c := range u.classes {
		if t.indexPoses[c] {
			return true
		}
	}
	return false
}

// expand splits a morpheme into the units it is reported as. Sub-units get
// consecutive offsets inside the morpheme's span and the last one always
// ends where the morpheme ends.
func (t *MorphologicalTokenizer) expand(units []unit, mt morphology.MorphologyToken) []unit {
	m := mt.Morpheme
	var parts []*dictionary.Morpheme
	emit := 0
	switch {
	case m.Type == dictionary.Compound && t.decompound:
		parts = dictionary.DecompositionOf(m)
		emit = len(parts)
	case m.Type == dictionary.Inflect && t.deinflect:
		stem, endings, _ := dictionary.InflectionOf(m)
		parts = append(append(parts, stem...), endings...)
		emit = len(stem)
	case m.Type == dictionary.Preanalysis && t.deinflect:
		parts = m.Expression
		emit = len(parts)
	}
	if len(parts) == 0 {
		return append(units, unit{
			term:    mt.Term,
			start:   mt.Start,
			end:     mt.End,
			label:   m.Label(),
			classes: m.Classes(),
		})
	}

	cursor := mt.Start
	for i, p := range parts {
		start := min(cursor, mt.End)
		end := min(cursor+utf8.RuneCountInString(p.Surface), mt.End)
		if i == len(parts)-1 {
			end = mt.End
		}
		units = append(units, unit{
			term:     p.Surface,
			start:    start,
			end:      end,
			label:    p.Label(),
			classes:  p.Classes(),
			absorbed: i >= emit,
		})
		cursor = end
	}
	return units
}
