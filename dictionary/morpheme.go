package dictionary

import (
	"fmt"
	"strings"
)

// Type tells how a morpheme entry relates to the morphemes in its expression.
type Type uint8

const (
	Plain       Type = iota
	Compound         // 복합명사: expression lists the constituent nouns
	Inflect          // 활용: expression lists the stem followed by endings
	Preanalysis      // 기분석: expression lists an arbitrary morpheme sequence
)

func (t Type) String() string {
	switch t {
	case Compound:
		return "Compound"
	case Inflect:
		return "Inflect"
	case Preanalysis:
		return "Preanalysis"
	}
	return "*"
}

func parseType(s string) (Type, error) {
	switch strings.TrimSpace(s) {
	case "", "*":
		return Plain, nil
	case "Compound":
		return Compound, nil
	case "Inflect":
		return Inflect, nil
	case "Preanalysis":
		return Preanalysis, nil
	}
	return Plain, fmt.Errorf("unknown morpheme type %q", s)
}

// Morpheme is an immutable dictionary entry.
type Morpheme struct {
	Surface string
	LeftID  int
	RightID int
	Cost    int
	Tags    []Tag // first..last tag; a single tag for plain entries
	Type    Type

	// Expression holds the sub-morphemes of compound, inflected and
	// pre-analyzed entries. Sub-morphemes carry no cost of their own.
	Expression []*Morpheme
}

func newMorpheme(surface string, cost int, tags []Tag, typ Type) *Morpheme {
	return &Morpheme{
		Surface: surface,
		LeftID:  int(tags[0]),
		RightID: int(tags[len(tags)-1]),
		Cost:    cost,
		Tags:    tags,
		Type:    typ,
	}
}

// FirstTag returns the tag on the left edge of the morpheme.
func (m *Morpheme) FirstTag() Tag {
	return m.Tags[0]
}

// LastTag returns the tag on the right edge of the morpheme.
func (m *Morpheme) LastTag() Tag {
	return m.Tags[len(m.Tags)-1]
}

// Classes returns the distinct classes of the morpheme's edge tags.
func (m *Morpheme) Classes() []Class {
	first, last := m.FirstTag().Class(), m.LastTag().Class()
	if first == last {
		return []Class{first}
	}
	return []Class{first, last}
}

// Label renders the token label, e.g. "N" or "V+E".
func (m *Morpheme) Label() string {
	cs := m.Classes()
	if len(cs) == 1 {
		return cs[0].String()
	}
	return cs[0].String() + "+" + cs[1].String()
}

func (m *Morpheme) String() string {
	tags := make([]string, len(m.Tags))
	for i, t := range m.Tags {
		tags[i] = t.String()
	}
	return m.Surface + "/" + strings.Join(tags, "+")
}

// DecompositionOf returns the constituent nouns of a compound entry, or nil.
func DecompositionOf(m *Morpheme) []*Morpheme {
	if m == nil || m.Type != Compound || len(m.Expression) < 2 {
		return nil
	}
	return m.Expression
}

// InflectionOf splits an inflected entry into its stem and its endings.
// The stem is every part before the first ending or pre-final ending.
func InflectionOf(m *Morpheme) (stem, endings []*Morpheme, ok bool) {
	if m == nil || m.Type != Inflect || len(m.Expression) == 0 {
		return nil, nil, false
	}
	i := 0
	for i < len(m.Expression) && !isEnding(m.Expression[i].FirstTag()) {
		i++
	}
	return m.Expression[:i], m.Expression[i:], true
}

func isEnding(t Tag) bool {
	c := t.Class()
	return c == Ending || c == PreEnding
}

// Candidate is a dictionary match at some position of the input.
type Candidate struct {
	Morpheme *Morpheme
	Length   int // in runes
	User     bool
}
