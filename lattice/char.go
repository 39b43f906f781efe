package lattice

import (
	"unicode"
	"unicode/utf8"

	"github.com/kotaroooo0/hanfish/dictionary"
)

type charClass uint8

const (
	charHangul charClass = iota
	charLetter
	charDigit
	charHan
	charSymbol
	charSpace
	charInvalid
)

func classOf(r rune) charClass {
	switch {
	case r == utf8.RuneError:
		return charInvalid
	case unicode.IsSpace(r), unicode.IsControl(r):
		return charSpace
	case unicode.Is(unicode.Hangul, r):
		return charHangul
	case unicode.Is(unicode.Han, r):
		return charHan
	case unicode.IsDigit(r):
		return charDigit
	case unicode.IsLetter(r):
		return charLetter
	}
	return charSymbol
}

// unknownDef is how an out-of-dictionary run of a character class becomes a
// node.
type unknownDef struct {
	tag  dictionary.Tag
	cost int
	// invoke even when the dictionary has a candidate at the position
	always bool
	// one node per length 1..maxUnknownLength instead of one for the run
	prefixes bool
	// group consecutive runes of the class
	group bool
}

var unknownDefs = map[charClass]unknownDef{
	charHangul:  {tag: dictionary.UNKNOWN, cost: 8000, prefixes: true, group: true},
	charLetter:  {tag: dictionary.SL, cost: 1000, always: true, group: true},
	charDigit:   {tag: dictionary.SN, cost: 1000, always: true, group: true},
	charHan:     {tag: dictionary.SH, cost: 1000, always: true, group: true},
	charSymbol:  {tag: dictionary.SY, cost: 3000, always: true, group: true},
	charInvalid: {tag: dictionary.UNKNOWN, cost: 8000, always: true},
}
