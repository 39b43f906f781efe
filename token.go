package hanfish

import (
	"fmt"
	"strings"
)

// Token is an emitted unit. Start and End are rune offsets into the
// analyzed text.
type Token struct {
	Term              string
	POS               string
	Type              string
	PositionIncrement int
	PositionLength    int
	Start             int
	End               int
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term, PositionIncrement: 1, PositionLength: 1}
	for _, option := range options {
		option(&token)
	}
	return token
}

// setPOS sets both the POS label and the type.
func setPOS(pos string) TokenOption {
	return func(t *Token) {
		t.POS = pos
		t.Type = pos
	}
}

func setType(typ string) TokenOption {
	return func(t *Token) {
		t.Type = typ
	}
}

func setPosition(increment, length int) TokenOption {
	return func(t *Token) {
		t.PositionIncrement = increment
		t.PositionLength = length
	}
}

func setOffsets(start, end int) TokenOption {
	return func(t *Token) {
		t.Start = start
		t.End = end
	}
}

// String renders term/POS:increment:length:start:end:type.
func (t Token) String() string {
	return fmt.Sprintf("%s/%s:%d:%d:%d:%d:%s", t.Term, t.POS, t.PositionIncrement, t.PositionLength, t.Start, t.End, t.Type)
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// String joins the tokens, each followed by ';'.
func (ts TokenStream) String() string {
	var b strings.Builder
	for _, t := range ts.Tokens {
		b.WriteString(t.String())
		b.WriteByte(';')
	}
	return b.String()
}
