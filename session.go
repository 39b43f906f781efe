package hanfish

import (
	"iter"

	"github.com/kotaroooo0/hanfish/morphology"
)

// Session emits the tokens of one text at a time, analyzing lazily one
// eojeol ahead. It must not be shared between goroutines.
type Session struct {
	tokenizer *MorphologicalTokenizer
	next      func() (morphology.Eojeol, bool)
	stop      func()
	buf       []Token
	pos       int
}

func (t *MorphologicalTokenizer) NewSession() *Session {
	return &Session{tokenizer: t}
}

// Reset discards any pending tokens and starts over on text.
func (s *Session) Reset(text string) {
	s.Close()
	s.next, s.stop = iter.Pull(s.tokenizer.morphology.Eojeols(text))
}

// Next returns the next token, or false when the text is exhausted.
func (s *Session) Next() (Token, bool) {
	for s.pos >= len(s.buf) {
		if s.next == nil {
			return Token{}, false
		}
		e, ok := s.next()
		if !ok {
			s.Close()
			return Token{}, false
		}
		s.buf = s.tokenizer.process(s.buf[:0], e)
		s.pos = 0
	}
	token := s.buf[s.pos]
	s.pos++
	return token, true
}

// Close releases the analysis in progress. It is safe to call twice.
func (s *Session) Close() {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = nil, nil
	s.buf = s.buf[:0]
	s.pos = 0
}

// All yields the remaining tokens. Breaking out of the loop closes the
// session.
func (s *Session) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		defer s.Close()
		for {
			token, ok := s.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}
