package dictionary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// DefaultUserWordCost is low enough that a user word beats the analyses of
// the built-in dictionary over the same span.
const DefaultUserWordCost = -100

var ErrInvalidUserWord = errors.New("invalid user word")

// UserWord is one entry of a user dictionary.
type UserWord struct {
	Surface string
	Tag     Tag
	Cost    int
	Parts   []string // non-empty for compounds, e.g. 삼성+전자
}

// ParseUserWord parses "surface[/TAG][,cost]". A '+' inside the surface
// declares a compound noun split at each '+'. '+', '/' and ',' are
// reserved, so surfaces such as "C++" or "TCP/IP" are rejected.
func ParseUserWord(s string) (UserWord, error) {
	raw := s
	s = strings.TrimSpace(s)
	w := UserWord{Tag: NNG, Cost: DefaultUserWordCost}

	if i := strings.LastIndex(s, ","); i >= 0 {
		cost, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil {
			return UserWord{}, fmt.Errorf("%w: %q: cost: %v", ErrInvalidUserWord, raw, err)
		}
		w.Cost = cost
		s = strings.TrimSpace(s[:i])
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		tag, err := ParseTag(s[i+1:])
		if err != nil {
			return UserWord{}, fmt.Errorf("%w: %q: %v", ErrInvalidUserWord, raw, err)
		}
		w.Tag = tag
		s = strings.TrimSpace(s[:i])
	}
	if strings.Contains(s, "+") {
		for _, p := range strings.Split(s, "+") {
			p = strings.TrimSpace(p)
			if p == "" {
				return UserWord{}, fmt.Errorf("%w: %q: empty compound part", ErrInvalidUserWord, raw)
			}
			w.Parts = append(w.Parts, p)
		}
		s = strings.Join(w.Parts, "")
	}
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		return UserWord{}, fmt.Errorf("%w: %q: surface must be a single non-empty word", ErrInvalidUserWord, raw)
	}
	w.Surface = s
	return w, nil
}

// ParseUserWords parses every non-blank line. All malformed words are
// reported together.
func ParseUserWords(lines []string) ([]UserWord, error) {
	var (
		words []UserWord
		errs  error
	)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := ParseUserWord(line)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		words = append(words, w)
	}
	if errs != nil {
		return nil, errs
	}
	return words, nil
}

func (w UserWord) record() Record {
	r := Record{
		Surface: w.Surface,
		Cost:    w.Cost,
		Tags:    []Tag{w.Tag},
	}
	if len(w.Parts) > 1 {
		r.Type = Compound
		for _, p := range w.Parts {
			r.Expression = append(r.Expression, Part{Surface: p, Tag: w.Tag})
		}
	}
	return r
}

func (w UserWord) String() string {
	s := w.Surface
	if len(w.Parts) > 1 {
		s = strings.Join(w.Parts, "+")
	}
	return fmt.Sprintf("%s/%s,%d", s, w.Tag, w.Cost)
}

// Overlay layers user words over a base dictionary. The base is never
// modified.
type Overlay struct {
	base Dictionary
	user *Store
}

var _ Dictionary = (*Overlay)(nil)

func NewOverlay(base Dictionary, words []UserWord) (*Overlay, error) {
	records := make([]Record, len(words))
	for i, w := range words {
		records[i] = w.record()
	}
	user, err := NewStore(records, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserWord, err)
	}
	return &Overlay{base: base, user: user}, nil
}

// Lookup returns the user candidates first. Base candidates with the same
// length as a user candidate are shadowed.
func (o *Overlay) Lookup(s string) []Candidate {
	out := o.user.root.commonPrefixSearch(s, true, nil)
	base := o.base.Lookup(s)
	if len(out) == 0 {
		return base
	}
	for _, c := range base {
		if !shadowed(out, c.Length) {
			out = append(out, c)
		}
	}
	return out
}

func shadowed(user []Candidate, length int) bool {
	for _, u := range user {
		if u.Length == length {
			return true
		}
	}
	return false
}

func (o *Overlay) ConnectionCost(left, right int) int {
	return o.base.ConnectionCost(left, right)
}

// Len returns the number of user entries.
func (o *Overlay) Len() int {
	return o.user.Len()
}
