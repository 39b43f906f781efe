package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// Dictionary is the read-only view the lattice builder consults.
type Dictionary interface {
	// Lookup returns every entry whose surface is a prefix of s, shortest
	// first and in load order for equal lengths.
	Lookup(s string) []Candidate
	// ConnectionCost returns the transition cost from a morpheme whose right
	// context is left to a morpheme whose left context is right.
	ConnectionCost(left, right int) int
}

// Record is one already-parsed dictionary line.
type Record struct {
	Surface    string
	Cost       int
	Tags       []Tag
	Type       Type
	Expression []Part
}

// Part is one morpheme of a record's expression.
type Part struct {
	Surface string
	Tag     Tag
}

// Store is an immutable, prefix-indexed collection of morphemes.
// It is safe for concurrent use.
type Store struct {
	root    *trieNode
	matrix  *Matrix
	records []Record
	size    int
}

var _ Dictionary = (*Store)(nil)

// NewStore indexes records. A nil matrix makes every connection cost
// DefaultConnectionPenalty.
func NewStore(records []Record, matrix *Matrix) (*Store, error) {
	if matrix == nil {
		matrix = NewMatrix()
	}
	s := &Store{
		root:    newTrieNode(),
		matrix:  matrix,
		records: records,
	}
	for i, r := range records {
		m, err := r.morpheme()
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i+1, r.Surface, err)
		}
		s.root.insert(r.Surface, m)
		s.size++
	}
	return s, nil
}

func (r Record) morpheme() (*Morpheme, error) {
	if r.Surface == "" {
		return nil, errors.New("empty surface")
	}
	if err := validTags(r.Tags); err != nil {
		return nil, err
	}
	if r.Type > Preanalysis {
		return nil, fmt.Errorf("unknown morpheme type %d", r.Type)
	}
	m := newMorpheme(r.Surface, r.Cost, r.Tags, r.Type)
	switch r.Type {
	case Plain:
		if len(r.Expression) > 0 {
			return nil, errors.New("plain entry with an expression")
		}
		return m, nil
	case Compound:
		if len(r.Expression) < 2 {
			return nil, errors.New("compound entry needs at least two parts")
		}
	default:
		if len(r.Expression) == 0 {
			return nil, fmt.Errorf("%s entry without an expression", r.Type)
		}
	}
	m.Expression = make([]*Morpheme, len(r.Expression))
	for i, p := range r.Expression {
		if p.Surface == "" {
			return nil, fmt.Errorf("expression part %d: empty surface", i+1)
		}
		if err := validTags([]Tag{p.Tag}); err != nil {
			return nil, fmt.Errorf("expression part %d: %w", i+1, err)
		}
		m.Expression[i] = newMorpheme(p.Surface, 0, []Tag{p.Tag}, Plain)
	}
	return m, nil
}

func validTags(tags []Tag) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: no tag", ErrInvalidTag)
	}
	for _, t := range tags {
		if t == BOS || int(t) >= NumTags {
			return fmt.Errorf("%w: %v", ErrInvalidTag, t)
		}
	}
	return nil
}

func (s *Store) Lookup(str string) []Candidate {
	return s.root.commonPrefixSearch(str, false, nil)
}

func (s *Store) ConnectionCost(left, right int) int {
	return s.matrix.Cost(left, right)
}

// Len returns the number of indexed entries.
func (s *Store) Len() int {
	return s.size
}

// Contains reports whether surface is indexed exactly.
func (s *Store) Contains(surface string) bool {
	n := s.root
	for _, r := range surface {
		if n = n.children[r]; n == nil {
			return false
		}
	}
	return len(n.entries) > 0
}

type trieNode struct {
	children map[rune]*trieNode
	entries  []*Morpheme
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

func (n *trieNode) insert(surface string, m *Morpheme) {
	cur := n
	for _, r := range surface {
		next, ok := cur.children[r]
		if !ok {
			next = newTrieNode()
			cur.children[r] = next
		}
		cur = next
	}
	cur.entries = append(cur.entries, m)
}

func (n *trieNode) commonPrefixSearch(s string, user bool, out []Candidate) []Candidate {
	cur, length := n, 0
	for _, r := range s {
		if cur = cur.children[r]; cur == nil {
			break
		}
		length++
		for _, m := range cur.entries {
			out = append(out, Candidate{Morpheme: m, Length: length, User: user})
		}
	}
	return out
}

// String renders the record in the loader's CSV layout.
func (r Record) String() string {
	tags := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		tags[i] = t.String()
	}
	parts := make([]string, len(r.Expression))
	for i, p := range r.Expression {
		parts[i] = p.Surface + "/" + p.Tag.String()
	}
	expr := "*"
	if len(parts) > 0 {
		expr = strings.Join(parts, "+")
	}
	return fmt.Sprintf("%s,%d,%s,%s,%s", r.Surface, r.Cost, strings.Join(tags, "+"), r.Type, expr)
}
