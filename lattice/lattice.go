// Package lattice builds the word lattice of a text and selects its best
// path.
package lattice

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/hanfish/dictionary"
)

// NodeClass tells where a node came from.
type NodeClass uint8

const (
	Dummy   NodeClass = iota // BOS and EOS
	Known                    // base dictionary
	User                     // user dictionary
	Unknown                  // unknown word processing
	Space                    // whitespace and control characters
)

func (c NodeClass) String() string {
	switch c {
	case Dummy:
		return "DUMMY"
	case Known:
		return "KNOWN"
	case User:
		return "USER"
	case Unknown:
		return "UNKNOWN"
	case Space:
		return "SPACE"
	}
	return fmt.Sprintf("NodeClass(%d)", int(c))
}

const (
	bosIndex = 0
	noPrev   = -1
)

// DefaultMaxUnknownLength bounds the length of unknown Hangul words.
const DefaultMaxUnknownLength = 8

// Node is a lattice node. Start and End are rune offsets (half-open).
type Node struct {
	Index    int
	Start    int
	End      int
	Class    NodeClass
	Morpheme *dictionary.Morpheme // nil for dummy and space nodes
	LeftID   int
	RightID  int
	Weight   int

	// set by Forward
	Cost   int
	Prev   int
	Length int
}

// Surface returns the text the node covers.
func (n *Node) Surface(text []rune) string {
	return string(text[n.Start:n.End])
}

// Lattice is reusable but not safe for concurrent use.
type Lattice struct {
	dic              dictionary.Dictionary
	maxUnknownLength int

	text    string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(text)
	nodes   []Node
	ends    [][]int // node indices by end offset; EOS is in ends[len(runes)+1]
}

// New returns an empty lattice over dic. A non-positive maxUnknownLength
// means DefaultMaxUnknownLength.
func New(dic dictionary.Dictionary, maxUnknownLength int) *Lattice {
	if maxUnknownLength <= 0 {
		maxUnknownLength = DefaultMaxUnknownLength
	}
	return &Lattice{
		dic:              dic,
		maxUnknownLength: maxUnknownLength,
	}
}

// Reset clears the lattice and keeps its buffers.
func (la *Lattice) Reset() {
	la.text = ""
	la.runes = la.runes[:0]
	la.offsets = la.offsets[:0]
	la.nodes = la.nodes[:0]
	for i := range la.ends {
		la.ends[i] = la.ends[i][:0]
	}
	la.ends = la.ends[:0]
}

// Text returns the runes of the text the lattice was built for.
func (la *Lattice) Text() []rune {
	return la.runes
}

// Nodes returns every node of the lattice, BOS and EOS included.
func (la *Lattice) Nodes() []Node {
	return la.nodes
}

// Build resets the lattice and fills it with every node over text.
// A text without anything but whitespace yields no nodes at all.
func (la *Lattice) Build(text string) {
	la.Reset()
	la.text = text
	for i, r := range text {
		la.runes = append(la.runes, r)
		la.offsets = append(la.offsets, i)
	}
	la.offsets = append(la.offsets, len(text))
	n := len(la.runes)

	blank := true
	for _, r := range la.runes {
		if classOf(r) != charSpace {
			blank = false
			break
		}
	}
	if blank {
		return
	}

	if cap(la.ends) < n+2 {
		la.ends = make([][]int, n+2)
	}
	la.ends = la.ends[:n+2]
	for i := range la.ends {
		la.ends[i] = la.ends[i][:0]
	}

	la.addNode(Node{Class: Dummy}, 0)
	for pos := 0; pos < n; pos++ {
		if len(la.ends[pos]) == 0 {
			continue
		}
		la.expand(pos)
	}
	la.addNode(Node{Start: n, End: n, Class: Dummy}, n+1)
}

func (la *Lattice) addNode(node Node, end int) {
	node.Index = len(la.nodes)
	node.Prev = noPrev
	la.nodes = append(la.nodes, node)
	la.ends[end] = append(la.ends[end], node.Index)
}

func (la *Lattice) expand(pos int) {
	cls := classOf(la.runes[pos])
	run := la.runLength(pos, cls)

	if cls == charSpace {
		la.addNode(Node{Start: pos, End: pos + run, Class: Space}, pos+run)
		return
	}

	// dictionary words never cross whitespace
	limit := pos
	for limit < len(la.runes) && classOf(la.runes[limit]) != charSpace {
		limit++
	}
	candidates := la.dic.Lookup(la.text[la.offsets[pos]:la.offsets[limit]])
	for _, c := range candidates {
		class := Known
		if c.User {
			class = User
		}
		la.addMorpheme(pos, pos+c.Length, class, c.Morpheme)
	}

	def := unknownDefs[cls]
	if !def.always && len(candidates) > 0 {
		return
	}
	if !def.group {
		run = 1
	}
	if def.prefixes {
		for l := 1; l <= run && l <= la.maxUnknownLength; l++ {
			la.addUnknown(pos, pos+l, def)
		}
		return
	}
	la.addUnknown(pos, pos+run, def)
}

func (la *Lattice) addMorpheme(start, end int, class NodeClass, m *dictionary.Morpheme) {
	la.addNode(Node{
		Start:    start,
		End:      end,
		Class:    class,
		Morpheme: m,
		LeftID:   m.LeftID,
		RightID:  m.RightID,
		Weight:   m.Cost,
	}, end)
}

func (la *Lattice) addUnknown(start, end int, def unknownDef) {
	la.addMorpheme(start, end, Unknown, &dictionary.Morpheme{
		Surface: string(la.runes[start:end]),
		LeftID:  int(def.tag),
		RightID: int(def.tag),
		Cost:    def.cost,
		Tags:    []dictionary.Tag{def.tag},
	})
}

func (la *Lattice) runLength(pos int, cls charClass) int {
	l := 1
	for pos+l < len(la.runes) && classOf(la.runes[pos+l]) == cls {
		l++
	}
	return l
}

type dumpNode struct {
	Index    int
	Start    int
	End      int
	Surface  string
	Class    string
	Morpheme string
	Cost     int
	Prev     int
}

// Dump writes the nodes of the lattice in a human readable form.
func (la *Lattice) Dump(w io.Writer) error {
	nodes := make([]dumpNode, 0, len(la.nodes))
	for _, n := range la.nodes {
		d := dumpNode{
			Index:   n.Index,
			Start:   n.Start,
			End:     n.End,
			Surface: n.Surface(la.runes),
			Class:   n.Class.String(),
			Cost:    n.Cost,
			Prev:    n.Prev,
		}
		if n.Morpheme != nil {
			d.Morpheme = n.Morpheme.String()
		}
		nodes = append(nodes, d)
	}
	_, err := pp.Fprintln(w, nodes)
	return err
}
