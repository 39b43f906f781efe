package lattice

import "math"

// Forward computes the cheapest path to every node. Nodes are created in
// start order, so all predecessors of a node are settled before it.
// Equal costs are broken by fewer nodes on the path, then by the earlier
// predecessor.
func (la *Lattice) Forward() {
	for i := range la.nodes {
		node := &la.nodes[i]
		if i == bosIndex {
			node.Cost, node.Prev, node.Length = 0, noPrev, 0
			continue
		}
		best, bestLen, prev := math.MaxInt, 0, noPrev
		for _, p := range la.ends[node.Start] {
			pn := &la.nodes[p]
			if pn.Prev == noPrev && p != bosIndex {
				continue
			}
			cost := pn.Cost + la.dic.ConnectionCost(pn.RightID, node.LeftID) + node.Weight
			length := pn.Length + 1
			if cost < best || (cost == best && length < bestLen) {
				best, bestLen, prev = cost, length, p
			}
		}
		node.Cost, node.Length, node.Prev = best, bestLen, prev
	}
}

// Backward returns the best path, BOS and EOS excluded. The nodes belong to
// the lattice and are only valid until the next Build or Reset.
func (la *Lattice) Backward() []*Node {
	if len(la.nodes) == 0 {
		return nil
	}
	eos := &la.nodes[len(la.nodes)-1]
	if eos.Prev == noPrev {
		return nil
	}
	var path []*Node
	for p := eos.Prev; p != bosIndex && p != noPrev; p = la.nodes[p].Prev {
		path = append(path, &la.nodes[p])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
