package dictionary

// DefaultConnectionPenalty is the cost of a transition the matrix has no
// entry for.
const DefaultConnectionPenalty = 3000

// Matrix is a dense connection cost table indexed by context ids.
type Matrix struct {
	size  int
	costs []int
}

// NewMatrix returns a matrix over every tag context where each transition
// costs DefaultConnectionPenalty.
func NewMatrix() *Matrix {
	m := &Matrix{
		size:  NumTags,
		costs: make([]int, NumTags*NumTags),
	}
	for i := range m.costs {
		m.costs[i] = DefaultConnectionPenalty
	}
	return m
}

// Set sets the cost from right context left to left context right.
// Out of range ids are ignored.
func (m *Matrix) Set(left, right, cost int) {
	if !m.inRange(left, right) {
		return
	}
	m.costs[left*m.size+right] = cost
}

// Cost returns the transition cost; unknown contexts cost
// DefaultConnectionPenalty.
func (m *Matrix) Cost(left, right int) int {
	if !m.inRange(left, right) {
		return DefaultConnectionPenalty
	}
	return m.costs[left*m.size+right]
}

func (m *Matrix) inRange(left, right int) bool {
	return left >= 0 && right >= 0 && left < m.size && right < m.size
}
