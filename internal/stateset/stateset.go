// Package stateset provides a sparse set of NFA state labels, used by the
// determinize package to track epsilon-closures during subset
// construction.
//
// Adapted from coregx/internal/sparse.SparseSet: same O(1)
// insert/contains/clear algorithm (a dense array for iteration paired
// with a sparse array for membership testing), storing raw uint32
// labels (callers convert nfa.StateID) and trimmed to the operations
// determinize actually needs — Remove is dropped since subset
// construction only ever grows a closure, never shrinks one.
package stateset

// Set is a fixed-capacity sparse set of state labels in [0, capacity).
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New returns an empty set that can hold labels in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if already present.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Values returns the set's elements in insertion order. The slice is
// only valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// Key returns a canonical, order-independent string identifying the
// set's contents, used by determinize to deduplicate DFA states that
// correspond to the same NFA state subset.
func (s *Set) Key() string {
	sorted := make([]uint32, len(s.dense[:s.size]))
	copy(sorted, s.dense[:s.size])
	// Insertion sort: subsets are small (bounded by NFA size), and this
	// avoids pulling in sort.Slice's reflection overhead on a hot path.
	for i := 1; i < len(sorted); i++ {
		v := sorted[i]
		j := i - 1
		for j >= 0 && sorted[j] > v {
			sorted[j+1] = sorted[j]
			j--
		}
		sorted[j+1] = v
	}
	b := make([]byte, 0, len(sorted)*5)
	for _, v := range sorted {
		b = appendUint(b, v)
		b = append(b, ',')
	}
	return string(b)
}

func appendUint(b []byte, v uint32) []byte {
	if v == 0 {
		return append(b, '0')
	}
	var digits [10]byte
	n := 0
	for v > 0 {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for n > 0 {
		n--
		b = append(b, digits[n])
	}
	return b
}
