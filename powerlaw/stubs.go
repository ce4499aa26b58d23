// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// stubs.go - slice-backed clique list with O(1) swap-remove.

package powerlaw

// stubList is the growing clique-size sequence of CliqueSizes. It is slice
// backed so that removing an arbitrary element is O(1): the element is
// swapped with the last one and the tail is popped. Order is draw order
// except where a removal moved the former last element into the hole.
type stubList struct {
	items []int
	sum   int
}

// push appends v and adds it to the running sum.
func (s *stubList) push(v int) {
	s.items = append(s.items, v)
	s.sum += v
}

// swapRemove swaps items[i] with the last element, pops it and subtracts it
// from the running sum. It returns the removed value, or false when i is
// not a valid position (including an empty list).
func (s *stubList) swapRemove(i int) (int, bool) {
	if i < 0 || i >= len(s.items) {
		return 0, false
	}
	last := len(s.items) - 1
	s.items[i], s.items[last] = s.items[last], s.items[i]
	v := s.items[last]
	s.items = s.items[:last]
	s.sum -= v

	return v, true
}

// pick maps a uniform u ∈ [0,1) to an index floor(u·len), clamped to the
// last position for u ≥ 1 sources. An empty list yields -1.
func (s *stubList) pick(u float64) int {
	if len(s.items) == 0 {
		return -1
	}
	i := int(u * float64(len(s.items)))
	if i >= len(s.items) {
		i = len(s.items) - 1
	}
	if i < 0 {
		i = 0
	}

	return i
}

func (s *stubList) len() int { return len(s.items) }
