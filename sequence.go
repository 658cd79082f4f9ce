package seqbench

import (
	"container/list"
	"slices"
)

// ArraySequence is a contiguous, resizable sequence of ints.
// Index access is O(1); inserting at the front shifts every element.
type ArraySequence []int

// NewArraySequence returns an ArraySequence holding n zero values.
// If n <= 0, an empty sequence is returned.
func NewArraySequence(n int) ArraySequence {
	if n <= 0 {
		return ArraySequence{}
	}
	return make(ArraySequence, n)
}

// PushFront inserts v at index 0 and returns the updated sequence.
// Every existing element is moved one slot to the right.
func (s ArraySequence) PushFront(v int) ArraySequence {
	return slices.Insert(s, 0, v)
}

// Len returns the number of elements.
func (s ArraySequence) Len() int {
	return len(s)
}

// LinkedSequence is a sequence of ints stored in individually allocated
// nodes of a doubly linked list. Front insertion is O(1), indexed access
// requires a walk from one end.
type LinkedSequence struct {
	l *list.List
}

// NewLinkedSequence returns a LinkedSequence holding n zero values.
func NewLinkedSequence(n int) LinkedSequence {
	l := list.New()
	for i := 0; i < n; i++ {
		l.PushBack(0)
	}
	return LinkedSequence{l: l}
}

// PushFront inserts v before the current first node.
func (s LinkedSequence) PushFront(v int) {
	s.l.PushFront(v)
}

// Len returns the number of nodes.
func (s LinkedSequence) Len() int {
	return s.l.Len()
}

// Each calls fn with every value from front to back. fn receives a copy;
// the nodes themselves are never handed out.
func (s LinkedSequence) Each(fn func(v int)) {
	for e := s.l.Front(); e != nil; e = e.Next() {
		fn(e.Value.(int))
	}
}

// Values returns the first n values in traversal order. n < 0 means all.
func (s LinkedSequence) Values(n int) []int {
	if n < 0 || n > s.l.Len() {
		n = s.l.Len()
	}
	out := make([]int, 0, n)
	for e := s.l.Front(); e != nil && len(out) < n; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}
