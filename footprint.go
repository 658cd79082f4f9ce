package seqbench

import (
	"container/list"
	"unsafe"
)

// SliceFootprint returns the payload size of s in bytes: len(s) * sizeof(T).
// The slice header itself is not counted.
func SliceFootprint[T any](s []T) int {
	var zero T
	return len(s) * int(unsafe.Sizeof(zero))
}

// ListFootprint returns sizeof(list.List) plus sizeof(T) for every node in l.
// Per-node pointers and allocator metadata are not counted, so the figure
// is lower than the real memory held by the list.
func ListFootprint[T any](l *list.List) int {
	var (
		zero T
		hdr  list.List
	)
	size := int(unsafe.Sizeof(hdr))
	if l == nil {
		return size
	}
	elemSize := int(unsafe.Sizeof(zero))
	for e := l.Front(); e != nil; e = e.Next() {
		size += elemSize
	}
	return size
}

// ArrayFootprint returns the payload size of s in bytes.
func ArrayFootprint(s ArraySequence) int {
	return SliceFootprint([]int(s))
}

// LinkedFootprint returns the header-plus-payload size of s in bytes.
func LinkedFootprint(s LinkedSequence) int {
	return ListFootprint[int](s.l)
}

// Footprint is a snapshot of both containers' byte estimates.
type Footprint struct {
	Array  int // payload bytes of the array sequence
	Linked int // header plus payload bytes of the linked sequence
}

// Measure returns the footprint of both sequences.
func Measure(a ArraySequence, l LinkedSequence) Footprint {
	return Footprint{
		Array:  ArrayFootprint(a),
		Linked: LinkedFootprint(l),
	}
}
