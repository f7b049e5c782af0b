// Package stlheap implements STL-style heap sorting over an extended
// heap.Interface that supports hole movement instead of pairwise swaps.
package stlheap

import "container/heap"

type Interface interface {
	heap.Interface
	Copy(i, j int)
	Set(i int, x interface{})
	Get(i int) interface{}
	LessValue(i int, x interface{}) bool
}

func push(h Interface, holeIndex int, x interface{}) {
	parent := (holeIndex - 1) / 2
	for holeIndex > 0 && h.LessValue(parent, x) {
		h.Copy(parent, holeIndex)
		holeIndex = parent
		parent = (holeIndex - 1) / 2
	}
	h.Set(holeIndex, x)
}

func adjust(h Interface, length int, x interface{}) {
	secondChild, holeIndex := 0, 0
	for secondChild < (length-1)/2 {
		secondChild = 2 * (secondChild + 1)
		if h.Less(secondChild, secondChild-1) {
			secondChild--
		}
		h.Copy(secondChild, holeIndex)
		holeIndex = secondChild
	}
	if length&1 == 0 && secondChild == (length-2)/2 {
		secondChild = 2 * (secondChild + 1)
		h.Copy(secondChild-1, holeIndex)
		holeIndex = secondChild - 1
	}
	push(h, holeIndex, x)
}

// Sort pops the root to the end repeatedly. The caller must hand over a
// max-heap under h.Less; the result is ascending under h.Less.
func Sort(h Interface) {
	for i := h.Len() - 1; i > 0; i-- {
		cur := h.Get(i)
		h.Copy(0, i)
		adjust(h, i, cur)
	}
}
