package classic

import (
	"container/heap"

	"linkgram/alg/stlheap"
	"linkgram/nlp/types"
)

// linkageSorter adapts the linkage array to stlheap.Interface. The
// reverse flag flips the comparator so heap.Init can build the
// max-heap that stlheap.Sort consumes.
type linkageSorter struct {
	lkgs    []types.Linkage
	compare CostModel
	reverse bool
}

var _ stlheap.Interface = &linkageSorter{}

func (s *linkageSorter) Len() int { return len(s.lkgs) }

func (s *linkageSorter) Less(i, j int) bool {
	if s.reverse {
		return s.compare(&s.lkgs[j], &s.lkgs[i]) < 0
	}
	return s.compare(&s.lkgs[i], &s.lkgs[j]) < 0
}

func (s *linkageSorter) Swap(i, j int) {
	s.lkgs[i], s.lkgs[j] = s.lkgs[j], s.lkgs[i]
}

func (s *linkageSorter) Push(x interface{}) {
	s.lkgs = append(s.lkgs, x.(types.Linkage))
}

func (s *linkageSorter) Pop() interface{} {
	n := len(s.lkgs)
	lkg := s.lkgs[n-1]
	s.lkgs = s.lkgs[:n-1]
	return lkg
}

func (s *linkageSorter) Copy(i, j int) {
	s.lkgs[j] = s.lkgs[i]
}

func (s *linkageSorter) Set(i int, x interface{}) {
	s.lkgs[i] = x.(types.Linkage)
}

func (s *linkageSorter) Get(i int) interface{} {
	return s.lkgs[i]
}

func (s *linkageSorter) LessValue(i int, x interface{}) bool {
	other := x.(types.Linkage)
	if s.reverse {
		return s.compare(&other, &s.lkgs[i]) < 0
	}
	return s.compare(&s.lkgs[i], &other) < 0
}

// SortLinkages ranks the materialized linkages in place under the
// cost model. Randomized results stay in sampling order.
func SortLinkages(sent *types.Sentence, opts *Options) {
	if sent.NumLinkagesFound == 0 {
		return
	}
	// If they're randomized, don't bother sorting.
	if sent.RandSeed != 0 && sent.ShuffleLinkages {
		return
	}

	sorter := &linkageSorter{
		lkgs:    sent.Linkages[:sent.NumLinkagesAlloced],
		compare: opts.compare(),
	}
	sorter.reverse = true
	heap.Init(sorter)
	sorter.reverse = false
	stlheap.Sort(sorter)
}
