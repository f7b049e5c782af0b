package classic

import (
	"time"

	"linkgram/nlp/types"
)

// Verbose gates the informational diagnostics of the parse loop, in
// the manner of a debug level. Diagnostics are advisory only; outcomes
// are communicated exclusively through the sentence counters.
var Verbose int

// A CostModel is a total-order comparator over linkages. Negative
// means a ranks before b.
type CostModel func(a, b *types.Linkage) int

// VDALCostModel is the default ranking: fewest unused words, then
// lowest disjunct cost, then shortest total link length.
func VDALCostModel(a, b *types.Linkage) int {
	if d := a.Info.UnusedWordCost - b.Info.UnusedWordCost; d != 0 {
		return d
	}
	if a.Info.DisjunctCost < b.Info.DisjunctCost {
		return -1
	}
	if a.Info.DisjunctCost > b.Info.DisjunctCost {
		return 1
	}
	return a.Info.LinkCost - b.Info.LinkCost
}

// Options bound one parse attempt. Null count bounds are inclusive and
// clamped to the sentence length; LinkageLimit caps how many linkages
// are materialized out of the counted total.
type Options struct {
	MinNullCount int `yaml:"min_null_count"`
	MaxNullCount int `yaml:"max_null_count"`
	LinkageLimit int `yaml:"linkage_limit"`

	Resources *Resources `yaml:"-"`
	CostModel CostModel  `yaml:"-"`
}

func NewOptions() *Options {
	return &Options{
		MaxNullCount: 0,
		LinkageLimit: 100,
	}
}

func (o *Options) compare() CostModel {
	if o.CostModel == nil {
		return VDALCostModel
	}
	return o.CostModel
}

// Resources is the wall-clock budget of a parse attempt. The zero
// budget (or a nil one) never exhausts.
type Resources struct {
	MaxTime time.Duration
	started time.Time
}

func NewResources(maxTime time.Duration) *Resources {
	return &Resources{MaxTime: maxTime, started: time.Now()}
}

func (r *Resources) Exhausted() bool {
	if r == nil || r.MaxTime == 0 {
		return false
	}
	return time.Since(r.started) > r.MaxTime
}
