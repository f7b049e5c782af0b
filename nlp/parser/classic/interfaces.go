package classic

import (
	"linkgram/nlp/types"
	"linkgram/util"
)

// A Histogram is the counting stage's answer for one null count. The
// controller sums the bins and clamps the total into the positive
// 32-bit range before recording it.
type Histogram struct {
	Bins []int64
}

func (h Histogram) Total() int64 {
	var total int64
	for _, bin := range h.Bins {
		total += bin
	}
	return total
}

// MatchCache is the fast connector-matching cache, scoped to one
// pruning generation.
type MatchCache interface {
	Release()
}

// CountContext owns the dynamic-programming count tables for one
// pruning generation.
type CountContext interface {
	Count(mc MatchCache, nullCount int, opts *Options) Histogram
	Release()
}

// An Extractor turns selection indices into concrete linkages. A
// negative index in the target's LinkageInfo is a reproducible random
// seed rather than a position.
type Extractor interface {
	// BuildParseSet prepares extraction for the given null count and
	// reports whether the underlying count overflowed, i.e. the true
	// number of linkages is unknown and enormous.
	BuildParseSet(sent *types.Sentence, mc MatchCache, cc CountContext, nullCount int, opts *Options) bool
	Extract(lkg *types.Linkage)
	Release()
}

// Engine bundles the collaborators the controller drives: grammar
// preparation, power pruning, counting, matching, extraction,
// morphology checking and post-processing. The controller never
// inspects their internals; outcomes flow through the sentence.
type Engine interface {
	// Prepare builds the initial per-word disjunct candidate lists.
	Prepare(sent *types.Sentence, opts *Options)
	// Prune removes connectors with no possible match. It may be more
	// aggressive when opts.MinNullCount == 0.
	Prune(sent *types.Sentence, opts *Options)

	NewMatchCache(sent *types.Sentence) MatchCache
	NewCountContext(sent *types.Sentence) CountContext
	NewExtractor(sent *types.Sentence) Extractor

	ComputeLinkNames(lkg *types.Linkage, names *util.EnumSet)
	// SaneMorphism reports whether a linkage's word-to-disjunct
	// assignment is consistent with the sentence's morphology.
	SaneMorphism(sent *types.Sentence, lkg *types.Linkage, opts *Options) bool
	// StripEmptyWords removes optional words that resolved to no
	// disjunct from the linkage.
	StripEmptyWords(sent *types.Sentence, lkg *types.Linkage)
	// PostProcess applies the rule-checking stage over the filled
	// linkage array in place, updating the post-processing counters.
	PostProcess(sent *types.Sentence, opts *Options)
}
