package engine

import (
	"math/rand"

	"linkgram/nlp/parser/classic"
	"linkgram/nlp/types"
)

type extractor struct {
	numWords int
	randSeed int64
	set      []*parseChoice
}

func (e *Engine) NewExtractor(sent *types.Sentence) classic.Extractor {
	return &extractor{numWords: sent.Len(), randSeed: sent.RandSeed}
}

func (x *extractor) BuildParseSet(sent *types.Sentence, mc classic.MatchCache, cc classic.CountContext, nullCount int, opts *classic.Options) bool {
	ctx := cc.(*countContext)
	ctx.build(mc.(*matchCache))
	x.set = ctx.results[nullCount]
	return ctx.truncated
}

// Extract fills the target record from the parse set. A negative
// selection index is a random seed: combined with the sentence's
// random state it picks a reproducible pseudo-random member.
func (x *extractor) Extract(lkg *types.Linkage) {
	if len(x.set) == 0 {
		return
	}
	idx := lkg.Info.Index
	if idx < 0 {
		rnd := rand.New(rand.NewSource(x.randSeed*1103515245 + int64(idx)))
		idx = rnd.Intn(len(x.set))
	}
	if idx >= len(x.set) {
		panic("Extraction index beyond the parse set")
	}
	choice := x.set[idx]

	lkg.NumWords = x.numWords
	copy(lkg.ChosenDisjuncts, choice.chosen)
	lkg.Links = append(lkg.Links[:0], choice.links...)

	info := &lkg.Info
	info.UnusedWordCost = choice.nulls
	info.DisjunctCost = 0
	info.LinkCost = 0
	for _, d := range choice.chosen {
		if d != nil {
			info.DisjunctCost += d.Cost
		}
	}
	for _, l := range choice.links {
		info.LinkCost += l.Right - l.Left
	}
}

func (x *extractor) Release() {
	x.set = nil
}
