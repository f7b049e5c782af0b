package classic

import (
	"log"

	"linkgram/nlp/types"
	"linkgram/util"
)

// MaxRandomTries bounds the extra extraction attempts made when
// sampling randomly. Morphologically valid linkages can be as rare as
// one in a thousand among random draws; search for them, but don't
// over-do it.
const MaxRandomTries = 250000

// selector produces selection indices for extraction attempts:
// sequential positions when exhaustive, strictly decreasing negative
// seeds (-(attempt+1)) when random, so runs with the same initial
// random state are reproducible.
type selector struct {
	random  bool
	attempt int
}

func (s *selector) next() int {
	idx := s.attempt
	s.attempt++
	if s.random {
		return -(idx + 1)
	}
	return idx
}

// processLinkages fills the allocated linkage array with up to
// capacity morphologically-acceptable linkages and logically shrinks
// the array to the filled prefix.
func processLinkages(sent *types.Sentence, e Engine, ext Extractor, overflowed bool, opts *Options) {
	sent.NumValidLinkages = 0
	if sent.NumLinkagesFound == 0 {
		return
	}
	if sent.NumLinkagesAlloced == 0 {
		return
	}

	// Pick random linkages if there are more than was asked for, or
	// the true count is unknown.
	pickRandomly := overflowed || sent.NumLinkagesFound > sent.NumLinkagesAlloced

	var maxTries int
	if pickRandomly {
		// Try picking many more linkages, but not more than possible.
		maxTries = util.Min(sent.NumLinkagesAlloced+MaxRandomTries, sent.NumLinkagesFound)
	} else {
		maxTries = sent.NumLinkagesAlloced
	}

	sel := &selector{random: pickRandomly}
	var (
		invalidMorphism int
		in              int
		itry            int
	)
	needInit := true
	for itry = 0; itry < maxTries; itry++ {
		lkg := &sent.Linkages[in]
		lkg.Info.Index = sel.next()

		if needInit {
			lkg.Init(sent.Len())
			needInit = false
		}
		ext.Extract(lkg)
		e.ComputeLinkNames(lkg, sent.LinkNames)

		if e.SaneMorphism(sent, lkg, opts) {
			e.StripEmptyWords(sent, lkg)
			needInit = true
			in++
			if in >= sent.NumLinkagesAlloced {
				break
			}
		} else {
			invalidMorphism++
			lkg.Reset(sent.Len())
		}
	}

	// The last slot was initialized but never filled.
	if !needInit {
		sent.Linkages[in].Free()
	}

	sent.NumValidLinkages = in
	// The remainder of the array was never filled in; pretend it is
	// shorter than it is.
	sent.NumLinkagesAlloced = in
	sent.Linkages = sent.Linkages[:in]

	if Verbose >= 1 && invalidMorphism > 0 {
		// on an early break itry is the index of the last attempt, not
		// the attempt count
		attempts := itry
		if itry != maxTries {
			attempts++
		}
		log.Println("Info:", invalidMorphism, "of", attempts,
			"sampled linkages had invalid morphology construction")
	}
}
