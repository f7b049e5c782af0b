package classic

import (
	"log"

	"linkgram/nlp/types"
	"linkgram/util"
)

func newLinkageArray(numToAlloc int) []types.Linkage {
	// zero-valued slots: an unfilled slot is distinguishable from a
	// filled one by its nil chosen-disjunct row and zero counts
	return make([]types.Linkage, numToAlloc)
}

// FreeLinkages releases the sentence's linkage array and zeroes all
// materialization counters.
func FreeLinkages(sent *types.Sentence) {
	sent.Linkages = nil
	sent.NumLinkagesFound = 0
	sent.NumLinkagesAlloced = 0
	sent.NumLinkagesPostProcessed = 0
	sent.NumValidLinkages = 0
}

// setupLinkages builds the parse set and allocates the array the
// sampler will fill. It returns the counting stage's overflow flag.
func setupLinkages(sent *types.Sentence, ext Extractor, mc MatchCache, cc CountContext, opts *Options) bool {
	overflowed := ext.BuildParseSet(sent, mc, cc, sent.NullCount, opts)

	if overflowed && Verbose > 1 {
		log.Println("Warning: Count overflow.")
		log.Println("Considering a random subset of", opts.LinkageLimit,
			"of an unknown and large number of linkages")
	}

	if sent.NumLinkagesFound == 0 {
		sent.NumLinkagesAlloced = 0
		sent.NumLinkagesPostProcessed = 0
		sent.NumValidLinkages = 0
		sent.Linkages = nil
		return overflowed
	}

	// A previous attempt (e.g. a panic re-parse) may have left its
	// array behind; release it before installing the new one.
	if sent.Linkages != nil {
		found := sent.NumLinkagesFound
		FreeLinkages(sent)
		sent.NumLinkagesFound = found
	}

	sent.NumLinkagesAlloced = util.Min(sent.NumLinkagesFound, opts.LinkageLimit)
	sent.Linkages = newLinkageArray(sent.NumLinkagesAlloced)

	return overflowed
}
