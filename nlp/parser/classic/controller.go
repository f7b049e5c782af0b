// Package classic implements the null-count deepening parse
// controller: starting from the minimum allowed number of unlinked
// words, it counts, materializes, filters and ranks linkages,
// relaxing the null count until a parse is found or the allowed range
// is exhausted.
package classic

import (
	"log"
	"math"

	"linkgram/nlp/types"
	"linkgram/util"
)

// Parse runs the parse attempt over sent within the null-count range
// of opts, leaving the sentence holding zero or more ranked linkages
// and the materialization counters. Exhausting the range without a
// valid linkage is not an error; the caller observes it as zero valid
// linkages.
//
// Pruning done for null count 0 is more aggressive and not valid for
// larger null counts. When the attempt starts at 0 with headroom
// above it, the pre-pruning disjunct state is saved and restored at
// the transition to the first nonzero null count, and the
// prune/count/match-cache cycle is re-run exactly once there. For all
// other null counts the existing pruned state and tables remain in
// effect.
func Parse(sent *types.Sentence, opts *Options, e Engine) {
	var (
		mc    MatchCache
		cc    CountContext
		saved *DisjunctSnapshot
	)
	pruneDone := false
	isNullCount0 := opts.MinNullCount == 0
	maxNullCount := util.Min(sent.Len(), opts.MaxNullCount)

	// Build lists of disjuncts.
	e.Prepare(sent, opts)
	if opts.Resources.Exhausted() {
		return
	}

	if isNullCount0 && maxNullCount > 0 {
		// Save the disjuncts in case we need to parse with nulls.
		saved = SaveDisjuncts(sent)
	}

	for nl := opts.MinNullCount; nl <= maxNullCount; nl++ {
		if !pruneDone {
			if nl != 0 {
				pruneDone = true
				if isNullCount0 {
					// Parsing with nulls now, after a null-free pass
					// pruned aggressively. Undo that pass and don't
					// re-apply the null-free optimization.
					opts.MinNullCount = 1
					saved.Restore(sent)
				}
			}
			e.Prune(sent, opts)
			if isNullCount0 {
				opts.MinNullCount = 0
			}
			if opts.Resources.Exhausted() {
				break
			}

			if cc != nil {
				cc.Release()
			}
			cc = e.NewCountContext(sent)
			if mc != nil {
				mc.Release()
			}
			mc = e.NewMatchCache(sent)
		}

		if opts.Resources.Exhausted() {
			break
		}
		FreeLinkages(sent)

		sent.NullCount = nl
		hist := cc.Count(mc, nl, opts)
		total := hist.Total()

		// The total is 64-bit, the found counter 32-bit. Clamp; an
		// accidental negative clamps to the maximum as well.
		if total > math.MaxInt32 || total < 0 {
			total = math.MaxInt32
		}
		sent.NumLinkagesFound = int(total)

		if Verbose >= 1 {
			log.Println("Info: Total count with", nl, "null links:", total)
		}

		ext := e.NewExtractor(sent)
		overflowed := setupLinkages(sent, ext, mc, cc, opts)
		processLinkages(sent, e, ext, overflowed, opts)
		ext.Release()

		e.PostProcess(sent, opts)

		if sent.NumValidLinkages > 0 {
			break
		}
		if Verbose >= 1 && sent.NumLinkagesPostProcessed > 0 {
			log.Println("Info: All linkages had post-processing violations.",
				"Consider increasing the linkage limit.")
		}
		if nl == 0 && maxNullCount > 0 && Verbose > 0 {
			log.Println("No complete linkages found.")
		}
	}
	SortLinkages(sent, opts)

	saved.Discard()
	if cc != nil {
		cc.Release()
	}
	if mc != nil {
		mc.Release()
	}
}
