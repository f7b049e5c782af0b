// Package engine is the reference implementation of the parse
// collaborators: it enumerates linkages exhaustively for bounded
// sentences using a planar connector matcher, and backs the counting,
// extraction, morphology and post-processing stages the controller
// drives.
package engine

import (
	"log"

	"linkgram/nlp/format/dict"
	"linkgram/nlp/parser/classic"
	"linkgram/nlp/types"
)

type Engine struct {
	Dict *dict.Dictionary
}

var _ classic.Engine = &Engine{}

func New(d *dict.Dictionary) *Engine {
	return &Engine{Dict: d}
}

func (e *Engine) Prepare(sent *types.Sentence, opts *classic.Options) {
	for _, word := range sent.Words {
		word.Disjuncts = e.Dict.Lookup(word.Form)
		word.Optional = e.Dict.Optional(word.Form)
		if len(word.Disjuncts) == 0 && classic.Verbose >= 1 {
			log.Println("Info: no dictionary entry for", word.Form)
		}
	}
	if e.Dict.ShuffleLinkages {
		sent.ShuffleLinkages = true
	}
}

// Prune drops disjuncts carrying a connector that cannot match any
// counterpart in the right direction, to a fixed point. When parsing
// with no nulls allowed it is more aggressive: a non-optional word
// left with no candidates rules out the whole sentence, so every list
// is cleared. That shortcut is invalid for null counts above zero and
// is undone by the controller's disjunct snapshot.
func (e *Engine) Prune(sent *types.Sentence, opts *classic.Options) {
	mc := newMatchCache()
	for changed := true; changed; {
		changed = false
		for i, word := range sent.Words {
			kept := word.Disjuncts[:0]
			for _, d := range word.Disjuncts {
				if e.connectable(sent, mc, i, d) {
					kept = append(kept, d)
				} else {
					changed = true
				}
			}
			word.Disjuncts = kept
		}
	}

	if opts.MinNullCount == 0 {
		for _, word := range sent.Words {
			if len(word.Disjuncts) == 0 && !word.Optional {
				for _, other := range sent.Words {
					other.Disjuncts = nil
				}
				return
			}
		}
	}
}

func (e *Engine) connectable(sent *types.Sentence, mc *matchCache, i int, d *types.Disjunct) bool {
	for _, c := range d.Left {
		if !hasPartner(sent, mc, c, 0, i, true) {
			return false
		}
	}
	for _, c := range d.Right {
		if !hasPartner(sent, mc, c, i+1, sent.Len(), false) {
			return false
		}
	}
	return true
}

func hasPartner(sent *types.Sentence, mc *matchCache, c *types.Connector, from, to int, wantRight bool) bool {
	for j := from; j < to; j++ {
		for _, d := range sent.Words[j].Disjuncts {
			conns := d.Left
			if wantRight {
				conns = d.Right
			}
			for _, other := range conns {
				if mc.match(c.Label, other.Label) {
					return true
				}
			}
		}
	}
	return false
}

func (e *Engine) NewMatchCache(sent *types.Sentence) classic.MatchCache {
	return newMatchCache()
}

// PostProcess is rule-less in the reference engine: every materialized
// linkage is processed and none is marked as violating.
func (e *Engine) PostProcess(sent *types.Sentence, opts *classic.Options) {
	sent.NumLinkagesPostProcessed = sent.NumLinkagesAlloced
}
