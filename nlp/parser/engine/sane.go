package engine

import (
	"linkgram/nlp/parser/classic"
	"linkgram/nlp/types"
	"linkgram/util"
)

func (e *Engine) ComputeLinkNames(lkg *types.Linkage, names *util.EnumSet) {
	for i := range lkg.Links {
		link := &lkg.Links[i]
		link.Name = linkName(link.LeftConn.Label, link.RightConn.Label)
		names.Add(link.Name)
	}
}

// linkName merges the two connector labels, preferring concrete
// subscript characters over wildcards and keeping the longer tail.
func linkName(a, b string) string {
	if len(b) > len(a) {
		a, b = b, a
	}
	name := []byte(a)
	for i := 0; i < len(b); i++ {
		if name[i] == '*' {
			name[i] = b[i]
		}
	}
	return string(name)
}

// SaneMorphism checks that the linkage's word-to-disjunct assignment
// is internally consistent: every linked word carries a disjunct,
// every disjunct-bearing word is linked, and the number of bare words
// agrees with the sentence's active null count.
func (e *Engine) SaneMorphism(sent *types.Sentence, lkg *types.Linkage, opts *classic.Options) bool {
	linked := make([]bool, lkg.NumWords)
	for _, l := range lkg.Links {
		if l.Left < 0 || l.Right >= lkg.NumWords {
			return false
		}
		linked[l.Left] = true
		linked[l.Right] = true
	}
	nulls := 0
	for i := 0; i < lkg.NumWords; i++ {
		if lkg.ChosenDisjuncts[i] == nil {
			if linked[i] {
				return false
			}
			nulls++
		} else if !linked[i] {
			return false
		}
	}
	return nulls == sent.NullCount
}

// StripEmptyWords drops optional words that resolved to no disjunct
// and remaps link endpoints onto the compacted word row.
func (e *Engine) StripEmptyWords(sent *types.Sentence, lkg *types.Linkage) {
	remap := make([]int, lkg.NumWords)
	kept := 0
	for i := 0; i < lkg.NumWords; i++ {
		if lkg.ChosenDisjuncts[i] == nil && i < sent.Len() && sent.Words[i].Optional {
			remap[i] = -1
			continue
		}
		remap[i] = kept
		lkg.ChosenDisjuncts[kept] = lkg.ChosenDisjuncts[i]
		kept++
	}
	if kept == lkg.NumWords {
		return
	}
	lkg.ChosenDisjuncts = lkg.ChosenDisjuncts[:kept]
	lkg.NumWords = kept
	for i := range lkg.Links {
		l := &lkg.Links[i]
		l.Left = remap[l.Left]
		l.Right = remap[l.Right]
	}
	lkg.Info.UnusedWordCost = lkg.NullWords()
}
