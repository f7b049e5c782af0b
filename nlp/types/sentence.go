package types

import (
	"linkgram/util"
)

type Word struct {
	Form      string
	Disjuncts []*Disjunct
	// Optional words may be dropped from a linkage when they resolve
	// to no disjunct, instead of counting as nulls.
	Optional bool
}

// A Sentence owns the state of one parse attempt: the word slots with
// their candidate disjuncts, the active null count, the linkage array
// and its counters. After materialization completes,
// NumValidLinkages <= NumLinkagesAlloced <= NumLinkagesFound.
type Sentence struct {
	Words     []*Word
	NullCount int

	NumLinkagesFound         int
	NumLinkagesAlloced       int
	NumLinkagesPostProcessed int
	NumValidLinkages         int
	Linkages                 []Linkage

	// LinkNames interns link names for the lifetime of the attempt.
	LinkNames *util.EnumSet

	// RandSeed drives reproducible random sampling; zero disables the
	// randomized-output behaviors.
	RandSeed        int64
	ShuffleLinkages bool
}

func NewSentence(tokens []string) *Sentence {
	words := make([]*Word, len(tokens))
	for i, form := range tokens {
		words[i] = &Word{Form: form}
	}
	return &Sentence{
		Words:     words,
		LinkNames: util.NewEnumSet(32),
	}
}

func (s *Sentence) Len() int {
	return len(s.Words)
}
