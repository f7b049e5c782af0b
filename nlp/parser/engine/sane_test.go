package engine

import (
	"testing"

	"linkgram/nlp/parser/classic"
	"linkgram/nlp/types"
)

func TestSaneMorphismRejectsLinkedNullWord(t *testing.T) {
	e := &Engine{}
	sent := types.NewSentence([]string{"a", "b"})
	sent.NullCount = 1
	lkg := &types.Linkage{
		ChosenDisjuncts: []*types.Disjunct{{Word: "a"}, nil},
		Links:           []types.Link{{Left: 0, Right: 1}},
		NumWords:        2,
	}
	if e.SaneMorphism(sent, lkg, classic.NewOptions()) {
		t.Error("Got sane for a linked null word expected insane")
	}
}

func TestSaneMorphismRequiresMatchingNullCount(t *testing.T) {
	e := &Engine{}
	sent := types.NewSentence([]string{"a", "b"})
	sent.NullCount = 0
	lkg := &types.Linkage{
		ChosenDisjuncts: []*types.Disjunct{nil, nil},
		NumWords:        2,
	}
	if e.SaneMorphism(sent, lkg, classic.NewOptions()) {
		t.Error("Got sane for two nulls at null count zero expected insane")
	}
	sent.NullCount = 2
	if !e.SaneMorphism(sent, lkg, classic.NewOptions()) {
		t.Error("Got insane for two nulls at null count two expected sane")
	}
}

func TestStripEmptyWordsRemapsLinks(t *testing.T) {
	e := &Engine{}
	sent := types.NewSentence([]string{"um", "a", "b"})
	sent.Words[0].Optional = true
	conn := &types.Connector{Label: "D"}
	lkg := &types.Linkage{
		ChosenDisjuncts: []*types.Disjunct{nil, {Word: "a"}, {Word: "b"}},
		Links:           []types.Link{{Left: 1, Right: 2, LeftConn: conn, RightConn: conn}},
		NumWords:        3,
	}

	e.StripEmptyWords(sent, lkg)

	if lkg.NumWords != 2 {
		t.Error("Got", lkg.NumWords, "words expected", 2)
	}
	if lkg.Links[0].Left != 0 || lkg.Links[0].Right != 1 {
		t.Error("Got link", lkg.Links[0].Left, lkg.Links[0].Right, "expected remapped to", 0, 1)
	}
	if lkg.Info.UnusedWordCost != 0 {
		t.Error("Got unused word cost", lkg.Info.UnusedWordCost, "expected", 0)
	}
}

func TestStripEmptyWordsKeepsNonOptionalNulls(t *testing.T) {
	e := &Engine{}
	sent := types.NewSentence([]string{"a", "b"})
	lkg := &types.Linkage{
		ChosenDisjuncts: []*types.Disjunct{nil, nil},
		NumWords:        2,
	}

	e.StripEmptyWords(sent, lkg)

	if lkg.NumWords != 2 {
		t.Error("Got", lkg.NumWords, "words expected", 2)
	}
}
