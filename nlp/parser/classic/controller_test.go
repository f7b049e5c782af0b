package classic

import (
	"math"
	"time"

	"linkgram/nlp/types"
	"linkgram/util"

	"testing"
)

// fakeEngine scripts the collaborators so the control flow of Parse
// can be observed directly: counts per null count, sanity verdicts per
// selection index, and a record of every prune and extraction.
type fakeEngine struct {
	counts       map[int]int64
	overflow     bool
	disjunctsPer int
	sane         func(lkg *types.Linkage) bool

	pruneCalls    int
	pruneMinNulls []int
	pruneSeen     []int
	countQueries  []int
	extracted     []int
}

var _ Engine = &fakeEngine{}

func (f *fakeEngine) Prepare(sent *types.Sentence, opts *Options) {
	for _, word := range sent.Words {
		word.Disjuncts = make([]*types.Disjunct, f.disjunctsPer)
		for i := range word.Disjuncts {
			word.Disjuncts[i] = &types.Disjunct{Word: word.Form}
		}
	}
}

func (f *fakeEngine) Prune(sent *types.Sentence, opts *Options) {
	f.pruneCalls++
	f.pruneMinNulls = append(f.pruneMinNulls, opts.MinNullCount)
	f.pruneSeen = append(f.pruneSeen, len(sent.Words[0].Disjuncts))
	if opts.MinNullCount == 0 {
		for _, word := range sent.Words {
			word.Disjuncts = nil
		}
	}
}

type fakeCache struct{}

func (fakeCache) Release() {}

func (f *fakeEngine) NewMatchCache(sent *types.Sentence) MatchCache { return fakeCache{} }

type fakeCounter struct{ f *fakeEngine }

func (c fakeCounter) Count(mc MatchCache, nullCount int, opts *Options) Histogram {
	c.f.countQueries = append(c.f.countQueries, nullCount)
	return Histogram{Bins: []int64{c.f.counts[nullCount]}}
}

func (c fakeCounter) Release() {}

func (f *fakeEngine) NewCountContext(sent *types.Sentence) CountContext { return fakeCounter{f} }

type fakeExtractor struct{ f *fakeEngine }

func (x fakeExtractor) BuildParseSet(sent *types.Sentence, mc MatchCache, cc CountContext, nullCount int, opts *Options) bool {
	return x.f.overflow
}

func (x fakeExtractor) Extract(lkg *types.Linkage) {
	x.f.extracted = append(x.f.extracted, lkg.Info.Index)
	// distinguishing cost so ranking keeps sampling order deterministic
	lkg.Info.LinkCost = lkg.Info.Index
}

func (x fakeExtractor) Release() {}

func (f *fakeEngine) NewExtractor(sent *types.Sentence) Extractor { return fakeExtractor{f} }

func (f *fakeEngine) ComputeLinkNames(lkg *types.Linkage, names *util.EnumSet) {}

func (f *fakeEngine) SaneMorphism(sent *types.Sentence, lkg *types.Linkage, opts *Options) bool {
	if f.sane == nil {
		return true
	}
	return f.sane(lkg)
}

func (f *fakeEngine) StripEmptyWords(sent *types.Sentence, lkg *types.Linkage) {}

func (f *fakeEngine) PostProcess(sent *types.Sentence, opts *Options) {
	sent.NumLinkagesPostProcessed = sent.NumLinkagesAlloced
}

func testSentence(numWords int) *types.Sentence {
	tokens := make([]string, numWords)
	for i := range tokens {
		tokens[i] = "w"
	}
	return types.NewSentence(tokens)
}

func TestParseStopsAtFirstValidNullCount(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{0: 3}, disjunctsPer: 2}
	sent := testSentence(5)
	opts := NewOptions()
	opts.MaxNullCount = 2
	opts.LinkageLimit = 10

	Parse(sent, opts, f)

	if sent.NullCount != 0 {
		t.Error("Got null count", sent.NullCount, "expected", 0)
	}
	if sent.NumValidLinkages != 3 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 3)
	}
	if f.pruneCalls != 1 {
		t.Error("Got", f.pruneCalls, "prune calls expected", 1)
	}
	for i, idx := range f.extracted {
		if idx != i {
			t.Error("Got extraction index", idx, "expected", i)
		}
	}
	if len(sent.Linkages) != 3 || sent.NumLinkagesAlloced != 3 {
		t.Error("Got array of", len(sent.Linkages), "alloced", sent.NumLinkagesAlloced, "expected", 3)
	}
}

func TestParseEscalatesNullCount(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{2: 4}, disjunctsPer: 2}
	sent := testSentence(5)
	opts := NewOptions()
	opts.MaxNullCount = 2
	opts.LinkageLimit = 10

	Parse(sent, opts, f)

	if sent.NullCount != 2 {
		t.Error("Got null count", sent.NullCount, "expected", 2)
	}
	if sent.NumValidLinkages != 4 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 4)
	}
	if f.pruneCalls != 2 {
		t.Error("Got", f.pruneCalls, "prune calls expected", 2)
	}
	// the second prune runs with nulls allowed, over restored disjuncts
	if len(f.pruneMinNulls) == 2 {
		if f.pruneMinNulls[0] != 0 || f.pruneMinNulls[1] != 1 {
			t.Error("Got prune min null counts", f.pruneMinNulls, "expected [0 1]")
		}
		if f.pruneSeen[0] != 2 || f.pruneSeen[1] != 2 {
			t.Error("Got disjunct counts at prune", f.pruneSeen, "expected [2 2]")
		}
	}
	if opts.MinNullCount != 0 {
		t.Error("Got min null count", opts.MinNullCount, "expected restored to", 0)
	}
	if len(f.countQueries) != 3 {
		t.Error("Got count queries", f.countQueries, "expected one per null count")
	}
}

func TestParseClampsMaxNullsToSentenceLength(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{}, disjunctsPer: 1}
	sent := testSentence(2)
	opts := NewOptions()
	opts.MaxNullCount = 5

	Parse(sent, opts, f)

	if sent.NumValidLinkages != 0 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 0)
	}
	if len(f.countQueries) != 3 {
		t.Error("Got count queries", f.countQueries, "expected [0 1 2]")
	}
	if sent.NullCount != 2 {
		t.Error("Got null count", sent.NullCount, "expected", 2)
	}
}

func TestRandomSamplingCapsTries(t *testing.T) {
	f := &fakeEngine{
		counts:       map[int]int64{0: 1000000},
		disjunctsPer: 1,
		sane:         func(lkg *types.Linkage) bool { return false },
	}
	sent := testSentence(3)
	opts := NewOptions()
	opts.LinkageLimit = 50

	Parse(sent, opts, f)

	if sent.NumValidLinkages != 0 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 0)
	}
	if len(f.extracted) != 50+MaxRandomTries {
		t.Error("Got", len(f.extracted), "tries expected", 50+MaxRandomTries)
	}
	for i, idx := range f.extracted {
		if idx != -(i + 1) {
			t.Error("Got random selection index", idx, "at attempt", i, "expected", -(i + 1))
			break
		}
	}
	if len(sent.Linkages) != 0 {
		t.Error("Got", len(sent.Linkages), "linkages after shrink expected", 0)
	}
}

func TestOverflowForcesRandomSelection(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{0: 5}, disjunctsPer: 1, overflow: true}
	sent := testSentence(3)
	opts := NewOptions()
	opts.LinkageLimit = 10

	Parse(sent, opts, f)

	if sent.NumValidLinkages != 5 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 5)
	}
	for i, idx := range f.extracted {
		if idx >= 0 {
			t.Error("Got sequential index", idx, "at attempt", i, "expected random selection")
		}
	}
}

func TestNegativeCountClampsToMaxInt32(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{0: -7}, disjunctsPer: 1}
	sent := testSentence(3)
	opts := NewOptions()
	opts.LinkageLimit = 4

	Parse(sent, opts, f)

	if sent.NumLinkagesFound != math.MaxInt32 {
		t.Error("Got", sent.NumLinkagesFound, "linkages found expected", math.MaxInt32)
	}
	if sent.NumValidLinkages != 4 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 4)
	}
}

func TestInvalidMorphologyReusesSlot(t *testing.T) {
	f := &fakeEngine{
		counts:       map[int]int64{0: 6},
		disjunctsPer: 1,
		sane:         func(lkg *types.Linkage) bool { return lkg.Info.Index%2 == 0 },
	}
	sent := testSentence(3)
	opts := NewOptions()
	opts.LinkageLimit = 10

	Parse(sent, opts, f)

	if sent.NumValidLinkages != 3 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 3)
	}
	for i, lkg := range sent.Linkages {
		if lkg.Info.Index != 2*i {
			t.Error("Got kept index", lkg.Info.Index, "at slot", i, "expected", 2*i)
		}
	}
}

func TestExhaustedResourcesAbort(t *testing.T) {
	f := &fakeEngine{counts: map[int]int64{0: 3}, disjunctsPer: 1}
	sent := testSentence(3)
	opts := NewOptions()
	opts.Resources = &Resources{MaxTime: time.Nanosecond, started: time.Now().Add(-time.Second)}

	Parse(sent, opts, f)

	if len(f.countQueries) != 0 {
		t.Error("Got count queries", f.countQueries, "expected none after exhaustion")
	}
	if sent.NumValidLinkages != 0 {
		t.Error("Got", sent.NumValidLinkages, "valid linkages expected", 0)
	}
}
