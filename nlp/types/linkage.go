package types

// A Link connects a right-facing connector of the word at Left with a
// left-facing connector of the word at Right.
type Link struct {
	Left      int
	Right     int
	LeftConn  *Connector
	RightConn *Connector
	Name      string
}

// LinkageInfo holds the selection index of a linkage and the intrinsic
// scores the cost model ranks by. A negative Index is a reproducible
// random seed handed to the extractor instead of a concrete index.
type LinkageInfo struct {
	Index          int
	UnusedWordCost int
	DisjunctCost   float64
	LinkCost       int
}

// A Linkage is one concrete reading of a sentence: a chosen disjunct
// per word (nil for null words) and the links those disjuncts form.
// Linkage records are owned by the sentence's linkage array; chosen
// disjuncts alias the sentence's candidate lists.
type Linkage struct {
	ChosenDisjuncts []*Disjunct
	Links           []Link
	NumWords        int
	Info            LinkageInfo
}

// Init prepares an unused slot for extraction.
func (l *Linkage) Init(numWords int) {
	l.NumWords = numWords
	l.ChosenDisjuncts = make([]*Disjunct, numWords)
	l.Links = nil
}

// Reset returns a slot to the zero state for reuse after a failed
// extraction: no links, full word count, cleared chosen-disjunct row.
func (l *Linkage) Reset(numWords int) {
	l.Links = l.Links[:0]
	l.NumWords = numWords
	for i := range l.ChosenDisjuncts {
		l.ChosenDisjuncts[i] = nil
	}
}

// Free releases a slot that was allocated but never filled.
func (l *Linkage) Free() {
	*l = Linkage{}
}

// NullWords counts the words left without a chosen disjunct.
func (l *Linkage) NullWords() int {
	var nulls int
	for _, d := range l.ChosenDisjuncts {
		if d == nil {
			nulls++
		}
	}
	return nulls
}
