package classic

import (
	"linkgram/nlp/types"
)

// A DisjunctSnapshot is a deep copy of the per-word candidate disjunct
// lists, taken before the aggressive zero-null pruning pass so that
// pass can be undone before re-pruning with nulls allowed.
type DisjunctSnapshot struct {
	disjuncts [][]*types.Disjunct
}

// SaveDisjuncts deep-copies the sentence's current disjunct lists.
// Disjunct and connector records are copied, not aliased, so later
// pruning cannot reach into the snapshot.
func SaveDisjuncts(sent *types.Sentence) *DisjunctSnapshot {
	snap := &DisjunctSnapshot{
		disjuncts: make([][]*types.Disjunct, sent.Len()),
	}
	for i, word := range sent.Words {
		dup := make([]*types.Disjunct, len(word.Disjuncts))
		for j, d := range word.Disjuncts {
			dup[j] = d.Copy()
		}
		snap.disjuncts[i] = dup
	}
	return snap
}

// Restore reinstates the saved disjunct lists, undoing any pruning
// performed since the snapshot. The snapshot is consumed.
func (s *DisjunctSnapshot) Restore(sent *types.Sentence) {
	if s == nil || s.disjuncts == nil {
		panic("Restore of disjuncts without a saved snapshot")
	}
	if len(s.disjuncts) != sent.Len() {
		panic("Disjunct snapshot taken for a different sentence")
	}
	for i, word := range sent.Words {
		word.Disjuncts = s.disjuncts[i]
	}
	s.disjuncts = nil
}

// Discard releases the snapshot. Safe on a nil or consumed snapshot.
func (s *DisjunctSnapshot) Discard() {
	if s == nil {
		return
	}
	s.disjuncts = nil
}
