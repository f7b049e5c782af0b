package engine

import (
	"linkgram/nlp/parser/classic"
	"linkgram/nlp/types"
)

// maxEnumerationSteps bounds the exhaustive enumeration. When the
// bound is hit the parse set is left partial and the count is
// reported as overflowed, which switches the sampler to random mode.
const maxEnumerationSteps = 1 << 22

// A parseChoice is one concrete linkage candidate: a chosen disjunct
// (or nil) per word and the links they form.
type parseChoice struct {
	chosen []*types.Disjunct
	links  []types.Link
	nulls  int
}

type countContext struct {
	sent      *types.Sentence
	built     bool
	truncated bool
	results   map[int][]*parseChoice
}

func (e *Engine) NewCountContext(sent *types.Sentence) classic.CountContext {
	return &countContext{sent: sent}
}

func (c *countContext) Count(mc classic.MatchCache, nullCount int, opts *classic.Options) classic.Histogram {
	c.build(mc.(*matchCache))
	return classic.Histogram{Bins: []int64{int64(len(c.results[nullCount]))}}
}

func (c *countContext) Release() {
	c.results = nil
	c.built = false
}

// build enumerates every disjunct assignment once per pruning
// generation and groups the valid linkages by null count. The nil
// choice (null word) is tried last so enumeration order is stable.
func (c *countContext) build(mc *matchCache) {
	if c.built {
		return
	}
	c.built = true
	c.results = make(map[int][]*parseChoice)

	words := c.sent.Words
	chosen := make([]*types.Disjunct, len(words))
	steps := 0

	var rec func(i int)
	rec = func(i int) {
		steps++
		if c.truncated {
			return
		}
		if steps > maxEnumerationSteps {
			c.truncated = true
			return
		}
		if i == len(words) {
			links, ok := planarLinks(chosen, mc)
			if !ok || !connected(chosen, links) {
				return
			}
			choice := &parseChoice{
				chosen: append([]*types.Disjunct{}, chosen...),
				links:  links,
			}
			for _, d := range chosen {
				if d == nil {
					choice.nulls++
				}
			}
			c.results[choice.nulls] = append(c.results[choice.nulls], choice)
			return
		}
		for _, d := range words[i].Disjuncts {
			chosen[i] = d
			rec(i + 1)
		}
		chosen[i] = nil
		rec(i + 1)
	}
	rec(0)
}

type openConnector struct {
	word int
	conn *types.Connector
}

// planarLinks links the chosen disjuncts left to right with a stack
// of open right-facing connectors. The stack discipline enforces
// planarity; connector order within a disjunct is nearest-first, so
// a left connector must close the most recently opened counterpart.
func planarLinks(chosen []*types.Disjunct, mc *matchCache) ([]types.Link, bool) {
	var (
		stack []openConnector
		links []types.Link
	)
	for j, d := range chosen {
		if d == nil {
			continue
		}
		for _, lc := range d.Left {
			if len(stack) == 0 {
				return nil, false
			}
			top := stack[len(stack)-1]
			if !mc.match(top.conn.Label, lc.Label) {
				return nil, false
			}
			stack = stack[:len(stack)-1]
			links = append(links, types.Link{
				Left:      top.word,
				Right:     j,
				LeftConn:  top.conn,
				RightConn: lc,
			})
		}
		// push in reverse so the nearest-first connector ends on top
		for k := len(d.Right) - 1; k >= 0; k-- {
			stack = append(stack, openConnector{j, d.Right[k]})
		}
	}
	if len(stack) != 0 {
		return nil, false
	}
	return links, true
}

// connected requires the linked (non-null) words to form a single
// component.
func connected(chosen []*types.Disjunct, links []types.Link) bool {
	parent := make([]int, len(chosen))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, l := range links {
		parent[find(l.Left)] = find(l.Right)
	}
	root := -1
	for i, d := range chosen {
		if d == nil {
			continue
		}
		r := find(i)
		if root == -1 {
			root = r
		} else if r != root {
			return false
		}
	}
	return true
}
