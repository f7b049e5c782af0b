package types

import (
	"fmt"
	"strings"
)

// A Connector is one half of a potential link. Its label carries an
// uppercase head and an optional lowercase subscript tail; '*' in a
// subscript position matches anything.
type Connector struct {
	Label string
}

func (c *Connector) Copy() *Connector {
	return &Connector{Label: c.Label}
}

// A Disjunct is one admissible way for a word to present connectors.
// Left and Right connectors are ordered nearest-first: the first left
// connector links to the closest word on the left, and likewise for
// the right list.
type Disjunct struct {
	Word  string
	Left  []*Connector
	Right []*Connector
	Cost  float64
}

func (d *Disjunct) Copy() *Disjunct {
	dup := &Disjunct{
		Word: d.Word,
		Cost: d.Cost,
	}
	if d.Left != nil {
		dup.Left = make([]*Connector, len(d.Left))
		for i, c := range d.Left {
			dup.Left[i] = c.Copy()
		}
	}
	if d.Right != nil {
		dup.Right = make([]*Connector, len(d.Right))
		for i, c := range d.Right {
			dup.Right[i] = c.Copy()
		}
	}
	return dup
}

func (d *Disjunct) String() string {
	parts := make([]string, 0, len(d.Left)+len(d.Right))
	for _, c := range d.Left {
		parts = append(parts, c.Label+"-")
	}
	for _, c := range d.Right {
		parts = append(parts, c.Label+"+")
	}
	return fmt.Sprintf("%s: %s", d.Word, strings.Join(parts, " & "))
}
