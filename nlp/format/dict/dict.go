// Package dict reads link dictionaries. A dictionary file has one
// entry per line:
//
//	word: D- & S+ | [D- & O-]
//
// Alternatives are separated by '|', connectors within an alternative
// by '&'. A connector is a label followed by '+' (links rightward) or
// '-' (links leftward); connectors are written nearest-first. Each
// bracket layer around an alternative adds 1.0 to its cost. Lines
// starting with '#' are comments. The '!shuffle' directive requests
// shuffled linkage output, and '!optional' marks the words listed
// after it as droppable.
package dict

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"linkgram/nlp/types"
)

const APPROX_DICT_SIZE = 1024

type Dictionary struct {
	entries  map[string][]*types.Disjunct
	optional map[string]bool

	ShuffleLinkages bool
}

func New() *Dictionary {
	return &Dictionary{
		entries:  make(map[string][]*types.Disjunct, APPROX_DICT_SIZE),
		optional: make(map[string]bool),
	}
}

// Lookup returns deep copies of the word's disjuncts, so pruning one
// sentence never mutates the dictionary.
func (d *Dictionary) Lookup(form string) []*types.Disjunct {
	stored := d.entries[form]
	if stored == nil {
		return nil
	}
	disjuncts := make([]*types.Disjunct, len(stored))
	for i, dj := range stored {
		disjuncts[i] = dj.Copy()
	}
	return disjuncts
}

func (d *Dictionary) Optional(form string) bool {
	return d.optional[form]
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

func Read(input io.Reader) (*Dictionary, error) {
	d := New()
	scan := bufio.NewScanner(input)
	lineNum := 0
	for scan.Scan() {
		lineNum++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			if err := d.directive(line); err != nil {
				return nil, errors.New("Line " + strconv.Itoa(lineNum) + ": " + err.Error())
			}
			continue
		}
		if err := d.entry(line); err != nil {
			return nil, errors.New("Line " + strconv.Itoa(lineNum) + ": " + err.Error())
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func ReadFile(filename string) (*Dictionary, error) {
	file, err := os.Open(filename)
	defer file.Close()
	if err != nil {
		return nil, err
	}

	return Read(file)
}

func (d *Dictionary) directive(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "!shuffle":
		d.ShuffleLinkages = true
	case "!optional":
		if len(fields) < 2 {
			return errors.New("!optional needs at least one word")
		}
		for _, form := range fields[1:] {
			d.optional[form] = true
		}
	default:
		return errors.New("Unknown directive (" + fields[0] + ")")
	}
	return nil
}

func (d *Dictionary) entry(line string) error {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return errors.New("Missing ':' in entry (" + line + ")")
	}
	forms := strings.Fields(line[:colon])
	if len(forms) == 0 {
		return errors.New("Entry has no words (" + line + ")")
	}
	var disjuncts []*types.Disjunct
	for _, alt := range strings.Split(line[colon+1:], "|") {
		dj, err := parseAlternative(alt)
		if err != nil {
			return err
		}
		disjuncts = append(disjuncts, dj)
	}
	for _, form := range forms {
		for _, dj := range disjuncts {
			stored := dj.Copy()
			stored.Word = form
			d.entries[form] = append(d.entries[form], stored)
		}
	}
	return nil
}

func parseAlternative(alt string) (*types.Disjunct, error) {
	alt = strings.TrimSpace(alt)
	cost := 0.0
	for strings.HasPrefix(alt, "[") {
		if !strings.HasSuffix(alt, "]") {
			return nil, errors.New("Unbalanced brackets (" + alt + ")")
		}
		alt = strings.TrimSpace(alt[1 : len(alt)-1])
		cost += 1.0
	}
	if alt == "" {
		return nil, errors.New("Empty alternative")
	}
	dj := &types.Disjunct{Cost: cost}
	for _, tok := range strings.Split(alt, "&") {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, errors.New("Bad connector (" + tok + ")")
		}
		label, dir := tok[:len(tok)-1], tok[len(tok)-1]
		if !validLabel(label) {
			return nil, errors.New("Bad connector label (" + tok + ")")
		}
		conn := &types.Connector{Label: label}
		switch dir {
		case '+':
			dj.Right = append(dj.Right, conn)
		case '-':
			dj.Left = append(dj.Left, conn)
		default:
			return nil, errors.New("Connector must end with + or - (" + tok + ")")
		}
	}
	return dj, nil
}

// validLabel requires at least one uppercase head character, then an
// optional tail of lowercase letters, digits and '*'.
func validLabel(label string) bool {
	i := 0
	for i < len(label) && label[i] >= 'A' && label[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return false
	}
	for ; i < len(label); i++ {
		c := label[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '*' {
			return false
		}
	}
	return true
}
