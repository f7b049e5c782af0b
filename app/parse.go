package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"linkgram/nlp/format/dict"
	"linkgram/nlp/parser/classic"
	"linkgram/nlp/parser/engine"
	"linkgram/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"gopkg.in/yaml.v3"
)

func SetupParseOptions() *classic.Options {
	opts := classic.NewOptions()
	opts.MinNullCount = minNullCount
	opts.MaxNullCount = maxNullCount
	opts.LinkageLimit = linkageLimit

	if optsFile != "" {
		data, err := os.ReadFile(optsFile)
		if err != nil {
			log.Fatalln("Failed reading options file", optsFile, err)
		}
		if err := yaml.Unmarshal(data, opts); err != nil {
			log.Fatalln("Failed parsing options file", optsFile, err)
		}
	}
	return opts
}

func Parse(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"d", "in"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	classic.Verbose = verbosity

	if allOut {
		log.Println("Configuration")
		log.Printf("Dictionary:\t\t%s", dictFile)
		log.Printf("Input:\t\t\t%s", input)
		if optsFile != "" {
			log.Printf("Options:\t\t%s", optsFile)
		}
		log.Println()
	}
	if !VerifyExists(dictFile) || !VerifyExists(input) {
		os.Exit(1)
	}

	if allOut {
		log.Println("Reading dictionary from", dictFile)
	}
	d, err := dict.ReadFile(dictFile)
	if err != nil {
		log.Fatalln("Failed reading dictionary", err)
	}
	if shuffle {
		d.ShuffleLinkages = true
	}
	if allOut {
		log.Println("Read", d.Len(), "dictionary entries")
	}

	sentences, err := readSentences(input)
	if err != nil {
		log.Fatalln("Failed reading input", err)
	}
	if allOut {
		log.Println("Read", len(sentences), "sentences")
	}

	opts := SetupParseOptions()

	out := io.Writer(os.Stdout)
	if outFile != "" {
		fObj, err := os.Create(outFile)
		if err != nil {
			log.Fatalln("Failed creating output file", outFile, err)
		}
		defer fObj.Close()
		out = fObj
	}

	e := engine.New(d)
	start := time.Now()
	parsed := 0
	for _, tokens := range sentences {
		sent := types.NewSentence(tokens)
		sent.RandSeed = randSeed
		if maxParseTime > 0 {
			opts.Resources = classic.NewResources(time.Duration(maxParseTime) * time.Second)
		}
		classic.Parse(sent, opts, e)
		if sent.NumValidLinkages > 0 {
			parsed++
		}
		writeLinkages(out, sent)
	}
	if allOut {
		log.Println("Parsed", parsed, "of", len(sentences), "sentences in", time.Since(start))
	}
	return nil
}

func readSentences(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	defer file.Close()
	if err != nil {
		return nil, err
	}

	var sentences [][]string
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		tokens := strings.Fields(scan.Text())
		if len(tokens) == 0 {
			continue
		}
		sentences = append(sentences, tokens)
	}
	return sentences, scan.Err()
}

func writeLinkages(w io.Writer, sent *types.Sentence) {
	forms := make([]string, sent.Len())
	for i, word := range sent.Words {
		forms[i] = word.Form
	}
	fmt.Fprintf(w, "Sentence: %s\n", strings.Join(forms, " "))
	fmt.Fprintf(w, "Found %d linkages (%d valid) at %d null links\n",
		sent.NumLinkagesFound, sent.NumValidLinkages, sent.NullCount)
	for i := 0; i < sent.NumValidLinkages; i++ {
		lkg := &sent.Linkages[i]
		fmt.Fprintf(w, "  Linkage %d: unused=%d disjunct cost=%.1f link cost=%d\n",
			i+1, lkg.Info.UnusedWordCost, lkg.Info.DisjunctCost, lkg.Info.LinkCost)
		for j := range lkg.Links {
			link := &lkg.Links[j]
			fmt.Fprintf(w, "    %s(%s-%d, %s-%d)\n",
				link.Name, wordAt(sent, lkg, link.Left), link.Left, wordAt(sent, lkg, link.Right), link.Right)
		}
	}
	fmt.Fprintln(w)
}

func wordAt(sent *types.Sentence, lkg *types.Linkage, i int) string {
	if d := lkg.ChosenDisjuncts[i]; d != nil {
		return d.Word
	}
	if i < sent.Len() {
		return sent.Words[i].Form
	}
	return "?"
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Parse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parses sentences with a link dictionary",
		Long: `
parses sentences with a link dictionary

	$ ./linkgram parse -d <dictionary> -in <input> [-o <output>] [-c <options yaml>] [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&dictFile, "d", "", "Dictionary File")
	cmd.Flag.StringVar(&input, "in", "", "Input File (one sentence per line)")
	cmd.Flag.StringVar(&optsFile, "c", "", "Parse Options YAML File")
	cmd.Flag.StringVar(&outFile, "o", "", "Output File (default stdout)")
	cmd.Flag.IntVar(&minNullCount, "minnulls", 0, "Minimum Null Links")
	cmd.Flag.IntVar(&maxNullCount, "maxnulls", 0, "Maximum Null Links")
	cmd.Flag.IntVar(&linkageLimit, "limit", 100, "Maximum Linkages to Materialize")
	cmd.Flag.IntVar(&maxParseTime, "t", 0, "Max Parse Time per Sentence (seconds); 0 = unbounded")
	cmd.Flag.Int64Var(&randSeed, "seed", 0, "Random Seed for Sampling; 0 = sequential behaviors")
	cmd.Flag.BoolVar(&shuffle, "shuffle", false, "Shuffle Linkage Output")
	cmd.Flag.IntVar(&verbosity, "v", 0, "Verbosity Level")
	return cmd
}
