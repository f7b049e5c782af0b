package app

import (
	"log"
	"os"

	"github.com/gonuts/commander"
)

var (
	allOut bool = true

	// file names
	dictFile string
	input    string
	optsFile string
	outFile  string

	// parse options
	minNullCount int
	maxNullCount int
	linkageLimit int
	maxParseTime int
	randSeed     int64
	shuffle      bool
	verbosity    int
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
