// Command havoc is a long-lived chess position analyzer: it reads one
// JSON request per line on standard input and writes one result line per
// request on standard output, until a line reading exactly "quit" is
// seen.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/corvid-labs/havoc/search"
	"github.com/corvid-labs/havoc/worker"
)

var (
	hashSize = flag.Int("hashsize", 1<<20, "transposition table size, in entries (rounded up to a power of two)")
	version  = flag.Bool("version", false, "print the version and exit")
)

const versionString = "havoc devel"

func main() {
	flag.Parse()
	if *version {
		fmt.Println(versionString)
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	engine := search.NewEngine(*hashSize)
	if err := worker.Loop(os.Stdin, os.Stdout, engine, log); err != nil {
		log.Fatal().Err(err).Msg("worker exited")
	}
}
