// Command cardsort shuffles a standard deck and sorts it with a stable
// selection sort.
//
//	cardsort [-debug] [-seed N] [-workers N] [trials]
//
// Without trials, the decks of a single run are printed. Otherwise the deck is
// shuffled and sorted trials times and every failed run is reported.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/dsdemo/internal/harness"
)

func main() {
	args, err := harness.ParseDeckArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal("[MAIN] fatal error: ", err)
	}
	harness.InitLogger(args.Debug)
	sources := harness.Sources(args.Seed)

	if args.Trials == 0 {
		if err := harness.PrintReport(harness.Interactive(sources(0))); err != nil {
			log.Fatal("[MAIN] ", err)
		}
		return
	}
	if _, err := harness.RunDeckTrials(args.Trials, args.Workers, sources); err != nil {
		log.Error("[MAIN] ", err)
		os.Exit(1)
	}
}
