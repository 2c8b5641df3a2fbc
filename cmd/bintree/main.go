// Command bintree fills a binary search tree with a shuffled range of values
// and empties it again in another order.
//
//	bintree [-debug] [-seed N] [size]
//
// size is 2048 when not given or invalid.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/dsdemo/internal/harness"
)

func main() {
	args, err := harness.ParseTreeArgs(flag.CommandLine, os.Args[1:])
	if args == nil {
		log.Fatal("[MAIN] ", err)
	}
	harness.InitLogger(args.Debug)
	if err != nil {
		log.Warnf("[MAIN] %v; the size of random generated data will be %d", err, args.Size)
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("[MAIN] seed: %d", seed)

	if err := harness.RunTree(args.Size, rand.New(rand.NewSource(seed))); err != nil {
		log.Error("[MAIN] ", err)
		os.Exit(1)
	}
}
