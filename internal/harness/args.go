package harness

import (
	"flag"
	"math"
	"strconv"

	"github.com/ansel1/merry"
)

const DefaultTreeSize = 2048

// TreeArgs of the bintree command.
type TreeArgs struct {
	Debug bool
	Seed  int64
	Size  int // number of values inserted and removed
}

// DeckArgs of the cardsort command. Trials==0 selects the interactive mode.
type DeckArgs struct {
	Debug   bool
	Seed    int64
	Workers int
	Trials  uint64
}

// ParseTreeArgs reads the flags and the optional size argument. When the size
// can't be parsed, the returned args hold DefaultTreeSize and the error says why,
// so the caller may go on with the default.
func ParseTreeArgs(fs *flag.FlagSet, args []string) (*TreeArgs, error) {
	a := &TreeArgs{Size: DefaultTreeSize}
	fs.BoolVar(&a.Debug, "debug", false, "enable debug output")
	fs.Int64Var(&a.Seed, "seed", 0, "seed of the shuffles; a time based seed when 0")
	if err := fs.Parse(args); err != nil {
		return nil, merry.Wrap(err)
	}
	if fs.NArg() > 0 {
		n, err := parseCount(fs.Arg(0), math.MaxUint32-1)
		if err != nil {
			return a, err
		}
		a.Size = int(n)
	}
	return a, nil
}

// ParseDeckArgs reads the flags and the optional number of trials.
func ParseDeckArgs(fs *flag.FlagSet, args []string) (*DeckArgs, error) {
	a := new(DeckArgs)
	fs.BoolVar(&a.Debug, "debug", false, "enable debug output")
	fs.Int64Var(&a.Seed, "seed", 0, "seed of the shuffles; the runtime's generator when 0")
	fs.IntVar(&a.Workers, "workers", 1, "number of goroutines running trials")
	if err := fs.Parse(args); err != nil {
		return nil, merry.Wrap(err)
	}
	if a.Workers < 1 {
		return nil, merry.New("workers must be at least 1").WithValue("workers", a.Workers)
	}
	if fs.NArg() > 0 {
		n, err := parseCount(fs.Arg(0), math.MaxUint64)
		if err != nil {
			return nil, err
		}
		a.Trials = n
	}
	return a, nil
}

func parseCount(s string, limit uint64) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, merry.Prepend(err, "invalid program argument").WithValue("arg", s)
	}
	if n > limit {
		return 0, merry.Errorf("invalid program argument: %d is larger than %d", n, limit).WithValue("arg", s)
	}
	return n, nil
}
