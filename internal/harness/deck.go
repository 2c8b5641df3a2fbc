package harness

import (
	"cmp"
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/alphadose/haxmap"
	"github.com/ansel1/merry"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/dsdemo"
	"github.com/g-m-twostay/dsdemo/Decks"
)

// Sources returns the per-worker random sources for a seed. Seed 0 gives the
// runtime's generator to every worker; any other seed gives worker w a
// math/rand source seeded with seed+w, so runs can be repeated.
func Sources(seed int64) func(worker int) Decks.Source {
	if seed == 0 {
		return func(int) Decks.Source { return dsdemo.CheapRand{} }
	}
	return func(w int) Decks.Source {
		return rand.New(rand.NewSource(seed + int64(w)))
	}
}

// Failure of one trial, ID starts from 1.
type Failure struct {
	ID     uint64
	Reason string
}

// RunDeckTrials shuffles and sorts a standard deck trials times and checks
// every result. Trials are spread over workers goroutines; each worker has
// its own deck and its own source from newSource. The failures are returned
// ordered by ID, with a non-nil error when there's any.
func RunDeckTrials(trials uint64, workers int, newSource func(worker int) Decks.Source) ([]Failure, error) {
	failed := haxmap.New[uint64, string]()
	var (
		next atomic.Uint64
		wg   sync.WaitGroup
	)
	for w := range workers {
		wg.Add(1)
		go func(src Decks.Source) {
			defer wg.Done()
			deck := Decks.StandardDeck()
			for id := next.Add(1); id <= trials; id = next.Add(1) {
				if reason := trial(deck, src); reason != "" {
					failed.Set(id, reason)
				}
			}
		}(newSource(w))
	}
	wg.Wait()

	fs := make([]Failure, 0, failed.Len())
	failed.ForEach(func(id uint64, reason string) bool {
		fs = append(fs, Failure{id, reason})
		return true
	})
	slices.SortFunc(fs, func(a, b Failure) int {
		return cmp.Compare(a.ID, b.ID)
	})
	for _, f := range fs {
		log.Warnf("[DECK] test %d: %s", f.ID, f.Reason)
	}
	log.Infof("[DECK] %d of %d tests passed", trials-uint64(len(fs)), trials)
	if len(fs) > 0 {
		return fs, merry.Errorf("%d of %d tests failed", len(fs), trials).WithValue("failures", len(fs))
	}
	return fs, nil
}

// trial returns why the deck wasn't sorted properly, or "".
func trial(deck *Decks.Deck, src Decks.Source) string {
	deck.Shuffle(src)
	shuffled := deck.Cards()
	deck.StableSelectionSort()
	sorted := deck.Cards()
	switch {
	case !IsSorted(sorted):
		return "deck was not sorted"
	case !IsStablySorted(sorted, shuffled):
		return "deck was not stably sorted"
	}
	return ""
}

// Report of one interactive run.
type Report struct {
	Input, Shuffled, Sorted string
	IsSorted, IsStable      bool
}

// Interactive shuffles and sorts a standard deck once, keeping every stage.
func Interactive(src Decks.Source) Report {
	deck := Decks.StandardDeck()
	r := Report{Input: deck.String()}
	deck.Shuffle(src)
	r.Shuffled = deck.String()
	shuffled := deck.Cards()
	deck.StableSelectionSort()
	r.Sorted = deck.String()
	sorted := deck.Cards()
	r.IsSorted, r.IsStable = IsSorted(sorted), IsStablySorted(sorted, shuffled)
	log.Debugf("[DECK] sorted: %v, stable: %v", r.IsSorted, r.IsStable)
	return r
}

// PrintReport writes r to the terminal.
func PrintReport(r Report) error {
	pterm.DefaultHeader.WithFullWidth().Println("Scheme: (rank|suit)")
	for _, s := range [...]struct{ title, deck string }{
		{"Input deck", r.Input},
		{"Shuffled deck", r.Shuffled},
		{"Stably sorted deck", r.Sorted},
	} {
		pterm.DefaultSection.Println(s.title)
		pterm.DefaultBasicText.Println(s.deck)
	}
	err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "Is deck sorted        : " + strconv.FormatBool(r.IsSorted)},
		{Level: 0, Text: "Is deck stably sorted : " + strconv.FormatBool(r.IsStable)},
	}).Render()
	if err != nil {
		return merry.Wrap(err)
	}
	if r.IsSorted && r.IsStable {
		pterm.Success.Println("deck was stably sorted")
	} else {
		pterm.Error.Println("deck was not stably sorted")
	}
	return nil
}
