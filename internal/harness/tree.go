package harness

import (
	"math/rand"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/dsdemo/Trees"
)

// RunTree fills a tree with the values 0..size-1 in random order, then
// removes all of them in another random order. It fails if the tree doesn't
// hold size values after filling, or isn't empty at the end.
func RunTree(size int, rg *rand.Rand) error {
	vs := rg.Perm(size)
	tree := Trees.New[int](uint32(size))
	for _, v := range vs {
		if !tree.Insert(v) {
			return merry.New("value inserted twice").WithValue("value", v)
		}
	}
	if tree.Size() != uint(len(vs)) {
		return merry.Errorf("tree holds %d values after filling, want %d", tree.Size(), len(vs))
	}
	log.Infof("[TREE] tree was successfully filled with values from 0 to %d", size)
	log.Debugf("[TREE] height: %d", tree.Height())
	if tree.Corrupt() {
		return merry.New("tree is corrupt after filling")
	}

	rg.Shuffle(len(vs), func(i, j int) {
		vs[i], vs[j] = vs[j], vs[i]
	})
	for i, v := range vs {
		if !tree.Remove(v) {
			return merry.New("value missing from the tree").WithValue("value", v)
		}
		if i%1024 == 0 {
			log.Debugf("[TREE] removed %d values, height: %d", i+1, tree.Height())
		}
	}
	if !tree.Empty() {
		return merry.Errorf("tree holds %d values after removing all", tree.Size())
	}
	log.Info("[TREE] tree was successfully emptied")
	return nil
}
