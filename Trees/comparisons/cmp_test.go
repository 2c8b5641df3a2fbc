package comparisons

import (
	"math/rand"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/dsdemo/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Compares OrderedTree with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods red-black tree. Values are inserted in random order,
// so OrderedTree's height is logarithmic on average even without balancing.
// https://github.com/cornelk/hashmap is the unordered baseline for lookups.
const benchmarkItemCount = 1 << 16

var perm = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

func setupOrderedTree(b *testing.B) *Trees.OrderedTree[int, uint32] {
	b.Helper()
	t := Trees.New[int](uint32(benchmarkItemCount))
	for _, v := range perm {
		t.Insert(v)
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, v := range perm {
		t.ReplaceOrInsert(v)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, v := range perm {
		t.ReplaceOrInsert(llrb.Int(v))
	}
	return t
}

func setupRedBlack(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, v := range perm {
		t.Put(v, struct{}{})
	}
	return t
}

func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for _, v := range perm {
		m.Set(v, struct{}{})
	}
	return m
}

func BenchmarkInsertOrderedTree(b *testing.B) {
	for range b.N {
		setupOrderedTree(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkInsertRedBlack(b *testing.B) {
	for range b.N {
		setupRedBlack(b)
	}
}

func BenchmarkHasOrderedTree(b *testing.B) {
	t := setupOrderedTree(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(llrb.Int(v)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasRedBlack(b *testing.B) {
	t := setupRedBlack(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if _, ok := t.Get(v); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if _, ok := m.Get(v); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkRemoveOrderedTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupOrderedTree(b)
		b.StartTimer()
		for _, v := range perm {
			t.Remove(v)
		}
	}
}

func BenchmarkRemoveBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(v)
		}
	}
}

func BenchmarkRemoveLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(llrb.Int(v))
		}
	}
}

func BenchmarkRemoveRedBlack(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRedBlack(b)
		b.StartTimer()
		for _, v := range perm {
			t.Remove(v)
		}
	}
}

func BenchmarkRemoveHashMap(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupHashMap(b)
		b.StartTimer()
		for _, v := range perm {
			m.Del(v)
		}
	}
}
