package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree with no repeated values.
// Its shape depends only on the order of the Insert and Remove calls.
// T is the type of values it will hold, S is the type of the node indexes, so
// the tree can hold at most the max value of S minus one values.
// Nodes live in an arena and refer to their parents by index. Removed nodes
// are kept in a free list and reused by later insertions.
// OrderedTree isn't safe for concurrent use.
type OrderedTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty tree with room for hint values before the arena grows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{makeBase[T, S](hint)}
}

// Insert [Tree.Insert]. Returns false and leaves the tree untouched if v is already in the tree.
// A node is only allocated when v is inserted.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Insert(v T) bool {
	if u.root == 0 {
		u.setRoot(u.alloc(v))
		u.sz++
		return true
	}
	for curI := u.root; ; {
		if cv := *u.getV(curI); v < cv {
			if l := u.getIf(curI).l; l != 0 {
				curI = l
			} else {
				u.attachLeft(curI, u.alloc(v))
				break
			}
		} else if v > cv {
			if r := u.getIf(curI).r; r != 0 {
				curI = r
			} else {
				u.attachRight(curI, u.alloc(v))
				break
			}
		} else {
			return false
		}
	}
	u.sz++
	return true
}

// find the index of v, 0 if v isn't in the tree.
func (u *OrderedTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if cv := *u.getV(curI); v < cv {
			curI = u.getIf(curI).l
		} else if v > cv {
			curI = u.getIf(curI).r
		} else {
			return curI
		}
	}
	return 0
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Get the pointer to the element that's equal to v in the tree. The pointer
// stays valid until the next Insert or Remove.
func (u *OrderedTree[T, S]) Get(v T) *T {
	if i := u.find(v); i != 0 {
		return u.getV(i)
	}
	return nil
}

// Remove [Tree.Remove]. Returns false if v isn't in the tree.
// A node with two children is replaced by its in-order successor node, so no
// value is ever moved between nodes.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Remove(v T) bool {
	i := u.find(v)
	if i == 0 {
		return false
	}
	u.extract(i)
	u.release(i)
	u.sz--
	return true
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return *u.getV(u.leftmost(u.root)), true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return *u.getV(u.rightmost(u.root)), true
}

// Corrupt [Tree.Corrupt]. Checks the ordering of the values, the parent links and the size.
// Time: O(n)
func (u *OrderedTree[T, S]) Corrupt() bool {
	if u.root != 0 && u.getIf(u.root).p != 0 {
		return true
	}
	var (
		count S
		prev  *T
		bad   bool
	)
	u.InOrder(func(v *T) bool {
		if prev != nil && !(*prev < *v) {
			bad = true
			return false
		}
		prev = v
		count++
		return true
	})
	if bad || count != u.sz {
		return true
	}
	var check func(S) bool
	check = func(curI S) bool {
		cur := u.getIf(curI)
		if cur.l != 0 && (u.getIf(cur.l).p != curI || !check(cur.l)) {
			return false
		}
		if cur.r != 0 && (u.getIf(cur.r).p != curI || !check(cur.r)) {
			return false
		}
		return true
	}
	return u.root != 0 && !check(u.root)
}
