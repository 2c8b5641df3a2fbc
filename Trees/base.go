package Trees

import (
	"golang.org/x/exp/constraints"
)

// Links of a node in the arena.
// The zero value is meaningful: it's a detached leaf.
type info[S constraints.Unsigned] struct {
	l, r, p S // p is the parent index, 0 for the root. p doesn't own the node.
}

// base is an arena of nodes addressed by index. ifs[0] is the nil node; it
// never holds a value and its links are never written. vs[i-1] is the value
// of node i.
type base[T any, S constraints.Unsigned] struct {
	ifs            []info[S]
	vs             []T
	root, free, sz S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// alloc a detached node holding v. Free indexes are used before growing the arrays.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		*u.getIf(i) = info[S]{}
		*u.getV(i) = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// release node a to the free list. The value is cleared so that the arena doesn't keep it alive.
func (u *base[T, S]) release(a S) {
	*u.getV(a) = *new(T)
	*u.getIf(a) = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.getIf(b).l
	}
	return b
}

func (u *base[T, S]) attachLeft(p, c S) {
	u.getIf(p).l = c
	if c != 0 {
		u.getIf(c).p = p
	}
}

func (u *base[T, S]) attachRight(p, c S) {
	u.getIf(p).r = c
	if c != 0 {
		u.getIf(c).p = p
	}
}

// replaceChild old of p with c. old is detached from p afterward.
func (u *base[T, S]) replaceChild(p, old, c S) {
	if pn := u.getIf(p); pn.l == old {
		u.attachLeft(p, c)
	} else if pn.r == old {
		u.attachRight(p, c)
	} else {
		return
	}
	u.getIf(old).p = 0
}

// setRoot makes c the root, c may be 0.
func (u *base[T, S]) setRoot(c S) {
	u.root = c
	if c != 0 {
		u.getIf(c).p = 0
	}
}

// extract node n from the tree without releasing it. The shape of the rest
// of the tree is decided by how many children n has.
func (u *base[T, S]) extract(n S) {
	switch cur := u.getIf(n); {
	case cur.l == 0 && cur.r == 0:
		u.extractLeaf(n)
	case cur.l != 0 && cur.r != 0:
		u.extractDouble(n)
	default:
		u.extractSingle(n)
	}
}

func (u *base[T, S]) extractLeaf(n S) {
	if p := u.getIf(n).p; p != 0 {
		u.replaceChild(p, n, 0)
	} else {
		u.setRoot(0)
	}
}

func (u *base[T, S]) extractSingle(n S) {
	cur := u.getIf(n)
	c := cur.l
	if c == 0 {
		c = cur.r
	}
	if p := cur.p; p != 0 {
		u.replaceChild(p, n, c)
	} else {
		u.setRoot(c)
	}
	cur.l, cur.r = 0, 0
}

// extractDouble moves the in-order successor of n into n's position.
func (u *base[T, S]) extractDouble(n S) {
	m := u.extractMin(u.getIf(n).r)
	cur := u.getIf(n) // n.r may have changed if m was n.r.
	if p := cur.p; p != 0 {
		u.replaceChild(p, n, m)
	} else {
		u.setRoot(m)
	}
	u.attachLeft(m, cur.l)
	u.attachRight(m, cur.r)
	cur.l, cur.r = 0, 0
}

// extractMin detaches the leftmost node of the subtree rooting at sub and returns it.
func (u *base[T, S]) extractMin(sub S) S {
	for u.getIf(sub).l != 0 {
		sub = u.getIf(sub).l
	}
	if u.getIf(sub).r != 0 {
		u.extractSingle(sub)
	} else {
		u.extractLeaf(sub)
	}
	return sub
}

func (u *base[T, S]) leftmost(i S) S {
	for u.getIf(i).l != 0 {
		i = u.getIf(i).l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.getIf(i).r != 0 {
		i = u.getIf(i).r
	}
	return i
}

// next node of i in in-order using the parent links. Returns 0 after the last node.
func (u *base[T, S]) next(i S) S {
	if r := u.getIf(i).r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.getIf(i).p; p != 0; i, p = p, u.getIf(p).p {
		if u.getIf(p).l == i {
			return p
		}
	}
	return 0
}

// InOrder traversal of the tree. Stops when f returns false. Uses the parent
// links, so no stack is needed.
// Time: O(n); Space: O(1)
func (u *base[T, S]) InOrder(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	for curI := u.leftmost(u.root); curI != 0; curI = u.next(curI) {
		if !f(u.getV(curI)) {
			break
		}
	}
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *base[T, S]) Empty() bool {
	return u.sz == 0
}

// Clear the tree. The underlying arrays keep their capacity.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

func (u *base[T, S]) height(curI S) uint {
	if curI == 0 {
		return 0
	}
	return 1 + max(u.height(u.getIf(curI).l), u.height(u.getIf(curI).r))
}

// Height of the tree, 0 for an empty tree. Recursive.
func (u *base[T, S]) Height() uint {
	return u.height(u.root)
}
