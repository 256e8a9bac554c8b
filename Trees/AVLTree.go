package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// step is one entry of the path recorded while descending: the node visited
// and the side taken from it. d is +1 for left and -1 for right so that it
// can be added directly to the balance factor of an ancestor whose d side grew.
type step[K, V any, S constraints.Unsigned] struct {
	n *node[K, V, S]
	d int8
}

// AVLTree is an ordered map from K to V kept height balanced by AVL rotations.
// Every node also tracks the size of its subtree, so rank queries take O(D),
// where D<=1.44*log2(n+2) is the height of the tree.
// S is the type used for subtree sizes; it must be wide enough for the
// number of keys the tree will ever hold.
// Insertion and removal are iterative: the path from the root is recorded in
// a buffer owned by the tree and replayed bottom up to repair balance factors
// and sizes.
// AVLTree isn't safe for concurrent use. Any method that may insert or remove
// a key, including Get, must be serialized against all other calls.
type AVLTree[K, V any, S constraints.Unsigned] struct {
	root   *node[K, V, S]
	nilPtr *node[K, V, S] // used instead of nil, see newSentinel.
	cmp    func(K, K) int
	def    func() V // nil means the zero value of V.
	st     []step[K, V, S]
}

// New returns an empty AVLTree ordered by cmp.Compare. def is called once for
// every key created by Get; it can be nil.
func New[K cmp.Ordered, V any, S constraints.Unsigned](def func() V) *AVLTree[K, V, S] {
	return NewFunc[K, V, S](cmp.Compare[K], def)
}

// NewFunc returns an empty AVLTree ordered by c, which must be a strict total
// order returning a negative number, zero, or a positive number like cmp.Compare.
func NewFunc[K, V any, S constraints.Unsigned](c func(K, K) int, def func() V) *AVLTree[K, V, S] {
	z := newSentinel[K, V, S]()
	return &AVLTree[K, V, S]{root: z, nilPtr: z, cmp: c, def: def}
}

// From builds a tree from pairs sorted in strictly ascending order of keys.
// This is faster than repeatedly calling Insert. It panics with
// InvalidSliceError if the order is broken. Recursive.
// Time: O(n).
func From[K cmp.Ordered, V any, S constraints.Unsigned](ps []Pair[K, V], def func() V) *AVLTree[K, V, S] {
	u := New[K, V, S](def)
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Key >= ps[i].Key {
			panic(InvalidSliceError{i, ps[i-1].Key, ps[i].Key})
		}
	}
	var build func([]Pair[K, V]) *node[K, V, S]
	build = func(s []Pair[K, V]) *node[K, V, S] {
		if len(s) == 0 {
			return u.nilPtr
		}
		mid := len(s) >> 1
		// a midpoint split of n nodes has height bits.Len(n).
		b := bits.Len(uint(mid)) - bits.Len(uint(len(s)-mid-1))
		return &node[K, V, S]{s[mid].Key, s[mid].Val, build(s[:mid]), build(s[mid+1:]), int8(b), S(len(s))}
	}
	u.root = build(ps)
	return u
}

// Len is the number of keys in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V, S]) Len() S {
	return u.root.sz
}

func (u *AVLTree[K, V, S]) Empty() bool {
	return u.root == u.nilPtr
}

// Clear the tree. The path buffer is released as well.
func (u *AVLTree[K, V, S]) Clear() {
	u.root, u.st = u.nilPtr, nil
}

// relink sets sub as the child of st[i-1] on the side taken at st[i-1], or as
// the root when i==0.
func (u *AVLTree[K, V, S]) relink(st []step[K, V, S], i int, sub *node[K, V, S]) {
	if i == 0 {
		u.root = sub
	} else if p := st[i-1]; p.d > 0 {
		p.n.l = sub
	} else {
		p.n.r = sub
	}
}

// find the node holding k, nilPtr if there's none.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) find(k K) *node[K, V, S] {
	cur := u.root
	for cur != u.nilPtr {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// insert k with value v, overwriting the value if k is already there.
// Returns the node holding k and whether it's newly created.
// At most one rotation, single or double, happens during an insertion: the
// rotated subtree always gets back the height it had before the insertion.
// Time: O(D); Space: O(D)
func (u *AVLTree[K, V, S]) insert(k K, v V) (*node[K, V, S], bool) {
	st := u.st[:0]
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(k, cur.k); c < 0 {
			st = append(st, step[K, V, S]{cur, 1})
			cur = cur.l
		} else if c > 0 {
			st = append(st, step[K, V, S]{cur, -1})
			cur = cur.r
		} else {
			cur.v = v
			u.st = st
			return cur, false
		}
	}
	n := &node[K, V, S]{k: k, v: v, l: u.nilPtr, r: u.nilPtr, sz: 1}
	u.relink(st, len(st), n)

	i := len(st) - 1
	for ; i >= 0; i-- { // the subtree at st[i].n grew by 1 in height on side st[i].d.
		p := st[i].n
		p.sz++
		p.b += st[i].d
		if p.b == 0 {
			break
		} else if p.b == 2 || p.b == -2 {
			u.relink(st, i, rebalance(p))
			break
		}
	}
	for i--; i >= 0; i-- {
		st[i].n.sz++
	}
	u.st = st
	return n, true
}

// Insert k with value v. If k is already in the tree, only its value is
// replaced. Returns true if a new key was added.
// Time: O(D)
func (u *AVLTree[K, V, S]) Insert(k K, v V) bool {
	_, added := u.insert(k, v)
	return added
}

// Delete k from the tree. Returns false if k isn't there.
// A node with a left subtree takes the key and value of its predecessor, and
// the predecessor, which has no right child, is unlinked instead.
// Unlike Insert, this may rotate at every level up to the root.
// Time: O(D); Space: O(D)
func (u *AVLTree[K, V, S]) Delete(k K) bool {
	st := u.st[:0]
	cur := u.root
	for cur != u.nilPtr {
		if c := u.cmp(k, cur.k); c < 0 {
			st = append(st, step[K, V, S]{cur, 1})
			cur = cur.l
		} else if c > 0 {
			st = append(st, step[K, V, S]{cur, -1})
			cur = cur.r
		} else {
			break
		}
	}
	if cur == u.nilPtr {
		u.st = st
		return false
	}
	if cur.l != u.nilPtr {
		st = append(st, step[K, V, S]{cur, 1})
		pre := cur.l
		for pre.r != u.nilPtr {
			st = append(st, step[K, V, S]{pre, -1})
			pre = pre.r
		}
		cur.k, cur.v = pre.k, pre.v
		cur = pre
	}
	if cur.l != u.nilPtr {
		u.relink(st, len(st), cur.l)
	} else {
		u.relink(st, len(st), cur.r)
	}
	cur.l, cur.r = nil, nil

	i := len(st) - 1
	for ; i >= 0; i-- { // the subtree at st[i].n lost 1 in height on side st[i].d.
		p := st[i].n
		p.sz--
		p.b -= st[i].d
		if p.b == 1 || p.b == -1 { // height of p didn't change.
			break
		} else if p.b == 2 || p.b == -2 {
			sub := rebalance(p)
			u.relink(st, i, sub)
			if sub.b != 0 { // a single rotation on a balanced child keeps the height.
				break
			}
		}
	}
	for i--; i >= 0; i-- {
		st[i].n.sz--
	}
	u.st = st
	return true
}

// Corrupt returns whether any node breaks the ordering of keys, has a size
// other than 1 plus the sizes of its children, or has a balance factor that
// isn't the height difference of its children or is out of [-1,1].
// Recursive.
// Time: O(n)
func (u *AVLTree[K, V, S]) Corrupt() bool {
	_, bad := u.corrupt(u.root, nil, nil)
	return bad
}

// corrupt checks the subtree at n whose keys must lie strictly between lo and
// hi, where nil is unbounded. Returns the height of n.
func (u *AVLTree[K, V, S]) corrupt(n, lo, hi *node[K, V, S]) (int, bool) {
	if n == u.nilPtr {
		return 0, false
	}
	if lo != nil && u.cmp(lo.k, n.k) >= 0 || hi != nil && u.cmp(n.k, hi.k) >= 0 {
		return 0, true
	}
	lh, bad := u.corrupt(n.l, lo, n)
	if bad {
		return 0, true
	}
	rh, bad := u.corrupt(n.r, n, hi)
	if bad {
		return 0, true
	}
	if d := lh - rh; d != int(n.b) || d > 1 || d < -1 || n.sz != n.l.sz+n.r.sz+1 {
		return 0, true
	}
	return max(lh, rh) + 1, false
}
