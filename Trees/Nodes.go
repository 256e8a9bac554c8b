package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree.
// b is the balance factor, height(l)-height(r). It's in {-1,0,1} whenever no
// operation is running and may briefly be ±2 while the path is being repaired.
// sz is the number of nodes in the subtree rooted here, including itself.
// The zero value is meaningless.
type node[K, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r *node[K, V, S]
	b    int8
	sz   S
}

// newSentinel returns the node used instead of nil by an AVLTree. It has
// both l, r = itself, sz=0, b=0. Rotations never write to it.
func newSentinel[K, V any, S constraints.Unsigned]() *node[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	return z
}

// rotateLeft on v, which is right heavy(b=-2) and whose right child doesn't
// lean left. Returns the new root of the subtree.
// Time: O(1); Space: O(1)
func rotateLeft[K, V any, S constraints.Unsigned](v *node[K, V, S]) *node[K, V, S] {
	u := v.r
	u.sz = v.sz
	v.sz -= u.r.sz + 1
	v.r = u.l
	u.l = v
	if u.b == -1 {
		u.b, v.b = 0, 0
	} else { // u.b==0, only reachable from removal.
		u.b, v.b = 1, -1
	}
	return u
}

// rotateRight on v, which is left heavy(b=2) and whose left child doesn't
// lean right. Returns the new root of the subtree.
// Time: O(1); Space: O(1)
func rotateRight[K, V any, S constraints.Unsigned](v *node[K, V, S]) *node[K, V, S] {
	u := v.l
	u.sz = v.sz
	v.sz -= u.l.sz + 1
	v.l = u.r
	u.r = v
	if u.b == 1 {
		u.b, v.b = 0, 0
	} else {
		u.b, v.b = -1, 1
	}
	return u
}

// rotateLR on v, which is left heavy while its left child u leans right. The
// right child t of u becomes the root, with u and v as its children.
// Time: O(1); Space: O(1)
func rotateLR[K, V any, S constraints.Unsigned](v *node[K, V, S]) *node[K, V, S] {
	u := v.l
	t := u.r
	t.sz = v.sz
	v.sz -= u.sz - t.r.sz
	u.sz -= t.r.sz + 1
	u.r = t.l
	t.l = u
	v.l = t.r
	t.r = v
	resetDouble(t)
	return t
}

// rotateRL is the mirror of rotateLR.
// Time: O(1); Space: O(1)
func rotateRL[K, V any, S constraints.Unsigned](v *node[K, V, S]) *node[K, V, S] {
	u := v.r
	t := u.l
	t.sz = v.sz
	v.sz -= u.sz - t.l.sz
	u.sz -= t.l.sz + 1
	u.l = t.r
	t.r = u
	v.r = t.l
	t.l = v
	resetDouble(t)
	return t
}

// resetDouble sets the balance factors after a double rotation pivoted on t.
// t.b still holds the pivot's balance from before the rotation.
func resetDouble[K, V any, S constraints.Unsigned](t *node[K, V, S]) {
	switch t.b {
	case 1:
		t.l.b, t.r.b = 0, -1
	case -1:
		t.l.b, t.r.b = 1, 0
	default:
		t.l.b, t.r.b = 0, 0
	}
	t.b = 0
}

// rebalance the subtree rooted at v with b=±2 by choosing among the 4
// rotations. Returns the new root of the subtree, which the caller must link
// back into v's parent.
func rebalance[K, V any, S constraints.Unsigned](v *node[K, V, S]) *node[K, V, S] {
	if v.b > 0 {
		if v.l.b == -1 {
			return rotateLR(v)
		}
		return rotateRight(v)
	} else {
		if v.r.b == 1 {
			return rotateRL(v)
		}
		return rotateLeft(v)
	}
}
