package Trees

// kth returns the node with exactly k smaller keys, nilPtr if k>=Len().
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) kth(k S) *node[K, V, S] {
	cur := u.root
	for cur != u.nilPtr {
		if ls := cur.l.sz; k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// Kth smallest key, starting from 0. Returns false when k>=Len().
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Kth(k S) (K, bool) {
	n := u.kth(k)
	return n.k, n != u.nilPtr
}

// Rank is the number of keys less than k. When k is in the tree, this is
// the position at which Kth finds it.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Rank(k K) S {
	var ra S
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			return ra + cur.l.sz
		}
	}
	return ra
}

// LowerBound returns the smallest key >= k.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) LowerBound(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(cur.k, k) >= 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.k, p != u.nilPtr
}

// UpperBound returns the greatest key < k.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) UpperBound(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(cur.k, k) < 0 {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return p.k, p != u.nilPtr
}

func (u *AVLTree[K, V, S]) first() *node[K, V, S] {
	cur := u.root
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

func (u *AVLTree[K, V, S]) last() *node[K, V, S] {
	cur := u.root
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur
}

// Min returns the smallest key, or ErrEmpty.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Min() (K, error) {
	if u.Empty() {
		return u.nilPtr.k, &EmptyContainerError{"Min"}
	}
	return u.first().k, nil
}

// Max returns the greatest key, or ErrEmpty.
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V, S]) Max() (K, error) {
	if u.Empty() {
		return u.nilPtr.k, &EmptyContainerError{"Max"}
	}
	return u.last().k, nil
}

// PopMin removes the smallest key and returns it, or ErrEmpty.
// Time: O(D)
func (u *AVLTree[K, V, S]) PopMin() (K, error) {
	if u.Empty() {
		return u.nilPtr.k, &EmptyContainerError{"PopMin"}
	}
	k := u.first().k
	u.Delete(k)
	return k, nil
}

// PopMax removes the greatest key and returns it, or ErrEmpty.
// Time: O(D)
func (u *AVLTree[K, V, S]) PopMax() (K, error) {
	if u.Empty() {
		return u.nilPtr.k, &EmptyContainerError{"PopMax"}
	}
	k := u.last().k
	u.Delete(k)
	return k, nil
}

// PopKth removes the kth smallest key and returns it. Returns false and
// leaves the tree unchanged when k>=Len().
// Time: O(D)
func (u *AVLTree[K, V, S]) PopKth(k S) (K, bool) {
	n := u.kth(k)
	if n == u.nilPtr {
		return n.k, false
	}
	key := n.k
	u.Delete(key)
	return key, true
}
