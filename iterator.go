// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

// iterFrame is one level of the traversal stack. it/end iterate the parent's
// children, with it positioned on node; key holds the depth bytes consumed
// to reach node, its last byte being node's branching partial key.
//
// The bottom of the stack is a sentinel frame for the root: depth 0, no key,
// and a dummy cursor pair that compares unequal until advanced.
type iterFrame[T any] struct {
	node  node[T]
	depth int
	key   []byte
	it    childIterator[T]
	end   childIterator[T]
}

func (f *iterFrame[T]) exhausted() bool {
	return f.it.equal(f.end)
}

// advance moves the frame to node's next sibling, or to the exhausted state.
func (f *iterFrame[T]) advance() {
	f.it.next()
	if f.exhausted() {
		f.node = nil
		return
	}
	f.node = f.it.child()
	if c, err := f.it.partialKey(); err == nil && f.depth > 0 {
		f.key[f.depth-1] = c
	}
}

// Iterator walks the tree's leaves in ascending lexicographic key order. It
// is created by Tree.Iterator or Tree.LowerBoundIterator and is invalidated
// by any mutation of the tree.
type Iterator[T any] struct {
	root  node[T]
	stack []iterFrame[T]
}

// Iterator returns an iterator positioned on the smallest key.
func (t *Tree[T]) Iterator() *Iterator[T] {
	return t.LowerBoundIterator(nil)
}

// LowerBoundIterator returns an iterator positioned on the first key >= key.
func (t *Tree[T]) LowerBoundIterator(key []byte) *Iterator[T] {
	it := &Iterator[T]{root: t.root}
	if t.root == nil {
		return it
	}
	it.stack = append(it.stack, iterFrame[T]{
		node: t.root,
		it:   childIterator[T]{idx: -2},
		end:  childIterator[T]{idx: -1},
	})
	it.seekLowerBound(key)
	it.seekLeaf()
	return it
}

// seekLowerBound builds the traversal stack so that the top frame holds the
// root of the smallest subtree whose keys can reach the target, with every
// frame's cursor positioned for in-order continuation. Targets are compared
// without the key terminator, so the empty target seeks the minimum.
func (it *Iterator[T]) seekLowerBound(key []byte) {
	for {
		top := it.top()
		cur := top.node
		depth := top.depth
		partial := cur.getPartial()
		p := checkPrefix(partial, key[depth:])

		if len(key) <= depth+p {
			// Target exhausted: every key below is >= it.
			return
		}
		if p < len(partial) {
			if key[depth+p] > partial[p] {
				// Subtree entirely below the target: skip it.
				top.advance()
			}
			// Otherwise the subtree is entirely above the target;
			// either way seekLeaf takes over from here.
			return
		}
		if cur.isLeaf() {
			return
		}

		inner := cur.(innerNode[T])
		branch := key[depth+len(partial)]

		cIt, cEnd := childBegin(inner), childEnd(inner)
		for !cIt.equal(cEnd) {
			if c, _ := cIt.partialKey(); c >= branch {
				break
			}
			cIt.next()
		}

		childDepth := depth + len(partial) + 1
		childKey := make([]byte, 0, childDepth)
		childKey = append(childKey, top.key...)
		childKey = append(childKey, partial...)
		frame := iterFrame[T]{
			depth: childDepth,
			it:    cIt,
			end:   cEnd,
		}
		if cIt.equal(cEnd) {
			// No child can reach the target; seekLeaf will pop
			// this frame and resume at the parent's next sibling.
			frame.key = append(childKey, 0)
			it.stack = append(it.stack, frame)
			return
		}
		c, _ := cIt.partialKey()
		frame.node = cIt.child()
		frame.key = append(childKey, c)
		it.stack = append(it.stack, frame)
		if c > branch {
			// The child branches above the target, so its whole
			// subtree is above it; seekLeaf descends from here.
			return
		}
	}
}

// seekLeaf restores the resting invariant: the top frame holds a leaf, or
// the cursor is empty. It first ascends past exhausted subtrees, advancing
// each parent as it pops, then descends along first children.
func (it *Iterator[T]) seekLeaf() {
	if len(it.stack) == 0 {
		return
	}

	for it.top().exhausted() {
		it.stack = it.stack[:len(it.stack)-1]
		if len(it.stack) == 0 {
			return
		}
		if it.top().node == it.root && it.top().it.node == nil {
			// Back at the root sentinel: the whole tree has been
			// visited.
			it.stack = it.stack[:0]
			return
		}
		it.top().advance()
	}

	for !it.top().node.isLeaf() {
		top := it.top()
		inner := top.node.(innerNode[T])
		cIt, cEnd := childBegin(inner), childEnd(inner)
		c, err := cIt.partialKey()
		if err != nil {
			panic("art: inner node without children")
		}
		childDepth := top.depth + len(top.node.getPartial()) + 1
		childKey := make([]byte, 0, childDepth)
		childKey = append(childKey, top.key...)
		childKey = append(childKey, top.node.getPartial()...)
		childKey = append(childKey, c)
		it.stack = append(it.stack, iterFrame[T]{
			node:  cIt.child(),
			depth: childDepth,
			key:   childKey,
			it:    cIt,
			end:   cEnd,
		})
	}
}

func (it *Iterator[T]) top() *iterFrame[T] {
	return &it.stack[len(it.stack)-1]
}

// Next returns the current key (terminator excluded) and value and steps the
// iterator forward. ok is false once the iterator is exhausted.
func (it *Iterator[T]) Next() ([]byte, T, bool) {
	var zero T
	if len(it.stack) == 0 {
		return nil, zero, false
	}
	top := it.top()
	leaf := top.node.(*nodeLeaf[T])

	key := make([]byte, 0, len(top.key)+len(leaf.partial))
	key = append(key, top.key...)
	key = append(key, leaf.partial...)
	key = key[:len(key)-1]
	value := leaf.value

	top.advance()
	it.seekLeaf()
	return key, value, true
}
