// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

import (
	"fmt"
	"strings"
)

// Dump returns a multi-line description of the tree's structure for
// debugging: one line per node with its variant, compressed prefix and
// branching byte.
func (t *Tree[T]) Dump() string {
	var sb strings.Builder
	if t.root == nil {
		sb.WriteString("empty tree\n")
		return sb.String()
	}
	dumpNode[T](&sb, t.root, -1, 0)
	return sb.String()
}

func dumpNode[T any](sb *strings.Builder, n node[T], branch int, indent int) {
	pad := strings.Repeat("  ", indent)
	if branch >= 0 {
		fmt.Fprintf(sb, "%s%#02x ", pad, branch)
	} else {
		sb.WriteString(pad)
	}

	if leaf, ok := n.(*nodeLeaf[T]); ok {
		fmt.Fprintf(sb, "%s partial=%q value=%v\n", typeLeaf, leaf.partial, leaf.value)
		return
	}

	inner := n.(innerNode[T])
	fmt.Fprintf(sb, "%s partial=%q children=%d\n", inner.getType(), inner.getPartial(), inner.nChildren())
	for it, end := childBegin(inner), childEnd(inner); !it.equal(end); it.next() {
		c, err := it.partialKey()
		if err != nil {
			panic(err)
		}
		dumpNode[T](sb, it.child(), int(c), indent+1)
	}
}
