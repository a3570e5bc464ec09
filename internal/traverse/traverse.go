// Package traverse walks scored nodes in pre-order, depth first.
//
// Nothing is kept between calls: each step depends only on the current tree
// shape and the node passed in, so callers drive a walk by feeding the
// returned node back.
package traverse

import "github.com/hyperifyio/goreadable/internal/scored"

// Next returns the node after n in pre-order. With ignoreChildren set the
// subtree of n is skipped. It returns false once the walk is exhausted.
func Next(n scored.Node, ignoreChildren bool) (scored.Node, bool) {
	if !ignoreChildren {
		if c, ok := n.FirstChild(); ok {
			return c, true
		}
	}
	for cur := n; ; {
		if s, ok := cur.NextSibling(); ok {
			return s, true
		}
		p, ok := cur.Parent()
		if !ok {
			return scored.Node{}, false
		}
		cur = p
	}
}

// RemoveAndNext detaches n from the tree and returns the node that follows
// it once its subtree is gone. The next node is resolved before n is
// detached, while its sibling and parent links are still intact.
func RemoveAndNext(n scored.Node) (scored.Node, bool) {
	next, ok := Next(n, true)
	n.Detach()
	return next, ok
}
