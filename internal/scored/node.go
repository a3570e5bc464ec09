// Package scored provides Node, a lightweight view over one node of a
// dom.Tree that carries a content score.
//
// Views are cheap values. Several views may wrap the same underlying node;
// the score lives in the tree, so an update through one view is seen by all
// of them.
package scored

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/goreadable/internal/dom"
	"github.com/hyperifyio/goreadable/internal/heuristics"
)

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// Node is a scored view over a tree node.
type Node struct {
	tree dom.Tree
	id   dom.NodeID
}

// New returns a view of id in tree.
func New(tree dom.Tree, id dom.NodeID) Node {
	return Node{tree: tree, id: id}
}

func (n Node) ID() dom.NodeID  { return n.id }
func (n Node) Tree() dom.Tree  { return n.tree }
func (n Node) Tag() string     { return n.tree.Tag(n.id) }
func (n Node) IsText() bool    { return n.tree.IsText(n.id) }
func (n Node) IsElement() bool { return n.tree.IsElement(n.id) }

func (n Node) Attr(name string) string {
	v, _ := n.tree.Attr(n.id, name)
	return v
}

// Equal reports whether both views refer to the same node of the same tree.
func (n Node) Equal(o Node) bool {
	return n.tree == o.tree && n.id == o.id
}

// TagNameEquals compares the tag name ignoring case.
func (n Node) TagNameEquals(tag string) bool {
	return strings.EqualFold(n.Tag(), tag)
}

// HasSingleParagraphChild reports whether the node has exactly one child and
// that child is a <p>. Comments and whitespace-only text do not count as
// children; any other text does.
func (n Node) HasSingleParagraphChild() bool {
	var only dom.NodeID
	count := 0
	for _, c := range n.tree.ChildNodes(n.id) {
		switch {
		case n.tree.IsElement(c):
		case n.tree.IsText(c):
			if strings.TrimSpace(n.tree.Text(c)) == "" {
				continue
			}
		default:
			continue
		}
		count++
		if count > 1 {
			return false
		}
		only = c
	}
	return count == 1 && n.tree.IsElement(only) && strings.EqualFold(n.tree.Tag(only), "p")
}

func (n Node) Parent() (Node, bool) {
	p, ok := n.tree.Parent(n.id)
	if !ok {
		return Node{}, false
	}
	return n.view(p), true
}

func (n Node) FirstChild() (Node, bool) {
	c, ok := n.tree.FirstChild(n.id)
	if !ok {
		return Node{}, false
	}
	return n.view(c), true
}

func (n Node) NextSibling() (Node, bool) {
	s, ok := n.tree.NextSibling(n.id)
	if !ok {
		return Node{}, false
	}
	return n.view(s), true
}

func (n Node) Children() []Node {
	ids := n.tree.Children(n.id)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = n.view(id)
	}
	return out
}

// AllLinks returns every descendant anchor in document order. For a text
// node it returns false: links do not apply to that kind of node.
func (n Node) AllLinks() ([]Node, bool) {
	if n.IsText() {
		return nil, false
	}
	ids := n.tree.Descendants(n.id, "a")
	links := make([]Node, len(ids))
	for i, id := range ids {
		links[i] = n.view(id)
	}
	return links, true
}

// Detach removes the node from its parent.
func (n Node) Detach() {
	n.tree.Detach(n.id)
}

// Initialize seeds the score from the tag and class/id weights.
func (n Node) Initialize() Node {
	n.SetContentScore(float64(heuristics.TagWeight(n.Tag()) + n.ClassWeight()))
	return n
}

// ClassWeight scores the class attribute and then the id attribute.
func (n Node) ClassWeight() int {
	return heuristics.ClassWeight(n.Attr("class"), n.Attr("id"))
}

func (n Node) ContentScore() float64 {
	return n.tree.Score(n.id)
}

// SetContentScore stores v and returns the stored value. Negative zero is
// stored as zero.
func (n Node) SetContentScore(v float64) float64 {
	n.tree.SetScore(n.id, v)
	return n.tree.Score(n.id)
}

// TextContent returns the node's text. With normalize set, runs of two or
// more whitespace characters become one space and the ends are trimmed.
func (n Node) TextContent(normalize bool) string {
	s := n.tree.Text(n.id)
	if !normalize {
		return s
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func (n Node) view(id dom.NodeID) Node {
	return Node{tree: n.tree, id: id}
}
