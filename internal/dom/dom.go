// Package dom exposes a parsed HTML tree through a small capability
// interface keyed by stable node handles.
//
// A Document is an arena over *html.Node values: it assigns each node a
// NodeID on first sight and keeps per-node scores alongside the handles,
// while all structure (parent, children, siblings) is read live from the
// underlying html tree. Structural queries see element nodes only; text,
// comment and doctype nodes are skipped when moving between nodes.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NodeID is a handle to a node registered in a Document. Zero refers to no
// node and is never assigned.
type NodeID int

// Tree is the set of tree capabilities the scoring layer depends on.
type Tree interface {
	Tag(id NodeID) string
	Attr(id NodeID, name string) (string, bool)
	IsText(id NodeID) bool
	IsElement(id NodeID) bool
	// Text returns the data of a text node, or the concatenated descendant
	// text of any other node.
	Text(id NodeID) string

	Parent(id NodeID) (NodeID, bool)
	FirstChild(id NodeID) (NodeID, bool)
	NextSibling(id NodeID) (NodeID, bool)
	Children(id NodeID) []NodeID
	ChildNodes(id NodeID) []NodeID
	// Descendants lists descendant elements whose tag equals tag, in
	// document order.
	Descendants(id NodeID, tag string) []NodeID
	Detach(id NodeID)

	Score(id NodeID) float64
	SetScore(id NodeID, v float64)
}

// Document is an arena-backed Tree over an x/net/html tree. It is not safe
// for concurrent use.
type Document struct {
	root   *html.Node
	nodes  []*html.Node
	ids    map[*html.Node]NodeID
	scores []float64
}

var _ Tree = (*Document)(nil)

// NewDocument wraps root. When root is an html.DocumentNode the first
// element below it becomes the document root.
func NewDocument(root *html.Node) *Document {
	d := &Document{
		nodes:  []*html.Node{nil},
		ids:    make(map[*html.Node]NodeID),
		scores: []float64{0},
	}
	if root != nil && root.Type == html.DocumentNode {
		root = firstElement(root.FirstChild)
	}
	d.root = root
	return d
}

// Parse reads HTML from r and wraps the resulting tree.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return NewDocument(n), nil
}

// FromGoquery wraps the tree behind a goquery document. Mutations made
// through the Document are visible to later goquery selections.
func FromGoquery(doc *goquery.Document) *Document {
	if doc == nil || len(doc.Nodes) == 0 {
		return NewDocument(nil)
	}
	return NewDocument(doc.Nodes[0])
}

// Root returns the topmost element, if the document has one.
func (d *Document) Root() (NodeID, bool) {
	if d.root == nil {
		return 0, false
	}
	return d.ID(d.root), true
}

// ID returns the handle for n, registering it on first use. A nil node
// yields zero.
func (d *Document) ID(n *html.Node) NodeID {
	if n == nil {
		return 0
	}
	if id, ok := d.ids[n]; ok {
		return id
	}
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	d.scores = append(d.scores, 0)
	d.ids[n] = id
	return id
}

// Node returns the html node behind id. Unknown handles panic.
func (d *Document) Node(id NodeID) *html.Node {
	if id <= 0 || int(id) >= len(d.nodes) {
		panic(fmt.Sprintf("dom: unknown node id %d", id))
	}
	return d.nodes[id]
}

// Tag returns the element name, or "" for non-element nodes.
func (d *Document) Tag(id NodeID) string {
	n := d.Node(id)
	if n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// Attr looks up an attribute by case-insensitive name.
func (d *Document) Attr(id NodeID, name string) (string, bool) {
	n := d.Node(id)
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// IsText and IsElement report the node type.
func (d *Document) IsText(id NodeID) bool    { return d.Node(id).Type == html.TextNode }
func (d *Document) IsElement(id NodeID) bool { return d.Node(id).Type == html.ElementNode }

// Text returns a text node's data or the concatenated descendant text.
func (d *Document) Text(id NodeID) string {
	n := d.Node(id)
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	eachDescendant(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// Parent returns the parent element. The html.DocumentNode above the root
// element is not reported.
func (d *Document) Parent(id NodeID) (NodeID, bool) {
	p := d.Node(id).Parent
	if p == nil || p.Type != html.ElementNode {
		return 0, false
	}
	return d.ID(p), true
}

// FirstChild returns the first element child.
func (d *Document) FirstChild(id NodeID) (NodeID, bool) {
	c := firstElement(d.Node(id).FirstChild)
	if c == nil {
		return 0, false
	}
	return d.ID(c), true
}

// NextSibling returns the next element sibling.
func (d *Document) NextSibling(id NodeID) (NodeID, bool) {
	s := firstElement(d.Node(id).NextSibling)
	if s == nil {
		return 0, false
	}
	return d.ID(s), true
}

// Children lists element children in order.
func (d *Document) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := firstElement(d.Node(id).FirstChild); c != nil; c = firstElement(c.NextSibling) {
		out = append(out, d.ID(c))
	}
	return out
}

// ChildNodes lists children of every node type in order.
func (d *Document) ChildNodes(id NodeID) []NodeID {
	var out []NodeID
	for c := d.Node(id).FirstChild; c != nil; c = c.NextSibling {
		out = append(out, d.ID(c))
	}
	return out
}

// Descendants walks the subtree iteratively and collects elements named tag.
func (d *Document) Descendants(id NodeID, tag string) []NodeID {
	var out []NodeID
	eachDescendant(d.Node(id), func(c *html.Node) {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			out = append(out, d.ID(c))
		}
	})
	return out
}

// Detach removes the node, with its subtree, from its parent element. The
// root is left in place.
func (d *Document) Detach(id NodeID) {
	n := d.Node(id)
	if n.Parent == nil || n.Parent.Type != html.ElementNode {
		return
	}
	n.Parent.RemoveChild(n)
}

// Score returns the stored score, zero until set.
func (d *Document) Score(id NodeID) float64 {
	d.Node(id)
	return d.scores[id]
}

// SetScore stores v, folding negative zero into zero.
func (d *Document) SetScore(id NodeID, v float64) {
	d.Node(id)
	if v == 0 {
		v = 0
	}
	d.scores[id] = v
}

func firstElement(n *html.Node) *html.Node {
	for ; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// eachDescendant visits the nodes below start in document order without
// recursion. fn must not change the tree.
func eachDescendant(start *html.Node, fn func(*html.Node)) {
	n := start.FirstChild
	for n != nil {
		fn(n)
		if n.FirstChild != nil {
			n = n.FirstChild
			continue
		}
		for n != start && n.NextSibling == nil {
			n = n.Parent
		}
		if n == start {
			return
		}
		n = n.NextSibling
	}
}
