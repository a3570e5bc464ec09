package traverse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hyperifyio/goreadable/internal/dom"
	"github.com/hyperifyio/goreadable/internal/scored"
)

func el(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func ws() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n  "}
}

func root(n *html.Node) scored.Node {
	doc := dom.NewDocument(n)
	return scored.New(doc, doc.ID(n))
}

// walk collects tags from start until the traversal is exhausted
func walk(start scored.Node) []string {
	var tags []string
	for n, ok := start, true; ok; n, ok = Next(n, false) {
		tags = append(tags, n.Tag())
	}
	return tags
}

// TestNext_PreOrder verifies A(B, C(D)) walks A, B, C, D then ends
func TestNext_PreOrder(t *testing.T) {
	a := root(el("a", el("b"), el("c", el("d"))))
	assert.Equal(t, []string{"a", "b", "c", "d"}, walk(a))
}

// TestNext_SkipsWhitespace verifies text nodes are not visited
func TestNext_SkipsWhitespace(t *testing.T) {
	a := root(el("a", ws(), el("b", ws()), ws(), el("c", ws(), el("d"), ws()), ws()))
	assert.Equal(t, []string{"a", "b", "c", "d"}, walk(a))
}

// TestNext_ClimbsSeveralLevels verifies the upward walk finds an
// ancestor's sibling
func TestNext_ClimbsSeveralLevels(t *testing.T) {
	a := root(el("a", el("b", el("c", el("d"))), el("e")))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, walk(a))
}

func TestNext_IgnoreChildren(t *testing.T) {
	a := root(el("a", el("b", el("x"), el("y")), el("c")))

	b, ok := a.FirstChild()
	require.True(t, ok)

	next, ok := Next(b, true)
	require.True(t, ok)
	assert.Equal(t, "c", next.Tag())

	_, ok = Next(a, true)
	assert.False(t, ok, "root with ignored children ends the walk")
}

func TestNext_SingleNode(t *testing.T) {
	_, ok := Next(root(el("a")), false)
	assert.False(t, ok)
}

// TestRemoveAndNext verifies A(B, C, D) minus C leaves [B, D]
func TestRemoveAndNext(t *testing.T) {
	a := root(el("a", el("b"), el("c", el("x")), el("d")))
	kids := a.Children()
	require.Len(t, kids, 3)

	next, ok := RemoveAndNext(kids[1])
	require.True(t, ok)
	assert.Equal(t, "d", next.Tag())

	var tags []string
	for _, k := range a.Children() {
		tags = append(tags, k.Tag())
	}
	assert.Equal(t, []string{"b", "d"}, tags)
}

// TestRemoveAndNext_LastChild verifies removal of a nested last child
// continues at the parent's next sibling
func TestRemoveAndNext_LastChild(t *testing.T) {
	a := root(el("a", el("b", el("x"), el("y")), el("c")))
	b, _ := a.FirstChild()
	y := b.Children()[1]

	next, ok := RemoveAndNext(y)
	require.True(t, ok)
	assert.Equal(t, "c", next.Tag())
	assert.Len(t, b.Children(), 1)
}

func TestRemoveAndNext_End(t *testing.T) {
	a := root(el("a", el("b"), el("c")))
	c := a.Children()[1]

	_, ok := RemoveAndNext(c)
	assert.False(t, ok)
	assert.Len(t, a.Children(), 1)
}

// TestWalk_RemovingWhileIterating verifies a full pass that drops every
// element with class "drop" still visits everything else once
func TestWalk_RemovingWhileIterating(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`
		<div id="a">
			<p class="drop"><span>gone</span></p>
			<p id="b"></p>
			<div class="drop"><p class="drop"></p></div>
			<section id="c"><p class="drop"></p><p id="d"></p></section>
		</div>`))
	require.NoError(t, err)
	rootID, ok := doc.Root()
	require.True(t, ok)

	var seen []string
	n := scored.New(doc, rootID)
	for ok {
		if n.Attr("class") == "drop" {
			n, ok = RemoveAndNext(n)
			continue
		}
		if id := n.Attr("id"); id != "" {
			seen = append(seen, id)
		}
		n, ok = Next(n, false)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, seen)
	assert.Empty(t, doc.Descendants(rootID, "span"))
}

// TestNext_DeepTree verifies deep nesting does not grow the stack
func TestNext_DeepTree(t *testing.T) {
	const depth = 100000
	top := el("div")
	cur := top
	for i := 0; i < depth; i++ {
		c := el("div")
		cur.AppendChild(c)
		cur = c
	}
	cur.AppendChild(el("p"))

	count := 0
	for n, ok := root(top), true; ok; n, ok = Next(n, false) {
		count++
	}
	assert.Equal(t, depth+2, count)
}
