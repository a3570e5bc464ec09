package extract

import (
    "math"
    "strings"

    "github.com/rs/zerolog/log"
    "golang.org/x/net/html"

    "github.com/hyperifyio/goreadable/internal/dom"
    "github.com/hyperifyio/goreadable/internal/heuristics"
    "github.com/hyperifyio/goreadable/internal/scored"
    "github.com/hyperifyio/goreadable/internal/traverse"
)

const (
    defaultMinTextLength  = 25
    defaultAncestorLevels = 5
)

// Options tunes candidate selection. The zero value uses the defaults.
type Options struct {
    // MinTextLength is the shortest normalized text a node needs to
    // contribute to its ancestors' scores.
    MinTextLength int
    // AncestorLevels bounds how far a paragraph's score propagates.
    AncestorLevels int
    // KeepUnlikely disables removal of nodes whose class or id look like
    // page chrome.
    KeepUnlikely bool
    // Fallback runs when no candidate is found. Nil means landmark
    // extraction.
    Fallback Extractor
    // BaseURL is handed to extractors that resolve links.
    BaseURL string
}

func (o Options) minTextLength() int {
    if o.MinTextLength > 0 {
        return o.MinTextLength
    }
    return defaultMinTextLength
}

func (o Options) ancestorLevels() int {
    if o.AncestorLevels > 0 {
        return o.AncestorLevels
    }
    return defaultAncestorLevels
}

// ScoringExtractor scores paragraphs, propagates their scores to ancestor
// containers and keeps the best container together with its qualifying
// siblings.
type ScoringExtractor struct {
    Options Options
}

func (e ScoringExtractor) Extract(input []byte) Document {
    gq, ok := parseDocument(input)
    if !ok {
        return Document{}
    }
    title := findTitle(gq)
    gq.Find(noiseSelector).Remove()

    doc := dom.FromGoquery(gq)
    picked := Candidates(doc, e.Options)
    if len(picked) == 0 {
        fallback := e.Options.Fallback
        if fallback == nil {
            fallback = LandmarkExtractor{}
        }
        log.Warn().Msg("no content candidate found; using fallback extractor")
        out := fallback.Extract(input)
        if out.Title == "" {
            out.Title = title
        }
        return out
    }

    nodes := make([]*html.Node, len(picked))
    for i, n := range picked {
        nodes[i] = doc.Node(n.ID())
    }
    return Document{Title: title, Text: renderText(nodes)}
}

// Candidates runs candidate selection over doc and returns the winning
// container followed in document order by the siblings worth keeping. Nodes
// judged unlikely to hold content are removed from doc unless
// opts.KeepUnlikely is set. The result is empty when nothing scored.
func Candidates(doc *dom.Document, opts Options) []scored.Node {
    rootID, ok := doc.Root()
    if !ok {
        return nil
    }
    elems := collectElements(scored.New(doc, rootID), opts)

    initialized := make(map[dom.NodeID]bool)
    var candidates []scored.Node
    for _, el := range elems {
        text := el.TextContent(true)
        if len(text) < opts.minTextLength() {
            continue
        }
        score := 1 + float64(strings.Count(text, ",")) + math.Min(math.Floor(float64(len(text))/100), 3)
        for level, a := range el.Ancestors(opts.ancestorLevels()) {
            // the root element never competes
            if _, ok := a.Parent(); !ok {
                break
            }
            if !initialized[a.ID()] {
                a.Initialize()
                initialized[a.ID()] = true
                candidates = append(candidates, a)
            }
            a.SetContentScore(a.ContentScore() + score/scoreDivider(level))
        }
    }
    if len(candidates) == 0 {
        return nil
    }

    var top scored.Node
    for i, c := range candidates {
        c.SetContentScore(c.ContentScore() * (1 - linkDensity(c)))
        if i == 0 || c.ContentScore() > top.ContentScore() {
            top = c
        }
    }
    log.Debug().
        Int("candidates", len(candidates)).
        Str("tag", top.Tag()).
        Str("class", top.Attr("class")).
        Str("id", top.Attr("id")).
        Float64("score", top.ContentScore()).
        Msg("top candidate")

    return withSiblings(top, initialized)
}

// collectElements walks the tree once, dropping unlikely candidates and
// returning the nodes whose own text should be scored.
func collectElements(root scored.Node, opts Options) []scored.Node {
    var out []scored.Node
    n, ok := root, true
    for ok {
        if !opts.KeepUnlikely && isUnlikely(n) {
            log.Debug().Str("tag", n.Tag()).Str("class", n.Attr("class")).Str("id", n.Attr("id")).Msg("removing unlikely candidate")
            n, ok = traverse.RemoveAndNext(n)
            continue
        }
        if isScorable(n) {
            out = append(out, n)
        }
        n, ok = traverse.Next(n, false)
    }
    return out
}

func isUnlikely(n scored.Node) bool {
    if n.TagNameEquals("html") || n.TagNameEquals("body") || n.TagNameEquals("a") {
        return false
    }
    if !heuristics.IsUnlikelyCandidate(n.Attr("class") + " " + n.Attr("id")) {
        return false
    }
    for _, a := range n.Ancestors(0) {
        if a.TagNameEquals("table") || a.TagNameEquals("code") {
            return false
        }
    }
    return true
}

// isScorable reports whether n's text counts as a paragraph. A div counts
// when it holds no block children or carries inline text of its own; a div
// wrapping a single <p> does not, since the paragraph itself is scored.
func isScorable(n scored.Node) bool {
    for _, tag := range heuristics.DefaultTagsToScore {
        if n.TagNameEquals(tag) {
            return true
        }
    }
    if !n.TagNameEquals("div") || n.HasSingleParagraphChild() {
        return false
    }
    if hasOwnText(n) {
        return true
    }
    for _, c := range n.Children() {
        if blockTags[strings.ToLower(c.Tag())] {
            return false
        }
    }
    return true
}

// hasOwnText reports whether n has a direct text child that is not blank.
func hasOwnText(n scored.Node) bool {
    tree := n.Tree()
    for _, c := range tree.ChildNodes(n.ID()) {
        if tree.IsText(c) && strings.TrimSpace(tree.Text(c)) != "" {
            return true
        }
    }
    return false
}

var blockTags = map[string]bool{
    "blockquote": true, "dl": true, "div": true, "img": true, "ol": true,
    "p": true, "pre": true, "table": true, "ul": true, "section": true,
    "article": true, "header": true, "footer": true, "aside": true,
    "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func scoreDivider(level int) float64 {
    switch level {
    case 0:
        return 1
    case 1:
        return 2
    default:
        return float64(level * 3)
    }
}

// linkDensity is the share of n's normalized text that sits inside links.
func linkDensity(n scored.Node) float64 {
    textLen := len(n.TextContent(true))
    if textLen == 0 {
        return 0
    }
    links, ok := n.AllLinks()
    if !ok {
        return 0
    }
    linkLen := 0
    for _, a := range links {
        linkLen += len(a.TextContent(true))
    }
    return float64(linkLen) / float64(textLen)
}

// withSiblings returns top and the siblings that look like part of the
// same article, in document order.
func withSiblings(top scored.Node, scoredNodes map[dom.NodeID]bool) []scored.Node {
    parent, ok := top.Parent()
    if !ok {
        return []scored.Node{top}
    }
    threshold := math.Max(10, top.ContentScore()*0.2)
    var out []scored.Node
    for _, s := range parent.Children() {
        switch {
        case s.Equal(top):
            out = append(out, s)
        case scoredNodes[s.ID()] && s.ContentScore() >= threshold:
            out = append(out, s)
        case s.TagNameEquals("p"):
            text := s.TextContent(true)
            density := linkDensity(s)
            if (len(text) > 80 && density < 0.25) ||
                (len(text) > 0 && density == 0 && strings.HasSuffix(text, ".")) {
                out = append(out, s)
            }
        }
    }
    return out
}
