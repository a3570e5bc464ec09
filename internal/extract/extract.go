package extract

import (
    "bytes"
    "strings"

    "github.com/PuerkitoBio/goquery"
    "golang.org/x/net/html"
    "golang.org/x/text/unicode/norm"
)

// Document is a simplified representation of extracted page content.
type Document struct {
    Title string
    Text  string
}

// noiseSelector lists elements that never carry readable text.
const noiseSelector = "script, style, noscript, iframe, template, svg"

// FromHTML extracts readable text from HTML, preferring <main> or <article>,
// falling back to <body>. It preserves headings, paragraphs, list items,
// and pre/code blocks, while skipping obvious boilerplate like <nav> and <footer>.
func FromHTML(input []byte) Document {
    return LandmarkExtractor{}.Extract(input)
}

func parseDocument(input []byte) (*goquery.Document, bool) {
    doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
    if err != nil || len(doc.Nodes) == 0 {
        return nil, false
    }
    return doc, true
}

func findTitle(doc *goquery.Document) string {
    return strings.TrimSpace(doc.Find("head title").First().Text())
}

// renderText collects the text of each node in order, separating nodes with
// a blank line, then normalizes the result.
func renderText(nodes []*html.Node) string {
    var b strings.Builder
    for _, n := range nodes {
        collectText(&b, n)
        b.WriteString("\n\n")
    }
    return finishText(b.String())
}

func finishText(s string) string {
    return norm.NFC.String(normalizeWhitespace(s))
}

// collectText walks root in document order without recursion, writing text
// with line breaks around block elements.
func collectText(b *strings.Builder, root *html.Node) {
    inPre := 0
    n := root
    for n != nil {
        skip := enterNode(b, n, &inPre)
        if !skip && n.FirstChild != nil {
            n = n.FirstChild
            continue
        }
        if !skip {
            leaveNode(b, n, &inPre)
        }
        for n != root && n.NextSibling == nil {
            n = n.Parent
            leaveNode(b, n, &inPre)
        }
        if n == root {
            return
        }
        n = n.NextSibling
    }
}

// enterNode writes what precedes n's children and reports whether the
// whole subtree should be skipped.
func enterNode(b *strings.Builder, n *html.Node, inPre *int) bool {
    switch n.Type {
    case html.TextNode:
        data := n.Data
        if *inPre == 0 {
            data = strings.ReplaceAll(data, "\t", " ")
            data = strings.ReplaceAll(data, "\r", " ")
        }
        b.WriteString(data)
        return false
    case html.ElementNode:
    default:
        return false
    }
    // Skip known boilerplate containers like cookie/consent banners
    if isBoilerplateContainer(n) {
        return true
    }
    switch strings.ToLower(n.Data) {
    case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
        return true
    case "pre", "code":
        *inPre++
    case "br", "hr":
        b.WriteString("\n")
    case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol":
        // Add a newline before block starts to ensure separation
        b.WriteString("\n")
    }
    return false
}

func leaveNode(b *strings.Builder, n *html.Node, inPre *int) {
    if n.Type != html.ElementNode {
        return
    }
    switch strings.ToLower(n.Data) {
    case "p", "h1", "h2", "h3", "h4", "h5", "h6":
        b.WriteString("\n\n")
    case "li":
        b.WriteString("\n")
    case "pre", "code":
        *inPre--
        b.WriteString("\n")
    }
}

// isBoilerplateContainer returns true if the element looks like a cookie/consent banner.
func isBoilerplateContainer(n *html.Node) bool {
    if n == nil || n.Type != html.ElementNode {
        return false
    }
    // Check id and class attributes for common markers
    for _, attr := range n.Attr {
        key := strings.ToLower(attr.Key)
        if key != "id" && key != "class" && !strings.HasPrefix(key, "data-") && key != "aria-label" && key != "role" {
            continue
        }
        val := strings.ToLower(attr.Val)
        if containsAny(val, []string{"cookie", "consent", "gdpr"}) {
            return true
        }
    }
    return false
}

func containsAny(s string, needles []string) bool {
    for _, n := range needles {
        if strings.Contains(s, n) {
            return true
        }
    }
    return false
}

func normalizeWhitespace(s string) string {
    // Collapse multiple spaces and blank lines
    lines := strings.Split(s, "\n")
    out := make([]string, 0, len(lines))
    for _, line := range lines {
        trimmed := strings.TrimSpace(line)
        if trimmed == "" {
            // Keep at most one consecutive blank
            if len(out) > 0 && out[len(out)-1] == "" {
                continue
            }
            out = append(out, "")
            continue
        }
        out = append(out, strings.Join(strings.Fields(trimmed), " "))
    }
    // trim leading and trailing blank lines
    for len(out) > 0 && out[0] == "" {
        out = out[1:]
    }
    for len(out) > 0 && out[len(out)-1] == "" {
        out = out[:len(out)-1]
    }
    return strings.Join(out, "\n")
}
