package extract

import (
    "bytes"
    "fmt"
    "net/url"
    "strings"

    readability "github.com/go-shiori/go-readability"
    "github.com/rs/zerolog/log"
    "golang.org/x/net/html"
)

// Extractor defines a minimal interface for content extraction strategies.
// Implementations can swap readability tactics without changing callers.
type Extractor interface {
    // Extract converts raw HTML bytes into a simplified Document.
    // Implementations should be deterministic and avoid side effects.
    Extract(input []byte) Document
}

// Strategy names accepted by New.
const (
    StrategyScore       = "score"
    StrategyLandmark    = "landmark"
    StrategyReadability = "readability"
)

// DefaultBaseURL resolves relative links when no page URL is known.
const DefaultBaseURL = "http://localhost/"

// New returns the extractor registered under strategy. An empty strategy
// selects scoring.
func New(strategy string, opts Options) (Extractor, error) {
    switch strings.ToLower(strings.TrimSpace(strategy)) {
    case "", StrategyScore:
        return ScoringExtractor{Options: opts}, nil
    case StrategyLandmark:
        return LandmarkExtractor{}, nil
    case StrategyReadability:
        return ReadabilityExtractor{BaseURL: opts.BaseURL}, nil
    default:
        return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
    }
}

// LandmarkExtractor picks the first <main>, then <article>, then <body> and
// applies light boilerplate reduction and normalization.
type LandmarkExtractor struct{}

func (LandmarkExtractor) Extract(input []byte) Document {
    doc, ok := parseDocument(input)
    if !ok {
        return Document{}
    }
    title := findTitle(doc)
    var content []*html.Node
    for _, tag := range []string{"main", "article", "body"} {
        if sel := doc.Find(tag).First(); sel.Length() > 0 {
            content = sel.Nodes
            break
        }
    }
    return Document{Title: title, Text: renderText(content)}
}

// ReadabilityExtractor delegates to go-readability. It is used on its own
// or as the fallback when scoring finds no candidate.
type ReadabilityExtractor struct {
    BaseURL string
}

func (e ReadabilityExtractor) Extract(input []byte) Document {
    base := e.BaseURL
    if strings.TrimSpace(base) == "" {
        base = DefaultBaseURL
    }
    pageURL, err := url.Parse(base)
    if err != nil {
        log.Warn().Err(err).Str("base", base).Msg("invalid base URL; readability skipped")
        return Document{}
    }
    article, err := readability.FromReader(bytes.NewReader(input), pageURL)
    if err != nil {
        log.Debug().Err(err).Msg("readability extraction failed")
        return Document{}
    }
    return Document{
        Title: strings.TrimSpace(article.Title),
        Text:  finishText(article.TextContent),
    }
}
