// Package heuristics holds the tag and class/id rules used to seed content
// scores. Everything here is a pure function of its arguments.
package heuristics

import (
	"regexp"
	"strings"
)

var (
	positive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	negative = regexp.MustCompile(`(?i)hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|modal|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)

	unlikelyCandidates = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	maybeCandidate     = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)
)

// ClassWeightStep is the magnitude of a single class or id pattern match.
const ClassWeightStep = 25

// DefaultTagsToScore are the elements whose text seeds ancestor scores
// during candidate selection.
var DefaultTagsToScore = []string{"section", "h2", "h3", "h4", "h5", "h6", "p", "td", "pre"}

// TagWeight returns the base score for an element tag.
func TagWeight(tag string) int {
	switch strings.ToLower(tag) {
	case "div":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	}
	return 0
}

// ClassWeight scores the class and id attribute values independently
// against the negative and positive keyword patterns. Blank values add
// nothing.
func ClassWeight(class, id string) int {
	return attrWeight(class) + attrWeight(id)
}

func attrWeight(v string) int {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	w := 0
	if negative.MatchString(v) {
		w -= ClassWeightStep
	}
	if positive.MatchString(v) {
		w += ClassWeightStep
	}
	return w
}

// IsUnlikelyCandidate reports whether a node whose class and id joined by a
// space give matchString looks like page chrome rather than content.
func IsUnlikelyCandidate(matchString string) bool {
	return unlikelyCandidates.MatchString(matchString) && !maybeCandidate.MatchString(matchString)
}
