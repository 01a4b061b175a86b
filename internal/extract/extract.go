// Package extract pulls the main textual content out of article pages.
//
// Extractors never fail outward: any network, parse, or timeout problem
// yields a Degraded result carrying the sentinel text, so callers always
// get something displayable.
package extract

import (
	"context"
	"strings"

	"golang.org/x/net/html"
)

// Unavailable is the sentinel returned when no content could be extracted.
const Unavailable = "Content not available"

// DefaultMaxLength bounds the extracted text length in characters.
const DefaultMaxLength = 1000

// Result is the outcome of an extraction attempt. Text is always usable;
// when Degraded is set it holds the sentinel and Reason says why.
type Result struct {
	Text     string
	Degraded bool
	Reason   string
}

// Extractor locates the main textual content of a page.
type Extractor interface {
	// Name returns the extractor identifier for logging.
	Name() string

	// Extract fetches the page and returns its body text.
	Extract(ctx context.Context, pageURL string) Result
}

func degraded(reason string) Result {
	return Result{Text: Unavailable, Degraded: true, Reason: reason}
}

// nodeText flattens the text nodes under n, separating adjacent nodes with
// spaces so "</p><p>" boundaries do not glue words together. Script and
// style bodies are skipped.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// normalizeSpace collapses all runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate hard-cuts s at max characters. Not word-boundary aware.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
