package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsbreeze/internal/logging"
)

// Sites behave differently for obvious bots, so identify as a browser.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const fetchTimeout = 10 * time.Second

// contentClasses are the class names commonly wrapping article bodies,
// tried in document order after <article> and <main>.
var contentClasses = []string{"content", "article-content", "story-content", "entry-content"}

// Heuristic extracts article bodies with a tag/class priority chain:
// first non-empty of <article>, <main>, a div with a known content class,
// then the document body.
type Heuristic struct {
	client    *http.Client
	maxLength int
}

// NewHeuristic creates a heuristic extractor. maxLength <= 0 uses the default.
func NewHeuristic(maxLength int) *Heuristic {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Heuristic{
		client:    &http.Client{Timeout: fetchTimeout},
		maxLength: maxLength,
	}
}

func (h *Heuristic) Name() string {
	return "heuristic"
}

// Extract fetches the page and walks the priority chain. First match wins.
func (h *Heuristic) Extract(ctx context.Context, pageURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logging.Warn("extract: bad URL", "url", pageURL, "error", err)
		return degraded(fmt.Sprintf("bad URL: %v", err))
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		logging.Warn("extract: fetch failed", "url", pageURL, "error", err)
		return degraded(fmt.Sprintf("fetch failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Warn("extract: HTTP error", "url", pageURL, "status", resp.StatusCode)
		return degraded(fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logging.Warn("extract: parse failed", "url", pageURL, "error", err)
		return degraded(fmt.Sprintf("parse failed: %v", err))
	}

	content := h.locate(doc)
	if content == "" {
		logging.Warn("extract: no content found", "url", pageURL)
		return degraded("page has no extractable content")
	}

	return Result{Text: truncate(content, h.maxLength)}
}

func (h *Heuristic) locate(doc *goquery.Document) string {
	if text := selectionText(doc.Find("article").First()); text != "" {
		return text
	}
	if text := selectionText(doc.Find("main").First()); text != "" {
		return text
	}

	selector := "div." + strings.Join(contentClasses, ", div.")
	found := ""
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := selectionText(s); text != "" {
			found = text
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	return selectionText(doc.Find("body").First())
}

// selectionText flattens a selection to space-separated, normalized text.
func selectionText(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	return normalizeSpace(nodeText(s.Nodes[0]))
}
