package extract

import (
	"context"
	"fmt"

	readability "github.com/go-shiori/go-readability"

	"newsbreeze/internal/logging"
)

// Readability extracts article bodies with the go-readability port of
// Mozilla's Readability. Better at noisy pages than the tag heuristic,
// at the cost of a heavier parse. Selected with extractor: "readability".
type Readability struct {
	maxLength int
}

// NewReadability creates a readability-based extractor. maxLength <= 0
// uses the default.
func NewReadability(maxLength int) *Readability {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Readability{maxLength: maxLength}
}

func (r *Readability) Name() string {
	return "readability"
}

// Extract fetches the page and returns its readable text content.
func (r *Readability) Extract(ctx context.Context, pageURL string) Result {
	article, err := readability.FromURL(pageURL, fetchTimeout)
	if err != nil {
		logging.Warn("extract: readability failed", "url", pageURL, "error", err)
		return degraded(fmt.Sprintf("readability failed: %v", err))
	}

	content := normalizeSpace(article.TextContent)
	if content == "" {
		logging.Warn("extract: readability found no content", "url", pageURL)
		return degraded("page has no extractable content")
	}

	return Result{Text: truncate(content, r.maxLength)}
}
