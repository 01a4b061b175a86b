package feeds

import (
	"context"

	"github.com/mmcdole/gofeed"

	"newsbreeze/internal/extract"
	"newsbreeze/internal/logging"
)

// enrichThreshold is the description length below which the linked page
// is fetched for fuller content.
const enrichThreshold = 100

// Reader fetches and normalizes feed items.
type Reader struct {
	parser    *gofeed.Parser
	extractor extract.Extractor
}

// NewReader creates a Reader that enriches thin descriptions through the
// given extractor.
func NewReader(extractor extract.Extractor) *Reader {
	return &Reader{
		parser:    gofeed.NewParser(),
		extractor: extractor,
	}
}

// Fetch retrieves all items from a feed URL. On parse failure it logs and
// returns an empty slice; it never returns an error. Entries are processed
// sequentially, without retries.
func (r *Reader) Fetch(ctx context.Context, feedURL string) []Item {
	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		logging.Error("feeds: parse failed", "url", feedURL, "error", err)
		return []Item{}
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := convertEntry(entry)

		// Thin descriptions get replaced by the article body when the
		// linked page yields one; a failed fetch keeps the short text.
		if len(item.Description) < enrichThreshold && item.Link != NoLink {
			res := r.extractor.Extract(ctx, item.Link)
			if res.Degraded {
				logging.Warn("feeds: enrichment failed", "url", item.Link, "reason", res.Reason)
			} else if res.Text != "" {
				item.Description = res.Text
			}
		}

		items = append(items, item)
	}

	logging.Info("feeds: fetched", "url", feedURL, "items", len(items))
	return items
}

func convertEntry(entry *gofeed.Item) Item {
	item := Item{
		Title:     entry.Title,
		Link:      entry.Link,
		Published: entry.Published,
	}
	if item.Title == "" {
		item.Title = NoTitle
	}
	if item.Link == "" {
		item.Link = NoLink
	}
	if item.Published == "" {
		item.Published = NoDate
	}

	raw := entry.Description
	if raw == "" {
		raw = entry.Content
	}
	item.Description = StripHTML(raw)
	if item.Description == "" {
		item.Description = NoDescription
	}

	return item
}
