// Package feeds retrieves news items from RSS/Atom feeds.
//
// Fetching never fails outward: a feed that cannot be retrieved or parsed
// yields an empty item list, and every item carries usable (possibly
// sentinel) field values.
package feeds

// Item is a single news entry. Immutable once fetched except for Summary,
// which is filled lazily on first display and never recomputed.
type Item struct {
	Title       string
	Link        string
	Description string // Plain text, HTML stripped
	Published   string
	Summary     string
}

// Field defaults for entries with missing data.
const (
	NoTitle       = "No title"
	NoLink        = "#"
	NoDescription = "No description"
	NoDate        = "No date"
)
