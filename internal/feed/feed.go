// Package feed turns a remote feed URL into a bounded, display-ready
// ticker item list. Every failure path ends in a fixed placeholder
// list; the ticker is never empty and never blocks the kiosk.
package feed

// MaxItems bounds the ticker to the first entries in feed order.
const MaxItems = 10

// Item is one ticker entry. Embed marks the sentinel produced when the
// fetched payload is not a syndication feed: the kiosk then embeds the
// link directly instead of scrolling a list.
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate,omitempty"`
	Embed   bool   `json:"embed,omitempty"`
}

// Placeholder returns the fixed list shown when fetching or parsing
// fails: one explanatory entry plus three fillers.
func Placeholder() []Item {
	return []Item{
		{Title: "News feed temporarily unavailable", Link: "#"},
		{Title: "Welcome", Link: "#"},
		{Title: "Thank you for your patience", Link: "#"},
		{Title: "We will be with you shortly", Link: "#"},
	}
}
