package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/MrSnakeDoc/foyer/internal/logger"
	"github.com/MrSnakeDoc/foyer/internal/utils"
)

// envelope is the JSON wrapper returned by the fetch endpoint. The
// contents string carries either raw feed markup or arbitrary HTML.
type envelope struct {
	Contents string `json:"contents"`
}

// maxEnvelopeBytes caps the response body read. A ticker only needs
// the first entries of a feed; anything past this is a misbehaving
// upstream and degrades to the placeholder.
const maxEnvelopeBytes = 2 << 20

// Ingestor fetches and normalizes one feed URL per call.
type Ingestor struct {
	client *http.Client
	parser *gofeed.Parser
	logger logger.Logger
}

// NewIngestor creates an ingestor. A nil client gets a default with a
// 15s timeout so a dead endpoint cannot hang a refresh forever.
func NewIngestor(client *http.Client, log logger.Logger) *Ingestor {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Ingestor{
		client: client,
		parser: gofeed.NewParser(),
		logger: log,
	}
}

// Fetch performs one outbound request and returns display-ready items.
// It never returns an error: transport and parse failures degrade to
// the placeholder list, a non-feed payload degrades to the embed
// sentinel carrying the original URL.
func (in *Ingestor) Fetch(ctx context.Context, url string) []Item {
	contents, err := in.download(ctx, url)
	if err != nil {
		in.logger.Warn("feed fetch failed, serving placeholder",
			logger.String("url", url),
			logger.Error(err))
		return Placeholder()
	}

	if !looksLikeFeed(contents) {
		in.logger.Info("payload is not a syndication feed, embedding directly",
			logger.String("url", url))
		return []Item{{Title: "Embedded page", Link: url, Embed: true}}
	}

	parsed, err := in.parser.ParseString(contents)
	if err != nil {
		in.logger.Warn("feed parse failed, serving placeholder",
			logger.String("url", url),
			logger.Error(err))
		return Placeholder()
	}

	items := make([]Item, 0, MaxItems)
	for _, entry := range parsed.Items {
		if len(items) == MaxItems {
			break
		}
		items = append(items, normalize(entry))
	}
	in.logger.Info("feed fetched",
		logger.String("url", url),
		logger.Int("items", len(items)))
	return items
}

// download GETs the URL and unwraps the JSON envelope.
func (in *Ingestor) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := in.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEnvelopeBytes)).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode envelope: %w", err)
	}
	return env.Contents, nil
}

// normalize maps a parsed entry to a ticker item with defaults for
// absent fields.
func normalize(entry *gofeed.Item) Item {
	item := Item{
		Title:   entry.Title,
		Link:    entry.Link,
		PubDate: entry.Published,
	}
	if item.Title == "" {
		item.Title = "untitled"
	}
	if item.Link == "" {
		item.Link = "#"
	}
	return item
}

// looksLikeFeed sniffs the payload for syndication markers (RSS, Atom,
// RDF) to pick the parse path.
func looksLikeFeed(contents string) bool {
	lower := strings.ToLower(contents)
	return strings.Contains(lower, "<rss") ||
		strings.Contains(lower, "<feed") ||
		strings.Contains(lower, "<rdf")
}
