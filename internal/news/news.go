// Package news aggregates headlines from per-category RSS feeds.
package news

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultCategory is used when the requested category is unknown.
const DefaultCategory = "national"

// feedURLs maps news categories to their RSS sources.
var feedURLs = map[string]string{
	"national":      "https://www.thehindu.com/news/national/feeder/default.rss",
	"international": "https://www.thehindu.com/news/international/feeder/default.rss",
	"business":      "https://www.thehindu.com/business/feeder/default.rss",
	"sport":         "https://www.thehindu.com/sport/feeder/default.rss",
	"entertainment": "https://www.thehindu.com/entertainment/feeder/default.rss",
	"science":       "https://www.thehindu.com/sci-tech/science/feeder/default.rss",
}

// categoryOrder fixes the tab order on the news page.
var categoryOrder = []string{"national", "international", "business", "sport", "entertainment", "science"}

// Categories returns the supported news categories in display order.
func Categories() []string {
	return append([]string(nil), categoryOrder...)
}

// Item is one headline in API responses.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Image       string `json:"image,omitempty"`
}

// parseFunc fetches and parses one feed URL. Injectable for tests.
type parseFunc func(ctx context.Context, url string) (*gofeed.Feed, error)

type Fetcher struct {
	parse   parseFunc
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	return &Fetcher{
		parse: func(ctx context.Context, url string) (*gofeed.Feed, error) {
			return parser.ParseURLWithContext(url, ctx)
		},
		timeout: timeout,
	}
}

// Fetch returns the category's headlines in feed order. Unknown categories
// fall back to the national feed.
func (f *Fetcher) Fetch(ctx context.Context, category string) ([]Item, error) {
	url, ok := feedURLs[category]
	if !ok {
		url = feedURLs[DefaultCategory]
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parse(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s feed: %w", category, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, Item{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			Published:   entry.Published,
			Image:       imageURL(entry),
		})
	}
	return items, nil
}

var imgTagPattern = regexp.MustCompile(`<img src="([^"]+)"`)

// imageURL picks the best available thumbnail: media extension, then an
// image-typed enclosure, then the first <img> embedded in the description.
func imageURL(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}
	if media, ok := entry.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if u := content.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	for _, enc := range entry.Enclosures {
		if strings.Contains(enc.Type, "image") && enc.URL != "" {
			return enc.URL
		}
	}
	if m := imgTagPattern.FindStringSubmatch(entry.Description); m != nil {
		return m[1]
	}
	return ""
}
