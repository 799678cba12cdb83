package rss

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/deusflow/newspost/internal/cache"
	"github.com/deusflow/newspost/internal/logger"
)

// FeedsConfig is the YAML structure of configs/feeds.yaml:
//
//	topics:
//	  ai:
//	    - https://...
type FeedsConfig struct {
	Topics map[string][]string `yaml:"topics"`
}

// LoadFeeds reads the topic -> feed URLs map from a YAML file.
func LoadFeeds(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	topics := make(map[string][]string, len(cfg.Topics))
	for topic, urls := range cfg.Topics {
		topics[strings.ToLower(strings.TrimSpace(topic))] = urls
	}
	return topics, nil
}

// Item is the part of a feed entry the recommendations use.
type Item struct {
	Title    string
	Link     string
	Source   string
	ImageURL string
}

// Fetcher downloads and parses feeds, caching parsed items per feed URL.
type Fetcher struct {
	client *http.Client
	cache  *cache.Cache
	ttl    time.Duration
}

// NewFetcher builds a fetcher. A nil cache or zero ttl disables caching.
func NewFetcher(client *http.Client, c *cache.Cache, ttl time.Duration) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Fetcher{client: client, cache: c, ttl: ttl}
}

// Fetch returns the items of one feed.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Item, error) {
	key := "feed:" + url
	if f.cache != nil {
		if v, ok := f.cache.Get(key); ok {
			return v.([]Item), nil
		}
	}

	parser := gofeed.NewParser()
	parser.Client = f.client
	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || strings.TrimSpace(it.Title) == "" || it.Link == "" {
			continue
		}
		items = append(items, Item{
			Title:    strings.TrimSpace(it.Title),
			Link:     it.Link,
			Source:   strings.TrimSpace(feed.Title),
			ImageURL: itemImage(it),
		})
	}

	if f.cache != nil && f.ttl > 0 {
		f.cache.Set(key, items, f.ttl)
	}
	return items, nil
}

// FetchAll downloads every feed; failures are logged and skipped.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Item {
	var all []Item
	ok := 0

	for _, url := range urls {
		if ctx.Err() != nil {
			break
		}
		items, err := f.Fetch(ctx, url)
		if err != nil {
			logger.Warn("Error parsing RSS", "url", url, "error", err)
			continue
		}
		all = append(all, items...)
		ok++
		logger.Debug("Loaded feed items", "count", len(items), "url", url)
	}

	logger.Debug("Processed RSS feeds", "ok", ok, "total", len(urls))
	return all
}

func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
