// Package news suggests related technology articles for a headline. Topic
// feeds are tried first; built-in tables keep the endpoint useful offline.
package news

import (
	"context"
	"math/rand/v2"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/rss"
)

const (
	maxRecommendations = 4
	maxPerSource       = 2
)

// Recommendation is one related article shown under the preview.
type Recommendation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// FeedSource fetches items for a list of feed URLs. *rss.Fetcher implements it.
type FeedSource interface {
	FetchAll(ctx context.Context, urls []string) []rss.Item
}

type Service struct {
	feeds   FeedSource
	topics  map[string][]string
	shuffle func(n int, swap func(i, j int))
	intn    func(n int) int
	newID   func() string
}

type Option func(*Service)

// WithFeeds enables the feed path. topics maps a keyword category to feed URLs.
func WithFeeds(src FeedSource, topics map[string][]string) Option {
	return func(s *Service) {
		s.feeds = src
		s.topics = topics
	}
}

// WithShuffle replaces the shuffling used for variety between calls.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Service) {
		if shuffle != nil {
			s.shuffle = shuffle
		}
	}
}

func WithRand(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		shuffle: rand.Shuffle,
		intn:    rand.IntN,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend returns up to four related articles with at most two per source.
func (s *Service) Recommend(ctx context.Context, title string) ([]Recommendation, error) {
	keywords := MainKeywords(title)

	recs := s.fromFeeds(ctx, keywords, title)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		recs = s.fromTables(keywords)
	}

	recs = s.diversify(recs)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	for i := range recs {
		recs[i].ID = s.newID()
	}
	return recs, nil
}

// fromFeeds collects feed items whose titles mention a category keyword, a
// general IT term or one of the headline's longer words.
func (s *Service) fromFeeds(ctx context.Context, keywords []string, title string) []Recommendation {
	if s.feeds == nil || len(s.topics) == 0 {
		return nil
	}

	terms := titleTerms(title)
	seen := make(map[string]bool)
	var recs []Recommendation

	for _, kw := range keywords {
		urls := s.topics[kw]
		if len(urls) == 0 {
			continue
		}

		filter := append(append([]string{}, categoryKeywords(kw)...), itFocusKeywords...)
		filter = append(filter, terms...)

		for _, item := range s.feeds.FetchAll(ctx, urls) {
			if seen[item.Link] || !containsAny(item.Title, filter) {
				continue
			}
			seen[item.Link] = true
			recs = append(recs, s.fromItem(item))
		}
	}

	logger.Debug("Feed recommendations", "keywords", keywords, "count", len(recs))
	return recs
}

func (s *Service) fromItem(item rss.Item) Recommendation {
	rec := Recommendation{
		Title:    item.Title,
		Source:   item.Source,
		URL:      item.Link,
		ImageURL: item.ImageURL,
	}
	if rec.Source == "" {
		if u, err := url.Parse(item.Link); err == nil {
			rec.Source = strings.TrimPrefix(u.Hostname(), "www.")
		}
	}
	if rec.ImageURL == "" {
		rec.ImageURL = techImages[s.intn(len(techImages))]
	}
	return rec
}

// fromTables picks the built-in topic lists, topped up with defaults.
func (s *Service) fromTables(keywords []string) []Recommendation {
	var recs []Recommendation
	for _, kw := range keywords {
		recs = append(recs, s.shuffled(topicRecommendations[kw])...)
	}

	if len(recs) < maxRecommendations {
		defaults := s.shuffled(defaultRecommendations)
		recs = append(recs, defaults[:maxRecommendations-len(recs)]...)
	}
	return recs
}

// diversify keeps at most two entries per source, grouped in order of first
// appearance, then shuffles the result.
func (s *Service) diversify(recs []Recommendation) []Recommendation {
	var order []string
	bySource := make(map[string][]Recommendation)
	for _, r := range recs {
		if _, ok := bySource[r.Source]; !ok {
			order = append(order, r.Source)
		}
		bySource[r.Source] = append(bySource[r.Source], r)
	}

	out := make([]Recommendation, 0, len(recs))
	for _, src := range order {
		group := bySource[src]
		if len(group) > maxPerSource {
			group = group[:maxPerSource]
		}
		out = append(out, group...)
	}

	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *Service) shuffled(in []Recommendation) []Recommendation {
	out := append([]Recommendation(nil), in...)
	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
