// Package scraper extracts article metadata (title, author, source, image and
// body text) from news pages. Known sites get curated CSS selectors; every
// field then falls back through an ordered list of generic rules and finally
// a sentinel, so a fetched page always yields a complete record.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/deusflow/newspost/internal/logger"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultUserAgent    = "Mozilla/5.0 (compatible; newspost/1.0; +https://github.com/deusflow/newspost)"
	defaultMaxBodyBytes = 5 << 20
)

// Article is the extraction result. ImageURL is nil when no absolute image was found.
type Article struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Source   string  `json:"source"`
	ImageURL *string `json:"imageUrl"`
	Content  string  `json:"content"`
}

// Scraper fetches and extracts articles. It holds no per-request state and
// is safe for concurrent use.
type Scraper struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient replaces the default client. Its Timeout is kept unless
// WithTimeout is also given; the caller's client is never modified.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout bounds the whole page fetch.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of the page is read before parsing.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Scraper) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// New makes a Scraper with a 15s fetch timeout unless options say otherwise.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:       &http.Client{Timeout: defaultTimeout},
		userAgent:    defaultUserAgent,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout > 0 {
		c := *s.client
		c.Timeout = s.timeout
		s.client = &c
	}
	return s
}

// Extract fetches rawURL once and extracts its article fields. Any failure,
// including an unexpected panic while parsing, comes back as *ExtractionError
// and no partial record is returned.
func (s *Scraper) Extract(ctx context.Context, rawURL string) (article *Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			article = nil
			err = &ExtractionError{URL: rawURL, Err: fmt.Errorf("panic during extraction: %v", r)}
		}
	}()

	doc, err := s.fetchDocument(ctx, rawURL)
	if err != nil {
		logger.Error("Error extracting article", "url", rawURL, "error", err)
		return nil, &ExtractionError{URL: rawURL, Err: err}
	}

	return extractDocument(doc, rawURL), nil
}

// Parse extracts an article from an already downloaded page.
func Parse(rawURL string, page io.Reader) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, &ExtractionError{URL: rawURL, Err: fmt.Errorf("parse html: %w", err)}
	}
	return extractDocument(doc, rawURL), nil
}

func extractDocument(doc *goquery.Document, rawURL string) *Article {
	domain := domainOf(rawURL)
	logger.Info("Detected domain", "domain", domain)

	article := &Article{
		Title:   extractTitle(doc, domain),
		Author:  extractAuthor(doc, domain),
		Source:  extractSource(doc, rawURL, domain),
		Content: extractContent(doc, domain),
	}
	if img, ok := extractImage(doc, domain); ok {
		article.ImageURL = &img
	}
	return article
}

// domainOf returns the lower-cased hostname of rawURL, or "" when it cannot be
// parsed. An empty domain disables site-specific rules rather than failing.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
