package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// UserMessage is the only failure text shown to API clients.
const UserMessage = "Failed to extract article. Please check the URL and try again."

// ExtractionError is returned for every hard extraction failure. Error()
// yields the user-facing message; the cause is reachable via errors.Unwrap.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string { return UserMessage }

func (e *ExtractionError) Unwrap() error { return e.Err }

// FetchError reports a transport failure or a non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch article %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch article %s: %s", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// fetchDocument performs the single GET for rawURL and parses the body.
func (s *Scraper) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	// Pages declared (or sniffed) as non-UTF-8 are transcoded before parsing.
	body, err := charset.NewReader(io.LimitReader(resp.Body, s.maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
