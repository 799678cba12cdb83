package scraper

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// UnknownSource is returned when no publication name can be found.
const UnknownSource = "Unknown Source"

// sourceStrategy is one step of the publication-name chain.
type sourceStrategy func(doc *goquery.Document, domain string) (string, bool)

// sourceChain is tried in order; the first hit wins and nothing is merged.
var sourceChain = []sourceStrategy{
	sourceFromTable,
	sourceFromOpenGraph,
	sourceFromJSONLD,
}

func extractSource(doc *goquery.Document, rawURL, domain string) string {
	for _, strategy := range sourceChain {
		if name, ok := strategy(doc, domain); ok {
			return name
		}
	}
	return sourceFromURL(rawURL)
}

func sourceFromTable(_ *goquery.Document, domain string) (string, bool) {
	return LookupSourceName(domain)
}

func sourceFromOpenGraph(doc *goquery.Document, _ string) (string, bool) {
	return meta(`meta[property="og:site_name"]`).read(doc)
}

func sourceFromJSONLD(doc *goquery.Document, _ string) (string, bool) {
	var (
		name  string
		found bool
	)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, found = publisherName(s.Text())
		return !found
	})
	return name, found
}

// publisherName decodes one JSON-LD block and looks for publisher.name.
// Malformed JSON is an ordinary miss.
func publisherName(raw string) (string, bool) {
	var data any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &data); err != nil {
		return "", false
	}
	return findPublisher(data)
}

func findPublisher(node any) (string, bool) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if name, ok := findPublisher(item); ok {
				return name, true
			}
		}
	case map[string]any:
		if name, ok := nameOf(v["publisher"]); ok {
			return name, true
		}
		if graph, ok := v["@graph"]; ok {
			return findPublisher(graph)
		}
	}
	return "", false
}

// nameOf reads "name" from a publisher object, or from the first object in
// a publisher array that has one.
func nameOf(pub any) (string, bool) {
	switch p := pub.(type) {
	case map[string]any:
		if name, ok := p["name"].(string); ok && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name), true
		}
	case []any:
		for _, item := range p {
			if name, ok := nameOf(item); ok {
				return name, true
			}
		}
	}
	return "", false
}

// sourceFromURL turns "www.daily-tech.co" into "Daily Tech": the leading
// "www." and the last label go, then each hyphenated part is capitalised.
func sourceFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return UnknownSource
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	labels := strings.Split(host, ".")
	base := strings.Join(labels[:len(labels)-1], ".")
	if base == "" {
		return UnknownSource
	}

	parts := strings.Split(base, "-")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
