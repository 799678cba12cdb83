package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// UnknownTitle is returned when no title candidate matches.
	UnknownTitle = "Unknown Title"
	// UnknownAuthor is returned when no author candidate matches.
	UnknownAuthor = "Unknown Author"
)

// readMode says which part of the first matched node a candidate reads.
type readMode int

const (
	readText      readMode = iota // trimmed element text
	readContent                   // trimmed "content" attribute (meta tags)
	readImage                     // "src", then "data-src", normalised to an absolute URL
	readMetaImage                 // "content" attribute, normalised to an absolute URL
)

// candidate is one step of a fallback chain.
type candidate struct {
	selector string
	mode     readMode
}

func text(selector string) candidate  { return candidate{selector: selector, mode: readText} }
func meta(selector string) candidate  { return candidate{selector: selector, mode: readContent} }
func image(selector string) candidate { return candidate{selector: selector, mode: readImage} }

func metaImage(selector string) candidate {
	return candidate{selector: selector, mode: readMetaImage}
}

// Generic chains. Order matters: element selectors before meta tags.
var (
	titleChain = []candidate{
		text("h1"),
		text("h1.article-title"),
		text("h1.entry-title"),
		text("h1.post-title"),
		text(".article-headline"),
		text(".headline"),
		meta(`meta[property="og:title"]`),
		meta(`meta[name="twitter:title"]`),
	}

	authorChain = []candidate{
		text(".author"),
		text(".byline"),
		text(".article-author"),
		text(".post-author"),
		meta(`meta[name="author"]`),
		meta(`meta[property="article:author"]`),
		text(`a[rel="author"]`),
	}

	imageChain = []candidate{
		metaImage(`meta[property="og:image"]`),
		metaImage(`meta[name="twitter:image"]`),
		image(".featured-image img"),
		image(".article-featured-image img"),
		image(".post-thumbnail img"),
		image("article img"),
		image(".entry-content img"),
	}
)

// read queries only the first node matched by the candidate's selector.
func (c candidate) read(doc *goquery.Document) (string, bool) {
	if c.selector == "" {
		return "", false
	}
	sel := doc.Find(c.selector).First()
	if sel.Length() == 0 {
		return "", false
	}

	switch c.mode {
	case readContent:
		v, _ := sel.Attr("content")
		v = strings.TrimSpace(v)
		return v, v != ""
	case readMetaImage:
		v, _ := sel.Attr("content")
		return absoluteImageURL(v)
	case readImage:
		for _, attr := range []string{"src", "data-src"} {
			if v, ok := sel.Attr(attr); ok {
				if abs, ok := absoluteImageURL(v); ok {
					return abs, true
				}
			}
		}
		return "", false
	default:
		v := strings.TrimSpace(sel.Text())
		return v, v != ""
	}
}

// firstMatch walks the chain and returns the first candidate that yields a value.
func firstMatch(doc *goquery.Document, chain []candidate) (string, bool) {
	for _, c := range chain {
		if v, ok := c.read(doc); ok {
			return v, true
		}
	}
	return "", false
}

// resolve tries the site-specific candidate, then the generic chain.
func resolve(doc *goquery.Document, specific candidate, hasSpecific bool, chain []candidate) (string, bool) {
	if hasSpecific {
		if v, ok := specific.read(doc); ok {
			return v, true
		}
	}
	return firstMatch(doc, chain)
}

func extractTitle(doc *goquery.Document, domain string) string {
	site, ok := LookupSelector(domain)
	if v, found := resolve(doc, text(site.Title), ok, titleChain); found {
		return v
	}
	return UnknownTitle
}

func extractAuthor(doc *goquery.Document, domain string) string {
	site, ok := LookupSelector(domain)
	if v, found := resolve(doc, text(site.Author), ok, authorChain); found {
		return v
	}
	return UnknownAuthor
}

// extractImage returns an absolute http(s) URL, or false when nothing usable exists.
func extractImage(doc *goquery.Document, domain string) (string, bool) {
	site, ok := LookupSelector(domain)
	return resolve(doc, image(site.Image), ok, imageChain)
}

// absoluteImageURL keeps http(s) URLs, upgrades protocol-relative ones to
// https and rejects everything else; there is no base URL to resolve against.
func absoluteImageURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return raw, true
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw, true
	default:
		return "", false
	}
}
