package scraper

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are stripped from a container before its text is read.
const noiseSelectors = "script, style, iframe, .social-share, .related-posts, .comments, .author-box, " +
	".navigation, footer, header, nav, aside, .sidebar, .ads, .advertisement"

// Minimum trimmed paragraph length, in runes, for site and generic containers.
const (
	siteParagraphMin    = 30
	genericParagraphMin = 20
)

// contentContainers are tried in order; only the first one present is used.
var contentContainers = []string{
	"article",
	".article-content",
	".entry-content",
	".post-content",
	".content",
	"main",
	"#content",
	`[itemprop="articleBody"]`,
}

func extractContent(doc *goquery.Document, domain string) string {
	if site, ok := LookupSelector(domain); ok && site.Content != "" {
		if container := doc.Find(site.Content).First(); container.Length() > 0 {
			if body := containerText(container, siteParagraphMin); body != "" {
				return body
			}
		}
	}

	var body string
	for _, selector := range contentContainers {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		body = containerText(container, genericParagraphMin)
		break
	}

	if body == "" {
		body = strings.Join(paragraphs(doc.Selection, genericParagraphMin), "\n\n")
	}

	return strings.TrimSpace(body)
}

// containerText joins the container's substantial paragraphs, falling back to
// its whole flattened text when none qualify.
func containerText(container *goquery.Selection, minLen int) string {
	clean := withoutNoise(container)

	if kept := paragraphs(clean, minLen); len(kept) > 0 {
		return strings.Join(kept, "\n\n")
	}
	return collapseWhitespace(clean.Text())
}

// withoutNoise returns a deep copy of the container with noise elements
// removed. The parsed document itself is left untouched.
func withoutNoise(container *goquery.Selection) *goquery.Selection {
	clone := container.Clone()
	clone.Find(noiseSelectors).Remove()
	return clone
}

func paragraphs(scope *goquery.Selection, minLen int) []string {
	var kept []string
	scope.Find("p").Each(func(_ int, p *goquery.Selection) {
		para := strings.TrimSpace(p.Text())
		if utf8.RuneCountInString(para) > minLen {
			kept = append(kept, para)
		}
	})
	return kept
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
