package scraper

// SiteSelector holds the CSS selectors used for one known news site.
type SiteSelector struct {
	Title   string
	Author  string
	Content string
	Image   string
}

// siteSelectors is keyed by exact hostname. There is no subdomain or
// wildcard matching: "kompas.com" does not cover "tekno.kompas.com".
var siteSelectors = map[string]SiteSelector{
	// Indonesian tech news
	"tekno.kompas.com": {
		Title:   ".read__title",
		Author:  ".read__credit__item",
		Content: ".read__content",
		Image:   ".photo__wrap img",
	},
	"inet.detik.com": {
		Title:   "h1.detail__title",
		Author:  ".detail__author",
		Content: ".detail__body-text",
		Image:   ".detail__media-image img",
	},
	"www.liputan6.com": {
		Title:   "h1.article-header__title",
		Author:  ".article-header__author",
		Content: ".article-content-body__item-content",
		Image:   ".article-photo-gallery__item img",
	},
	"www.cnnindonesia.com": {
		Title:   "h1.title",
		Author:  ".author",
		Content: ".detail-text",
		Image:   ".media-container img",
	},
	"tekno.tempo.co": {
		Title:   "h1.title",
		Author:  ".reporter",
		Content: ".detail-in",
		Image:   ".detail-img img",
	},
	"dailysocial.id": {
		Title:   "h1.post-title",
		Author:  ".post-meta__author-name",
		Content: ".post-content",
		Image:   ".post-featured-image img",
	},
	"teknoia.com": {
		Title:   "h1.entry-title",
		Author:  ".entry-author",
		Content: ".entry-content",
		Image:   ".featured-image img",
	},
	// International tech news
	"www.theverge.com": {
		Title:   "h1",
		Author:  ".byline span",
		Content: ".article-body",
		Image:   "picture img",
	},
	"techcrunch.com": {
		Title:   "h1.article__title",
		Author:  ".article__byline-author",
		Content: ".article-content",
		Image:   ".article__featured-image img",
	},
}

// sourceNames maps a hostname to the publication name shown to users. It is
// maintained separately from siteSelectors; a site may appear in only one.
var sourceNames = map[string]string{
	"tekno.kompas.com":     "Kompas Tekno",
	"inet.detik.com":       "Detik Inet",
	"www.liputan6.com":     "Liputan6",
	"www.cnnindonesia.com": "CNN Indonesia",
	"tekno.tempo.co":       "Tempo Tekno",
	"dailysocial.id":       "DailySocial",
	"teknoia.com":          "Teknoia",
	"www.theverge.com":     "The Verge",
	"techcrunch.com":       "TechCrunch",
}

// LookupSelector returns the selector set registered for domain.
func LookupSelector(domain string) (SiteSelector, bool) {
	if domain == "" {
		return SiteSelector{}, false
	}
	s, ok := siteSelectors[domain]
	return s, ok
}

// LookupSourceName returns the display name registered for domain.
func LookupSourceName(domain string) (string, bool) {
	if domain == "" {
		return "", false
	}
	name, ok := sourceNames[domain]
	return name, ok
}

// SupportedDomains lists every hostname with a custom selector set.
func SupportedDomains() []string {
	domains := make([]string, 0, len(siteSelectors))
	for d := range siteSelectors {
		domains = append(domains, d)
	}
	return domains
}
