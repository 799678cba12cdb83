package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractTitle_SiteSelectorWins(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<h1>Generic Heading</h1>
		<h1 class="read__title">  Judul Uji  </h1>
	</body></html>`)

	assert.Equal(t, "Judul Uji", extractTitle(doc, "tekno.kompas.com"))
}

func TestExtractTitle_OpenGraphFallback(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="og:title" content="Fallback Title">
	</head><body><p>No heading here.</p></body></html>`)

	assert.Equal(t, "Fallback Title", extractTitle(doc, "unregistered.example.com"))
}

func TestExtractTitle_TwitterAfterOpenGraph(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="og:title" content="   ">
		<meta name="twitter:title" content="Tweet Title">
	</head></html>`)

	assert.Equal(t, "Tweet Title", extractTitle(doc, ""))
}

func TestExtractTitle_Unknown(t *testing.T) {
	doc := mustDoc(t, `<html></html>`)
	assert.Equal(t, UnknownTitle, extractTitle(doc, ""))
	assert.Equal(t, UnknownTitle, extractTitle(doc, "tekno.kompas.com"))
}

func TestExtractTitle_ElementBeforeMeta(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="og:title" content="Meta Title">
	</head><body><div class="headline">Headline Title</div></body></html>`)

	assert.Equal(t, "Headline Title", extractTitle(doc, ""))
}

func TestExtractTitle_FirstNodeOnly(t *testing.T) {
	doc := mustDoc(t, `<html><body><h1>First</h1><h1>Second</h1></body></html>`)
	assert.Equal(t, "First", extractTitle(doc, ""))
}

func TestExtractTitle_SiteMissMatchesGenericChain(t *testing.T) {
	docs := []string{
		`<html><body><h1>Plain Heading</h1></body></html>`,
		`<html><head><meta property="og:title" content="OG Only"></head></html>`,
		`<html><body><p>nothing</p></body></html>`,
	}
	for _, html := range docs {
		doc := mustDoc(t, html)
		assert.Equal(t, extractTitle(doc, ""), extractTitle(doc, "tekno.kompas.com"))
		assert.Equal(t, extractAuthor(doc, ""), extractAuthor(doc, "tekno.kompas.com"))
		assert.Equal(t, extractContent(doc, ""), extractContent(doc, "tekno.kompas.com"))

		generic, genericOK := extractImage(doc, "")
		site, siteOK := extractImage(doc, "tekno.kompas.com")
		assert.Equal(t, genericOK, siteOK)
		assert.Equal(t, generic, site)
	}
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		html   string
		want   string
	}{
		{
			name:   "site selector",
			domain: "inet.detik.com",
			html:   `<div class="detail__author">Ayu Lestari</div><div class="author">Someone Else</div>`,
			want:   "Ayu Lestari",
		},
		{
			name: "author class before byline",
			html: `<span class="byline">By Line</span><span class="author">Class Author</span>`,
			want: "Class Author",
		},
		{
			name: "blank author class falls through",
			html: `<span class="author">   </span><span class="byline">Jane Doe</span>`,
			want: "Jane Doe",
		},
		{
			name: "meta author",
			html: `<meta name="author" content="Meta Author">`,
			want: "Meta Author",
		},
		{
			name: "article author meta",
			html: `<meta property="article:author" content="Article Meta">`,
			want: "Article Meta",
		},
		{
			name: "rel author link last",
			html: `<a rel="author" href="/people/jd">J. Doe</a>`,
			want: "J. Doe",
		},
		{
			name: "meta before rel author",
			html: `<a rel="author" href="/x">Link Author</a><meta name="author" content="Meta Wins">`,
			want: "Meta Wins",
		},
		{
			name: "nothing",
			html: `<p>anonymous</p>`,
			want: UnknownAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body>"+tt.html+"</body></html>")
			assert.Equal(t, tt.want, extractAuthor(doc, tt.domain))
		})
	}
}

func TestSentinelsOnEmptyDocuments(t *testing.T) {
	for _, html := range []string{"", "<html></html>", "<html><body></body></html>", "not html at all"} {
		doc := mustDoc(t, html)
		assert.NotEmpty(t, extractTitle(doc, ""))
		assert.NotEmpty(t, extractAuthor(doc, ""))
		assert.NotEmpty(t, extractSource(doc, "https://example.com/a", ""))
	}
}

func TestExtractImage(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		html   string
		want   string
		found  bool
	}{
		{
			name:   "site selector protocol relative",
			domain: "techcrunch.com",
			html:   `<div class="article__featured-image"><img src="//cdn.example.com/img.jpg"></div>`,
			want:   "https://cdn.example.com/img.jpg",
			found:  true,
		},
		{
			name:   "site selector data-src",
			domain: "tekno.kompas.com",
			html:   `<div class="photo__wrap"><img data-src="https://asset.kompas.com/a.jpg"></div>`,
			want:   "https://asset.kompas.com/a.jpg",
			found:  true,
		},
		{
			name:  "generic selector protocol relative",
			html:  `<div class="featured-image"><img src="//cdn.example.com/img.jpg"></div>`,
			want:  "https://cdn.example.com/img.jpg",
			found: true,
		},
		{
			name:  "og image first",
			html:  `<meta property="og:image" content="https://img.example.com/og.png"><article><img src="https://img.example.com/body.png"></article>`,
			want:  "https://img.example.com/og.png",
			found: true,
		},
		{
			name:  "relative og image skipped",
			html:  `<meta property="og:image" content="/static/og.png"><meta name="twitter:image" content="http://img.example.com/tw.png">`,
			want:  "http://img.example.com/tw.png",
			found: true,
		},
		{
			name:  "relative src falls back to data-src",
			html:  `<article><img src="/lazy.gif" data-src="https://img.example.com/real.jpg"></article>`,
			want:  "https://img.example.com/real.jpg",
			found: true,
		},
		{
			name:  "only relative images",
			html:  `<article><img src="/a.jpg"></article><div class="entry-content"><img src="b.jpg"></div>`,
			found: false,
		},
		{
			name:  "data uri rejected",
			html:  `<div class="post-thumbnail"><img src="data:image/gif;base64,R0lGOD"></div>`,
			found: false,
		},
		{
			name:  "no images",
			html:  `<p>text only</p>`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><head></head><body>"+tt.html+"</body></html>")
			got, ok := extractImage(doc, tt.domain)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, strings.HasPrefix(got, "http://") || strings.HasPrefix(got, "https://"))
			}
		})
	}
}

func TestAbsoluteImageURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://a.example/x.jpg", "https://a.example/x.jpg", true},
		{"HTTP://A.EXAMPLE/X.JPG", "HTTP://A.EXAMPLE/X.JPG", true},
		{"  //cdn.example/x.jpg ", "https://cdn.example/x.jpg", true},
		{"/x.jpg", "", false},
		{"x.jpg", "", false},
		{"ftp://a.example/x.jpg", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := absoluteImageURL(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFieldExtractorsAreDeterministic(t *testing.T) {
	doc := mustDoc(t, `<html><head><meta property="og:image" content="https://img.example.com/a.png"></head>
	<body><h1 class="read__title">Judul</h1><div class="read__credit__item">Penulis</div>
	<div class="read__content"><p>Paragraf pertama yang cukup panjang untuk lolos filter.</p>
	<div class="ads"><p>Iklan yang juga cukup panjang untuk lolos filter panjang.</p></div></div></body></html>`)

	domain := "tekno.kompas.com"
	firstImage, _ := extractImage(doc, domain)
	first := []string{extractTitle(doc, domain), extractAuthor(doc, domain), extractContent(doc, domain), firstImage}

	for i := 0; i < 5; i++ {
		img, _ := extractImage(doc, domain)
		again := []string{extractTitle(doc, domain), extractAuthor(doc, domain), extractContent(doc, domain), img}
		assert.Equal(t, first, again)
	}
}
