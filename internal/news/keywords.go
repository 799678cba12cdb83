package news

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

type category struct {
	name     string
	keywords []string
}

// keywordCategories are checked in this order; the order is kept in results.
var keywordCategories = []category{
	{"ai", []string{"ai", "artificial intelligence", "machine learning", "ml", "deep learning", "neural network", "kecerdasan buatan"}},
	{"cloud", []string{"cloud", "aws", "azure", "gcp", "serverless", "saas", "paas", "iaas", "komputasi awan"}},
	{"programming", []string{"programming", "code", "software", "development", "developer", "java", "javascript", "python", "pemrograman"}},
	{"security", []string{"security", "cybersecurity", "privacy", "encryption", "hacking", "vulnerability", "keamanan", "siber"}},
	{"web", []string{"web", "webapp", "frontend", "backend", "fullstack", "react", "angular", "vue"}},
}

var defaultCategories = []string{"ai", "programming"}

// itFocusKeywords keep feed results on technology topics.
var itFocusKeywords = []string{"teknologi", "it", "software", "digital", "tech", "technology"}

// MainKeywords returns the categories whose keywords appear in title, or
// ai and programming when none do.
func MainKeywords(title string) []string {
	var matched []string
	for _, c := range keywordCategories {
		if containsAny(title, c.keywords) {
			matched = append(matched, c.name)
		}
	}
	if len(matched) == 0 {
		return append([]string(nil), defaultCategories...)
	}
	return matched
}

func categoryKeywords(name string) []string {
	for _, c := range keywordCategories {
		if c.name == name {
			return c.keywords
		}
	}
	return nil
}

// containsAny distinguishes phrases and short words (avoids "ai" matching "said").
func containsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)

	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}

		// phrase -> substring match
		if strings.Contains(k, " ") {
			if strings.Contains(text, k) {
				return true
			}
			continue
		}

		// short tokens -> whole word
		if utf8.RuneCountInString(k) <= 3 {
			if wordPattern(k).MatchString(text) {
				return true
			}
			continue
		}

		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

var (
	wordPatternsMu sync.Mutex
	wordPatterns   = map[string]*regexp.Regexp{}
)

func wordPattern(k string) *regexp.Regexp {
	wordPatternsMu.Lock()
	defer wordPatternsMu.Unlock()

	re, ok := wordPatterns[k]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
		wordPatterns[k] = re
	}
	return re
}

// titleTerms are the longer words of a title, used to match feed items.
func titleTerms(title string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, `.,:;!?"'()[]`)
		if utf8.RuneCountInString(w) >= 5 {
			terms = append(terms, w)
		}
	}
	return terms
}
