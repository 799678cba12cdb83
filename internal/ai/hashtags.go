package ai

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// itKeywords are matched against title tokens: single words exactly,
// phrases as consecutive tokens.
var itKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "ml", "deep learning",
	"cloud", "cloud computing", "aws", "azure", "gcp",
	"programming", "code", "software", "development", "developer",
	"tech", "technology", "digital", "data", "database",
	"security", "cybersecurity", "privacy", "encryption",
	"web", "webapp", "application", "frontend", "backend",
	"network", "internet", "iot", "blockchain", "crypto",
	"mobile", "app", "devops", "agile", "scrum",
	"innovation", "startup", "automation", "robotics",
	"algorithm", "api", "microservice", "serverless",
	"saas", "paas", "iaas", "infrastructure",
	// Indonesian
	"teknologi", "kecerdasan buatan", "pembelajaran mesin", "komputasi awan",
	"pengembangan", "keamanan", "privasi", "basis data",
	"jaringan", "aplikasi", "inovasi", "otomatisasi",
	"infrastruktur", "transformasi digital", "ekonomi digital", "fintech", "edtech",
	"sistem", "kebijakan", "regulasi", "layanan", "program",
	"teknologi informasi", "ti", "sistemetic", "strategis",
}

var defaultKeywords = []string{"Sistemetic", "TeknologiInformasi", "DigitalIndonesia"}

const maxHashtags = 3

// Hashtags builds up to three capitalised hashtags from the IT keywords
// found in title, e.g. "#Ai #Cloud".
func Hashtags(title string) string {
	keywords := extractKeywords(title)
	if len(keywords) > maxHashtags {
		keywords = keywords[:maxHashtags]
	}

	tags := make([]string, len(keywords))
	for i, k := range keywords {
		tags[i] = "#" + upperFirst(k)
	}
	return strings.Join(tags, " ")
}

// extractKeywords returns matched keywords with spaces removed, in keyword
// list order, or the default Indonesian tech set when nothing matches.
func extractKeywords(title string) []string {
	words := strings.Fields(strings.ToLower(title))

	var found []string
	for _, keyword := range itKeywords {
		if containsSequence(words, strings.Fields(keyword)) {
			found = append(found, strings.ReplaceAll(keyword, " ", ""))
		}
	}

	if len(found) == 0 {
		return append([]string(nil), defaultKeywords...)
	}
	return found
}

func containsSequence(words, seq []string) bool {
	for i := 0; i+len(seq) <= len(words); i++ {
		match := true
		for j, w := range seq {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
