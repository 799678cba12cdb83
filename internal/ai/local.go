package ai

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var sentenceSplit = regexp.MustCompile(`[.!?]`)

const minSentenceRunes = 30

// localDescription is used when no generator produced a description.
func (s *Service) localDescription(req DescriptionRequest) string {
	if req.Content != "" {
		if sentences := substantialSentences(req.Content); len(sentences) > 0 {
			return structuredSummary(req, sentences)
		}
	}

	if req.CustomPrompt != "" && strings.Contains(fillCustomPrompt(req), ".") {
		return fmt.Sprintf("%s by %s from %s. %s", req.Title, req.Author, req.Source, Hashtags(req.Title))
	}

	hashtags := Hashtags(req.Title)
	templates := []string{
		fmt.Sprintf("%s. Ringkasan penting dari berita yang ditulis oleh %s di %s. %s", req.Title, req.Author, req.Source, hashtags),
		fmt.Sprintf("Artikel dari %s: \"%s\". Disusun berdasarkan konten asli yang ditulis oleh %s. %s", req.Source, req.Title, req.Author, hashtags),
		fmt.Sprintf("Program Systemetic menyajikan \"%s\" - berdasarkan artikel asli %s. %s", req.Title, req.Source, hashtags),
		fmt.Sprintf("%s - Ringkasan artikel %s oleh %s. %s", req.Title, req.Source, req.Author, hashtags),
	}

	idx := 0
	if req.Regenerate {
		idx = s.intn(len(templates))
	}
	return templates[idx]
}

func substantialSentences(content string) []string {
	var out []string
	for _, part := range sentenceSplit.Split(content, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > minSentenceRunes {
			out = append(out, part)
		}
	}
	return out
}

// structuredSummary arranges content sentences into lead, middle and detail
// paragraphs followed by the source line.
func structuredSummary(req DescriptionRequest, sentences []string) string {
	n := len(sentences)
	var b strings.Builder
	b.WriteString(req.Title + "\n\n")

	if n >= 2 {
		b.WriteString(joinSentences(sentences[:min(3, n)]) + "\n\n")
	} else {
		b.WriteString(sentences[0] + ".\n\n")
	}

	middle := n / 2
	if n > 4 {
		b.WriteString(joinSentences(sentences[middle:min(middle+2, n)]) + "\n\n")
	}

	if n > 6 {
		b.WriteString(joinSentences(sentences[min(middle+2, n-2):min(middle+4, n)]) + "\n\n")
	}

	fmt.Fprintf(&b, "Sumber: %s %s", req.Source, Hashtags(req.Title))
	return b.String()
}

func joinSentences(sentences []string) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s + "."
	}
	return strings.Join(parts, " ")
}

var (
	genZOpenings = []string{
		"Guys, ini seriusan bikin gue auto kepo! 🔥",
		"OMG! Fix banget ini bakal jadi trend! 🚀",
		"Nah lho? Udah pada tau belom? 👀",
		"Anjay! Ini sih wajib banget di-save! 💯",
		"WAIT- ini tuh beneran?! Gak bohong kan? 🤯",
		"Goks parahhh... gue auto shocked! 😱",
		"Yuk mari kita bahas yang lagi viral ini! 🔍",
		"Gak nyangka ini bakal kejadian... auto melongo! 👁️👄👁️",
	}
	genZExpressions = []string{
		"auto kepo",
		"gokil parah",
		"literally gak nyangka",
		"sumpah demi apa",
		"no debat ini wajib tau",
		"gak diragukan lagi",
		"literally mindblown",
		"auto save",
		"must-read banget",
		"skrg lagi viral",
	}
	genZEndings = []string{
		"Penasaran? Cek link di bio ya guys!",
		"Swipe up di story atau cek link di bio for more info!",
		"Mau tau lebih lanjut? Tap link di bio sekarang!",
		"Full story di link bio, gas cek skrg!",
		"Yang penasaran, langsung aja cek link bio ya bestie!",
	}
	genZTags = []string{"fyp", "viral", "trending"}
)

func (s *Service) localGenZCaption(req DescriptionRequest) string {
	words := strings.Fields(req.Title)
	mainTopic := strings.Join(words[:min(3, len(words))], " ")

	opening := genZOpenings[s.intn(len(genZOpenings))]
	expression := genZExpressions[s.intn(len(genZExpressions))]
	ending := genZEndings[s.intn(len(genZEndings))]

	tags := append(extractKeywords(req.Title), genZTags...)
	if len(tags) > 5 {
		tags = tags[:5]
	}
	for i, t := range tags {
		tags[i] = "#" + t
	}

	return fmt.Sprintf(`%s %s ini bikin %s!

Gue %s banget pas tau tentang %s... Ini tuh bener-bener sesuatu yang bakal ubah cara pandang kita. Gak percaya? Just wait and see aja sih 💁‍♀️

%s

%s`, opening, req.Title, expression, expression, mainTopic, ending, strings.Join(tags, " "))
}

var hookPatterns = []string{
	`"%s"? Cek Dulu Gesss!`,
	"OMG! %s Bikin Geger Netizen!",
	"Auto Kaget! %s Ternyata...",
	"%s? Yakin Lo Udah Tau Faktanya?",
	"Nggak Nyangka! %s Terungkap!",
	"%s? Ini Yang Sebenarnya Terjadi!",
	"Gokil Sih! %s Jadi Trending!",
	"%s - Kok Bisa Sih?!",
	"Fix! %s Bikin Penasaran",
	"%s - Benarkah Seheboh Itu?",
}

func (s *Service) localHookTitle(title string) string {
	return fmt.Sprintf(hookPatterns[s.intn(len(hookPatterns))], title)
}

type perspective struct {
	triggers []string
	comment  string
}

var criticalPerspectives = []perspective{
	{
		triggers: []string{"teknologi", "digital", "ai", "artificial", "intelligence", "machine", "learning"},
		comment:  "Menarik artikelnya, tapi saya rasa dampak etis dari teknologi ini belum dibahas secara mendalam. Bagaimana dengan isu privasi dan potensi bias algoritma? Apakah kita sudah mempertimbangkan regulasi yang tepat untuk teknologi semacam ini?",
	},
	{
		triggers: []string{"startup", "bisnis", "ekonomi", "investor", "unicorn", "digital", "industri"},
		comment:  "Artikel yang informatif, namun saya merasa ada celah analisis tentang keberlanjutan model bisnis ini dalam jangka panjang. Bagaimana dengan tantangan kompetisi global dan risiko investasi? Mungkinkah ini hanya tren sementara?",
	},
	{
		triggers: []string{"pendidikan", "belajar", "sekolah", "mahasiswa", "siswa", "kuliah", "pembelajaran"},
		comment:  "Saya setuju dengan poin-poin utama artikel, tetapi aspek kesenjangan akses pendidikan antara daerah urban dan rural tidak disinggung. Bukankah ini akan semakin memperlebar kesenjangan digital? Bagaimana solusi konkretnya?",
	},
	{
		triggers: []string{"pemerintah", "kebijakan", "regulasi", "aturan", "hukum", "undang-undang"},
		comment:  "Artikel ini menyajikan informasi berharga, namun implementasi kebijakan semacam ini sering terhambat birokrasi. Apakah sudah ada kajian mengenai efektivitas kebijakan serupa di negara lain? Bagaimana dengan aspek penegakan hukumnya?",
	},
	{
		triggers: []string{"social media", "sosial", "media", "platform", "facebook", "instagram", "tiktok", "twitter"},
		comment:  "Pembahasan yang menarik, tetapi dampak psikologis dan pengaruh sosial media terhadap kesehatan mental masyarakat belum dibahas secara kritis. Bukankah kita perlu lebih berhati-hati dengan narasi 'kemajuan teknologi' tanpa melihat sisi negatifnya?",
	},
}

const defaultCriticalComment = "Artikel ini menyajikan informasi yang cukup komprehensif, namun saya merasa aspek keberlanjutan dan dampak jangka panjangnya belum digali lebih dalam. Apakah sudah ada studi komparasi dengan pendekatan alternatif? Mungkin ada perspektif berbeda yang bisa melengkapi pembahasan ini?"

// localCriticalComment picks the first perspective whose trigger is a title
// word or appears in the first 300 characters of content.
func localCriticalComment(title, content string) string {
	titleWords := strings.Fields(strings.ToLower(title))
	sample := strings.ToLower(headRunes(content, 300))

	for _, p := range criticalPerspectives {
		for _, trigger := range p.triggers {
			if slices.Contains(titleWords, trigger) || strings.Contains(sample, trigger) {
				return p.comment
			}
		}
	}
	return defaultCriticalComment
}
