package news

// Preferred sources for the built-in recommendations.
const (
	sourceDetik  = "detikinet"
	sourceMedium = "Medium"
	sourceKompas = "Tekno Kompas"
	sourceTempo  = "Tekno Tempo"

	detikBase  = "https://inet.detik.com"
	mediumBase = "https://medium.com"
	kompasBase = "https://tekno.kompas.com"
	tempoBase  = "https://tekno.tempo.co"
)

// topicRecommendations are served when no feed produced anything.
var topicRecommendations = map[string][]Recommendation{
	"ai": {
		{
			Title:    "Penelitian AI Terbaru dari Google DeepMind Bikin Kejutan di Industri",
			Source:   sourceDetik,
			URL:      detikBase + "/digital-life/d-7139417/penelitian-ai-terbaru-dari-google-deepmind-bikin-kejutan-di-industri",
			ImageURL: "https://images.unsplash.com/photo-1661956602868-6ae368943878?q=80&w=1470&auto=format&fit=crop",
		},
		{
			Title:    "5 Model Machine Learning Terbaru yang Wajib Diketahui Developer Indonesia",
			Source:   sourceMedium,
			URL:      mediumBase + "/topic/machine-learning",
			ImageURL: "https://images.unsplash.com/photo-1678983419903-92b075ed3caf?q=80&w=1374&auto=format&fit=crop",
		},
		{
			Title:    "Mengenal Teknologi Generative AI dan Cara Kerjanya",
			Source:   sourceKompas,
			URL:      kompasBase + "/read/2023/12/10/08140097/mengenal-teknologi-generative-ai-dan-cara-kerjanya",
			ImageURL: "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?q=80&w=1650&auto=format&fit=crop",
		},
	},
	"cloud": {
		{
			Title:    "Tren Cloud Computing di Indonesia 2024, Ini yang Perlu Kamu Tahu",
			Source:   sourceDetik,
			URL:      detikBase + "/business/d-7062095/tren-cloud-computing-di-indonesia-terbaru",
			ImageURL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?q=80&w=1470&auto=format&fit=crop",
		},
		{
			Title:    "Keuntungan Adopsi Serverless untuk Startup Indonesia",
			Source:   sourceMedium,
			URL:      mediumBase + "/topic/serverless",
			ImageURL: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?q=80&w=1472&auto=format&fit=crop",
		},
	},
	"programming": {
		{
			Title:    "8 Bahasa Pemrograman Terpopuler di Indonesia 2024",
			Source:   sourceDetik,
			URL:      detikBase + "/inet-tips/d-7054871/8-bahasa-pemrograman-terpopuler-di-indonesia",
			ImageURL: "https://images.unsplash.com/photo-1581090700227-1e37b190418e?q=80&w=1470&auto=format&fit=crop",
		},
		{
			Title:    "Teknik Pengembangan Software Modern untuk Developer Indonesia",
			Source:   sourceMedium,
			URL:      mediumBase + "/topic/software-development",
			ImageURL: "https://images.unsplash.com/photo-1516259762381-22954d7d3ad2?q=80&w=1489&auto=format&fit=crop",
		},
	},
	"security": {
		{
			Title:    "Awas! Serangan Siber Meningkat di Indonesia, Ini Cara Melindungi Data",
			Source:   sourceDetik,
			URL:      detikBase + "/news/d-7084536/awas-serangan-siber-meningkat-di-indonesia",
			ImageURL: "https://images.unsplash.com/photo-1563013544-824ae1b704d3?q=80&w=1470&auto=format&fit=crop",
		},
		{
			Title:    "Zero Trust Architecture: Panduan Keamanan untuk Perusahaan Teknologi",
			Source:   sourceMedium,
			URL:      mediumBase + "/topic/cybersecurity",
			ImageURL: "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?q=80&w=1470&auto=format&fit=crop",
		},
	},
	"web": {
		{
			Title:    "Perbandingan Framework Frontend 2024 untuk Developer Indonesia",
			Source:   sourceDetik,
			URL:      detikBase + "/inet-tips/d-7035621/perbandingan-framework-frontend-terbaru",
			ImageURL: "https://images.unsplash.com/photo-1547658719-da2b51169166?q=80&w=1464&auto=format&fit=crop",
		},
		{
			Title:    "Microservices vs Monoliths: Pilihan Tepat untuk Aplikasi Skala Besar",
			Source:   sourceMedium,
			URL:      mediumBase + "/topic/web-development",
			ImageURL: "https://images.unsplash.com/photo-1537432376769-00f5c2f4c8d2?q=80&w=1450&auto=format&fit=crop",
		},
	},
}

// defaultRecommendations top up the topic tables.
var defaultRecommendations = []Recommendation{
	{
		Title:    "Blockchain dan Cryptocurrency, Peluang Baru di Indonesia",
		Source:   sourceDetik,
		URL:      detikBase + "/news/d-7048576/blockchain-dan-cryptocurrency-peluang-baru-di-indonesia",
		ImageURL: "https://images.unsplash.com/photo-1590283603385-c1c595235a32?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Title:    "5G di Indonesia: Kapan Akan Tersedia Merata?",
		Source:   sourceKompas,
		URL:      kompasBase + "/read/2023/12/15/16453777/5g-di-indonesia-kapan-akan-tersedia-merata",
		ImageURL: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Title:    "Quantum Computing dan Masa Depan Komputasi di Indonesia",
		Source:   sourceDetik,
		URL:      detikBase + "/inet-tips/d-7071234/quantum-computing-dan-masa-depan-komputasi",
		ImageURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Title:    "DevOps dan Agile: Transformasi Budaya IT di Perusahaan Indonesia",
		Source:   sourceMedium,
		URL:      mediumBase + "/topic/devops",
		ImageURL: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Title:    "Internet of Things: Peluang dan Tantangan di Indonesia",
		Source:   sourceTempo,
		URL:      tempoBase + "/tekno/read/1234567/internet-of-things-peluang-dan-tantangan-di-indonesia",
		ImageURL: "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Title:    "Data Science dan Big Data: Karir Menjanjikan di Bidang IT",
		Source:   sourceDetik,
		URL:      detikBase + "/news/d-7092784/data-science-dan-big-data-karir-menjanjikan-di-bidang-it",
		ImageURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=1470&auto=format&fit=crop",
	},
}

// techImages replace missing feed item images.
var techImages = []string{
	"https://images.unsplash.com/photo-1488229297570-58520851e868?q=80&w=1469&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?q=80&w=1470&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1635070041078-e363dbe005cb?q=80&w=1470&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1516321318423-f06f85e504b3?q=80&w=1470&auto=format&fit=crop",
}
