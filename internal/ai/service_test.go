package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deusflow/newspost/internal/ratelimit"
	"github.com/deusflow/newspost/internal/retry"
)

type fakeGenerator struct {
	name    string
	replies []string
	errs    []error

	mu      sync.Mutex
	prompts []string
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	if len(f.replies) > 0 {
		return f.replies[len(f.replies)-1], nil
	}
	return "", nil
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts[len(f.prompts)-1]
}

func firstIndex(int) int { return 0 }

func TestGenerateDescription_TitleRequired(t *testing.T) {
	_, err := NewService().GenerateDescription(context.Background(), DescriptionRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestGenerateDescription_UsesGeneratorAndSanitises(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{"Note: generated.\nDeskripsi dari model."}}
	s := NewService(WithGenerators(gen))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{
		Title:   "Google rilis model AI baru",
		Content: "Isi artikel.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Deskripsi dari model.", out)

	prompt := gen.lastPrompt()
	assert.Contains(t, prompt, "Judul: Google rilis model AI baru")
	assert.Contains(t, prompt, "Penulis / Narasumber: Unknown")
	assert.Contains(t, prompt, "Sumber Berita: Unknown")
	assert.Contains(t, prompt, "KONTEN ARTIKEL")
	assert.Contains(t, prompt, "Jangan menambahkan konten yang tidak ada di artikel asli")
}

func TestGenerateDescription_PromptWithoutContent(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{"ok"}}
	s := NewService(WithGenerators(gen))

	_, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Judul", Author: "Budi", Source: "Kompas"})
	require.NoError(t, err)

	prompt := gen.lastPrompt()
	assert.NotContains(t, prompt, "KONTEN ARTIKEL")
	assert.Contains(t, prompt, "Sertakan kutipan langsung dari narasumber")
}

func TestGenerateDescription_CustomPromptPlaceholders(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{"custom"}}
	s := NewService(WithGenerators(gen))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{
		Title:        "T",
		Author:       "A",
		Source:       "S",
		Content:      "C",
		CustomPrompt: "{title}|{author}|{source}|{content}|{title}",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", out)
	assert.Equal(t, "T|A|S|C|T", gen.lastPrompt())
}

func TestGenerateDescription_GenZUsesGenZPrompt(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{"caption gen z"}}
	s := NewService(WithGenerators(gen))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{
		Title:     "Startup AI lokal",
		Content:   strings.Repeat("x", 500),
		GenZStyle: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "caption gen z", out)
	assert.Contains(t, gen.lastPrompt(), "gaya bahasa Gen-Z")
	assert.Contains(t, gen.lastPrompt(), strings.Repeat("x", 200)+"...")
	assert.NotContains(t, gen.lastPrompt(), strings.Repeat("x", 201))
}

func TestGenerateDescription_FallsBackToNextGenerator(t *testing.T) {
	broken := &fakeGenerator{name: "broken", errs: []error{errors.New("down")}}
	working := &fakeGenerator{name: "working", replies: []string{"from second"}}
	s := NewService(WithGenerators(broken, working))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Judul"})
	require.NoError(t, err)
	assert.Equal(t, "from second", out)
	assert.Equal(t, 1, broken.calls())
}

func TestGenerateDescription_RetriesTransientErrors(t *testing.T) {
	gen := &fakeGenerator{name: "flaky", errs: []error{errors.New("503")}, replies: []string{"", "second try"}}
	s := NewService(WithGenerators(gen), WithRetry(retry.Config{MaxAttempts: 2, Delay: time.Millisecond}))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Judul"})
	require.NoError(t, err)
	assert.Equal(t, "second try", out)
	assert.Equal(t, 2, gen.calls())
}

func TestGenerateDescription_RespectsRateLimit(t *testing.T) {
	gen := &fakeGenerator{name: "gemini", replies: []string{"model"}}
	limiter := ratelimit.New(map[string]int{"gemini": 1}, 0)
	s := NewService(WithGenerators(gen), WithLimiter(limiter), WithRand(firstIndex))

	req := DescriptionRequest{Title: "Judul Berita", Author: "Ani", Source: "Tempo"}
	first, err := s.GenerateDescription(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "model", first)

	second, err := s.GenerateDescription(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(second, "Judul Berita. Ringkasan penting"), second)
	assert.Equal(t, 1, gen.calls())
}

func TestGenerateDescription_LocalTemplate(t *testing.T) {
	s := NewService(WithRand(func(n int) int { return n - 1 }))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Keamanan cloud meningkat"})
	require.NoError(t, err)
	assert.Equal(t, "Keamanan cloud meningkat. Ringkasan penting dari berita yang ditulis oleh Unknown di Unknown. #Cloud #Keamanan", out)

	regenerated, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Keamanan cloud meningkat", Regenerate: true})
	require.NoError(t, err)
	assert.Equal(t, "Keamanan cloud meningkat - Ringkasan artikel Unknown oleh Unknown. #Cloud #Keamanan", regenerated)
}

func TestGenerateDescription_LocalStructuredSummary(t *testing.T) {
	sentences := []string{
		"Pemerintah meluncurkan program literasi digital nasional hari ini",
		"Program tersebut menyasar jutaan pelajar di seluruh Indonesia",
		"Kementerian menyebut anggaran program sudah disiapkan sejak tahun lalu",
		"Pendek",
		"Pelatihan akan dilakukan secara daring dan luring di berbagai kota",
	}
	content := strings.Join(sentences, ". ") + "."

	out, err := NewService().GenerateDescription(context.Background(), DescriptionRequest{
		Title:   "Program literasi digital",
		Source:  "Detik Inet",
		Content: content,
	})
	require.NoError(t, err)

	want := "Program literasi digital\n\n" +
		sentences[0] + ". " + sentences[1] + ". " + sentences[2] + ".\n\n" +
		"Sumber: Detik Inet #Digital #Program"
	assert.Equal(t, want, out)
}

func TestGenerateDescription_LocalCustomPromptOneLiner(t *testing.T) {
	out, err := NewService().GenerateDescription(context.Background(), DescriptionRequest{
		Title:        "Rilis API baru",
		Author:       "Sari",
		Source:       "Teknoia",
		CustomPrompt: "Tulis ringkasan. Gunakan {title}.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rilis API baru by Sari from Teknoia. #Api", out)
}

func TestGenerateDescription_LocalGenZ(t *testing.T) {
	s := NewService(WithRand(firstIndex))

	out, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: "Startup AI Indonesia raih pendanaan", GenZStyle: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, genZOpenings[0]+" Startup AI Indonesia raih pendanaan ini bikin auto kepo!"), out)
	assert.Contains(t, out, "tentang Startup AI Indonesia...")
	assert.Contains(t, out, genZEndings[0])
	assert.True(t, strings.HasSuffix(out, "#ai #startup #fyp #viral #trending"), out)
}

func TestGenerateHookTitle(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{`"Hook Keren Banget"`}}
	out := NewService(WithGenerators(gen)).GenerateHookTitle(context.Background(), "Judul Asli")
	assert.Equal(t, "Hook Keren Banget", out)
	assert.Contains(t, gen.lastPrompt(), `"Judul Asli"`)

	local := NewService(WithRand(func(int) int { return 7 })).GenerateHookTitle(context.Background(), "Judul Asli")
	assert.Equal(t, "Judul Asli - Kok Bisa Sih?!", local)

	assert.Equal(t, "", NewService().GenerateHookTitle(context.Background(), "  "))
}

func TestGenerateCriticalComment(t *testing.T) {
	gen := &fakeGenerator{name: "fake", replies: []string{"Komentar model"}}
	out := NewService(WithGenerators(gen)).GenerateCriticalComment(context.Background(), "Judul", strings.Repeat("k", 800))
	assert.Equal(t, "Komentar model", out)
	assert.Contains(t, gen.lastPrompt(), strings.Repeat("k", 500)+"...")
	assert.NotContains(t, gen.lastPrompt(), strings.Repeat("k", 501))
}

func TestLocalCriticalComment(t *testing.T) {
	tests := []struct {
		title, content string
		want           string
	}{
		{"Regulasi AI diperketat", "", criticalPerspectives[0].comment},
		{"Investor lirik startup lokal", "", criticalPerspectives[1].comment},
		{"Kabar hari ini", "Para mahasiswa kembali kuliah.", criticalPerspectives[2].comment},
		{"Pemerintah umumkan aturan", "", criticalPerspectives[3].comment},
		{"Tren baru", "Pengguna tiktok bertambah.", criticalPerspectives[4].comment},
		{"Cuaca cerah", "Hujan tidak turun.", defaultCriticalComment},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localCriticalComment(tt.title, tt.content), tt.title)
	}
}

func TestGenerate_StopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &fakeGenerator{name: "fake", replies: []string{"never"}}
	out := NewService(WithGenerators(gen)).GenerateCriticalComment(ctx, "Cuaca", "")
	assert.Equal(t, defaultCriticalComment, out)
	assert.Zero(t, gen.calls())
}

type fakeChat struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestOpenAIProvider_Generate(t *testing.T) {
	chat := &fakeChat{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "  jawaban  "},
		}},
	}}
	p := &OpenAIProvider{Client: chat, Model: "llama2", name: "ollama"}

	out, err := p.Generate(context.Background(), "halo")
	require.NoError(t, err)
	assert.Equal(t, "jawaban", out)
	assert.Equal(t, "ollama", p.Name())
	assert.Equal(t, "llama2", chat.req.Model)
	require.Len(t, chat.req.Messages, 1)
	assert.Equal(t, "halo", chat.req.Messages[0].Content)
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := &OpenAIProvider{Client: &fakeChat{}, Model: "m"}
	_, err := p.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestNewOllamaProvider_Defaults(t *testing.T) {
	p := NewOllamaProvider("http://localhost:11434/", "", nil)
	assert.Equal(t, DefaultOllamaModel, p.Model)
	assert.Equal(t, "ollama", p.Name())
}
