package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Generator is one text-generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ChatClient is the part of *openai.Client the provider needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

const (
	DefaultOllamaModel  = "llama2"
	maxCompletionTokens = 1500
)

// OpenAIProvider talks to any OpenAI-compatible chat endpoint. With a base URL
// pointing at Ollama's /v1 API it serves local models.
type OpenAIProvider struct {
	Client ChatClient
	Model  string
	name   string
}

// NewOllamaProvider targets an Ollama server, e.g. http://localhost:11434.
func NewOllamaProvider(baseURL, model string, httpClient *http.Client) *OpenAIProvider {
	if model == "" {
		model = DefaultOllamaModel
	}
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIProvider{Client: openai.NewClientWithConfig(cfg), Model: model, name: "ollama"}
}

// NewOpenAIProvider uses the hosted OpenAI API.
func NewOpenAIProvider(apiKey, model string, httpClient *http.Client) *OpenAIProvider {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	cfg := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIProvider{Client: openai.NewClientWithConfig(cfg), Model: model, name: "openai"}
}

func (p *OpenAIProvider) Name() string {
	if p.name == "" {
		return "openai"
	}
	return p.name
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: maxCompletionTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from " + p.Name())
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
