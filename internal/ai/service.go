// Package ai writes captions, hook titles and discussion comments for news
// articles. Configured LLM backends are tried in order; when none answers, a
// local template keeps every operation usable offline.
package ai

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/ratelimit"
	"github.com/deusflow/newspost/internal/retry"
)

const (
	UnknownField   = "Unknown"
	defaultTimeout = 30 * time.Second
)

// ErrTitleRequired is returned when a request has no title.
var ErrTitleRequired = errors.New("title is required")

var errEmptyOutput = errors.New("empty model output")

// DescriptionRequest mirrors the generate-description payload.
type DescriptionRequest struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Source       string `json:"source"`
	Content      string `json:"content"`
	Regenerate   bool   `json:"regenerate"`
	CustomPrompt string `json:"customPrompt"`
	GenZStyle    bool   `json:"genZStyle"`
}

type Service struct {
	generators []Generator
	limiter    *ratelimit.Limiter
	retry      retry.Config
	timeout    time.Duration
	intn       func(n int) int
}

type Option func(*Service)

// WithGenerators sets the backends, tried in the given order.
func WithGenerators(gens ...Generator) Option {
	return func(s *Service) {
		for _, g := range gens {
			if g != nil {
				s.generators = append(s.generators, g)
			}
		}
	}
}

func WithLimiter(l *ratelimit.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

func WithRetry(cfg retry.Config) Option {
	return func(s *Service) { s.retry = cfg }
}

// WithTimeout bounds each single generator call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRand replaces the random index source used by the local templates.
func WithRand(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		retry:   retry.Config{MaxAttempts: 1},
		timeout: defaultTimeout,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.retry.Retryable = func(err error) bool {
		return !errors.Is(err, ratelimit.ErrLimitExceeded) && !errors.Is(err, context.Canceled)
	}
	return s
}

// HasGenerators reports whether any LLM backend is configured.
func (s *Service) HasGenerators() bool { return len(s.generators) > 0 }

// GenerateDescription writes an Instagram caption for an article.
func (s *Service) GenerateDescription(ctx context.Context, req DescriptionRequest) (string, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "", ErrTitleRequired
	}
	if strings.TrimSpace(req.Author) == "" {
		req.Author = UnknownField
	}
	if strings.TrimSpace(req.Source) == "" {
		req.Source = UnknownField
	}

	if req.GenZStyle {
		if out, ok := s.generate(ctx, "genz", genZPrompt(req)); ok {
			return out, nil
		}
		return s.localGenZCaption(req), nil
	}

	prompt := descriptionPrompt(req)
	if req.CustomPrompt != "" {
		prompt = fillCustomPrompt(req)
	}
	if out, ok := s.generate(ctx, "description", prompt); ok {
		return out, nil
	}
	return s.localDescription(req), nil
}

// GenerateHookTitle rewrites title into a short attention hook. It never
// fails; an empty title comes back unchanged.
func (s *Service) GenerateHookTitle(ctx context.Context, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return title
	}
	if out, ok := s.generate(ctx, "hook", hookTitlePrompt(title)); ok {
		return trimQuotes(out)
	}
	return s.localHookTitle(title)
}

// GenerateCriticalComment writes a polite, discussion-starting comment.
func (s *Service) GenerateCriticalComment(ctx context.Context, title, content string) string {
	if out, ok := s.generate(ctx, "comment", commentPrompt(title, content)); ok {
		return out
	}
	return localCriticalComment(title, content)
}

// generate asks each backend in turn and returns the first sanitised answer.
func (s *Service) generate(ctx context.Context, task, prompt string) (string, bool) {
	for _, g := range s.generators {
		if s.limiter != nil && !s.limiter.Allow(g.Name()) {
			continue
		}

		var out string
		err := retry.WithRetry(ctx, s.retry, func() error {
			if s.limiter != nil {
				if err := s.limiter.Use(g.Name()); err != nil {
					return err
				}
			}

			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			text, err := g.Generate(callCtx, prompt)
			if err != nil {
				return err
			}
			text = SanitizeAIText(text)
			if text == "" {
				return errEmptyOutput
			}
			out = text
			return nil
		})
		if err == nil {
			logger.Debug("AI generation succeeded", "task", task, "provider", g.Name())
			return out, true
		}

		logger.Warn("AI generation failed", "task", task, "provider", g.Name(), "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", false
}
