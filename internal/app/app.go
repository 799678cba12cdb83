package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deusflow/newspost/internal/ai"
	"github.com/deusflow/newspost/internal/api"
	"github.com/deusflow/newspost/internal/cache"
	"github.com/deusflow/newspost/internal/config"
	"github.com/deusflow/newspost/internal/gemini"
	"github.com/deusflow/newspost/internal/imageproxy"
	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/metrics"
	"github.com/deusflow/newspost/internal/news"
	"github.com/deusflow/newspost/internal/ratelimit"
	"github.com/deusflow/newspost/internal/retry"
	"github.com/deusflow/newspost/internal/rss"
	"github.com/deusflow/newspost/internal/scraper"
)

// App holds every service built from Config.
type App struct {
	cfg     *config.Config
	Router  *gin.Engine
	Scraper *scraper.Scraper
	closers []func()
}

// NewScraper builds the extractor from the scrape settings.
func NewScraper(cfg *config.Config) *scraper.Scraper {
	return scraper.New(
		scraper.WithTimeout(cfg.ScrapeTimeout),
		scraper.WithUserAgent(cfg.ScrapeUserAgent),
		scraper.WithMaxBodyBytes(cfg.ScrapeMaxBodyBytes),
	)
}

// New wires the services. Missing LLM credentials or a missing feed list
// degrade to local templates and static recommendations.
func New(ctx context.Context, cfg *config.Config) *App {
	a := &App{cfg: cfg, Scraper: NewScraper(cfg)}

	limiter := ratelimit.New(map[string]int{
		"gemini": cfg.MaxGeminiRequests,
		"ollama": cfg.MaxOllamaRequests,
	}, cfg.MaxAIRequests)

	writer := ai.NewService(
		ai.WithGenerators(a.generators(ctx)...),
		ai.WithLimiter(limiter),
		ai.WithTimeout(cfg.AITimeout),
		ai.WithRetry(retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		}),
	)
	if !writer.HasGenerators() {
		logger.Warn("No LLM configured, captions use local templates")
	}

	feedCache := cache.New(5 * time.Minute)
	a.closers = append(a.closers, feedCache.Close)

	var newsOpts []news.Option
	topics, err := rss.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		logger.Warn("Feed list unavailable, using built-in recommendations", "path", cfg.FeedsConfigPath, "error", err)
	} else {
		fetcher := rss.NewFetcher(&http.Client{Timeout: cfg.ScrapeTimeout}, feedCache, cfg.FeedCacheTTL)
		newsOpts = append(newsOpts, news.WithFeeds(fetcher, topics))
		logger.Info("Loaded feed topics", "count", len(topics))
	}

	var proxyOpts []imageproxy.Option
	if cfg.ImageProxyAllowPrivate {
		proxyOpts = append(proxyOpts, imageproxy.WithAllowPrivate())
	}

	a.Router = api.NewRouter(api.Deps{
		Extractor:   a.Scraper,
		Writer:      writer,
		Recommender: news.NewService(newsOpts...),
		Images:      imageproxy.New(cfg.ImageProxyTimeout, proxyOpts...),
		Metrics:     metrics.Global,
		RateLimits:  limiter,
	})
	return a
}

// generators returns the configured LLM backends in priority order.
func (a *App) generators(ctx context.Context) []ai.Generator {
	cfg := a.cfg
	var gens []ai.Generator

	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("Gemini disabled", "error", err)
		} else {
			a.closers = append(a.closers, client.Close)
			gens = append(gens, client)
			logger.Info("Gemini enabled", "model", cfg.GeminiModel)
		}
	}

	httpClient := &http.Client{Timeout: cfg.AITimeout}
	if cfg.OllamaAPIURL != "" {
		gens = append(gens, ai.NewOllamaProvider(cfg.OllamaAPIURL, cfg.OllamaModel, httpClient))
		logger.Info("Ollama enabled", "url", cfg.OllamaAPIURL, "model", cfg.OllamaModel)
	}
	if cfg.OpenAIAPIKey != "" {
		gens = append(gens, ai.NewOpenAIProvider(cfg.OpenAIAPIKey, "", httpClient))
		logger.Info("OpenAI enabled")
	}
	return gens
}

// Close releases LLM clients and stops the cache sweeper.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Serve runs the HTTP server until ctx is done or SIGINT/SIGTERM arrives,
// then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server", "timeout", a.cfg.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("HTTP server stopped gracefully")
	return nil
}

// Run builds the app from cfg and serves until shutdown.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	a := New(ctx, cfg)
	defer a.Close()

	return a.Serve(ctx)
}
