// Package api exposes the extractor, caption writer, recommendations and
// image proxy over HTTP.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deusflow/newspost/internal/ai"
	"github.com/deusflow/newspost/internal/imageproxy"
	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/metrics"
	"github.com/deusflow/newspost/internal/news"
	"github.com/deusflow/newspost/internal/scraper"
)

type Extractor interface {
	Extract(ctx context.Context, rawURL string) (*scraper.Article, error)
}

// Writer produces the AI-assisted post texts. *ai.Service implements it.
type Writer interface {
	GenerateDescription(ctx context.Context, req ai.DescriptionRequest) (string, error)
	GenerateHookTitle(ctx context.Context, title string) string
	GenerateCriticalComment(ctx context.Context, title, content string) string
}

type Recommender interface {
	Recommend(ctx context.Context, title string) ([]news.Recommendation, error)
}

type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*imageproxy.Image, error)
}

// StatsProvider contributes extra sections to /metrics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Deps are the services behind the routes. Metrics defaults to metrics.Global.
type Deps struct {
	Extractor   Extractor
	Writer      Writer
	Recommender Recommender
	Images      ImageFetcher
	Metrics     *metrics.Metrics
	RateLimits  StatsProvider
}

func NewRouter(d Deps) *gin.Engine {
	if d.Metrics == nil {
		d.Metrics = metrics.Global
	}
	h := &handlers{Deps: d}

	router := gin.New()
	router.Use(ginLogger())
	router.Use(gin.Recovery())

	router.GET("/health", h.health)
	router.GET("/metrics", h.metrics)

	apiGroup := router.Group("/api")
	apiGroup.POST("/article/extract", h.extractArticle)

	aiGroup := apiGroup.Group("/ai")
	aiGroup.POST("/generate-description", h.generateDescription)
	aiGroup.POST("/generate-comment", h.generateComment)
	aiGroup.POST("/hook-title", h.hookTitle)

	apiGroup.POST("/news/recommendations", h.recommendations)
	apiGroup.GET("/image/proxy", h.proxyImage)

	return router
}

func ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := []any{
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if !strings.HasPrefix(path, "/health") {
			fields = append(fields, "user_agent", c.Request.UserAgent())
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
			logger.Error("HTTP request with errors", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}

func errorBody(msg string) gin.H {
	return gin.H{"message": msg}
}

func abortWithMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody(msg))
}

// healthStatus maps the metrics health flag to an HTTP status.
func healthStatus(healthy bool) (int, string) {
	if healthy {
		return http.StatusOK, "ok"
	}
	return http.StatusServiceUnavailable, "error"
}
