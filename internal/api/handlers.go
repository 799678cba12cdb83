package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deusflow/newspost/internal/ai"
	"github.com/deusflow/newspost/internal/imageproxy"
	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/scraper"
)

const (
	msgInvalidURL      = "Please provide a valid URL"
	msgTitleRequired   = "Title is required"
	msgContentRequired = "Content is required"
	msgUnknown         = "An unknown error occurred"
)

type handlers struct {
	Deps
}

type extractRequest struct {
	URL string `json:"url"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type commentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type contentResponse struct {
	Content string `json:"content"`
}

// validURL accepts absolute http(s) URLs with a host.
func validURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (h *handlers) extractArticle(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validURL(req.URL) {
		abortWithMessage(c, http.StatusBadRequest, msgInvalidURL)
		return
	}

	start := time.Now()
	article, err := h.Extractor.Extract(c.Request.Context(), strings.TrimSpace(req.URL))
	h.Metrics.RecordExtraction(time.Since(start), err)
	if err != nil {
		_ = c.Error(err)
		if instanceFault(err) {
			h.Metrics.SetError(err)
		}
		abortWithMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, article)
}

// instanceFault reports whether a failed extraction points at this service
// (a panic or an unparseable body) rather than at the page the user asked for.
func instanceFault(err error) bool {
	var fe *scraper.FetchError
	return !errors.As(err, &fe) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (h *handlers) generateDescription(c *gin.Context) {
	var req ai.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgTitleRequired)
		return
	}

	out, err := h.Writer.GenerateDescription(c.Request.Context(), req)
	switch {
	case errors.Is(err, ai.ErrTitleRequired):
		abortWithMessage(c, http.StatusBadRequest, msgTitleRequired)
		return
	case err != nil:
		_ = c.Error(err)
		abortWithMessage(c, http.StatusInternalServerError, msgUnknown)
		return
	}

	h.Metrics.IncrementDescriptions()
	c.JSON(http.StatusOK, contentResponse{Content: out})
}

func (h *handlers) generateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		abortWithMessage(c, http.StatusBadRequest, msgTitleRequired)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		abortWithMessage(c, http.StatusBadRequest, msgContentRequired)
		return
	}

	out := h.Writer.GenerateCriticalComment(c.Request.Context(), req.Title, req.Content)
	h.Metrics.IncrementComments()
	c.JSON(http.StatusOK, contentResponse{Content: out})
}

func (h *handlers) hookTitle(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		abortWithMessage(c, http.StatusBadRequest, msgTitleRequired)
		return
	}

	out := h.Writer.GenerateHookTitle(c.Request.Context(), req.Title)
	h.Metrics.IncrementHookTitles()
	c.JSON(http.StatusOK, contentResponse{Content: out})
}

func (h *handlers) recommendations(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		abortWithMessage(c, http.StatusBadRequest, msgTitleRequired)
		return
	}

	recs, err := h.Recommender.Recommend(c.Request.Context(), req.Title)
	if err != nil {
		_ = c.Error(err)
		abortWithMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.Metrics.IncrementRecommendations()
	c.JSON(http.StatusOK, recs)
}

// proxyImage answers with {error} bodies, matching what the canvas client expects.
func (h *handlers) proxyImage(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing image URL"})
		return
	}

	img, err := h.Images.Fetch(c.Request.Context(), raw)
	h.Metrics.RecordImageProxy(err)
	if err != nil {
		_ = c.Error(err)

		var se *imageproxy.StatusError
		switch {
		case errors.Is(err, imageproxy.ErrInvalidURL), errors.Is(err, imageproxy.ErrPrivateAddress):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid image URL"})
		case errors.As(err, &se):
			c.AbortWithStatusJSON(se.StatusCode, gin.H{"error": se.Error()})
		default:
			logger.Warn("Error fetching image", "url", raw, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to proxy image"})
		}
		return
	}

	c.Header("Cache-Control", imageproxy.CacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

func (h *handlers) health(c *gin.Context) {
	hs := h.Metrics.Health()
	status, text := healthStatus(hs.Healthy)

	body := gin.H{"status": text, "last_error": hs.LastError}
	if !hs.LastRun.IsZero() {
		body["last_run"] = hs.LastRun.Format(time.RFC3339)
	}
	c.JSON(status, body)
}

func (h *handlers) metrics(c *gin.Context) {
	stats := h.Metrics.GetStats()
	if h.RateLimits != nil {
		stats["rate_limits"] = h.RateLimits.GetStats()
	}
	c.JSON(http.StatusOK, stats)
}
