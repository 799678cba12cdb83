package metrics

import (
	"errors"
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesExtracted     int64
	ExtractionFailures    int64
	DescriptionsGenerated int64
	CommentsGenerated     int64
	HookTitlesGenerated   int64
	Recommendations       int64
	ImagesProxied         int64
	ImageProxyFailures    int64

	// Timings
	LastExtractionTime    time.Duration
	AverageExtractionTime time.Duration
	TotalExtractionTime   time.Duration
	ExtractionCount       int64

	// Status
	StartTime     time.Time
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = New()

func New() *Metrics {
	return &Metrics{IsHealthy: true, StartTime: time.Now()}
}

func (m *Metrics) incr(counter *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*counter++
}

func (m *Metrics) IncrementDescriptions()    { m.incr(&m.DescriptionsGenerated) }
func (m *Metrics) IncrementComments()        { m.incr(&m.CommentsGenerated) }
func (m *Metrics) IncrementHookTitles()      { m.incr(&m.HookTitlesGenerated) }
func (m *Metrics) IncrementRecommendations() { m.incr(&m.Recommendations) }

// RecordExtraction counts one extraction and its duration. A failure is
// counted and its cause kept as last_error, but health is left alone: a dead
// link pasted by a user says nothing about this instance. A success clears a
// previous SetError.
func (m *Metrics) RecordExtraction(duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRunTime = time.Now()
	if err != nil {
		m.ExtractionFailures++
		m.setLastError(err)
		return
	}

	m.ArticlesExtracted++
	m.IsHealthy = true
	m.LastExtractionTime = duration
	m.TotalExtractionTime += duration
	m.ExtractionCount++
	m.AverageExtractionTime = m.TotalExtractionTime / time.Duration(m.ExtractionCount)
}

// SetError marks the service unhealthy until the next successful extraction.
func (m *Metrics) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IsHealthy = false
	m.setLastError(err)
}

// setLastError stores the innermost wrapped cause; callers hold m.mu.
func (m *Metrics) setLastError(err error) {
	if cause := errors.Unwrap(err); cause != nil {
		err = cause
	}
	m.LastError = err.Error()
	m.LastErrorTime = time.Now()
}

func (m *Metrics) RecordImageProxy(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.ImageProxyFailures++
		return
	}
	m.ImagesProxied++
}

// Health is the /health payload.
type Health struct {
	Healthy   bool
	LastRun   time.Time
	LastError string
}

func (m *Metrics) Health() Health {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Health{Healthy: m.IsHealthy, LastRun: m.LastRunTime, LastError: m.LastError}
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_extracted":         m.ArticlesExtracted,
		"extraction_failures":        m.ExtractionFailures,
		"descriptions_generated":     m.DescriptionsGenerated,
		"comments_generated":         m.CommentsGenerated,
		"hook_titles_generated":      m.HookTitlesGenerated,
		"recommendations_served":     m.Recommendations,
		"images_proxied":             m.ImagesProxied,
		"image_proxy_failures":       m.ImageProxyFailures,
		"last_extraction_time_ms":    m.LastExtractionTime.Milliseconds(),
		"average_extraction_time_ms": m.AverageExtractionTime.Milliseconds(),
		"uptime_seconds":             int64(time.Since(m.StartTime).Seconds()),
		"last_run_time":              formatTime(m.LastRunTime),
		"last_error_time":            formatTime(m.LastErrorTime),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
