// Package imageproxy re-serves remote article images from our own origin so
// the browser can draw them on a canvas without CORS taint.
package imageproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultContentType = "image/jpeg"
	// CacheControl is sent with every proxied image.
	CacheControl = "public, max-age=86400"

	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 10 << 20
	browserUA       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptImages    = "image/webp,image/apng,image/*,*/*;q=0.8"
)

var (
	ErrInvalidURL     = errors.New("invalid image URL")
	ErrTooLarge       = errors.New("image exceeds size limit")
	ErrPrivateAddress = errors.New("blocked connection to private address")
)

// StatusError carries the upstream status of a failed image fetch.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "Failed to fetch image: " + http.StatusText(e.StatusCode)
}

type Image struct {
	ContentType string
	Data        []byte
}

type Proxy struct {
	client   *http.Client
	maxBytes int64
}

type Option func(*proxyOptions)

type proxyOptions struct {
	allowPrivate bool
}

// WithAllowPrivate lets the proxy reach loopback and private networks.
func WithAllowPrivate() Option {
	return func(o *proxyOptions) { o.allowPrivate = true }
}

// New returns a proxy. A zero timeout uses 15s. Unless WithAllowPrivate is
// given, connections to loopback and private addresses are refused.
func New(timeout time.Duration, opts ...Option) *Proxy {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var o proxyOptions
	for _, opt := range opts {
		opt(&o)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !o.allowPrivate {
		transport.Proxy = nil
		transport.DialContext = publicDialContext(&net.Dialer{Timeout: timeout})
	}

	return &Proxy{
		client:   &http.Client{Timeout: timeout, Transport: transport},
		maxBytes: defaultMaxBytes,
	}
}

// Fetch downloads rawURL with browser-like headers and the image origin as Referer.
func (p *Proxy) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", acceptImages)
	req.Header.Set("Referer", u.Scheme+"://"+u.Host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = DefaultContentType
	}
	return &Image{ContentType: ct, Data: data}, nil
}
