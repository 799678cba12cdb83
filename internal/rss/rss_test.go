package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deusflow/newspost/internal/cache"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Tekno Feed</title>
  <link>https://tekno.example.com</link>
  <item>
    <title>Model AI terbaru dirilis</title>
    <link>https://tekno.example.com/ai-terbaru</link>
    <enclosure url="https://img.example.com/ai.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title>Tips keamanan siber</title>
    <link>https://tekno.example.com/keamanan</link>
  </item>
  <item>
    <title>   </title>
    <link>https://tekno.example.com/empty</link>
  </item>
</channel>
</rss>`

func feedServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path == "/broken" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
topics:
  AI:
    - https://a.example.com/rss
  security:
    - https://s.example.com/rss
    - https://s2.example.com/rss
`), 0o644))

	topics, err := LoadFeeds(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com/rss"}, topics["ai"])
	assert.Len(t, topics["security"], 2)
}

func TestLoadFeeds_Errors(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics: [unclosed"), 0o644))
	_, err = LoadFeeds(path)
	assert.Error(t, err)
}

func TestFetcher_Fetch(t *testing.T) {
	var hits int32
	srv := feedServer(t, &hits)

	f := NewFetcher(srv.Client(), nil, 0)
	items, err := f.Fetch(context.Background(), srv.URL+"/rss")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, Item{
		Title:    "Model AI terbaru dirilis",
		Link:     "https://tekno.example.com/ai-terbaru",
		Source:   "Tekno Feed",
		ImageURL: "https://img.example.com/ai.jpg",
	}, items[0])
	assert.Empty(t, items[1].ImageURL)
}

func TestFetcher_UsesCache(t *testing.T) {
	var hits int32
	srv := feedServer(t, &hits)

	c := cache.New(0)
	defer c.Close()
	f := NewFetcher(srv.Client(), c, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := f.Fetch(context.Background(), srv.URL+"/rss")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetcher_FetchAllSkipsFailures(t *testing.T) {
	var hits int32
	srv := feedServer(t, &hits)

	f := NewFetcher(srv.Client(), nil, 0)
	items := f.FetchAll(context.Background(), []string{srv.URL + "/broken", srv.URL + "/rss"})
	assert.Len(t, items, 2)
}
