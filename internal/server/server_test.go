package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ziwei/internal/chart"
	"github.com/tartampluch/go-ziwei/internal/config"
)

func sampleResult(fingerprint string) *chart.ChartResult {
	return &chart.ChartResult{
		Fingerprint: fingerprint,
		MingIndex:   6,
		ShenIndex:   6,
		Loci:        5,
	}
}

// TestHandler_ServingContent verifies that the handler writes the JSON
// body and the standard headers once a chart has been published.
func TestHandler_ServingContent(t *testing.T) {
	srv := NewChartServer("0") // Port irrelevant for handler tests
	require.NoError(t, srv.Publish(sampleResult("abc")))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleChartRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeJSON, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))

	var served chart.ChartResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&served))
	assert.Equal(t, "abc", served.Fingerprint)
	assert.Equal(t, 6, served.MingIndex)
}

// TestHandler_Caching verifies the If-None-Match round trip returns 304.
func TestHandler_Caching(t *testing.T) {
	srv := NewChartServer("0")
	require.NoError(t, srv.Publish(sampleResult("v1")))

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	w1 := httptest.NewRecorder()
	srv.handleChartRequest(w1, req1)

	etag := w1.Result().Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(config.HeaderIfNoneMatch, etag)
	w2 := httptest.NewRecorder()
	srv.handleChartRequest(w2, req2)

	resp2 := w2.Result()
	defer func() { _ = resp2.Body.Close() }()

	assert.Equal(t, http.StatusNotModified, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Empty(t, body, "Body must be empty on 304 Not Modified")
}

// TestHandler_PublishChangesETag ensures a new chart invalidates old tags.
func TestHandler_PublishChangesETag(t *testing.T) {
	srv := NewChartServer("0")
	require.NoError(t, srv.Publish(sampleResult("v1")))

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	w1 := httptest.NewRecorder()
	srv.handleChartRequest(w1, req1)
	oldTag := w1.Result().Header.Get(config.HeaderETag)

	require.NoError(t, srv.Publish(sampleResult("v2")))

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(config.HeaderIfNoneMatch, oldTag)
	w2 := httptest.NewRecorder()
	srv.handleChartRequest(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code, "stale ETag must get fresh content")
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewChartServer("0")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	srv.handleChartRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(config.HeaderAllow))
}

// TestHandler_Initializing verifies the 503 behavior before any publish.
func TestHandler_Initializing(t *testing.T) {
	srv := NewChartServer("0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleChartRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

// TestServer_RaceCondition stresses concurrent Publish and GET to validate
// the atomic.Pointer usage. Run with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewChartServer("0")
	var wg sync.WaitGroup

	end := time.Now().Add(500 * time.Millisecond)

	for p := 0; p < 5; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			i := 0
			for time.Now().Before(end) {
				_ = srv.Publish(sampleResult(strconv.Itoa(id) + "-" + strconv.Itoa(i)))
				i++
				time.Sleep(1 * time.Microsecond)
			}
		}(p)
	}

	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				w := httptest.NewRecorder()

				srv.handleChartRequest(w, req)

				if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", w.Code)
				}
			}
		}()
	}

	wg.Wait()
}

// TestServer_Lifecycle spins up the real TCP listener to verify binding
// and graceful shutdown.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18099"

	srv := NewChartServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := "http://127.0.0.1:" + port + "/"

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	// Before the first publish the endpoint reports 503.
	resp, err := http.Get(url)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	require.NoError(t, srv.Publish(sampleResult("live")))

	resp, err = http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeJSON, resp.Header.Get(config.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"live"`)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}
