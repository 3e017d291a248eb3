package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/metrics"
)

func TestHandler_ExposesArtableMetrics(t *testing.T) {
	artwork.RecordOutcome(artwork.OutcomeSuccess)

	req := httptest.NewRequest(http.MethodGet, metrics.Path, nil)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "# HELP")
	assert.Contains(t, string(body), "artable_request_duration_seconds")
	assert.Contains(t, string(body), `artable_load_outcomes_total{outcome="success"}`)
}

func TestHandler_UnknownPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv, err := metrics.Listen("127.0.0.1:0", zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + srv.Addr() + metrics.Path)
		if getErr != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestListen_BadAddress(t *testing.T) {
	_, err := metrics.Listen("not-an-address", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics listen")
}
