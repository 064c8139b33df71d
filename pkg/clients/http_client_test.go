package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, err := client.Get(context.Background(), srv.URL, http.Header{"X-Test": []string{"yes"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestHTTPClient_GetRetries(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		retries    uint64
		wantStatus int
		wantCalls  int32
	}{
		{"recovers after 5xx", []int{http.StatusServiceUnavailable, http.StatusOK}, 2, http.StatusOK, 2},
		{"gives up with last status", []int{http.StatusBadGateway, http.StatusBadGateway, http.StatusBadGateway}, 2, http.StatusBadGateway, 3},
		{"no retry on 4xx", []int{http.StatusNotFound}, 2, http.StatusNotFound, 1},
		{"retries disabled", []int{http.StatusInternalServerError}, 0, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				w.WriteHeader(tt.statuses[min(int(n)-1, len(tt.statuses)-1)])
			}))
			defer srv.Close()

			status, _, err := NewHTTPClient(WithRetries(tt.retries)).Get(context.Background(), srv.URL, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_GetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, _, err := NewHTTPClient(WithRetries(1), WithTimeout(time.Second)).Get(context.Background(), url, nil)
	assert.Error(t, err)
}
