package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "ok", status: http.StatusOK, expectedLevel: "info"},
		{name: "client error", status: http.StatusTooManyRequests, expectedLevel: "warn"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewAccessLogger(&buf, "debug")
			h := AccessLog(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			r := httptest.NewRequest(http.MethodPost, "/api/videos/abc/views", nil)
			r.RemoteAddr = "203.0.113.7:5555"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.expectedLevel, line["level"])
			assert.Equal(t, float64(tt.status), line["status"])
			assert.Equal(t, hashIP("203.0.113.7"), line["ip_hash"])
			assert.NotContains(t, buf.String(), "203.0.113.7")
		})
	}
}

func TestHashIP(t *testing.T) {
	assert.Len(t, hashIP("10.0.0.1:80"), 12)
	assert.Equal(t, hashIP("10.0.0.1:80"), hashIP("10.0.0.1"))
}
