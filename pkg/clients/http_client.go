package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 5 * time.Second
	defaultRetries = 2
	retryBase      = 50 * time.Millisecond
	retryCap       = 500 * time.Millisecond
	maxBodyBytes   = 1 << 20
	userAgent      = "watchearn/1.0"
)

var ErrFailedCloseResponseBody = errors.New("failed close response body")

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error)
}

// HTTPClient is the outbound client for upstream lookups. GETs are retried with a
// short capped backoff on transport errors and 5xx answers.
type HTTPClient struct {
	client  *http.Client
	retries uint64
}

type Option func(*HTTPClient)

func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.client.Timeout = d }
}

// WithRetries sets how many times a failed GET is repeated. Zero disables retries.
func WithRetries(n uint64) Option {
	return func(h *HTTPClient) { h.retries = n }
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	h := &HTTPClient{
		client:  &http.Client{Timeout: defaultTimeout},
		retries: defaultRetries,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return h.client.Do(req)
}

// Get returns the status and body of the last attempt. A 5xx that survives every retry
// is returned as a status, not an error.
func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error) {
	backoff := retry.WithCappedDuration(retryCap, retry.NewExponential(retryBase))
	backoff = retry.WithMaxRetries(h.retries, backoff)

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		var getErr error
		statusCode, respBody, getErr = h.get(ctx, url, headers)
		switch {
		case getErr != nil:
			if ctx.Err() != nil {
				return getErr
			}
			zap.L().Debug("upstream request failed", zap.String("url", url), zap.Int("attempt", attempt), zap.Error(getErr))
			return retry.RetryableError(getErr)
		case statusCode >= http.StatusInternalServerError:
			zap.L().Debug("upstream error status", zap.String("url", url), zap.Int("attempt", attempt), zap.Int("status", statusCode))
			return retry.RetryableError(fmt.Errorf("status %d", statusCode))
		}
		return nil
	})
	if err != nil && statusCode >= http.StatusInternalServerError {
		return statusCode, respBody, nil
	}
	return statusCode, respBody, err
}

func (h *HTTPClient) get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := h.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}
