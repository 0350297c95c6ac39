package dispatch

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Donghyun-K/board-client/internal/common"
	"github.com/Donghyun-K/board-client/internal/logging"
)

// RequestIDTransport tags each request with an X-Request-ID (unless the
// caller set one) and logs its outcome at debug level.
type RequestIDTransport struct {
	Base http.RoundTripper
	Log  logging.Logger
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get(common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
		req = req.Clone(req.Context())
		req.Header.Set(common.RequestIDHeaderName, id)
	}

	ctx := req.Context()
	start := time.Now()

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.Log.Warn(ctx, "request failed",
			"method", req.Method, "path", req.URL.Path, "request_id", id, "elapsed", elapsed, "error", err)
		return nil, err
	}

	t.Log.Debug(ctx, "request",
		"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "request_id", id, "elapsed", elapsed)
	return resp, nil
}

// NewHTTPClient returns the client every API call must use. timeout bounds a
// whole exchange; zero means no limit.
func NewHTTPClient(tokens TokenSource, timeout time.Duration, log logging.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &RequestIDTransport{
			Base: &BearerTransport{Tokens: tokens, Base: http.DefaultTransport},
			Log:  log.With("component", "dispatch"),
		},
	}
}
