package dispatch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Donghyun-K/board-client/internal/common"
)

// TokenSource yields the current credential. credentials.Store satisfies it.
type TokenSource interface {
	Get(ctx context.Context) (token string, ok bool, err error)
}

// BearerTransport reads the credential at call time and sends a clone of the
// request with "Authorization: Bearer <token>". Without a credential the
// original request is forwarded as is.
type BearerTransport struct {
	Tokens TokenSource
	Base   http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok, err := t.Tokens.Get(req.Context())
	if err != nil {
		closeBody(req)
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		return t.base().RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authorized := req.Clone(req.Context())
	authorized.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return t.base().RoundTrip(authorized)
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
}
