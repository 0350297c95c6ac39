package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/common"
	"github.com/Donghyun-K/board-client/internal/logging"
)

const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient binds the API to baseURL. httpClient should come from
// dispatch.NewHTTPClient; nil falls back to http.DefaultClient, which sends
// no credential.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: u, http: httpClient, log: log.With("component", "api")}, nil
}

func (c *HTTPClient) do(ctx context.Context, method string, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(raw),
		}
		c.log.Debug(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) SignUp(ctx context.Context, req models.SignUpRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

func (c *HTTPClient) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	var resp models.SignInResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", req, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrNoToken
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.Identity, error) {
	var id models.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &id); err != nil {
		return nil, err
	}
	// an empty or null body decodes to the zero value
	if id.ID == 0 {
		return nil, fmt.Errorf("GET /auth/me: %w", ErrEmptyIdentity)
	}
	return &id, nil
}

func (c *HTTPClient) ListBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if err := c.do(ctx, http.MethodGet, "/boards", nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *HTTPClient) GetBoard(ctx context.Context, id int64) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodGet, idPath("/boards", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodPost, "/boards", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) UpdateBoard(ctx context.Context, id int64, in models.BoardInput) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodPatch, idPath("/boards", id), in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) DeleteBoard(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/boards", id), nil, nil)
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodGet, idPath("/posts", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodPut, idPath("/posts", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/posts", id), nil, nil)
}
