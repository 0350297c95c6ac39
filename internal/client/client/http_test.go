package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donghyun-K/board-client/internal/client/credentials"
	"github.com/Donghyun-K/board-client/internal/client/dispatch"
	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/common"
	"github.com/Donghyun-K/board-client/internal/logging"
)

type recorded struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeAPI serves canned answers and records every request.
func fakeAPI(t *testing.T) (*HTTPClient, *credentials.MemoryStore, func() []recorded) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recorded
	)
	snapshot := func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), calls...)
	}

	mux := http.NewServeMux()
	record := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rec := recorded{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization")}
			if b, _ := io.ReadAll(r.Body); len(b) > 0 {
				_ = json.Unmarshal(b, &rec.body)
			}
			mu.Lock()
			calls = append(calls, rec)
			mu.Unlock()
			next(w, r)
		}
	}

	mux.HandleFunc("POST /auth/signin", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"accessToken": "tok123"})
	}))
	mux.HandleFunc("POST /auth/signup", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"statusCode": 409, "message": "Existing username", "error": "Conflict",
		})
	}))
	mux.HandleFunc("GET /auth/me", record(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok123" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, models.Identity{ID: 1, Username: "alice", Email: "a@x.com"})
	}))
	mux.HandleFunc("GET /boards", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Board{
			{ID: 1, Title: "first", Description: "d", Status: models.BoardStatusPublic, User: &models.BoardOwner{ID: 1, Username: "alice"}},
		})
	}))
	mux.HandleFunc("GET /boards/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"statusCode": 404, "message": "Can't find Board with id " + r.PathValue("id"), "error": "Not Found",
		})
	}))
	mux.HandleFunc("POST /boards", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"statusCode": 400, "message": []string{"title should not be empty", "description should not be empty"},
		})
	}))
	mux.HandleFunc("PATCH /boards/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Board{ID: 7, Title: "t", Description: "d", Status: models.BoardStatusPrivate})
	}))
	mux.HandleFunc("DELETE /boards/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("GET /posts/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Post{
			ID: 3, Title: "hello", Content: "world", Author: models.PostAuthor{Name: "alice"},
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		})
	}))
	mux.HandleFunc("POST /posts", record(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, models.Post{ID: 4, Title: "t", Content: "c"})
	}))
	mux.HandleFunc("PUT /posts/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("DELETE /posts/{id}", record(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store := credentials.NewMemoryStore()
	c, err := NewHTTPClient(srv.URL, dispatch.NewHTTPClient(store, time.Second, logging.NewNop()), logging.NewNop())
	require.NoError(t, err)
	return c, store, snapshot
}

func TestHTTPClient_SignInThenMe(t *testing.T) {
	c, store, calls := fakeAPI(t)
	ctx := context.Background()

	tok, err := c.SignIn(ctx, models.SignInRequest{Username: "alice", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)
	assert.Equal(t, map[string]any{"username": "alice", "password": "pass"}, calls()[0].body)

	_, err = c.Me(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized, "no credential stored yet")

	require.NoError(t, store.Set(ctx, tok))
	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{ID: 1, Username: "alice", Email: "a@x.com"}, me)
	all := calls()
	assert.Equal(t, "Bearer tok123", all[len(all)-1].auth)
}

func TestHTTPClient_MeEmptyBody(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "null": "null", "zero id": `{"id":0}`} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, body)
			}))
			t.Cleanup(srv.Close)

			store := credentials.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), "tok123"))
			c, err := NewHTTPClient(srv.URL, dispatch.NewHTTPClient(store, time.Second, logging.NewNop()), logging.NewNop())
			require.NoError(t, err)

			me, err := c.Me(context.Background())
			require.ErrorIs(t, err, ErrEmptyIdentity)
			assert.Nil(t, me)
			assert.False(t, errors.Is(err, common.ErrUnauthorized))
		})
	}
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	c, _, _ := fakeAPI(t)
	ctx := context.Background()

	_, err := c.GetBoard(ctx, 42)
	require.ErrorIs(t, err, common.ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Can't find Board with id 42", apiErr.Message)
	assert.Equal(t, "GET /boards/42: 404 Can't find Board with id 42", apiErr.Error())

	_, err = c.CreateBoard(ctx, models.BoardInput{})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "title should not be empty; description should not be empty", apiErr.Message)
	assert.False(t, errors.Is(err, common.ErrUnauthorized))

	err = c.SignUp(ctx, models.SignUpRequest{Email: "a@x.com", Username: "alice", Password: "p"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Existing username", apiErr.Message)
}

func TestHTTPClient_BoardAndPostRoutes(t *testing.T) {
	c, _, calls := fakeAPI(t)
	ctx := context.Background()

	boards, err := c.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "alice", boards[0].Author())

	b, err := c.UpdateBoard(ctx, 7, models.BoardInput{Title: "t", Description: "d", Status: models.BoardStatusPrivate})
	require.NoError(t, err)
	assert.Equal(t, models.BoardStatusPrivate, b.Status)

	require.NoError(t, c.DeleteBoard(ctx, 7))

	p, err := c.GetPost(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Author.Name)
	assert.Equal(t, 2026, p.CreatedAt.Year())

	p, err = c.CreatePost(ctx, models.PostInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, p.ID)

	_, err = c.UpdatePost(ctx, 3, models.PostInput{Title: "t2", Content: "c2"})
	require.NoError(t, err, "empty 200 body decodes to zero value")

	require.NoError(t, c.DeletePost(ctx, 3))

	all := calls()
	var got []string
	for _, rc := range all {
		got = append(got, rc.method+" "+rc.path)
	}
	assert.Equal(t, []string{
		"GET /boards",
		"PATCH /boards/7",
		"DELETE /boards/7",
		"GET /posts/3",
		"POST /posts",
		"PUT /posts/3",
		"DELETE /posts/3",
	}, got)
	assert.Equal(t, map[string]any{"title": "t", "description": "d", "status": "PRIVATE"}, all[1].body)
}

func TestHTTPClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, nil, logging.NewNop())
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
	assert.False(t, errors.Is(err, common.ErrUnauthorized))
}

func TestHTTPClient_SignInWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{})
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, nil, logging.NewNop())
	require.NoError(t, err)

	_, err = c.SignIn(context.Background(), models.SignInRequest{Username: "alice", Password: "pass"})
	require.ErrorIs(t, err, ErrNoToken)
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:3001", nil, logging.NewNop())
	require.Error(t, err)
	_, err = NewHTTPClient("ftp://host", nil, logging.NewNop())
	require.Error(t, err)
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", parseErrorMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "a; b", parseErrorMessage([]byte(`{"message":["a","b"]}`)))
	assert.Equal(t, "Forbidden", parseErrorMessage([]byte(`{"statusCode":403,"error":"Forbidden"}`)))
	assert.Equal(t, "plain text", parseErrorMessage([]byte("plain text\n")))
	assert.Equal(t, "", parseErrorMessage(nil))
}
