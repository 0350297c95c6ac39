package services

import (
	"context"

	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	SignInToken string
	SignInErr   error
	SignUpErr   error

	Boards   []models.Board
	Board    *models.Board
	BoardErr error

	Post    *models.Post
	PostErr error

	DeleteErr error

	LastSignIn     models.SignInRequest
	LastSignUp     *models.SignUpRequest
	LastBoardInput *models.BoardInput
	LastPostInput  *models.PostInput
	LastID         int64
	Calls          []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) call(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) SignUp(_ context.Context, req models.SignUpRequest) error {
	f.call("SignUp")
	f.LastSignUp = &req
	return f.SignUpErr
}

func (f *fakeClient) SignIn(_ context.Context, req models.SignInRequest) (string, error) {
	f.call("SignIn")
	f.LastSignIn = req
	return f.SignInToken, f.SignInErr
}

func (f *fakeClient) Me(context.Context) (*models.Identity, error) {
	f.call("Me")
	return &models.Identity{ID: 1, Username: "alice"}, nil
}

func (f *fakeClient) ListBoards(context.Context) ([]models.Board, error) {
	f.call("ListBoards")
	return f.Boards, f.BoardErr
}

func (f *fakeClient) GetBoard(_ context.Context, id int64) (*models.Board, error) {
	f.call("GetBoard")
	f.LastID = id
	return f.Board, f.BoardErr
}

func (f *fakeClient) CreateBoard(_ context.Context, in models.BoardInput) (*models.Board, error) {
	f.call("CreateBoard")
	f.LastBoardInput = &in
	return f.Board, f.BoardErr
}

func (f *fakeClient) UpdateBoard(_ context.Context, id int64, in models.BoardInput) (*models.Board, error) {
	f.call("UpdateBoard")
	f.LastID = id
	f.LastBoardInput = &in
	return f.Board, f.BoardErr
}

func (f *fakeClient) DeleteBoard(_ context.Context, id int64) error {
	f.call("DeleteBoard")
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) GetPost(_ context.Context, id int64) (*models.Post, error) {
	f.call("GetPost")
	f.LastID = id
	return f.Post, f.PostErr
}

func (f *fakeClient) CreatePost(_ context.Context, in models.PostInput) (*models.Post, error) {
	f.call("CreatePost")
	f.LastPostInput = &in
	return f.Post, f.PostErr
}

func (f *fakeClient) UpdatePost(_ context.Context, id int64, in models.PostInput) (*models.Post, error) {
	f.call("UpdatePost")
	f.LastID = id
	f.LastPostInput = &in
	return f.Post, f.PostErr
}

func (f *fakeClient) DeletePost(_ context.Context, id int64) error {
	f.call("DeletePost")
	f.LastID = id
	return f.DeleteErr
}

type fakeSessions struct {
	LoginErr  error
	LogoutErr error
	Tokens    []string
	Logouts   int
}

func (f *fakeSessions) Login(_ context.Context, token string) error {
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.Tokens = append(f.Tokens, token)
	return nil
}

func (f *fakeSessions) Logout(context.Context) error {
	f.Logouts++
	return f.LogoutErr
}
