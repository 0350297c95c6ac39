// Package client is the typed board API client. It speaks JSON over the
// http.Client produced by the dispatch package, so every call carries the
// current bearer credential without any code here touching it.
package client

import (
	"context"

	"github.com/Donghyun-K/board-client/internal/client/models"
)

type Client interface {
	SignUp(ctx context.Context, req models.SignUpRequest) error
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)
	Me(ctx context.Context) (*models.Identity, error)

	ListBoards(ctx context.Context) ([]models.Board, error)
	GetBoard(ctx context.Context, id int64) (*models.Board, error)
	CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error)
	UpdateBoard(ctx context.Context, id int64, in models.BoardInput) (*models.Board, error)
	DeleteBoard(ctx context.Context, id int64) error

	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
