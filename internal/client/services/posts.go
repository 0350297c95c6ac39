package services

import (
	"context"
	"fmt"

	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/models"
)

type PostService interface {
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	client client.Client
}

func NewPostService(c client.Client) PostService {
	return &postService{client: c}
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.client.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

func (s *postService) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.client.CreatePost(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *postService) Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.client.UpdatePost(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
