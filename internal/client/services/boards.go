package services

import (
	"context"
	"fmt"

	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/models"
)

type BoardService interface {
	List(ctx context.Context) ([]models.Board, error)
	Get(ctx context.Context, id int64) (*models.Board, error)
	Create(ctx context.Context, in models.BoardInput) (*models.Board, error)
	Update(ctx context.Context, id int64, in models.BoardInput) (*models.Board, error)
	Delete(ctx context.Context, id int64) error
}

type boardService struct {
	client client.Client
}

func NewBoardService(c client.Client) BoardService {
	return &boardService{client: c}
}

func (s *boardService) List(ctx context.Context) ([]models.Board, error) {
	boards, err := s.client.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (s *boardService) Get(ctx context.Context, id int64) (*models.Board, error) {
	b, err := s.client.GetBoard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get board %d: %w", id, err)
	}
	return b, nil
}

// Create sends title and description only; the server picks the status.
func (s *boardService) Create(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Status = ""

	b, err := s.client.CreateBoard(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	return b, nil
}

func (s *boardService) Update(ctx context.Context, id int64, in models.BoardInput) (*models.Board, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	b, err := s.client.UpdateBoard(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update board %d: %w", id, err)
	}
	return b, nil
}

func (s *boardService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteBoard(ctx, id); err != nil {
		return fmt.Errorf("delete board %d: %w", id, err)
	}
	return nil
}
