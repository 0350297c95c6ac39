package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/common"
)

func TestBoardService_CreateDropsStatus(t *testing.T) {
	fc := &fakeClient{Board: &models.Board{ID: 7, Title: "t"}}
	svc := NewBoardService(fc)

	b, err := svc.Create(context.Background(), models.BoardInput{Title: "t", Description: "d", Status: models.BoardStatusPrivate})
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	require.NotNil(t, fc.LastBoardInput)
	assert.Empty(t, fc.LastBoardInput.Status)
}

func TestBoardService_CreateValidates(t *testing.T) {
	fc := &fakeClient{}
	_, err := NewBoardService(fc).Create(context.Background(), models.BoardInput{Title: " ", Description: "d"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}

func TestBoardService_UpdateRequiresStatus(t *testing.T) {
	fc := &fakeClient{}
	svc := NewBoardService(fc)

	_, err := svc.Update(context.Background(), 3, models.BoardInput{Title: "t", Description: "d"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.Calls)

	fc.Board = &models.Board{ID: 3}
	_, err = svc.Update(context.Background(), 3, models.BoardInput{Title: "t", Description: "d", Status: models.BoardStatusPublic})
	require.NoError(t, err)
	assert.Equal(t, int64(3), fc.LastID)
	assert.Equal(t, models.BoardStatusPublic, fc.LastBoardInput.Status)
}

func TestBoardService_ErrorsKeepSentinels(t *testing.T) {
	notFound := &client.APIError{Method: http.MethodGet, Path: "/boards/9", StatusCode: http.StatusNotFound}
	fc := &fakeClient{BoardErr: notFound, DeleteErr: notFound}
	svc := NewBoardService(fc)

	_, err := svc.Get(context.Background(), 9)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "get board 9")

	_, err = svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrNotFound)

	err = svc.Delete(context.Background(), 9)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, int64(9), fc.LastID)
}
