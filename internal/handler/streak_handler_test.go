package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"
	"vocaquiz/internal/handler"
	"vocaquiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// MockStreakService
type MockStreakService struct {
	InitializeFunc     func(ctx context.Context, userID string) (*dto.StreakResponse, error)
	GetCurrentFunc     func(ctx context.Context, userID string) (*dto.StreakResponse, error)
	RecordActivityFunc func(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error)
	ResetFunc          func(ctx context.Context, userID string) (*dto.StreakResponse, error)
	HistoryFunc        func(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error)
	StatsFunc          func(ctx context.Context, userID string) (*dto.StreakStatsResponse, error)
}

func (m *MockStreakService) Initialize(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(ctx, userID)
	}
	panic("MockStreakService.InitializeFunc not implemented")
}
func (m *MockStreakService) GetCurrent(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if m.GetCurrentFunc != nil {
		return m.GetCurrentFunc(ctx, userID)
	}
	panic("MockStreakService.GetCurrentFunc not implemented")
}
func (m *MockStreakService) RecordActivity(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error) {
	if m.RecordActivityFunc != nil {
		return m.RecordActivityFunc(ctx, userID, activityType)
	}
	panic("MockStreakService.RecordActivityFunc not implemented")
}
func (m *MockStreakService) Reset(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, userID)
	}
	panic("MockStreakService.ResetFunc not implemented")
}
func (m *MockStreakService) History(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	panic("MockStreakService.HistoryFunc not implemented")
}
func (m *MockStreakService) Stats(ctx context.Context, userID string) (*dto.StreakStatsResponse, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, userID)
	}
	panic("MockStreakService.StatsFunc not implemented")
}

func TestStreakHandler_Initialize(t *testing.T) {
	mockSvc := &MockStreakService{
		InitializeFunc: func(ctx context.Context, userID string) (*dto.StreakResponse, error) {
			assert.Equal(t, "user1", userID)
			return &dto.StreakResponse{UserID: "user1", StreakCount: 0}, nil
		},
	}
	h := handler.NewStreakHandler(mockSvc)

	app := newTestApp()
	app.Post("/streaks/initialize", h.Initialize)

	body, _ := json.Marshal(dto.InitializeStreakRequest{UserID: "user1"})
	req := httptest.NewRequest("POST", "/streaks/initialize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got dto.StreakResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 0, got.StreakCount)
}

func TestStreakHandler_GetCurrent_NotFound(t *testing.T) {
	mockSvc := &MockStreakService{
		GetCurrentFunc: func(ctx context.Context, userID string) (*dto.StreakResponse, error) {
			return nil, domain.NewStreakNotFoundError(userID)
		},
	}
	h := handler.NewStreakHandler(mockSvc)

	app := newTestApp()
	app.Get("/streaks/:userId", h.GetCurrent)

	req := httptest.NewRequest("GET", "/streaks/ghost", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var got middleware.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, string(domain.CodeStreakNotFound), got.Code)
}

func TestStreakHandler_RecordActivity(t *testing.T) {
	mockSvc := &MockStreakService{
		RecordActivityFunc: func(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error) {
			assert.Equal(t, "user1", userID)
			assert.Equal(t, "words", activityType)
			return &dto.StreakResponse{UserID: "user1", StreakCount: 3, IsActive: true}, nil
		},
	}
	h := handler.NewStreakHandler(mockSvc)

	app := newTestApp()
	app.Post("/streaks/activity", h.RecordActivity)

	body, _ := json.Marshal(dto.RecordActivityRequest{UserID: "user1", ActivityType: "words"})
	req := httptest.NewRequest("POST", "/streaks/activity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.StreakResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 3, got.StreakCount)
	assert.True(t, got.IsActive)
}

func TestStreakHandler_GetHistory(t *testing.T) {
	mockSvc := &MockStreakService{
		HistoryFunc: func(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error) {
			days := make([]dto.DayStatusResponse, 7)
			days[6] = dto.DayStatusResponse{Date: "2024-03-12", DayName: "Tuesday", Completed: true, IsToday: true}
			return &dto.StreakHistoryResponse{UserID: userID, Days: days}, nil
		},
	}
	h := handler.NewStreakHandler(mockSvc)

	app := newTestApp()
	app.Get("/streaks/:userId/history", h.GetHistory)

	req := httptest.NewRequest("GET", "/streaks/user1/history", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.StreakHistoryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Days, 7)
	assert.True(t, got.Days[6].IsToday)
}

func TestStreakHandler_Reset_InvalidBody(t *testing.T) {
	h := handler.NewStreakHandler(&MockStreakService{})

	app := newTestApp()
	app.Post("/streaks/reset", h.Reset)

	req := httptest.NewRequest("POST", "/streaks/reset", bytes.NewReader([]byte("not-json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
