package service

import (
	"context"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockWordRepository ---
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetAllWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordsByCategory(ctx context.Context, categoryID string) ([]domain.Word, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordsByIDs(ctx context.Context, ids []string) ([]domain.Word, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// --- MockLearningRepository ---
type MockLearningRepository struct {
	mock.Mock
}

func (m *MockLearningRepository) GetRememberedWords(ctx context.Context, userID, categoryID string) ([]domain.Word, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockLearningRepository) GetAllRememberedWords(ctx context.Context, userID string) ([]domain.Word, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockLearningRepository) MarkLearned(ctx context.Context, userID, categoryID string, wordIDs []string) error {
	args := m.Called(ctx, userID, categoryID, wordIDs)
	return args.Error(0)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	if args.Error(0) == nil && quiz.ID == "" {
		quiz.ID = "01HZXW8Z2N3V4B5C6D7E8F9G0A"
		quiz.CreatedAt = time.Now()
		quiz.UpdatedAt = quiz.CreatedAt
	}
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) AppendSubmission(ctx context.Context, submission *domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockQuizRepository) GetSubmissionsByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}

// --- MockStreakRepository ---
type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) GetByUserID(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakRecord), args.Error(1)
}

func (m *MockStreakRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakRecord), args.Error(1)
}

func (m *MockStreakRepository) Insert(ctx context.Context, record *domain.StreakRecord) error {
	args := m.Called(ctx, record)
	if args.Error(0) == nil && record.ID == "" {
		record.ID = "01HZXW8Z2N3V4B5C6D7E8F9G0B"
	}
	return args.Error(0)
}

func (m *MockStreakRepository) Update(ctx context.Context, record *domain.StreakRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- MockTransactionManager ---

// MockTransactionManager runs the function directly; there is no real
// transaction to propagate in unit tests.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockStreakService ---
type MockStreakService struct {
	mock.Mock
}

func (m *MockStreakService) Initialize(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakResponse), args.Error(1)
}

func (m *MockStreakService) GetCurrent(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakResponse), args.Error(1)
}

func (m *MockStreakService) RecordActivity(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error) {
	args := m.Called(ctx, userID, activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakResponse), args.Error(1)
}

func (m *MockStreakService) Reset(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakResponse), args.Error(1)
}

func (m *MockStreakService) History(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakHistoryResponse), args.Error(1)
}

func (m *MockStreakService) Stats(ctx context.Context, userID string) (*dto.StreakStatsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreakStatsResponse), args.Error(1)
}
