package service

import (
	"context"
	"errors"
	"testing"

	"vocaquiz/internal/cache"
	"vocaquiz/internal/domain"
	"vocaquiz/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStreakServiceForTest(repo *MockStreakRepository, tx *MockTransactionManager, cacheClient domain.Cache) StreakService {
	return NewStreakService(repo, tx, cacheClient, testConfig())
}

func activeRecord(userID string, count int, start, end util.Date) *domain.StreakRecord {
	return &domain.StreakRecord{
		ID:        "streak1",
		UserID:    userID,
		Count:     count,
		StartDate: &start,
		EndDate:   &end,
	}
}

func TestStreakInitialize_CreatesWhenAbsent(t *testing.T) {
	repo := new(MockStreakRepository)
	repo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(r *domain.StreakRecord) bool {
		return r.UserID == "user1" && r.Count == 0 && r.StartDate == nil && r.EndDate == nil
	})).Return(nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), nil)
	resp, err := svc.Initialize(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.StreakCount)
	assert.False(t, resp.IsActive)
	assert.Empty(t, resp.StartDate)
	repo.AssertExpectations(t)
}

func TestStreakInitialize_ReturnsExistingUnchanged(t *testing.T) {
	repo := new(MockStreakRepository)
	today := util.Today()
	repo.On("GetByUserID", mock.Anything, "user1").Return(activeRecord("user1", 4, today.AddDays(-3), today), nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), nil)
	resp, err := svc.Initialize(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, 4, resp.StreakCount)
	assert.True(t, resp.IsActive)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestStreakGetCurrent_NotFound(t *testing.T) {
	repo := new(MockStreakRepository)
	repo.On("GetByUserID", mock.Anything, "ghost").Return(nil, nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), nil)
	resp, err := svc.GetCurrent(context.Background(), "ghost")

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStreakNotFound, domainErr.Code)
}

func TestStreakRecordActivity_FirstActivityInsertsDayOne(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(r *domain.StreakRecord) bool {
		today := util.Today()
		return r.UserID == "user1" && r.Count == 1 &&
			r.StartDate != nil && r.StartDate.Equal(today) &&
			r.EndDate != nil && r.EndDate.Equal(today)
	})).Return(nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "words")

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.StreakCount)
	assert.True(t, resp.IsActive)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestStreakRecordActivity_SameDayIsIdempotent(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)
	today := util.Today()

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").Return(activeRecord("user1", 2, today.AddDays(-1), today), nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "quiz")

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.StreakCount)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestStreakRecordActivity_ConsecutiveDayIncrements(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)
	today := util.Today()

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").
		Return(activeRecord("user1", 2, today.AddDays(-2), today.AddDays(-1)), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.StreakRecord) bool {
		return r.Count == 3 && r.EndDate.Equal(today) && r.StartDate.Equal(today.AddDays(-2))
	})).Return(nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "words")

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.StreakCount)
	repo.AssertExpectations(t)
}

func TestStreakRecordActivity_GapRestartsAtOne(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)
	today := util.Today()

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").
		Return(activeRecord("user1", 5, today.AddDays(-9), today.AddDays(-3)), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.StreakRecord) bool {
		return r.Count == 1 && r.StartDate.Equal(today) && r.EndDate.Equal(today)
	})).Return(nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "words")

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.StreakCount)
	repo.AssertExpectations(t)
}

func TestStreakRecordActivity_InvalidType(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "steps")

	assert.Nil(t, resp)
	var validationErrs domain.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	tx.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestStreakRecordActivity_InvalidatesHistoryCache(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)
	mockCache := new(MockCache)

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.StreakRecord")).Return(nil)
	mockCache.On("Delete", mock.Anything, cache.StreakHistoryKey("user1")).Return(nil)

	svc := newStreakServiceForTest(repo, tx, mockCache)
	_, err := svc.RecordActivity(context.Background(), "user1", "words")

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestStreakReset_ClearsCountAndDates(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)
	today := util.Today()

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "user1").
		Return(activeRecord("user1", 6, today.AddDays(-5), today), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.StreakRecord) bool {
		return r.Count == 0 && r.StartDate == nil && r.EndDate == nil
	})).Return(nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.Reset(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.StreakCount)
	assert.False(t, resp.IsActive)
	repo.AssertExpectations(t)
}

func TestStreakReset_NotFound(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByUserIDForUpdate", mock.Anything, "ghost").Return(nil, nil)

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.Reset(context.Background(), "ghost")

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStreakNotFound, domainErr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStreakHistory_BuildsSevenDayWindow(t *testing.T) {
	repo := new(MockStreakRepository)
	mockCache := new(MockCache)
	today := util.Today()

	mockCache.On("Get", mock.Anything, cache.StreakHistoryKey("user1")).Return("", domain.ErrCacheMiss)
	repo.On("GetByUserID", mock.Anything, "user1").
		Return(activeRecord("user1", 3, today.AddDays(-2), today), nil)
	mockCache.On("Set", mock.Anything, cache.StreakHistoryKey("user1"), mock.AnythingOfType("string"), testConfig().Cache.StreakTTL).Return(nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), mockCache)
	resp, err := svc.History(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, resp.Days, 7)
	completed := 0
	for _, day := range resp.Days {
		if day.Completed {
			completed++
		}
	}
	assert.Equal(t, 3, completed)
	assert.True(t, resp.Days[6].IsToday)
	assert.True(t, resp.Days[6].Completed)
	mockCache.AssertExpectations(t)
}

func TestStreakHistory_NoRecordYieldsEmptyWindow(t *testing.T) {
	repo := new(MockStreakRepository)
	repo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), nil)
	resp, err := svc.History(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, resp.Days, 7)
	for _, day := range resp.Days {
		assert.False(t, day.Completed)
	}
}

func TestStreakStats(t *testing.T) {
	repo := new(MockStreakRepository)
	today := util.Today()
	repo.On("GetByUserID", mock.Anything, "user1").
		Return(activeRecord("user1", 3, today.AddDays(-2), today), nil)

	svc := newStreakServiceForTest(repo, new(MockTransactionManager), nil)
	resp, err := svc.Stats(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.StreakCount)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 3, resp.DaysTracked)
	assert.Equal(t, today.String(), resp.EndDate)
	assert.Equal(t, today.AddDays(-2).String(), resp.StartDate)
}

func TestStreakRecordActivity_TransactionErrorPropagates(t *testing.T) {
	repo := new(MockStreakRepository)
	tx := new(MockTransactionManager)

	tx.On("WithTransaction", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	svc := newStreakServiceForTest(repo, tx, nil)
	resp, err := svc.RecordActivity(context.Background(), "user1", "words")

	assert.Nil(t, resp)
	assert.Error(t, err)
}
