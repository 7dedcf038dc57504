package service

import (
	"context"
	"encoding/json"

	"vocaquiz/internal/cache"
	"vocaquiz/internal/config"
	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"
	"vocaquiz/internal/logger"
	"vocaquiz/internal/streak"
	"vocaquiz/internal/util"
	"vocaquiz/internal/validation"

	"go.uber.org/zap"
)

// StreakService defines the interface for streak-related operations
type StreakService interface {
	Initialize(ctx context.Context, userID string) (*dto.StreakResponse, error)
	GetCurrent(ctx context.Context, userID string) (*dto.StreakResponse, error)
	RecordActivity(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error)
	Reset(ctx context.Context, userID string) (*dto.StreakResponse, error)
	History(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error)
	Stats(ctx context.Context, userID string) (*dto.StreakStatsResponse, error)
}

// streakService implements StreakService. The read-transition-write of the
// day state machine runs inside a transaction with the per-user row locked,
// so two concurrent activities on the same day still credit one day.
type streakService struct {
	repo      domain.StreakRepository
	txManager domain.TransactionManager
	cache     domain.Cache
	cfg       *config.Config
	validator *validation.Validator
}

// NewStreakService creates a new instance of streakService
func NewStreakService(
	repo domain.StreakRepository,
	txManager domain.TransactionManager,
	cacheClient domain.Cache,
	cfg *config.Config,
) StreakService {
	return &streakService{
		repo:      repo,
		txManager: txManager,
		cache:     cacheClient,
		cfg:       cfg,
		validator: validation.NewValidator(),
	}
}

func toStreakResponse(record *domain.StreakRecord, today util.Date) *dto.StreakResponse {
	resp := &dto.StreakResponse{
		UserID:      record.UserID,
		StreakCount: record.Count,
		IsActive:    streak.IsActive(record, today),
	}
	if record.StartDate != nil {
		resp.StartDate = record.StartDate.String()
	}
	if record.EndDate != nil {
		resp.EndDate = record.EndDate.String()
	}
	return resp
}

// Initialize implements StreakService. Creating a streak that already exists
// returns the existing one unchanged.
func (s *streakService) Initialize(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get streak", err)
	}
	if record == nil {
		record = domain.NewStreakRecord(userID)
		if err := s.repo.Insert(ctx, record); err != nil {
			return nil, domain.NewInternalError("Failed to initialize streak", err)
		}
		logger.Get().Info("Initialized streak", zap.String("userID", userID))
	}

	return toStreakResponse(record, util.Today()), nil
}

// GetCurrent implements StreakService
func (s *streakService) GetCurrent(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get streak", err)
	}
	if record == nil {
		return nil, domain.NewStreakNotFoundError(userID)
	}

	return toStreakResponse(record, util.Today()), nil
}

// RecordActivity implements StreakService. Both activity types ("words" and
// "quiz") advance the streak identically; the type only matters for logging.
func (s *streakService) RecordActivity(ctx context.Context, userID, activityType string) (*dto.StreakResponse, error) {
	var errs domain.ValidationErrors
	errs = append(errs, s.validator.ValidateUserID(userID)...)
	errs = append(errs, s.validator.ValidateActivityType(activityType)...)
	if len(errs) > 0 {
		return nil, errs
	}

	today := util.Today()
	advanced, err := s.advance(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Recorded streak activity",
		zap.String("userID", userID),
		zap.String("activityType", activityType),
		zap.Int("streakCount", advanced.Count),
	)

	return toStreakResponse(advanced, today), nil
}

// advance runs one streak transition for the user on the given day inside a
// transaction and returns the resulting record.
func (s *streakService) advance(ctx context.Context, userID string, today util.Date) (*domain.StreakRecord, error) {
	var result *domain.StreakRecord

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetByUserIDForUpdate(txCtx, userID)
		if err != nil {
			return domain.NewInternalError("Failed to get streak for update", err)
		}

		advanced, changed := streak.Advance(record, today)
		if record == nil {
			advanced.UserID = userID
			if err := s.repo.Insert(txCtx, advanced); err != nil {
				return domain.NewInternalError("Failed to insert streak", err)
			}
		} else if changed {
			if err := s.repo.Update(txCtx, advanced); err != nil {
				return domain.NewInternalError("Failed to update streak", err)
			}
		}

		result = advanced
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, userID)
	return result, nil
}

// Reset implements StreakService
func (s *streakService) Reset(ctx context.Context, userID string) (*dto.StreakResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	var result *domain.StreakRecord

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetByUserIDForUpdate(txCtx, userID)
		if err != nil {
			return domain.NewInternalError("Failed to get streak for update", err)
		}
		if record == nil {
			return domain.NewStreakNotFoundError(userID)
		}

		cleared := streak.Reset(record)
		if err := s.repo.Update(txCtx, cleared); err != nil {
			return domain.NewInternalError("Failed to reset streak", err)
		}

		result = cleared
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, userID)
	logger.Get().Info("Reset streak", zap.String("userID", userID))

	return toStreakResponse(result, util.Today()), nil
}

// History implements StreakService. The trailing window is cached briefly;
// activity recordings invalidate it.
func (s *streakService) History(ctx context.Context, userID string) (*dto.StreakHistoryResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	cacheKey := cache.StreakHistoryKey(userID)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var resp dto.StreakHistoryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return &resp, nil
			}
			logger.Get().Warn("Failed to unmarshal cached streak history", zap.String("userID", userID))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Streak history cache read failed", zap.Error(err), zap.String("userID", userID))
		}
	}

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get streak", err)
	}

	days := streak.History(record, util.Today())
	resp := &dto.StreakHistoryResponse{
		UserID: userID,
		Days:   make([]dto.DayStatusResponse, 0, len(days)),
	}
	for _, day := range days {
		resp.Days = append(resp.Days, dto.DayStatusResponse{
			Date:      day.Date,
			DayName:   day.DayName,
			Completed: day.Completed,
			IsToday:   day.IsToday,
		})
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.Cache.StreakTTL); err != nil {
				logger.Get().Warn("Failed to cache streak history", zap.Error(err), zap.String("userID", userID))
			}
		}
	}

	return resp, nil
}

// Stats implements StreakService
func (s *streakService) Stats(ctx context.Context, userID string) (*dto.StreakStatsResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	record, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get streak", err)
	}
	if record == nil {
		return nil, domain.NewStreakNotFoundError(userID)
	}

	today := util.Today()
	daysTracked := 0
	for _, day := range streak.History(record, today) {
		if day.Completed {
			daysTracked++
		}
	}

	resp := &dto.StreakStatsResponse{
		UserID:      record.UserID,
		StreakCount: record.Count,
		IsActive:    streak.IsActive(record, today),
		DaysTracked: daysTracked,
	}
	if record.StartDate != nil {
		resp.StartDate = record.StartDate.String()
	}
	if record.EndDate != nil {
		resp.EndDate = record.EndDate.String()
	}
	return resp, nil
}

func (s *streakService) invalidateHistory(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.StreakHistoryKey(userID)); err != nil {
		logger.Get().Warn("Failed to invalidate streak history cache",
			zap.Error(err),
			zap.String("userID", userID),
		)
	}
}
