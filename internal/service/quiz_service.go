package service

import (
	"context"
	"encoding/json"
	"fmt"

	"vocaquiz/internal/cache"
	"vocaquiz/internal/config"
	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"
	"vocaquiz/internal/logger"
	"vocaquiz/internal/quizgen"
	"vocaquiz/internal/scoring"
	"vocaquiz/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateCategoryQuiz(ctx context.Context, req *dto.CategoryQuizRequest) (*dto.QuizResponse, error)
	CreateComprehensiveQuiz(ctx context.Context, req *dto.ComprehensiveQuizRequest) (*dto.QuizResponse, error)
	CreateRandomQuiz(ctx context.Context, req *dto.RandomQuizRequest) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetUserQuizHistory(ctx context.Context, userID string) (*dto.UserQuizHistoryResponse, error)
}

// quizService implements QuizService
type quizService struct {
	words     domain.WordRepository
	learning  domain.LearningRepository
	quizzes   domain.QuizRepository
	streaks   StreakService
	generator *quizgen.Generator
	cache     domain.Cache
	cfg       *config.Config
	validator *validation.Validator
	sfGroup   singleflight.Group
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	words domain.WordRepository,
	learning domain.LearningRepository,
	quizzes domain.QuizRepository,
	streaks StreakService,
	generator *quizgen.Generator,
	cacheClient domain.Cache,
	cfg *config.Config,
) QuizService {
	return &quizService{
		words:     words,
		learning:  learning,
		quizzes:   quizzes,
		streaks:   streaks,
		generator: generator,
		cache:     cacheClient,
		cfg:       cfg,
		validator: validation.NewValidator(),
	}
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	return &dto.QuizResponse{
		ID:             quiz.ID,
		Questions:      quiz.Questions,
		TotalQuestions: quiz.RequestedCount,
		Summary:        quiz.Summary,
		CreatedAt:      quiz.CreatedAt,
	}
}

// generateAndSave runs the generator over the pool and persists the result.
func (s *quizService) generateAndSave(ctx context.Context, pool []domain.Word, count int) (*dto.QuizResponse, error) {
	quiz, err := s.generator.Generate(pool, count)
	if err != nil {
		return nil, err
	}
	quiz.Summary = fmt.Sprintf("%d questions generated from %d words", count, len(pool))

	if err := s.quizzes.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Generated quiz",
		zap.String("quizID", quiz.ID),
		zap.Int("questions", count),
		zap.Int("poolSize", len(pool)),
	)

	return toQuizResponse(quiz), nil
}

// CreateCategoryQuiz implements QuizService. The pool is the set of words the
// user has remembered in the category.
func (s *quizService) CreateCategoryQuiz(ctx context.Context, req *dto.CategoryQuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateCategoryQuizRequest(req.CategoryID, req.UserID, req.Count); len(errs) > 0 {
		return nil, errs
	}

	pool, err := s.learning.GetRememberedWords(ctx, req.UserID, req.CategoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load remembered words", err)
	}

	return s.generateAndSave(ctx, pool, req.Count)
}

// CreateComprehensiveQuiz implements QuizService. The pool spans every
// category the user has learned in, deduplicated.
func (s *quizService) CreateComprehensiveQuiz(ctx context.Context, req *dto.ComprehensiveQuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateComprehensiveQuizRequest(req.UserID, req.Count); len(errs) > 0 {
		return nil, errs
	}

	pool, err := s.learning.GetAllRememberedWords(ctx, req.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load remembered words", err)
	}

	return s.generateAndSave(ctx, pool, req.Count)
}

// CreateRandomQuiz implements QuizService. Concurrent requests share one word
// pool load through singleflight.
func (s *quizService) CreateRandomQuiz(ctx context.Context, req *dto.RandomQuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuestionCount(req.Count); len(errs) > 0 {
		return nil, errs
	}

	res, err, _ := s.sfGroup.Do("word-pool", func() (interface{}, error) {
		return s.words.GetAllWords(ctx)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to load word pool", err)
	}
	pool := res.([]domain.Word)

	return s.generateAndSave(ctx, pool, req.Count)
}

// GetQuiz implements QuizService with a read-through cache on the quiz id.
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return nil, errs
	}

	cacheKey := cache.QuizKey(quizID)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var resp dto.QuizResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return &resp, nil
			}
			logger.Get().Warn("Failed to unmarshal cached quiz", zap.String("quizID", quizID))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Quiz cache read failed", zap.Error(err), zap.String("quizID", quizID))
		}
	}

	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	resp := toQuizResponse(quiz)
	if s.cache != nil {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.Cache.QuizTTL); err != nil {
				logger.Get().Warn("Failed to cache quiz", zap.Error(err), zap.String("quizID", quizID))
			}
		}
	}
	return resp, nil
}

// SubmitQuiz implements QuizService. Scoring always succeeds or fails as a
// unit; the learning record update and the streak advance are best-effort and
// never fail an already-scored submission.
func (s *quizService) SubmitQuiz(ctx context.Context, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if errs := s.validator.ValidateSubmitQuizRequest(quizID, req.UserID, req.Answers); len(errs) > 0 {
		return nil, errs
	}

	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	result := scoring.Score(quiz, req.Answers)

	submission := &domain.Submission{
		QuizID:         quiz.ID,
		UserID:         req.UserID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
	}
	if err := s.quizzes.AppendSubmission(ctx, submission); err != nil {
		return nil, domain.NewInternalError("Failed to record submission", err)
	}

	resp := &dto.SubmitQuizResponse{
		QuizID: quiz.ID,
		Result: result,
	}

	correctIDs := result.CorrectWordIDs()
	if len(correctIDs) > 0 && req.CategoryID != "" {
		if err := s.learning.MarkLearned(ctx, req.UserID, req.CategoryID, correctIDs); err != nil {
			logger.Get().Error("Failed to mark words learned after submission",
				zap.Error(err),
				zap.String("quizID", quiz.ID),
				zap.String("userID", req.UserID),
			)
			resp.LearningUpdateFailed = true
		} else {
			resp.WordsMarkedAsLearned = len(correctIDs)
		}
	}

	if s.streaks != nil {
		streakResp, err := s.streaks.RecordActivity(ctx, req.UserID, string(domain.ActivityQuizCompleted))
		if err != nil {
			logger.Get().Error("Failed to advance streak after submission",
				zap.Error(err),
				zap.String("userID", req.UserID),
			)
		} else {
			resp.Streak = streakResp
		}
	}

	return resp, nil
}

// GetUserQuizHistory implements QuizService. Newest first.
func (s *quizService) GetUserQuizHistory(ctx context.Context, userID string) (*dto.UserQuizHistoryResponse, error) {
	if errs := s.validator.ValidateUserID(userID); len(errs) > 0 {
		return nil, errs
	}

	submissions, err := s.quizzes.GetSubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get submission history", err)
	}

	resp := &dto.UserQuizHistoryResponse{
		UserID:      userID,
		Submissions: make([]dto.SubmissionResponse, 0, len(submissions)),
	}
	for _, sub := range submissions {
		resp.Submissions = append(resp.Submissions, dto.SubmissionResponse{
			ID:             sub.ID,
			QuizID:         sub.QuizID,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			Percentage:     sub.Percentage,
			SubmittedAt:    sub.SubmittedAt,
		})
	}
	return resp, nil
}
