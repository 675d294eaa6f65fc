//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math"

	"go_hijaiyyah_quiz/internal/config"
	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService は回答履歴からセッションの進捗統計を算出します（読み取り専用）。
type ProgressService interface {
	GetSessionProgress(ctx context.Context, sessionID uuid.UUID) (*model.SessionProgress, error)
}

type progressService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	answerRepo  repository.AnswerRepository
	levelRepo   repository.LevelRepository
	cfg         *config.Config
}

func NewProgressService(db *gorm.DB, sessionRepo repository.SessionRepository, answerRepo repository.AnswerRepository, levelRepo repository.LevelRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:          db,
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		levelRepo:   levelRepo,
		cfg:         cfg,
	}
}

// GetSessionProgress はセッションの進捗統計を返します。
// 回答数・正解数・平均回答時間は回答履歴だけから算出し、レベル定義の有無には依存しません。
// 達成率はセッションの current_level に一致するレベル定義が存在する場合のみ計算し、
// 存在しない場合は 0 になります（100 が上限）。
func (s *progressService) GetSessionProgress(ctx context.Context, sessionID uuid.UUID) (*model.SessionProgress, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "ゲームセッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		logger.Error("Error finding session for progress", "error", err)
		return nil, model.ErrInternalServer
	}

	// 回答履歴は新しい順で取得される
	answers, err := s.answerRepo.FindBySession(ctx, s.db, sessionID)
	if err != nil {
		logger.Error("Error finding answers for progress", "error", err)
		return nil, model.ErrInternalServer
	}

	totalQuestions := len(answers)
	correctAnswers := 0
	totalTimeSeconds := 0
	for _, answer := range answers {
		if answer.IsCorrect {
			correctAnswers++
		}
		totalTimeSeconds += answer.TimeTakenSeconds
	}

	averageTime := 0.0
	if totalQuestions > 0 {
		averageTime = float64(totalTimeSeconds) / float64(totalQuestions)
	}

	// 達成率の計算 (レベル定義が見つからない場合は 0 のまま)
	completion := 0.0
	level, err := s.levelRepo.FindByNumber(ctx, s.db, session.CurrentLevel)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding level for progress", "error", err)
			return nil, model.ErrInternalServer
		}
		logger.Warn("Level definition not found for session, completion set to 0", "current_level", session.CurrentLevel)
	} else if level.QuestionsRequired > 0 {
		completion = float64(totalQuestions) / float64(level.QuestionsRequired) * 100
		if completion > 100 {
			completion = 100
		}
	}

	recentLimit := config.DefaultRecentAnswersLimit
	if s.cfg != nil && s.cfg.App.RecentAnswersLimit > 0 {
		recentLimit = s.cfg.App.RecentAnswersLimit
	}
	recentAnswers := answers
	if len(recentAnswers) > recentLimit {
		recentAnswers = recentAnswers[:recentLimit]
	}
	if recentAnswers == nil {
		recentAnswers = []*model.GameAnswer{}
	}

	return &model.SessionProgress{
		Session:                session,
		TotalQuestions:         totalQuestions,
		CorrectAnswers:         correctAnswers,
		AverageTimePerQuestion: roundTo2(averageTime),
		CompletionPercentage:   roundTo2(completion),
		RecentAnswers:          recentAnswers,
	}, nil
}

// roundTo2 は小数第2位へ丸めます。
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
