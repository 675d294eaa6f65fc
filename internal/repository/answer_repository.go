//go:generate mockery --name AnswerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository は回答履歴の永続化を担います。履歴は追記専用です。
type AnswerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, answer *model.GameAnswer) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.GameAnswer, error)
}

type gormAnswerRepository struct{}

func NewGormAnswerRepository() AnswerRepository {
	return &gormAnswerRepository{}
}

func (r *gormAnswerRepository) Create(ctx context.Context, tx *gorm.DB, answer *model.GameAnswer) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(answer)
	if result.Error != nil {
		logger.Error("Error creating game answer in DB",
			"error", result.Error,
			"session_id", answer.SessionID.String(),
			"question_id", answer.QuestionID.String(),
		)
		return fmt.Errorf("gormAnswerRepository.Create: %w", result.Error)
	}
	return nil
}

// FindBySession はセッションの全回答を新しい順 (answered_at DESC) で返します。
func (r *gormAnswerRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.GameAnswer, error) {
	logger := middleware.GetLogger(ctx)
	var answers []*model.GameAnswer
	result := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("answered_at DESC").
		Find(&answers)
	if result.Error != nil {
		logger.Error("Error finding game answers by session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormAnswerRepository.FindBySession: %w", result.Error)
	}
	return answers, nil
}
