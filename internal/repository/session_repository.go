//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository はゲームセッションの永続化を担います。
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error)
	Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error
	AddScore(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, points int) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating game session in DB",
			"error", result.Error,
			"player_name", session.PlayerName,
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.GameSession
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding game session by ID in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.GameSession{}).Where("session_id = ?", sessionID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating game session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AddScore はスコアをストレージ層で加算します。
// read-modify-write ではなく current_score = current_score + ? のUPDATEで行うため、
// 同一セッションへの同時送信でも加算が失われません。
func (r *gormSessionRepository) AddScore(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, points int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.GameSession{}).
		Where("session_id = ?", sessionID).
		Update("current_score", gorm.Expr("current_score + ?", points))
	if result.Error != nil {
		logger.Error("Error adding score to game session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
			"points", points,
		)
		return fmt.Errorf("gormSessionRepository.AddScore: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
