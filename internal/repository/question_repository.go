//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
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

// QuestionRepository は出題マスタの読み取り（とシーディング時の作成）を担います。
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	FindRandom(ctx context.Context, db *gorm.DB, query *model.QuestionQuery) ([]*model.Question, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"level_id", question.LevelID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

// FindRandom はレベル（と任意の出題形式）で絞り込み、ランダムな順序で最大 limit 件返します。
// 並び順は呼び出しごとに引き直され、シードによる再現性は保証しません。
// RANDOM() は PostgreSQL / SQLite の両方で動作します。
func (r *gormQuestionRepository) FindRandom(ctx context.Context, db *gorm.DB, query *model.QuestionQuery) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	tx := db.WithContext(ctx).Where("level_id = ?", query.LevelID)
	if query.Type != nil {
		tx = tx.Where("type = ?", *query.Type)
	}

	var questions []*model.Question
	result := tx.Order("RANDOM()").Limit(query.Limit).Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding random questions in DB",
			"error", result.Error,
			"level_id", query.LevelID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindRandom: %w", result.Error)
	}
	return questions, nil
}
