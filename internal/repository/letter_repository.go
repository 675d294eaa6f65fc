//go:generate mockery --name LetterRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"

	"gorm.io/gorm"
)

// LetterRepository はヒジャーイヤ文字マスタの読み取り（とシーディング時の作成）を担います。
type LetterRepository interface {
	Create(ctx context.Context, tx *gorm.DB, letter *model.HijaiyyahLetter) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.HijaiyyahLetter, error)
	FindByLevel(ctx context.Context, db *gorm.DB, level int) ([]*model.HijaiyyahLetter, error)
}

type gormLetterRepository struct{}

func NewGormLetterRepository() LetterRepository {
	return &gormLetterRepository{}
}

func (r *gormLetterRepository) Create(ctx context.Context, tx *gorm.DB, letter *model.HijaiyyahLetter) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(letter)
	if result.Error != nil {
		logger.Error("Error creating hijaiyyah letter in DB",
			"error", result.Error,
			"name", letter.Name,
		)
		return fmt.Errorf("gormLetterRepository.Create: %w", result.Error)
	}
	return nil
}

// FindAll は全文字を (level ASC, created_at ASC) で返します。
// created_at はシーディング時の投入順なので、伝統的な文字の並びが保たれます。
func (r *gormLetterRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.HijaiyyahLetter, error) {
	logger := middleware.GetLogger(ctx)
	var letters []*model.HijaiyyahLetter
	result := db.WithContext(ctx).Order("level ASC, created_at ASC").Find(&letters)
	if result.Error != nil {
		logger.Error("Error finding all hijaiyyah letters in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLetterRepository.FindAll: %w", result.Error)
	}
	return letters, nil
}

func (r *gormLetterRepository) FindByLevel(ctx context.Context, db *gorm.DB, level int) ([]*model.HijaiyyahLetter, error) {
	logger := middleware.GetLogger(ctx)
	var letters []*model.HijaiyyahLetter
	result := db.WithContext(ctx).Where("level = ?", level).Order("created_at ASC").Find(&letters)
	if result.Error != nil {
		logger.Error("Error finding hijaiyyah letters by level in DB",
			"error", result.Error,
			"level", level,
		)
		return nil, fmt.Errorf("gormLetterRepository.FindByLevel: %w", result.Error)
	}
	return letters, nil
}
