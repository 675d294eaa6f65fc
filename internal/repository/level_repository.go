//go:generate mockery --name LevelRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQLの一意制約違反
const pgUniqueViolationCode = "23505"

// LevelRepository はレベルマスタの読み取り（とシーディング時の作成）を担います。
type LevelRepository interface {
	Create(ctx context.Context, tx *gorm.DB, level *model.GameLevel) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.GameLevel, error)
	FindByNumber(ctx context.Context, db *gorm.DB, levelNumber int) (*model.GameLevel, error)
}

type gormLevelRepository struct{}

func NewGormLevelRepository() LevelRepository {
	return &gormLevelRepository{}
}

func (r *gormLevelRepository) Create(ctx context.Context, tx *gorm.DB, level *model.GameLevel) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(level)
	if result.Error != nil {
		// level_number の一意制約違反は Conflict として返す
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return model.ErrConflict
		}
		logger.Error("Error creating game level in DB",
			"error", result.Error,
			"level_number", level.LevelNumber,
		)
		return fmt.Errorf("gormLevelRepository.Create: %w", result.Error)
	}
	return nil
}

// FindAll は全レベルを level_number の昇順で返します。
func (r *gormLevelRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.GameLevel, error) {
	logger := middleware.GetLogger(ctx)
	var levels []*model.GameLevel
	result := db.WithContext(ctx).Order("level_number ASC").Find(&levels)
	if result.Error != nil {
		logger.Error("Error finding all game levels in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLevelRepository.FindAll: %w", result.Error)
	}
	return levels, nil
}

func (r *gormLevelRepository) FindByNumber(ctx context.Context, db *gorm.DB, levelNumber int) (*model.GameLevel, error) {
	logger := middleware.GetLogger(ctx)
	var level model.GameLevel
	result := db.WithContext(ctx).Where("level_number = ?", levelNumber).First(&level)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding game level by number in DB",
			"error", result.Error,
			"level_number", levelNumber,
		)
		return nil, fmt.Errorf("gormLevelRepository.FindByNumber: %w", result.Error)
	}
	return &level, nil
}
