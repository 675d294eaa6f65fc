// internal/model/level.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameLevel はゲームのレベル定義を表します。セッション中は不変のマスタデータです。
type GameLevel struct {
	LevelID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"level_id"`
	LevelNumber       int         `gorm:"not null;uniqueIndex" json:"level_number"` // 並び順のキー
	Name              string      `gorm:"not null" json:"name"`
	Description       *string     `json:"description"`
	QuestionsRequired int         `gorm:"not null" json:"questions_required"` // クリアに必要な回答数
	LettersIntroduced []uuid.UUID `gorm:"serializer:json;not null" json:"letters_introduced"`
	IsUnlocked        bool        `gorm:"not null;default:false" json:"is_unlocked"`
	CreatedAt         time.Time   `json:"created_at"`
}

func (GameLevel) TableName() string {
	return "game_levels"
}
