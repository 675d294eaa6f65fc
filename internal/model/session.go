// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameSession はプレイヤー1人分のゲームセッションを表します。
// session_end は is_active=false のとき、かつそのときに限り非nullになります。
type GameSession struct {
	SessionID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"session_id"`
	PlayerName     string     `gorm:"not null" json:"player_name"`
	CurrentLevel   int        `gorm:"not null;default:1" json:"current_level"`
	CurrentScore   int        `gorm:"not null;default:0" json:"current_score"` // 下限なし (負になり得る)
	LivesRemaining int        `gorm:"not null;default:3" json:"lives_remaining"`
	SessionStart   time.Time  `gorm:"not null" json:"session_start"`
	SessionEnd     *time.Time `json:"session_end"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// セッション作成リクエストDTO。
// current_score と is_active はクライアントから指定できず、常に 0 / true で初期化される。
type CreateSessionRequest struct {
	PlayerName     string `json:"player_name" validate:"required,min=1,max=100"`
	CurrentLevel   *int   `json:"current_level,omitempty" validate:"omitempty,min=1"`
	LivesRemaining *int   `json:"lives_remaining,omitempty" validate:"omitempty,min=0"`
}

// セッション更新（部分）リクエストDTO。
// nil は「指定なし」を意味し、既存の値が維持される（ゼロ値での指定とは区別する）。
type PatchSessionRequest struct {
	CurrentLevel   *int  `json:"current_level,omitempty" validate:"omitempty,min=1"`
	CurrentScore   *int  `json:"current_score,omitempty"`
	LivesRemaining *int  `json:"lives_remaining,omitempty" validate:"omitempty,min=0"`
	IsActive       *bool `json:"is_active,omitempty"`
}
