// internal/model/letter.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// HijaiyyahLetter はヒジャーイヤ文字（アラビア文字）のマスタデータを表します。
// コンテンツシーディングで作成され、ゲームプレイ中に変更されることはありません。
type HijaiyyahLetter struct {
	LetterID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"letter_id"`
	Letter        string    `gorm:"not null" json:"letter"`        // 表示用のグリフ (例: "ا")
	Name          string    `gorm:"not null" json:"name"`          // 文字の名前 (例: "Alif")
	Pronunciation string    `gorm:"not null" json:"pronunciation"` // 発音ラベル
	AudioURL      *string   `json:"audio_url"`                     // 音声ファイルのURL (任意)
	Level         int       `gorm:"not null;index" json:"level"`   // 導入されるレベル番号
	CreatedAt     time.Time `json:"created_at"`
}

func (HijaiyyahLetter) TableName() string {
	return "hijaiyyah_letters"
}
