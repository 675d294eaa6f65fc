// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionType は出題形式を表します。
type QuestionType string

const (
	QuestionTypeVisual   QuestionType = "visual_identification"   // 文字を見て答える
	QuestionTypeAuditory QuestionType = "auditory_identification" // 音声を聞いて答える
)

// Valid は既知の出題形式かどうかを返します。
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeVisual, QuestionTypeAuditory:
		return true
	}
	return false
}

// Question は出題データを表します。マスタデータであり、ゲームプレイ中は不変です。
// Options には CorrectAnswer がちょうど1回含まれます（シーディング時の不変条件）。
type Question struct {
	QuestionID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"question_id"`
	Type          QuestionType `gorm:"type:varchar(32);not null;index" json:"type"`
	LevelID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"level_id"`
	LetterID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"letter_id"`
	CorrectAnswer string       `gorm:"not null" json:"correct_answer"`
	Options       []string     `gorm:"serializer:json;not null" json:"options"`
	Difficulty    int          `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionQuery は出題取得の検索条件です。Type が nil の場合は形式で絞り込みません。
type QuestionQuery struct {
	LevelID uuid.UUID
	Type    *QuestionType
	Limit   int
}
