// internal/model/answer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameAnswer は回答履歴の1行を表します。追記専用で、更新・削除はされません。
// TimeTakenSeconds は保存時に整数へ切り捨てられます（APIレスポンスでは受信値をそのまま返す）。
type GameAnswer struct {
	AnswerID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"answer_id"`
	SessionID        uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	SelectedAnswer   string    `gorm:"not null" json:"selected_answer"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	TimeTakenSeconds int       `gorm:"not null" json:"time_taken_seconds"`
	PointsEarned     int       `gorm:"not null;default:0" json:"points_earned"`
	AnsweredAt       time.Time `gorm:"not null;index" json:"answered_at"`
	CreatedAt        time.Time `json:"created_at"`
}

func (GameAnswer) TableName() string {
	return "game_answers"
}

// 回答送信リクエストDTO
type SubmitAnswerRequest struct {
	QuestionID       uuid.UUID `json:"question_id" validate:"required"`
	SelectedAnswer   string    `json:"selected_answer" validate:"required"`
	TimeTakenSeconds float64   `json:"time_taken_seconds" validate:"required,gt=0"`
}

// SubmitAnswerResponse は回答送信の結果です。
// time_taken_seconds はDBの整数値ではなく、リクエストで受け取った実数値を返します。
type SubmitAnswerResponse struct {
	AnswerID         uuid.UUID `json:"answer_id"`
	SessionID        uuid.UUID `json:"session_id"`
	QuestionID       uuid.UUID `json:"question_id"`
	SelectedAnswer   string    `json:"selected_answer"`
	IsCorrect        bool      `json:"is_correct"`
	TimeTakenSeconds float64   `json:"time_taken_seconds"`
	PointsEarned     int       `json:"points_earned"`
	AnsweredAt       time.Time `json:"answered_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse は保存済みの回答行からレスポンスを組み立てます。
func (a *GameAnswer) ToResponse(timeTakenSeconds float64) *SubmitAnswerResponse {
	return &SubmitAnswerResponse{
		AnswerID:         a.AnswerID,
		SessionID:        a.SessionID,
		QuestionID:       a.QuestionID,
		SelectedAnswer:   a.SelectedAnswer,
		IsCorrect:        a.IsCorrect,
		TimeTakenSeconds: timeTakenSeconds,
		PointsEarned:     a.PointsEarned,
		AnsweredAt:       a.AnsweredAt,
		CreatedAt:        a.CreatedAt,
	}
}
