// internal/model/progress.go
package model

// SessionProgress はセッションの進捗統計を表します。
// 統計はすべて回答履歴 (game_answers) から算出される読み取り専用の値です。
type SessionProgress struct {
	Session                *GameSession  `json:"session"`
	TotalQuestions         int           `json:"total_questions"`
	CorrectAnswers         int           `json:"correct_answers"`
	AverageTimePerQuestion float64       `json:"average_time_per_question"` // 小数第2位まで
	CompletionPercentage   float64       `json:"completion_percentage"`     // 0〜100、上限100
	RecentAnswers          []*GameAnswer `json:"recent_answers"`            // 新しい順、最大5件
}
