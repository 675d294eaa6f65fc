// internal/config/constants.go
package config

// アプリケーション全体で使う定数
const (
	// getQuestions の limit 未指定時のデフォルト
	DefaultQuestionLimit = 10
	// getQuestions の limit の上限
	MaxQuestionLimit = 50
	// 進捗に含める直近回答のデフォルト件数
	DefaultRecentAnswersLimit = 5

	// 新規セッションの初期値
	DefaultStartLevel = 1
	DefaultStartLives = 3
)
