// internal/service/scoring.go
package service

import "math"

// スコア計算の定数
const (
	// 正解の基礎点
	BasePoints = 10
	// スピードボーナスの最大値 (2秒未満の回答で満額)
	MaxSpeedBonus = 5
	// ボーナスが1点減るまでの秒数
	SpeedBonusDecaySeconds = 2
	// 不正解のペナルティ (回答時間に依存しない)
	WrongAnswerPenalty = -2
)

// CalculatePoints は正誤と回答時間から獲得ポイントを計算する純粋関数です。
//
//	正解:   10 + max(0, 5 - floor(timeTakenSeconds / 2))
//	不正解: -2
//
// ボーナスは2秒ごとに1点減り、10秒以上かかった正解はちょうど基礎点10になります。
func CalculatePoints(isCorrect bool, timeTakenSeconds float64) int {
	if !isCorrect {
		return WrongAnswerPenalty
	}

	bonus := MaxSpeedBonus - int(math.Floor(timeTakenSeconds/SpeedBonusDecaySeconds))
	if bonus < 0 {
		bonus = 0
	}
	return BasePoints + bonus
}
