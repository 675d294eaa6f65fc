// cmd/seed/main.go
// マイグレーションとマスタデータ(レベル・文字・問題)の投入を行うコマンド。
// 既にデータが存在する場合は何もしない(冪等)。
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go_hijaiyyah_quiz/internal/config"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository"
)

// seedLetter はシード定義用の中間構造体
type seedLetter struct {
	Letter        string
	Name          string
	Pronunciation string
	Level         int
}

// ヒジャイヤ文字 28 字。レベルごとに 7 字ずつ導入する。
var seedLetters = []seedLetter{
	{"ا", "Alif", "a", 1},
	{"ب", "Ba", "ba", 1},
	{"ت", "Ta", "ta", 1},
	{"ث", "Tsa", "tsa", 1},
	{"ج", "Jim", "jim", 1},
	{"ح", "Ha", "ha", 1},
	{"خ", "Kho", "kho", 1},
	{"د", "Dal", "dal", 2},
	{"ذ", "Dzal", "dzal", 2},
	{"ر", "Ro", "ro", 2},
	{"ز", "Zai", "zai", 2},
	{"س", "Sin", "sin", 2},
	{"ش", "Syin", "syin", 2},
	{"ص", "Shod", "shod", 2},
	{"ض", "Dhod", "dhod", 3},
	{"ط", "Tho", "tho", 3},
	{"ظ", "Zho", "zho", 3},
	{"ع", "Ain", "'ain", 3},
	{"غ", "Ghoin", "ghoin", 3},
	{"ف", "Fa", "fa", 3},
	{"ق", "Qof", "qof", 3},
	{"ك", "Kaf", "kaf", 4},
	{"ل", "Lam", "lam", 4},
	{"م", "Mim", "mim", 4},
	{"ن", "Nun", "nun", 4},
	{"ه", "Ha'", "ha", 4},
	{"و", "Wawu", "wawu", 4},
	{"ي", "Ya", "ya", 4},
}

var seedLevelDescriptions = map[int]string{
	1: "Huruf dasar pertama: Alif sampai Kho",
	2: "Huruf lanjutan: Dal sampai Shod",
	3: "Huruf lanjutan: Dhod sampai Qof",
	4: "Huruf terakhir: Kaf sampai Ya",
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	// マイグレーション
	if err := db.AutoMigrate(
		&model.HijaiyyahLetter{},
		&model.GameLevel{},
		&model.GameSession{},
		&model.Question{},
		&model.GameAnswer{},
	); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migrations completed.")

	if err := db.Transaction(seed); err != nil {
		slog.Error("Error seeding data", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Seeding completed.")
}

func seed(tx *gorm.DB) error {
	var letterCount int64
	if err := tx.Model(&model.HijaiyyahLetter{}).Count(&letterCount).Error; err != nil {
		return fmt.Errorf("failed to count letters: %w", err)
	}
	if letterCount > 0 {
		slog.Info("Master data already present, skipping seed.", slog.Int64("letters", letterCount))
		return nil
	}

	// 文字の投入。レベル昇順・定義順で作成する(取得順序は created_at に依存)。
	lettersByLevel := make(map[int][]*model.HijaiyyahLetter)
	for _, s := range seedLetters {
		letter := &model.HijaiyyahLetter{
			LetterID:      uuid.New(),
			Letter:        s.Letter,
			Name:          s.Name,
			Pronunciation: s.Pronunciation,
			Level:         s.Level,
		}
		if err := tx.Create(letter).Error; err != nil {
			return fmt.Errorf("failed to create letter %s: %w", s.Name, err)
		}
		lettersByLevel[s.Level] = append(lettersByLevel[s.Level], letter)
	}

	// レベルの投入
	levelIDs := make(map[int]uuid.UUID)
	for levelNumber := 1; levelNumber <= 4; levelNumber++ {
		letters := lettersByLevel[levelNumber]
		introduced := make([]uuid.UUID, 0, len(letters))
		for _, l := range letters {
			introduced = append(introduced, l.LetterID)
		}
		description := seedLevelDescriptions[levelNumber]
		level := &model.GameLevel{
			LevelID:           uuid.New(),
			LevelNumber:       levelNumber,
			Name:              fmt.Sprintf("Level %d", levelNumber),
			Description:       &description,
			QuestionsRequired: 10,
			LettersIntroduced: introduced,
			IsUnlocked:        levelNumber == 1, // 最初のレベルのみ解放済み
		}
		if err := tx.Create(level).Error; err != nil {
			return fmt.Errorf("failed to create level %d: %w", levelNumber, err)
		}
		levelIDs[levelNumber] = level.LevelID
	}

	// 問題の投入。各文字につき視覚問題と聴覚問題を 1 問ずつ生成する。
	rng := rand.New(rand.NewSource(42)) // 選択肢の並びを再現可能にする
	for levelNumber, letters := range lettersByLevel {
		for _, letter := range letters {
			for _, qType := range []model.QuestionType{model.QuestionTypeVisual, model.QuestionTypeAuditory} {
				question := &model.Question{
					QuestionID:    uuid.New(),
					Type:          qType,
					LevelID:       levelIDs[levelNumber],
					LetterID:      letter.LetterID,
					CorrectAnswer: letter.Name,
					Options:       buildOptions(rng, letter, letters),
					Difficulty:    levelNumber,
				}
				if err := tx.Create(question).Error; err != nil {
					return fmt.Errorf("failed to create question for letter %s: %w", letter.Name, err)
				}
			}
		}
	}

	return nil
}

// buildOptions は正解 1 つと同一レベルの誤答 3 つからなる選択肢を作る。
func buildOptions(rng *rand.Rand, correct *model.HijaiyyahLetter, pool []*model.HijaiyyahLetter) []string {
	distractors := make([]string, 0, len(pool)-1)
	for _, l := range pool {
		if l.LetterID != correct.LetterID {
			distractors = append(distractors, l.Name)
		}
	}
	rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > 3 {
		distractors = distractors[:3]
	}

	options := append(distractors, correct.Name)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
