//go:generate mockery --name ContentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_hijaiyyah_quiz/internal/config"
	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository"

	"gorm.io/gorm"
)

// ContentService はマスタデータ（レベル・文字・出題）の読み取りを提供します。
type ContentService interface {
	GetAllLevels(ctx context.Context) ([]*model.GameLevel, error)
	GetLevel(ctx context.Context, levelNumber int) (*model.GameLevel, error)
	GetHijaiyyahLetters(ctx context.Context) ([]*model.HijaiyyahLetter, error)
	GetLettersByLevel(ctx context.Context, levelNumber int) ([]*model.HijaiyyahLetter, error)
	GetQuestions(ctx context.Context, query *model.QuestionQuery) ([]*model.Question, error)
}

type contentService struct {
	db           *gorm.DB
	levelRepo    repository.LevelRepository
	letterRepo   repository.LetterRepository
	questionRepo repository.QuestionRepository
	cfg          *config.Config
}

func NewContentService(db *gorm.DB, levelRepo repository.LevelRepository, letterRepo repository.LetterRepository, questionRepo repository.QuestionRepository, cfg *config.Config) ContentService {
	return &contentService{
		db:           db,
		levelRepo:    levelRepo,
		letterRepo:   letterRepo,
		questionRepo: questionRepo,
		cfg:          cfg,
	}
}

func (s *contentService) GetAllLevels(ctx context.Context) ([]*model.GameLevel, error) {
	logger := middleware.GetLogger(ctx)
	levels, err := s.levelRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing game levels", "error", err)
		return nil, model.ErrInternalServer
	}
	return levels, nil
}

// GetLevel はレベル番号でレベル定義を取得します。存在しない場合は ErrNotFound を返します。
func (s *contentService) GetLevel(ctx context.Context, levelNumber int) (*model.GameLevel, error) {
	level, err := s.levelRepo.FindByNumber(ctx, s.db, levelNumber)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return level, nil
}

func (s *contentService) GetHijaiyyahLetters(ctx context.Context) ([]*model.HijaiyyahLetter, error) {
	logger := middleware.GetLogger(ctx)
	letters, err := s.letterRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing hijaiyyah letters", "error", err)
		return nil, model.ErrInternalServer
	}
	return letters, nil
}

func (s *contentService) GetLettersByLevel(ctx context.Context, levelNumber int) ([]*model.HijaiyyahLetter, error) {
	logger := middleware.GetLogger(ctx)
	letters, err := s.letterRepo.FindByLevel(ctx, s.db, levelNumber)
	if err != nil {
		logger.Error("Error listing hijaiyyah letters by level", "error", err)
		return nil, model.ErrInternalServer
	}
	return letters, nil
}

// GetQuestions はレベル（と任意の出題形式）に一致する出題をランダムな順序で返します。
// 返される並び順に再現性はなく、呼び出しごとに引き直されます。
func (s *contentService) GetQuestions(ctx context.Context, query *model.QuestionQuery) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if query.Type != nil && !query.Type.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "不明な出題形式です。", "type", model.ErrInvalidInput)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = config.DefaultQuestionLimit
		if s.cfg != nil && s.cfg.App.QuestionLimit > 0 {
			limit = s.cfg.App.QuestionLimit
		}
	}
	if limit > config.MaxQuestionLimit {
		limit = config.MaxQuestionLimit
	}

	capped := &model.QuestionQuery{
		LevelID: query.LevelID,
		Type:    query.Type,
		Limit:   limit,
	}

	questions, err := s.questionRepo.FindRandom(ctx, s.db, capped)
	if err != nil {
		logger.Error("Error listing questions", "error", err)
		return nil, model.ErrInternalServer
	}
	return questions, nil
}
