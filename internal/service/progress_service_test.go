// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_hijaiyyah_quiz/internal/config"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBProgress() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// makeAnswers は新しい順 (answered_at DESC) の回答履歴を作る。
// リポジトリが返す順序と合わせている。
func makeAnswers(sessionID uuid.UUID, n int, correct int, timeEach int) []*model.GameAnswer {
	answers := make([]*model.GameAnswer, 0, n)
	base := time.Now()
	for i := 0; i < n; i++ {
		answers = append(answers, &model.GameAnswer{
			AnswerID:         uuid.New(),
			SessionID:        sessionID,
			QuestionID:       uuid.New(),
			IsCorrect:        i < correct,
			TimeTakenSeconds: timeEach,
			AnsweredAt:       base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return answers
}

// --- Test GetSessionProgress ---
func Test_progressService_GetSessionProgress(t *testing.T) {
	ctx := context.Background()
	testSessionID := uuid.New()
	testSession := &model.GameSession{
		SessionID:    testSessionID,
		PlayerName:   "Aisyah",
		CurrentLevel: 1,
		IsActive:     true,
	}
	testLevel := &model.GameLevel{
		LevelID:           uuid.New(),
		LevelNumber:       1,
		Name:              "Level 1",
		QuestionsRequired: 10,
	}
	testCfg := &config.Config{}
	testCfg.App.RecentAnswersLimit = 5

	tests := []struct {
		name      string
		setupMock func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository)
		wantErr   error
		check     func(t *testing.T, progress *model.SessionProgress)
	}{
		{
			name: "正常系: 回答なしのセッションは統計がすべてゼロ",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(testSession, nil).Once()
				answerRepo.On("FindBySession", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return([]*model.GameAnswer{}, nil).Once()
				levelRepo.On("FindByNumber", ctx, mock.AnythingOfType("*gorm.DB"), 1).
					Return(testLevel, nil).Once()
			},
			check: func(t *testing.T, progress *model.SessionProgress) {
				assert.Equal(t, 0, progress.TotalQuestions)
				assert.Equal(t, 0, progress.CorrectAnswers)
				assert.Equal(t, 0.0, progress.AverageTimePerQuestion)
				assert.Equal(t, 0.0, progress.CompletionPercentage)
				require.NotNil(t, progress.RecentAnswers)
				assert.Empty(t, progress.RecentAnswers)
			},
		},
		{
			name: "正常系: 統計の算出と直近回答の切り出し",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(testSession, nil).Once()
				// 7問中4問正解、各5秒
				answerRepo.On("FindBySession", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(makeAnswers(testSessionID, 7, 4, 5), nil).Once()
				levelRepo.On("FindByNumber", ctx, mock.AnythingOfType("*gorm.DB"), 1).
					Return(testLevel, nil).Once()
			},
			check: func(t *testing.T, progress *model.SessionProgress) {
				assert.Equal(t, 7, progress.TotalQuestions)
				assert.Equal(t, 4, progress.CorrectAnswers)
				assert.Equal(t, 5.0, progress.AverageTimePerQuestion)
				// 7/10 * 100 = 70
				assert.Equal(t, 70.0, progress.CompletionPercentage)
				// 直近の回答は設定の上限 (5件) まで
				assert.Len(t, progress.RecentAnswers, 5)
			},
		},
		{
			name: "正常系: 平均回答時間は小数第2位へ丸める",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(testSession, nil).Once()
				// 2 + 3 + 5 = 10秒 / 3問 = 3.333...
				answers := makeAnswers(testSessionID, 3, 3, 0)
				answers[0].TimeTakenSeconds = 2
				answers[1].TimeTakenSeconds = 3
				answers[2].TimeTakenSeconds = 5
				answerRepo.On("FindBySession", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(answers, nil).Once()
				levelRepo.On("FindByNumber", ctx, mock.AnythingOfType("*gorm.DB"), 1).
					Return(testLevel, nil).Once()
			},
			check: func(t *testing.T, progress *model.SessionProgress) {
				assert.Equal(t, 3.33, progress.AverageTimePerQuestion)
			},
		},
		{
			name: "正常系: 達成率は100で頭打ち",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(testSession, nil).Once()
				// 必要問題数10に対して15問回答済み
				answerRepo.On("FindBySession", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(makeAnswers(testSessionID, 15, 10, 4), nil).Once()
				levelRepo.On("FindByNumber", ctx, mock.AnythingOfType("*gorm.DB"), 1).
					Return(testLevel, nil).Once()
			},
			check: func(t *testing.T, progress *model.SessionProgress) {
				assert.Equal(t, 100.0, progress.CompletionPercentage)
			},
		},
		{
			name: "正常系: レベル定義がない場合は達成率0で統計は維持",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(testSession, nil).Once()
				answerRepo.On("FindBySession", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(makeAnswers(testSessionID, 4, 2, 6), nil).Once()
				levelRepo.On("FindByNumber", ctx, mock.AnythingOfType("*gorm.DB"), 1).
					Return(nil, model.ErrNotFound).Once()
			},
			check: func(t *testing.T, progress *model.SessionProgress) {
				assert.Equal(t, 4, progress.TotalQuestions)
				assert.Equal(t, 2, progress.CorrectAnswers)
				assert.Equal(t, 6.0, progress.AverageTimePerQuestion)
				assert.Equal(t, 0.0, progress.CompletionPercentage)
			},
		},
		{
			name: "異常系: セッションが存在しない",
			setupMock: func(sessionRepo *mocks.SessionRepository, answerRepo *mocks.AnswerRepository, levelRepo *mocks.LevelRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBProgress()
			mockSessionRepo := new(mocks.SessionRepository)
			mockAnswerRepo := new(mocks.AnswerRepository)
			mockLevelRepo := new(mocks.LevelRepository)
			tt.setupMock(mockSessionRepo, mockAnswerRepo, mockLevelRepo)
			progressService := NewProgressService(db, mockSessionRepo, mockAnswerRepo, mockLevelRepo, testCfg)

			progress, err := progressService.GetSessionProgress(ctx, testSessionID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, progress)
			} else {
				require.NoError(t, err)
				require.NotNil(t, progress)
				require.NotNil(t, progress.Session)
				tt.check(t, progress)
			}
			mockSessionRepo.AssertExpectations(t)
			mockAnswerRepo.AssertExpectations(t)
			mockLevelRepo.AssertExpectations(t)
		})
	}
}
