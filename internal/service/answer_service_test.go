// internal/service/answer_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

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
func setupTestDBAnswer() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test SubmitAnswer ---
func Test_answerService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()
	testSessionID := uuid.New()
	testQuestionID := uuid.New()

	activeSession := &model.GameSession{
		SessionID:  testSessionID,
		PlayerName: "Aisyah",
		IsActive:   true,
	}
	inactiveSession := &model.GameSession{
		SessionID:  testSessionID,
		PlayerName: "Aisyah",
		IsActive:   false,
	}
	testQuestion := &model.Question{
		QuestionID:    testQuestionID,
		Type:          model.QuestionTypeVisual,
		CorrectAnswer: "Alif",
		Options:       []string{"Alif", "Ba", "Ta", "Jim"},
	}

	tests := []struct {
		name       string
		req        *model.SubmitAnswerRequest
		setupMock  func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository)
		wantErr    error
		wantPoints int
		checkResp  func(t *testing.T, resp *model.SubmitAnswerResponse)
	}{
		{
			name: "正常系: 正解 (1.5秒) は最大ボーナス付きの15点",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 1.5,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(activeSession, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testQuestionID).
					Return(testQuestion, nil).Once()
				answerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.GameAnswer")).
					Run(func(args mock.Arguments) {
						answer := args.Get(2).(*model.GameAnswer)
						assert.Equal(t, testSessionID, answer.SessionID)
						assert.Equal(t, testQuestionID, answer.QuestionID)
						assert.True(t, answer.IsCorrect)
						// 保存される回答時間は整数へ切り捨て
						assert.Equal(t, 1, answer.TimeTakenSeconds)
						assert.Equal(t, 15, answer.PointsEarned)
						assert.NotEqual(t, uuid.Nil, answer.AnswerID)
						assert.WithinDuration(t, time.Now(), answer.AnsweredAt, time.Second*5)
					}).Return(nil).Once()
				sessionRepo.On("AddScore", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID, 15).
					Return(nil).Once()
			},
			wantErr: nil,
			checkResp: func(t *testing.T, resp *model.SubmitAnswerResponse) {
				assert.True(t, resp.IsCorrect)
				assert.Equal(t, 15, resp.PointsEarned)
				// レスポンスには受信した実数値をそのまま返す
				assert.Equal(t, 1.5, resp.TimeTakenSeconds)
			},
		},
		{
			name: "正常系: 不正解は-2点でスコアから減算",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Ba",
				TimeTakenSeconds: 3.0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(activeSession, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testQuestionID).
					Return(testQuestion, nil).Once()
				answerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.GameAnswer")).
					Run(func(args mock.Arguments) {
						answer := args.Get(2).(*model.GameAnswer)
						assert.False(t, answer.IsCorrect)
						assert.Equal(t, -2, answer.PointsEarned)
					}).Return(nil).Once()
				sessionRepo.On("AddScore", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID, -2).
					Return(nil).Once()
			},
			wantErr: nil,
			checkResp: func(t *testing.T, resp *model.SubmitAnswerResponse) {
				assert.False(t, resp.IsCorrect)
				assert.Equal(t, -2, resp.PointsEarned)
			},
		},
		{
			name: "異常系: 回答時間が0以下",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: セッションが存在しない",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 1.0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: セッションが終了済み",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 1.0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(inactiveSession, nil).Once()
			},
			wantErr: model.ErrSessionNotActive,
		},
		{
			name: "異常系: 問題が存在しない",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 1.0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(activeSession, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testQuestionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 回答の保存でDBエラー (スコア加算は呼ばれない)",
			req: &model.SubmitAnswerRequest{
				QuestionID:       testQuestionID,
				SelectedAnswer:   "Alif",
				TimeTakenSeconds: 1.0,
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testSessionID).
					Return(activeSession, nil).Once()
				questionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), testQuestionID).
					Return(testQuestion, nil).Once()
				answerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.GameAnswer")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBAnswer()
			mockSessionRepo := new(mocks.SessionRepository)
			mockQuestionRepo := new(mocks.QuestionRepository)
			mockAnswerRepo := new(mocks.AnswerRepository)
			tt.setupMock(mockSessionRepo, mockQuestionRepo, mockAnswerRepo)
			answerService := NewAnswerService(db, mockSessionRepo, mockQuestionRepo, mockAnswerRepo)

			resp, err := answerService.SubmitAnswer(ctx, testSessionID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				if tt.checkResp != nil {
					tt.checkResp(t, resp)
				}
			}
			mockSessionRepo.AssertExpectations(t)
			mockQuestionRepo.AssertExpectations(t)
			mockAnswerRepo.AssertExpectations(t)
		})
	}
}
