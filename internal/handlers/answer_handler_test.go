package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_hijaiyyah_quiz/internal/handlers"
	"go_hijaiyyah_quiz/internal/model"

	svc_mocks "go_hijaiyyah_quiz/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAnswerRouter(mockService *svc_mocks.AnswerService) chi.Router {
	handler := handlers.NewAnswerHandler(mockService)
	r := chi.NewRouter()
	r.Post("/api/v1/sessions/{session_id}/answers", handler.SubmitAnswer)
	return r
}

// --- Test SubmitAnswer ---
func TestAnswerHandler_SubmitAnswer(t *testing.T) {
	testSessionID := uuid.New()
	testQuestionID := uuid.New()

	validBody := model.SubmitAnswerRequest{
		QuestionID:       testQuestionID,
		SelectedAnswer:   "Alif",
		TimeTakenSeconds: 1.5,
	}

	tests := []struct {
		name           string
		sessionIDStr   string
		body           interface{}
		setupMock      func(mockService *svc_mocks.AnswerService)
		wantStatusCode int
		wantErrCode    string
	}{
		{
			name:         "正常系: 回答送信成功",
			sessionIDStr: testSessionID.String(),
			body:         validBody,
			setupMock: func(mockService *svc_mocks.AnswerService) {
				mockService.On("SubmitAnswer", mock.Anything, testSessionID, mock.MatchedBy(func(req *model.SubmitAnswerRequest) bool {
					return req.QuestionID == testQuestionID && req.SelectedAnswer == "Alif" && req.TimeTakenSeconds == 1.5
				})).Return(&model.SubmitAnswerResponse{
					AnswerID:         uuid.New(),
					SessionID:        testSessionID,
					QuestionID:       testQuestionID,
					SelectedAnswer:   "Alif",
					IsCorrect:        true,
					TimeTakenSeconds: 1.5,
					PointsEarned:     15,
				}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:         "異常系: セッションIDがUUIDではない",
			sessionIDStr: "not-a-uuid",
			body:         validBody,
			setupMock: func(mockService *svc_mocks.AnswerService) {
				// サービスは呼ばれないはず
			},
			wantStatusCode: http.StatusBadRequest,
			wantErrCode:    "INVALID_URL_PARAM",
		},
		{
			name:         "異常系: 回答時間の指定なし (バリデーションエラー)",
			sessionIDStr: testSessionID.String(),
			body:         `{"question_id":"` + testQuestionID.String() + `","selected_answer":"Alif"}`,
			setupMock: func(mockService *svc_mocks.AnswerService) {
				// サービスは呼ばれないはず
			},
			wantStatusCode: http.StatusBadRequest,
			wantErrCode:    "VALIDATION_ERROR",
		},
		{
			name:         "異常系: セッションが終了済み (409)",
			sessionIDStr: testSessionID.String(),
			body:         validBody,
			setupMock: func(mockService *svc_mocks.AnswerService) {
				mockService.On("SubmitAnswer", mock.Anything, testSessionID, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, model.NewAppError("SESSION_NOT_ACTIVE", "ゲームセッションは既に終了しています。", "session_id", model.ErrSessionNotActive)).Once()
			},
			wantStatusCode: http.StatusConflict,
			wantErrCode:    "SESSION_NOT_ACTIVE",
		},
		{
			name:         "異常系: 問題が存在しない (404)",
			sessionIDStr: testSessionID.String(),
			body:         validBody,
			setupMock: func(mockService *svc_mocks.AnswerService) {
				mockService.On("SubmitAnswer", mock.Anything, testSessionID, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, model.NewAppError("QUESTION_NOT_FOUND", "問題が見つかりません。", "question_id", model.ErrNotFound)).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantErrCode:    "QUESTION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.AnswerService)
			tt.setupMock(mockService)
			router := setupAnswerRouter(mockService)

			req := newJsonRequest(t, http.MethodPost, "/api/v1/sessions/"+tt.sessionIDStr+"/answers", tt.body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantStatusCode == http.StatusCreated {
				var resp model.SubmitAnswerResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.IsCorrect)
				assert.Equal(t, 15, resp.PointsEarned)
				assert.Equal(t, 1.5, resp.TimeTakenSeconds)
			} else if tt.wantErrCode != "" {
				errResp := decodeErrorResponse(t, rec)
				assert.Equal(t, tt.wantErrCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}
