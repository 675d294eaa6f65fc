//go:generate mockery --name AnswerService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerService は回答送信（検証 → 採点 → 永続化 → スコア更新）を担います。
type AnswerService interface {
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
}

type answerService struct {
	db           *gorm.DB
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewAnswerService(db *gorm.DB, sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{
		db:           db,
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// SubmitAnswer は1回の回答を処理します。
// 回答履歴の追加とスコア加算は同一トランザクションで行い、
// どちらか一方だけが反映されて履歴とスコアが食い違うことを防ぎます。
// スコア加算は current_score = current_score + ? のUPDATEで行うため、
// 同一セッションへの同時送信でも加算が失われません。
func (s *answerService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID, "question_id", req.QuestionID)

	if req.TimeTakenSeconds <= 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "回答時間（秒）は0より大きい値を指定してください。", "time_taken_seconds", model.ErrInvalidInput)
	}

	var resp *model.SubmitAnswerResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. セッションの存在とアクティブ状態を確認
		session, err := s.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "ゲームセッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error finding session in transaction", "error", err)
			return model.ErrInternalServer
		}
		if !session.IsActive {
			return model.NewAppError("SESSION_NOT_ACTIVE", "ゲームセッションは既に終了しています。", "session_id", model.ErrSessionNotActive)
		}

		// 2. 出題の存在を確認
		question, err := s.questionRepo.FindByID(ctx, tx, req.QuestionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("QUESTION_NOT_FOUND", "問題が見つかりません。", "question_id", model.ErrNotFound)
			}
			logger.Error("Error finding question in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 3. 採点 (完全一致、大文字小文字の正規化なし)
		isCorrect := req.SelectedAnswer == question.CorrectAnswer
		points := CalculatePoints(isCorrect, req.TimeTakenSeconds)

		// 4. 回答履歴に追記 (回答時間は整数へ切り捨てて保存)
		now := time.Now()
		answer := &model.GameAnswer{
			AnswerID:         uuid.New(),
			SessionID:        session.SessionID,
			QuestionID:       question.QuestionID,
			SelectedAnswer:   req.SelectedAnswer,
			IsCorrect:        isCorrect,
			TimeTakenSeconds: int(req.TimeTakenSeconds),
			PointsEarned:     points,
			AnsweredAt:       now,
		}
		if err := s.answerRepo.Create(ctx, tx, answer); err != nil {
			logger.Error("Error creating answer in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 5. セッションスコアをストレージ層で加算
		if err := s.sessionRepo.AddScore(ctx, tx, session.SessionID, points); err != nil {
			logger.Error("Error adding score in transaction", "error", err)
			return model.ErrInternalServer
		}

		// レスポンスには受信した実数値の回答時間をそのまま返す
		resp = answer.ToResponse(req.TimeTakenSeconds)
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitAnswer", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Answer submitted", "is_correct", resp.IsCorrect, "points_earned", resp.PointsEarned)
	return resp, nil
}
