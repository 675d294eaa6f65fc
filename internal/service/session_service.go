//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_hijaiyyah_quiz/internal/config"
	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService はゲームセッションのライフサイクルを管理します。
type SessionService interface {
	CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.GameSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*model.GameSession, error)
	PatchSession(ctx context.Context, sessionID uuid.UUID, req *model.PatchSessionRequest) (*model.GameSession, error)
}

type sessionService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	sessionRepo repository.SessionRepository
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
	}
}

// CreateSession は新しいゲームセッションを作成します。
// current_score と is_active はリクエスト内容に関わらず常に 0 / true で初期化されます。
func (s *sessionService) CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)

	if req.PlayerName == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "プレイヤー名は必須項目です。", "player_name", model.ErrInvalidInput)
	}

	level := config.DefaultStartLevel
	if req.CurrentLevel != nil {
		level = *req.CurrentLevel
	}
	if level < 1 {
		return nil, model.NewAppError("VALIDATION_ERROR", "現在のレベルは1以上を指定してください。", "current_level", model.ErrInvalidInput)
	}

	lives := config.DefaultStartLives
	if req.LivesRemaining != nil {
		lives = *req.LivesRemaining
	}
	if lives < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "残りライフは0以上を指定してください。", "lives_remaining", model.ErrInvalidInput)
	}

	now := time.Now()
	session := &model.GameSession{
		SessionID:      uuid.New(),
		PlayerName:     req.PlayerName,
		CurrentLevel:   level,
		CurrentScore:   0,
		LivesRemaining: lives,
		SessionStart:   now,
		SessionEnd:     nil,
		IsActive:       true,
	}

	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Error creating game session", "error", err)
		return nil, model.ErrInternalServer
	}

	return session, nil
}

// GetSession はセッションを取得します。存在しない場合は ErrNotFound を返します
// （呼び出し側にとって「見つからない」は異常ではなく通常の結果）。
func (s *sessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*model.GameSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return session, nil
}

// PatchSession はセッションを部分更新します。指定されたフィールドだけが適用されます。
// is_active を false に変更するとき、同じ更新の副作用として session_end に現在時刻を記録します。
// false → true の遷移で session_end をクリアすることはありません（復活のセマンティクスは未定義）。
func (s *sessionService) PatchSession(ctx context.Context, sessionID uuid.UUID, req *model.PatchSessionRequest) (*model.GameSession, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	var updatedSession *model.GameSession

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.sessionRepo.FindByID(ctx, tx, sessionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "ゲームセッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error finding session in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 2. 指定されたフィールドのみ更新内容に反映
		updates := make(map[string]interface{})
		if req.CurrentLevel != nil {
			updates["current_level"] = *req.CurrentLevel
		}
		if req.CurrentScore != nil {
			updates["current_score"] = *req.CurrentScore
		}
		if req.LivesRemaining != nil {
			updates["lives_remaining"] = *req.LivesRemaining
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
			if !*req.IsActive {
				// 非アクティブ化と同時に終了時刻を記録する
				now := time.Now()
				updates["session_end"] = &now
			}
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.sessionRepo.Update(ctx, tx, sessionID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("SESSION_NOT_FOUND", "ゲームセッションが見つかりません。", "session_id", model.ErrNotFound)
				}
				logger.Error("Error updating session in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		// 更新後のデータをトランザクション内で取得する
		session, err := s.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			logger.Error("Error fetching updated session in transaction", "error", err)
			return model.ErrInternalServer
		}
		updatedSession = session
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchSession", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedSession, nil
}
