// internal/handlers/session_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/service"
	"go_hijaiyyah_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

// CreateSession は新しいゲームセッションを作成するためのハンドラ
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateSession"))

	var req model.CreateSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, &req) {
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Game session created", slog.String("session_id", session.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// GetSession は特定のゲームセッションを取得するためのハンドラ
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetSession"))

	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 見つからないのは異常ではない (古いクライアントからの問い合わせ等)
			logger.Info("Game session not found")
		} else {
			logger.Error("Error getting session from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// PatchSession は特定のゲームセッションの一部を更新するためのハンドラ
func (h *SessionHandler) PatchSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PatchSession"))

	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.PatchSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchSession request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.CurrentLevel == nil && req.CurrentScore == nil && req.LivesRemaining == nil && req.IsActive == nil {
		logger.Warn("PatchSession called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, &req) {
		return
	}

	session, err := h.service.PatchSession(r.Context(), sessionID, &req)
	if err != nil {
		logger.Error("Error patching session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Game session patched")
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// parseSessionID はURLパラメータからセッションIDを取り出します。
// 形式不正の場合はエラーレスポンスを書き込んで false を返します。
func parseSessionID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return sessionID, true
}
