// internal/handlers/answer_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/service"
	"go_hijaiyyah_quiz/internal/webutil"
)

type AnswerHandler struct {
	service service.AnswerService
}

func NewAnswerHandler(s service.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: s}
}

// SubmitAnswer はセッションに対する回答を送信するためのハンドラ
func (h *AnswerHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitAnswer"))

	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode SubmitAnswer request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, &req) {
		return
	}

	answer, err := h.service.SubmitAnswer(r.Context(), sessionID, &req)
	if err != nil {
		logger.Error("Error submitting answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, answer, logger)
}
