// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/service"
	"go_hijaiyyah_quiz/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetSessionProgress はセッションの進捗統計を取得するためのハンドラ
func (h *ProgressHandler) GetSessionProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetSessionProgress"))

	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	progress, err := h.service.GetSessionProgress(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Game session not found for progress")
		} else {
			logger.Error("Error getting session progress from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
