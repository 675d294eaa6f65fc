// internal/handlers/content_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_hijaiyyah_quiz/internal/middleware"
	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/service"
	"go_hijaiyyah_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

// GetAllLevels は全レベルをレベル番号の昇順で取得するためのハンドラ
func (h *ContentHandler) GetAllLevels(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetAllLevels"))

	levels, err := h.service.GetAllLevels(r.Context())
	if err != nil {
		logger.Error("Error listing levels in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if levels == nil {
		levels = []*model.GameLevel{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, levels, logger)
}

// GetLevel はレベル番号で特定のレベルを取得するためのハンドラ
func (h *ContentHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetLevel"))

	levelNumber, ok := parseLevelNumber(w, r, logger)
	if !ok {
		return
	}

	level, err := h.service.GetLevel(r.Context(), levelNumber)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Game level not found", slog.Int("level_number", levelNumber))
		} else {
			logger.Error("Error getting level from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, level, logger)
}

// GetHijaiyyahLetters は全ヒジャーイヤ文字を取得するためのハンドラ
func (h *ContentHandler) GetHijaiyyahLetters(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetHijaiyyahLetters"))

	letters, err := h.service.GetHijaiyyahLetters(r.Context())
	if err != nil {
		logger.Error("Error listing hijaiyyah letters in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if letters == nil {
		letters = []*model.HijaiyyahLetter{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, letters, logger)
}

// GetLettersByLevel はレベルに属するヒジャーイヤ文字を取得するためのハンドラ
func (h *ContentHandler) GetLettersByLevel(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetLettersByLevel"))

	levelNumber, ok := parseLevelNumber(w, r, logger)
	if !ok {
		return
	}

	letters, err := h.service.GetLettersByLevel(r.Context(), levelNumber)
	if err != nil {
		logger.Error("Error listing letters by level in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if letters == nil {
		letters = []*model.HijaiyyahLetter{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, letters, logger)
}

// GetQuestions は出題を取得するためのハンドラ。
// クエリパラメータ: level_id (必須), type (任意), limit (任意、デフォルトは設定値)
func (h *ContentHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetQuestions"))

	levelIDStr := r.URL.Query().Get("level_id")
	levelID, err := uuid.Parse(levelIDStr)
	if err != nil {
		logger.Warn("Invalid level_id query parameter", slog.String("level_id_str", levelIDStr))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "level_idの形式が正しくありません。", "level_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	query := &model.QuestionQuery{LevelID: levelID}

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		questionType := model.QuestionType(typeStr)
		if !questionType.Valid() {
			logger.Warn("Invalid question type query parameter", slog.String("type", typeStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "不明な出題形式です。", "type", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		query.Type = &questionType
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			logger.Warn("Invalid limit query parameter", slog.String("limit_str", limitStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitは1以上の整数を指定してください。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		query.Limit = limit
	}

	questions, err := h.service.GetQuestions(r.Context(), query)
	if err != nil {
		logger.Error("Error listing questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// parseLevelNumber はURLパラメータからレベル番号を取り出します。
func parseLevelNumber(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	levelNumberStr := chi.URLParam(r, "level_number")
	levelNumber, err := strconv.Atoi(levelNumberStr)
	if err != nil || levelNumber < 1 {
		logger.Warn("Invalid level number format in URL", slog.String("level_number_str", levelNumberStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "level_numberの形式が正しくありません。", "level_number", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return levelNumber, true
}
