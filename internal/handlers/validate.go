// internal/handlers/validate.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_hijaiyyah_quiz/internal/model"
	"go_hijaiyyah_quiz/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateRequest はDTOをバリデーションし、エラーがあればレスポンスを書き込んで false を返します。
func validateRequest(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			// バリデーションライブラリ自体のエラーなど、予期せぬエラー
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}
