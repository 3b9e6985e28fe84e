// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mizuki1024/eitango-webapp/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ValidateStruct は共有バリデータで構造体を検証し、失敗時は
// 翻訳済みメッセージを持つ AppError を返します。
func ValidateStruct(dst interface{}) *model.AppError {
	if err := Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
		}
		return model.NewAppError("VALIDATION_ERROR", "入力内容の検証に失敗しました。", "", model.ErrInvalidInput)
	}
	return nil
}
