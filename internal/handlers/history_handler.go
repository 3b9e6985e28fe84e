// internal/handlers/history_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service"
	"github.com/mizuki1024/eitango-webapp/internal/webutil"
)

type HistoryHandler struct {
	service service.HistoryService
	logger  *slog.Logger
}

func NewHistoryHandler(s service.HistoryService, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{
		service: s,
		logger:  logger,
	}
}

// PostHistory は解答イベントを1件記録するためのハンドラ。履歴の保存に
// 成功すると、+1/+7/+30日のリマインダーが続けて作成されます。
func (h *HistoryHandler) PostHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostHistory"))

	var req model.PostHistoryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()), slog.Any("request", req))
		webutil.HandleError(w, logger, appErr)
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		logger.Warn("Invalid date format", slog.String("date", req.Date))
		appErr := model.NewAppError("VALIDATION_ERROR", "日付の形式が正しくありません。", "date", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	history, err := h.service.Register(r.Context(), *req.UserID, *req.WordID, date, model.AnswerState(*req.State))
	if err != nil {
		logger.Error("Error registering answer event in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer event registered successfully", slog.Uint64("history_id", uint64(history.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, &model.PostHistoryResponse{
		Message:   "学習履歴を保存しました。",
		HistoryID: history.ID,
	}, logger)
}

// GetHistory は単語情報付きの学習履歴一覧を取得するためのハンドラ。
// userId クエリは必須です。
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHistory"))

	if r.URL.Query().Get("userId") == "" {
		logger.Warn("Missing userId query parameter")
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "userIdは必須です。", "userId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	userID, appErr := parseUserID(r, 0)
	if appErr != nil {
		logger.Warn("Invalid userId query parameter", slog.String("raw", r.URL.Query().Get("userId")))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	entries, err := h.service.GetHistory(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No history found for user")
		} else {
			logger.Error("Error listing history in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("History listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"history": entries}, logger)
}

// GetIncorrectWords は不正解だった単語の一覧を取得するためのハンドラ。
// date クエリで「この日以降」に絞り込めます（省略時は全期間）。
func (h *HistoryHandler) GetIncorrectWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetIncorrectWords"))

	userID, appErr := parseUserID(r, 1)
	if appErr != nil {
		logger.Warn("Invalid userId query parameter", slog.String("raw", r.URL.Query().Get("userId")))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	sinceStr := r.URL.Query().Get("date")
	if sinceStr == "" {
		sinceStr = "1970-01-01"
	}
	since, err := model.ParseDate(sinceStr)
	if err != nil {
		logger.Warn("Invalid date query parameter", slog.String("date", sinceStr))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "dateの形式が正しくありません。", "date", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	words, err := h.service.GetIncorrectSince(r.Context(), userID, since)
	if err != nil {
		logger.Error("Error listing incorrect words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.IncorrectWordResponse{}
	}
	logger.Info("Incorrect words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}
