// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service"
	"github.com/mizuki1024/eitango-webapp/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewWordHandler(s service.QuizService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetQuestions はレベル別の3択問題リストを取得するためのハンドラ。
// 本日すでに解答した単語は出題候補から除かれます。
func (h *WordHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestions"))

	levelStr := chi.URLParam(r, "level")
	level, err := strconv.Atoi(levelStr)
	if err != nil || level < 1 {
		logger.Warn("Invalid level format in URL", slog.String("level_str", levelStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "levelの形式が正しくありません。", "level", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	userID, appErr := parseUserID(r, 1)
	if appErr != nil {
		logger.Warn("Invalid userId query parameter", slog.String("raw", r.URL.Query().Get("userId")))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("level", level), slog.Int64("user_id", userID))

	questions, err := h.service.GetQuestionList(r.Context(), level, userID)
	if err != nil {
		logger.Error("Error generating question list in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	logger.Info("Question list generated successfully", slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// parseUserID は userId クエリパラメータを読み取ります。未指定の場合は
// fallback を使い、形式不正のときだけエラーにします。
func parseUserID(r *http.Request, fallback int64) (int64, *model.AppError) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return fallback, nil
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 1 {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", "userIdの形式が正しくありません。", "userId", model.ErrInvalidInput)
	}
	return userID, nil
}
