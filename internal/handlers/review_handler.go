// internal/handlers/review_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service"
	"github.com/mizuki1024/eitango-webapp/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetDates は不正解のある日付一覧を取得するためのハンドラ
func (h *ReviewHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewDates"))

	userID, appErr := parseUserID(r, 1)
	if appErr != nil {
		logger.Warn("Invalid userId query parameter", slog.String("raw", r.URL.Query().Get("userId")))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	dates, err := h.service.GetReviewDates(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing review dates in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if dates == nil {
		dates = []*model.ReviewDateResponse{}
	}
	logger.Info("Review dates listed successfully", slog.Int("count", len(dates)))
	webutil.RespondWithJSON(w, http.StatusOK, dates, logger)
}

// StartSession は指定日付の間違い単語で復習セッションを開始するためのハンドラ
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartReviewSession"))

	var req model.StartReviewRequest
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

	session, err := h.service.StartSession(r.Context(), *req.UserID, date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No mistakes found for the requested date", slog.String("date", req.Date))
		} else {
			logger.Error("Error starting review session in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review session started successfully", slog.String("session_id", session.SessionID))
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// SubmitAnswer は復習テストの解答を判定するためのハンドラ
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitReviewAnswer"))

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.ReviewAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, req.Choice)
	if err != nil {
		logger.Error("Error submitting review answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review answer submitted successfully", slog.Bool("correct", result.Correct))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
