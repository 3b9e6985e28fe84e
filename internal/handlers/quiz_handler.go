// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/service"
	"github.com/mizuki1024/eitango-webapp/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// StartSession はサーバー側で状態を持つクイズセッションを開始するためのハンドラ
func (h *QuizHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartQuizSession"))

	var req model.StartQuizRequest
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

	session, err := h.service.StartSession(r.Context(), *req.UserID, *req.Level)
	if err != nil {
		logger.Error("Error starting quiz session in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz session started successfully", slog.String("session_id", session.SessionID))
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// SubmitAnswer は現在の問題への解答を判定するためのハンドラ
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitQuizAnswer"))

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.QuizAnswerRequest
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

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, *req.Option)
	if err != nil {
		logger.Error("Error submitting quiz answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz answer submitted successfully", slog.Bool("correct", result.Correct))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
