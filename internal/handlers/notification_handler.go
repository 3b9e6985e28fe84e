// internal/handlers/notification_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mizuki1024/eitango-webapp/internal/service"
	"github.com/mizuki1024/eitango-webapp/internal/webutil"
)

type NotificationHandler struct {
	service service.NotificationService
	logger  *slog.Logger
}

func NewNotificationHandler(s service.NotificationService, logger *slog.Logger) *NotificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationHandler{
		service: s,
		logger:  logger,
	}
}

// SendNotifications は本日分の未通知リマインダーを即時配信するための
// ハンドラ。日次スケジューラと同じスイープを手動で起動します。
func (h *NotificationHandler) SendNotifications(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SendNotifications"))

	summary, err := h.service.SendDueNotifications(r.Context())
	if err != nil {
		logger.Error("Error sweeping due reminders in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reminder sweep triggered successfully", slog.Int("sent", summary.Sent), slog.Int("failed", summary.Failed))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "通知処理が完了しました。",
		"sent":    summary.Sent,
		"failed":  summary.Failed,
	}, logger)
}
