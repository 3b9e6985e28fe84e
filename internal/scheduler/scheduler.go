// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mizuki1024/eitango-webapp/internal/service"
)

// Scheduler は期限到来リマインダーの日次スイープを実行します。
type Scheduler struct {
	scheduler     *gocron.Scheduler
	notifications service.NotificationService
	logger        *slog.Logger
}

func New(notifications service.NotificationService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler:     gocron.NewScheduler(time.UTC),
		notifications: notifications,
		logger:        logger,
	}
}

// Start は sweepAt（"HH:MM"）に日次ジョブを登録し、非同期で開始します。
func (s *Scheduler) Start(sweepAt string) error {
	if _, err := s.scheduler.Every(1).Day().At(sweepAt).Do(s.sweep); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder sweep scheduled", "at", sweepAt)
	return nil
}

// Stop は登録済みジョブを全て停止します。
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := s.notifications.SendDueNotifications(ctx)
	if err != nil {
		s.logger.Error("Scheduled reminder sweep failed", "error", err)
		return
	}
	s.logger.Info("Scheduled reminder sweep completed", "sent", summary.Sent, "failed", summary.Failed)
}
