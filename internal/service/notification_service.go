//go:generate mockery --name NotificationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/repository"

	"gorm.io/gorm"
)

// reminderOffsets は解答イベントからの通知日オフセット（日数）です。
var reminderOffsets = []int{1, 7, 30}

// NotificationService は間隔反復リマインダーの生成と配信を担います。
type NotificationService interface {
	// ScheduleFor は解答イベントから +1/+7/+30 日の通知予定3件を
	// 作成します。カレンダー日の加算で月・年境界も正しく越えます。
	ScheduleFor(ctx context.Context, event *model.History) ([]*model.Reminder, error)
	// SendDueNotifications は本日分の未通知リマインダーを配信します。
	// 配信失敗は記録して次回スイープに持ち越し、処理は継続します。
	SendDueNotifications(ctx context.Context) (*model.NotificationSummary, error)
}

type notificationService struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	notifier     Notifier
	now          func() time.Time
}

func NewNotificationService(db *gorm.DB, reminderRepo repository.ReminderRepository, notifier Notifier) NotificationService {
	return &notificationService{
		db:           db,
		reminderRepo: reminderRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *notificationService) ScheduleFor(ctx context.Context, event *model.History) ([]*model.Reminder, error) {
	logger := middleware.GetLogger(ctx).With("user_id", event.UserID, "word_id", event.WordID)

	base := model.DateOf(event.Date)
	reminders := make([]*model.Reminder, 0, len(reminderOffsets))
	for _, days := range reminderOffsets {
		reminders = append(reminders, &model.Reminder{
			UserID:     event.UserID,
			WordID:     event.WordID,
			NotifyDate: base.AddDate(0, 0, days),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reminderRepo.CreateBatch(ctx, tx, reminders)
	})
	if err != nil {
		logger.Error("Failed to create reminder records", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知スケジュールの作成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Debug("Reminders scheduled", "count", len(reminders), "base_date", base.Format(model.DateLayout))
	return reminders, nil
}

func (s *notificationService) SendDueNotifications(ctx context.Context) (*model.NotificationSummary, error) {
	logger := middleware.GetLogger(ctx)
	today := model.DateOf(s.now())

	due, err := s.reminderRepo.FindDue(ctx, s.db, today)
	if err != nil {
		logger.Error("Failed to find due reminders", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知データの取得に失敗しました。", "", model.ErrInternalServer)
	}

	summary := &model.NotificationSummary{}
	for _, r := range due {
		message := fmt.Sprintf("復習通知: %s (%s) を復習してください！", r.Word, r.JWord)

		if err := s.notifier.Notify(ctx, r.UserID, message); err != nil {
			// 未通知のまま残し、次回スイープで再試行する
			logger.Warn("Reminder delivery failed, will retry on next sweep",
				"error", err,
				"reminder_id", r.ReminderID,
				"user_id", r.UserID,
			)
			summary.Failed++
			continue
		}

		marked, err := s.reminderRepo.MarkNotified(ctx, s.db, r.ReminderID)
		if err != nil {
			logger.Error("Failed to mark reminder as notified", "error", err, "reminder_id", r.ReminderID)
			summary.Failed++
			continue
		}
		if !marked {
			// 並行するスイープが先に配信済み。成功扱いで数えない。
			logger.Info("Reminder already marked by concurrent sweep", "reminder_id", r.ReminderID)
			continue
		}
		summary.Sent++
	}

	logger.Info("Reminder sweep finished", "due", len(due), "sent", summary.Sent, "failed", summary.Failed)
	return summary, nil
}
