// internal/service/history_integration_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.Word{}, &model.History{}, &model.Reminder{}))
	return db
}

// 解答イベント登録からリマインダー作成・不正解照会までを
// 実リポジトリ + インメモリDBで通して確認する。
func Test_historyService_Register_EndToEnd(t *testing.T) {
	ctx := context.Background()
	db := setupMigratedDB(t)

	require.NoError(t, db.Create(&model.Word{ID: 42, Word: "persist", JWord: "固執する", Type: "verb", Level: 3}).Error)

	histRepo := repository.NewGormHistoryRepository()
	reminderRepo := repository.NewGormReminderRepository()
	notifications := NewNotificationService(db, reminderRepo, &LogNotifier{})
	svc := NewHistoryService(db, histRepo, notifications)

	eventDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history, err := svc.Register(ctx, 1, 42, eventDate, model.StateIncorrect)
	require.NoError(t, err)
	require.NotZero(t, history.ID)

	// リマインダーが +1/+7/+30 日で3件できている
	reminders, err := reminderRepo.FindByUser(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Equal(t, "2025-01-02", reminders[0].NotifyDate.Format(model.DateLayout))
	assert.Equal(t, "2025-01-08", reminders[1].NotifyDate.Format(model.DateLayout))
	assert.Equal(t, "2025-01-31", reminders[2].NotifyDate.Format(model.DateLayout))
	for _, r := range reminders {
		assert.Equal(t, uint(42), r.WordID)
		assert.False(t, r.Notified)
	}

	// 不正解照会に (単語, 日付) の組が現れる
	incorrect, err := svc.GetIncorrectSince(ctx, 1, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, incorrect, 1)
	assert.Equal(t, uint(42), incorrect[0].WordID)
	assert.Equal(t, "persist", incorrect[0].Word)
	assert.Equal(t, "2025-01-01", incorrect[0].Date)
}

// スイープを2回流し、2回目は何も配信されないこと（冪等性）を確認する。
func Test_notificationService_Sweep_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupMigratedDB(t)

	require.NoError(t, db.Create(&model.Word{ID: 10, Word: "apple", JWord: "りんご", Type: "noun", Level: 1}).Error)

	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.Reminder{UserID: 1, WordID: 10, NotifyDate: today}).Error)

	reminderRepo := repository.NewGormReminderRepository()
	svc := &notificationService{
		db:           db,
		reminderRepo: reminderRepo,
		notifier:     &LogNotifier{},
		now:          func() time.Time { return today },
	}

	summary, err := svc.SendDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 0, summary.Failed)

	// 2回目のスイープでは配信対象が残っていない
	summary, err = svc.SendDueNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
}
