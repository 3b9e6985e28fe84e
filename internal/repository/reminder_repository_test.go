// internal/repository/reminder_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormReminderRepository_CreateBatchAndFindByUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReminderRepository()

	reminders := []*model.Reminder{
		{UserID: 1, WordID: 10, NotifyDate: date(2026, time.September, 29)},
		{UserID: 1, WordID: 10, NotifyDate: date(2026, time.August, 31)},
		{UserID: 1, WordID: 10, NotifyDate: date(2026, time.September, 6)},
	}
	require.NoError(t, repo.CreateBatch(ctx, db, reminders))

	// 空のバッチはno-op
	require.NoError(t, repo.CreateBatch(ctx, db, nil))

	got, err := repo.FindByUser(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// notify_date の昇順
	assert.Equal(t, "2026-08-31", got[0].NotifyDate.Format(model.DateLayout))
	assert.Equal(t, "2026-09-06", got[1].NotifyDate.Format(model.DateLayout))
	assert.Equal(t, "2026-09-29", got[2].NotifyDate.Format(model.DateLayout))
}

func Test_gormReminderRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReminderRepository()

	today := date(2026, time.August, 30)

	seedWords(t, db, []*model.Word{
		{ID: 10, Word: "apple", JWord: "りんご", Type: "noun", Level: 1},
		{ID: 11, Word: "banana", JWord: "バナナ", Type: "noun", Level: 1},
	})
	require.NoError(t, repo.CreateBatch(ctx, db, []*model.Reminder{
		{UserID: 1, WordID: 10, NotifyDate: today},
		{UserID: 1, WordID: 11, NotifyDate: date(2026, time.August, 31)}, // 明日の分
		{UserID: 2, WordID: 11, NotifyDate: today, Notified: true},      // 通知済み
	}))

	due, err := repo.FindDue(ctx, db, today)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, int64(1), due[0].UserID)
	assert.Equal(t, uint(10), due[0].WordID)
	assert.Equal(t, "apple", due[0].Word)
	assert.Equal(t, "りんご", due[0].JWord)
}

func Test_gormReminderRepository_MarkNotified(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReminderRepository()

	reminders := []*model.Reminder{
		{UserID: 1, WordID: 10, NotifyDate: date(2026, time.August, 30)},
	}
	require.NoError(t, repo.CreateBatch(ctx, db, reminders))
	reminderID := reminders[0].ID
	require.NotZero(t, reminderID)

	// 1回目は成功
	marked, err := repo.MarkNotified(ctx, db, reminderID)
	require.NoError(t, err)
	assert.True(t, marked)

	// 2回目はすでに通知済みなので false（冪等）
	marked, err = repo.MarkNotified(ctx, db, reminderID)
	require.NoError(t, err)
	assert.False(t, marked)

	// マーク後は FindDue に現れない
	due, err := repo.FindDue(ctx, db, date(2026, time.August, 30))
	require.NoError(t, err)
	assert.Empty(t, due)
}
