//go:generate mockery --name ReminderRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"

	"gorm.io/gorm"
)

// ReminderRepository は通知予定レコードへのアクセスです。
// レコードは削除されず、Notified フラグだけが更新されます。
type ReminderRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, reminders []*model.Reminder) error
	// FindDue は notify_date が date と一致し、未通知のレコードを
	// 単語とJOINして返します。
	FindDue(ctx context.Context, db *gorm.DB, date time.Time) ([]*model.DueReminder, error)
	// MarkNotified は未通知のレコードだけを通知済みに更新します。
	// 並行するスイープがすでに更新していた場合は false を返します。
	MarkNotified(ctx context.Context, tx *gorm.DB, reminderID uint) (bool, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]*model.Reminder, error)
}

type gormReminderRepository struct{}

func NewGormReminderRepository() ReminderRepository {
	return &gormReminderRepository{}
}

func (r *gormReminderRepository) CreateBatch(ctx context.Context, tx *gorm.DB, reminders []*model.Reminder) error {
	logger := middleware.GetLogger(ctx)
	if len(reminders) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(&reminders)
	if result.Error != nil {
		logger.Error("Error creating reminders in DB",
			"error", result.Error,
			"count", len(reminders),
		)
		return fmt.Errorf("gormReminderRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormReminderRepository) FindDue(ctx context.Context, db *gorm.DB, date time.Time) ([]*model.DueReminder, error) {
	logger := middleware.GetLogger(ctx)
	var due []*model.DueReminder
	result := db.WithContext(ctx).
		Table("reminders").
		Select("reminders.id AS reminder_id, reminders.user_id, reminders.word_id, words.word, words.jword").
		Joins("JOIN words ON words.id = reminders.word_id").
		Where("reminders.notify_date = ? AND reminders.notified = ?", date, false).
		Scan(&due)
	if result.Error != nil {
		logger.Error("Error finding due reminders in DB",
			"error", result.Error,
			"date", date.Format(model.DateLayout),
		)
		return nil, fmt.Errorf("gormReminderRepository.FindDue: %w", result.Error)
	}
	return due, nil
}

func (r *gormReminderRepository) MarkNotified(ctx context.Context, tx *gorm.DB, reminderID uint) (bool, error) {
	logger := middleware.GetLogger(ctx)
	// notified = false の行だけを対象にした check-then-set。
	// RowsAffected が 0 なら別のスイープが先に更新している。
	result := tx.WithContext(ctx).
		Model(&model.Reminder{}).
		Where("id = ? AND notified = ?", reminderID, false).
		Update("notified", true)
	if result.Error != nil {
		logger.Error("Error marking reminder notified in DB", "error", result.Error, "reminder_id", reminderID)
		return false, fmt.Errorf("gormReminderRepository.MarkNotified: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormReminderRepository) FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]*model.Reminder, error) {
	logger := middleware.GetLogger(ctx)
	var reminders []*model.Reminder
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("notify_date ASC").
		Find(&reminders)
	if result.Error != nil {
		logger.Error("Error finding reminders by user in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormReminderRepository.FindByUser: %w", result.Error)
	}
	return reminders, nil
}
