// internal/model/reminder.go
package model

import "time"

// Reminder は過去の解答イベントに紐づく将来の通知予定です。
// 解答イベント1件につき +1/+7/+30 日の3件がまとめて作られます。
// 変更されるのは Notified フラグの false→true の1回だけで、
// 監査のため削除は行いません。
type Reminder struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	WordID     uint      `gorm:"not null" json:"word_id"`
	NotifyDate time.Time `gorm:"type:date;not null;index" json:"notify_date"`
	Notified   bool      `gorm:"not null;default:false" json:"notified"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// DueReminder は配信対象のリマインダーと単語をJOINした行です。
type DueReminder struct {
	ReminderID uint
	UserID     int64
	WordID     uint
	Word       string
	JWord      string `gorm:"column:jword"`
}

// NotificationSummary は通知スイープ1回分の結果サマリです。
type NotificationSummary struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
