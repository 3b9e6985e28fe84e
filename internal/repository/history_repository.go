//go:generate mockery --name HistoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"

	"gorm.io/gorm"
)

// HistoryRepository は解答履歴（追記専用ログ）へのアクセスです。
type HistoryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, history *model.History) error
	// FindByUserJoined は単語をJOINした履歴を新しい順に返します。
	FindByUserJoined(ctx context.Context, db *gorm.DB, userID int64) ([]*model.HistoryEntry, error)
	// FindIncorrectSince は since 以降の不正解履歴を (word_id, date) の
	// 組で重複排除し、新しい順に返します。
	FindIncorrectSince(ctx context.Context, db *gorm.DB, userID int64, since time.Time) ([]*model.IncorrectWord, error)
}

type gormHistoryRepository struct{}

func NewGormHistoryRepository() HistoryRepository {
	return &gormHistoryRepository{}
}

func (r *gormHistoryRepository) Create(ctx context.Context, tx *gorm.DB, history *model.History) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(history)
	if result.Error != nil {
		logger.Error("Error creating history in DB",
			"error", result.Error,
			"user_id", history.UserID,
			"word_id", history.WordID,
		)
		return fmt.Errorf("gormHistoryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormHistoryRepository) FindByUserJoined(ctx context.Context, db *gorm.DB, userID int64) ([]*model.HistoryEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.HistoryEntry
	result := db.WithContext(ctx).
		Table("histories").
		Select("histories.id AS history_id, histories.user_id, histories.word_id, histories.date, histories.state, words.word, words.jword, words.type, words.level").
		Joins("JOIN words ON words.id = histories.word_id").
		Where("histories.user_id = ?", userID).
		Order("histories.date DESC, histories.id DESC").
		Scan(&entries)
	if result.Error != nil {
		logger.Error("Error finding history by user in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormHistoryRepository.FindByUserJoined: %w", result.Error)
	}
	return entries, nil
}

func (r *gormHistoryRepository) FindIncorrectSince(ctx context.Context, db *gorm.DB, userID int64, since time.Time) ([]*model.IncorrectWord, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.IncorrectWord
	result := db.WithContext(ctx).
		Table("histories").
		Select("DISTINCT histories.word_id, words.word, words.jword, histories.date").
		Joins("JOIN words ON words.id = histories.word_id").
		Where("histories.user_id = ? AND histories.state = ? AND histories.date >= ?", userID, model.StateIncorrect, since).
		Order("histories.date DESC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error finding incorrect history in DB",
			"error", result.Error,
			"user_id", userID,
			"since", since.Format(model.DateLayout),
		)
		return nil, fmt.Errorf("gormHistoryRepository.FindIncorrectSince: %w", result.Error)
	}
	return rows, nil
}
