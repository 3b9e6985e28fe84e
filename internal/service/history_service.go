//go:generate mockery --name HistoryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/repository"

	"gorm.io/gorm"
)

// HistoryService は解答履歴の記録と参照を担います。履歴が正であり、
// リマインダー作成はベストエフォートです。
type HistoryService interface {
	// Register は解答イベントを1件記録し、続けて通知予定を作成します。
	// 履歴の書き込みは原子的に行い、リマインダー作成の失敗は
	// ログに残して処理を継続します（縮退、ロールバックしない）。
	Register(ctx context.Context, userID int64, wordID uint, date time.Time, state model.AnswerState) (*model.History, error)
	GetHistory(ctx context.Context, userID int64) ([]*model.HistoryEntryResponse, error)
	GetIncorrectSince(ctx context.Context, userID int64, since time.Time) ([]*model.IncorrectWordResponse, error)
}

type historyService struct {
	db            *gorm.DB
	histRepo      repository.HistoryRepository
	notifications NotificationService
}

func NewHistoryService(db *gorm.DB, histRepo repository.HistoryRepository, notifications NotificationService) HistoryService {
	return &historyService{
		db:            db,
		histRepo:      histRepo,
		notifications: notifications,
	}
}

func (s *historyService) Register(ctx context.Context, userID int64, wordID uint, date time.Time, state model.AnswerState) (*model.History, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", wordID)

	if !state.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "解答状態の値が不正です。", "state", model.ErrInvalidInput)
	}

	history := &model.History{
		UserID: userID,
		WordID: wordID,
		Date:   model.DateOf(date),
		State:  state,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.histRepo.Create(ctx, tx, history)
	})
	if err != nil {
		logger.Error("Failed to record answer event", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の保存に失敗しました。", "", model.ErrInternalServer)
	}

	// 履歴の書き込み成功後のリマインダー作成失敗は縮退イベント。
	// 通知が1件漏れるだけでデータ破損ではないため、ログに残して続行。
	if _, err := s.notifications.ScheduleFor(ctx, history); err != nil {
		logger.Warn("Failed to schedule reminders for answer event, continuing without them",
			"error", err,
			"history_id", history.ID,
		)
	}

	logger.Info("Answer event recorded", "history_id", history.ID, "state", int(state))
	return history, nil
}

func (s *historyService) GetHistory(ctx context.Context, userID int64) ([]*model.HistoryEntryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	entries, err := s.histRepo.FindByUserJoined(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の取得中にエラーが発生しました。", "", model.ErrInternalServer)
	}
	if len(entries) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "履歴が見つかりません。", "", model.ErrNotFound)
	}

	responses := make([]*model.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, &model.HistoryEntryResponse{
			HistoryID: e.HistoryID,
			UserID:    e.UserID,
			WordID:    e.WordID,
			Date:      e.Date.Format(model.DateLayout),
			State:     int(e.State),
			Word:      e.Word,
			JWord:     e.JWord,
			Type:      e.Type,
			Level:     e.Level,
		})
	}
	return responses, nil
}

func (s *historyService) GetIncorrectSince(ctx context.Context, userID int64, since time.Time) ([]*model.IncorrectWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	rows, err := s.histRepo.FindIncorrectSince(ctx, s.db, userID, model.DateOf(since))
	if err != nil {
		logger.Error("Failed to find incorrect history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "間違えた履歴の取得に失敗しました。", "", model.ErrInternalServer)
	}

	responses := make([]*model.IncorrectWordResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, &model.IncorrectWordResponse{
			WordID: r.WordID,
			Word:   r.Word,
			JWord:  r.JWord,
			Date:   r.Date.Format(model.DateLayout),
		})
	}
	return responses, nil
}
