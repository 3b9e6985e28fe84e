//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sync"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// epoch は「全期間」を表す下限日付です。
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ReviewService は間違い単語の復習セッションを担います。
// 復習は不正解履歴（state=2）の (単語, 日付) の組に対して行います。
type ReviewService interface {
	// GetReviewDates は不正解が1件以上ある日付とその件数を
	// 新しい順に返します。
	GetReviewDates(ctx context.Context, userID int64) ([]*model.ReviewDateResponse, error)
	StartSession(ctx context.Context, userID int64, date time.Time) (*model.ReviewSessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, choice string) (*model.ReviewAnswerResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	histRepo repository.HistoryRepository
	sampler  *Sampler

	mu       sync.Mutex
	sessions map[uuid.UUID]*ReviewSession
}

func NewReviewService(db *gorm.DB, histRepo repository.HistoryRepository, sampler *Sampler) ReviewService {
	return &reviewService{
		db:       db,
		histRepo: histRepo,
		sampler:  sampler,
		sessions: make(map[uuid.UUID]*ReviewSession),
	}
}

func (s *reviewService) GetReviewDates(ctx context.Context, userID int64) ([]*model.ReviewDateResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	rows, err := s.histRepo.FindIncorrectSince(ctx, s.db, userID, epoch)
	if err != nil {
		logger.Error("Failed to load mistake history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習データの取得に失敗しました。", "", model.ErrInternalServer)
	}

	// 新しい順を保ったまま日付ごとに件数を集計する
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range rows {
		date := r.Date.Format(model.DateLayout)
		if _, ok := counts[date]; !ok {
			order = append(order, date)
		}
		counts[date]++
	}

	responses := make([]*model.ReviewDateResponse, 0, len(order))
	for _, date := range order {
		responses = append(responses, &model.ReviewDateResponse{Date: date, Mistakes: counts[date]})
	}

	logger.Info("Review dates listed", "count", len(responses))
	return responses, nil
}

func (s *reviewService) StartSession(ctx context.Context, userID int64, date time.Time) (*model.ReviewSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "date", date.Format(model.DateLayout))

	rows, err := s.histRepo.FindIncorrectSince(ctx, s.db, userID, epoch)
	if err != nil {
		logger.Error("Failed to load mistake history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習データの取得に失敗しました。", "", model.ErrInternalServer)
	}

	day := model.DateOf(date)
	mistakes := make([]*model.IncorrectWord, 0)
	corpus := make([]string, 0, len(rows))
	for _, r := range rows {
		corpus = append(corpus, r.JWord)
		if model.DateOf(r.Date).Equal(day) {
			mistakes = append(mistakes, r)
		}
	}
	if len(mistakes) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "指定された日付の間違い履歴が見つかりません。", "", model.ErrNotFound)
	}

	session := NewReviewSession(userID, day, mistakes, corpus)
	if err := session.Start(s.sampler); err != nil {
		// 間違い単語が少なすぎて3択を組めない場合もここに来る
		logger.Warn("Failed to start review session", "error", err)
		return nil, model.NewAppError("INSUFFICIENT_POOL", "選択肢を組み立てるには間違い単語が不足しています。", "", model.ErrInsufficientPool)
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	logger.Info("Review session started", "session_id", session.SessionID.String(), "mistakes", session.Initial)
	return reviewSessionResponse(session), nil
}

func (s *reviewService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, choice string) (*model.ReviewAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String())

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, model.NewAppError("NOT_FOUND", "セッションが見つかりません。", "", model.ErrNotFound)
	}

	correct, answer, err := session.Submit(choice, s.sampler)
	if err != nil {
		if err == model.ErrSessionFinished {
			return nil, model.NewAppError("SESSION_FINISHED", "セッションはすでに終了しています。", "", model.ErrSessionFinished)
		}
		logger.Error("Failed to build next review question", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "次の問題の生成に失敗しました。", "", model.ErrInternalServer)
	}

	if session.State == SessionFinished {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		logger.Info("Review session finished",
			"correct", session.CorrectCount,
			"total", session.Initial,
			"score", session.Score(),
		)
	}

	return &model.ReviewAnswerResponse{
		Correct: correct,
		Answer:  answer,
		Session: *reviewSessionResponse(session),
	}, nil
}

func reviewSessionResponse(session *ReviewSession) *model.ReviewSessionResponse {
	resp := &model.ReviewSessionResponse{
		SessionID:    session.SessionID.String(),
		Date:         session.Date.Format(model.DateLayout),
		State:        string(session.State),
		CorrectCount: session.CorrectCount,
		Remaining:    session.Remaining(),
		Total:        session.Initial,
		Question:     session.Current(),
	}
	if session.State == SessionFinished {
		score := session.Score()
		resp.Score = &score
	}
	return resp
}
