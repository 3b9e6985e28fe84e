//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sync"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/config"
	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	"github.com/mizuki1024/eitango-webapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizService はレベル別クイズの出題を担います。出題候補は本日
// 解答済みの単語を除いたプールから選ばれます。
type QuizService interface {
	// GetQuestionList はプール内の全単語の3択問題リストを返します
	// （クライアント側で出題ループを回す従来形式）。レベル自体に
	// 単語が1件もない場合は ErrNotFound です。
	GetQuestionList(ctx context.Context, level int, userID int64) ([]*model.Question, error)
	// StartSession はサーバー側で状態を持つセッションを開始します。
	StartSession(ctx context.Context, userID int64, level int) (*model.QuizSessionResponse, error)
	// SubmitAnswer は解答を判定し、履歴を記録して次の問題を返します。
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, selected model.Option) (*model.QuizAnswerResponse, error)
}

type quizService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	history  HistoryService
	sampler  *Sampler
	cfg      *config.Config
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*QuizSession
}

func NewQuizService(db *gorm.DB, wordRepo repository.WordRepository, history HistoryService, sampler *Sampler, cfg *config.Config) QuizService {
	return &quizService{
		db:       db,
		wordRepo: wordRepo,
		history:  history,
		sampler:  sampler,
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*QuizSession),
	}
}

func (s *quizService) loadPool(ctx context.Context, level int, userID int64) ([]*model.Word, error) {
	today := model.DateOf(s.now())
	words, err := s.wordRepo.FindByLevelExcludingToday(ctx, s.db, level, userID, today, s.cfg.App.WordFetchLimit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", model.ErrInternalServer)
	}

	if len(words) == 0 {
		// 本日解答済みで空なのか、レベル自体が存在しないのかを区別する
		count, err := s.wordRepo.CountByLevel(ctx, s.db, level)
		if err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", model.ErrInternalServer)
		}
		if count == 0 {
			return nil, model.NewAppError("NOT_FOUND", "指定されたレベルの単語が見つかりません。", "", model.ErrNotFound)
		}
	}
	return words, nil
}

func (s *quizService) GetQuestionList(ctx context.Context, level int, userID int64) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("level", level, "user_id", userID)

	words, err := s.loadPool(ctx, level, userID)
	if err != nil {
		return nil, err
	}

	questions := make([]*model.Question, 0, len(words))
	for _, w := range words {
		q, err := s.sampler.BuildQuestion(w, words)
		if err != nil {
			// プールが小さすぎて3択を組めない単語は出題しない
			logger.Warn("Skipping word with insufficient distractor pool", "word_id", w.ID)
			continue
		}
		questions = append(questions, q)
	}

	logger.Info("Question list generated", "count", len(questions))
	return questions, nil
}

func (s *quizService) StartSession(ctx context.Context, userID int64, level int) (*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("level", level, "user_id", userID)

	words, err := s.loadPool(ctx, level, userID)
	if err != nil {
		return nil, err
	}

	session := NewQuizSession(userID, level, words, s.cfg.App.QuizLimit)
	if err := session.Start(s.sampler); err != nil {
		logger.Error("Failed to start quiz session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズの開始に失敗しました。", "", model.ErrInternalServer)
	}

	if session.State != SessionCompleted {
		s.mu.Lock()
		s.sessions[session.SessionID] = session
		s.mu.Unlock()
	}

	logger.Info("Quiz session started", "session_id", session.SessionID.String(), "state", string(session.State))
	return quizSessionResponse(session), nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, selected model.Option) (*model.QuizAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String())

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, model.NewAppError("NOT_FOUND", "セッションが見つかりません。", "", model.ErrNotFound)
	}

	word := session.CurrentWord()
	correct, correctOption, err := session.Submit(selected)
	if err != nil {
		return nil, model.NewAppError("SESSION_FINISHED", "セッションはすでに終了しています。", "", model.ErrSessionFinished)
	}

	// 履歴への書き込みは fire-and-forget。失敗しても解答結果は返し、
	// 警告として記録するだけに留める。
	state := model.StateIncorrect
	if correct {
		state = model.StateCorrect
	}
	if _, err := s.history.Register(ctx, session.UserID, word.ID, s.now(), state); err != nil {
		logger.Warn("Failed to record answer event for quiz session", "error", err, "word_id", word.ID)
	}

	if err := session.Advance(s.sampler); err != nil {
		logger.Error("Failed to advance quiz session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "次の問題の生成に失敗しました。", "", model.ErrInternalServer)
	}

	if session.State == SessionCompleted {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
	}

	return &model.QuizAnswerResponse{
		Correct:       correct,
		CorrectOption: correctOption,
		Session:       *quizSessionResponse(session),
	}, nil
}

func quizSessionResponse(session *QuizSession) *model.QuizSessionResponse {
	return &model.QuizSessionResponse{
		SessionID: session.SessionID.String(),
		Level:     session.Level,
		State:     string(session.State),
		Answered:  session.Answered,
		Question:  session.Current(),
	}
}
