// internal/service/quiz_session.go
package service

import (
	"github.com/google/uuid"

	"github.com/mizuki1024/eitango-webapp/internal/model"
)

// SessionState はクイズ・復習セッションの状態です。
type SessionState string

const (
	SessionReady     SessionState = "ready"
	SessionActive    SessionState = "active"
	SessionCompleted SessionState = "completed"
	SessionFinished  SessionState = "finished"
)

// QuizSession は1セッション分の出題状態を持つ明示的な状態機械です。
// Ready → Active → Completed と遷移し、同じ単語IDを同一セッション内で
// 二度出題しないことを保証します。limit 問に達するか候補が尽きた
// 時点で Completed になります。
type QuizSession struct {
	SessionID uuid.UUID
	UserID    int64
	Level     int
	State     SessionState
	Answered  int

	pool        []*model.Word
	used        map[uint]bool
	limit       int
	current     *model.Question
	currentWord *model.Word
}

func NewQuizSession(userID int64, level int, pool []*model.Word, limit int) *QuizSession {
	return &QuizSession{
		SessionID: uuid.New(),
		UserID:    userID,
		Level:     level,
		State:     SessionReady,
		pool:      pool,
		used:      make(map[uint]bool),
		limit:     limit,
	}
}

// Current は現在の出題を返します。Active 以外では nil です。
func (s *QuizSession) Current() *model.Question {
	return s.current
}

// CurrentWord は現在出題中の単語を返します。
func (s *QuizSession) CurrentWord() *model.Word {
	return s.currentWord
}

// Start は最初の問題を引きます。候補ゼロ（全単語が本日解答済みを
// 含む）の場合は出題なしで Completed になります。
func (s *QuizSession) Start(sampler *Sampler) error {
	if s.State != SessionReady {
		return model.ErrSessionFinished
	}
	return s.draw(sampler)
}

// Submit は現在の問題への解答を判定し、used-set を進めます。
// 次の問題はまだ引かれないため、呼び出し側が履歴を記録した後に
// Advance を呼びます。
func (s *QuizSession) Submit(selected model.Option) (bool, model.Option, error) {
	if s.State != SessionActive || s.current == nil {
		return false, model.Option{}, model.ErrSessionFinished
	}
	correct := s.current.Options[s.current.CorrectOption]
	s.Answered++
	return selected == correct, correct, nil
}

// Advance は次の問題を引くか、セッションを Completed にします。
func (s *QuizSession) Advance(sampler *Sampler) error {
	if s.State != SessionActive {
		return model.ErrSessionFinished
	}
	return s.draw(sampler)
}

func (s *QuizSession) draw(sampler *Sampler) error {
	eligible := make([]*model.Word, 0, len(s.pool))
	for _, w := range s.pool {
		if !s.used[w.ID] {
			eligible = append(eligible, w)
		}
	}

	if len(s.used) >= s.limit || len(eligible) == 0 {
		s.complete()
		return nil
	}

	target := eligible[sampler.pick(len(eligible))]

	// 誤答はセッションのプール全体から引く。プールが小さすぎて
	// 3択を組めないときは出題を打ち切る。
	question, err := sampler.BuildQuestion(target, s.pool)
	if err != nil {
		if err == model.ErrInsufficientPool {
			s.complete()
			return nil
		}
		return err
	}

	s.used[target.ID] = true
	s.current = question
	s.currentWord = target
	s.State = SessionActive
	return nil
}

func (s *QuizSession) complete() {
	s.State = SessionCompleted
	s.current = nil
	s.currentWord = nil
}
