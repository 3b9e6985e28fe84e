// internal/service/review_session.go
package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mizuki1024/eitango-webapp/internal/model"
)

// ReviewSession は選択した日付の間違い単語を先頭から順に出題し直す
// 状態機械です。Active → Finished と遷移し、キューが空になった時点で
// スコアが確定します。誤答候補は他の日付の間違い単語も含む
// コーパス全体から引きます。
type ReviewSession struct {
	SessionID    uuid.UUID
	UserID       int64
	Date         time.Time
	State        SessionState
	CorrectCount int
	Initial      int

	queue   []*model.IncorrectWord
	corpus  []string
	current *model.ReviewQuestion
}

func NewReviewSession(userID int64, date time.Time, mistakes []*model.IncorrectWord, corpus []string) *ReviewSession {
	return &ReviewSession{
		SessionID: uuid.New(),
		UserID:    userID,
		Date:      date,
		State:     SessionActive,
		Initial:   len(mistakes),
		queue:     mistakes,
		corpus:    corpus,
	}
}

// Current は現在の出題を返します。Finished では nil です。
func (s *ReviewSession) Current() *model.ReviewQuestion {
	return s.current
}

// Remaining は残りの出題数を返します。
func (s *ReviewSession) Remaining() int {
	return len(s.queue)
}

// Start は最初の問題を組み立てます。
func (s *ReviewSession) Start(sampler *Sampler) error {
	if len(s.queue) == 0 {
		s.finish()
		return nil
	}
	return s.buildQuestion(sampler)
}

// Submit は解答を判定してキューを進めます。キューが空になったら
// Finished に遷移し、それ以外は次の問題を組み立てます。
// 戻り値は (正解か, 正しい訳) です。
func (s *ReviewSession) Submit(choice string, sampler *Sampler) (bool, string, error) {
	if s.State != SessionActive || len(s.queue) == 0 {
		return false, "", model.ErrSessionFinished
	}

	item := s.queue[0]
	correct := choice == item.JWord
	if correct {
		s.CorrectCount++
	}

	s.queue = s.queue[1:]
	if len(s.queue) == 0 {
		s.finish()
		return correct, item.JWord, nil
	}
	if err := s.buildQuestion(sampler); err != nil {
		return correct, item.JWord, err
	}
	return correct, item.JWord, nil
}

// Score は 100点満点のスコア（四捨五入）を返します。
func (s *ReviewSession) Score() int {
	if s.Initial == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.CorrectCount) / float64(s.Initial)))
}

func (s *ReviewSession) buildQuestion(sampler *Sampler) error {
	item := s.queue[0]
	choices, err := sampler.BuildChoices(item.JWord, s.corpus)
	if err != nil {
		return err
	}
	s.current = &model.ReviewQuestion{Word: item.Word, Choices: choices}
	return nil
}

func (s *ReviewSession) finish() {
	s.State = SessionFinished
	s.current = nil
}
