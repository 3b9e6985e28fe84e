// internal/service/review_service_test.go
package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"
	repomocks "github.com/mizuki1024/eitango-webapp/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2日分の間違い履歴。新しい順で返る想定。
func reviewFixture() []*model.IncorrectWord {
	newer := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	return []*model.IncorrectWord{
		{WordID: 1, Word: "apple", JWord: "りんご", Date: newer},
		{WordID: 2, Word: "banana", JWord: "バナナ", Date: newer},
		{WordID: 3, Word: "cherry", JWord: "さくらんぼ", Date: older},
		{WordID: 4, Word: "grape", JWord: "ぶどう", Date: older},
		{WordID: 5, Word: "peach", JWord: "もも", Date: older},
	}
}

func newTestReviewService(t *testing.T, histRepo *repomocks.MockHistoryRepository) ReviewService {
	t.Helper()
	db := setupTestDB(t)
	return NewReviewService(db, histRepo, NewSampler(rand.New(rand.NewSource(43))))
}

func Test_reviewService_GetReviewDates(t *testing.T) {
	ctx := context.Background()

	mockHistRepo := repomocks.NewMockHistoryRepository(t)
	mockHistRepo.On("FindIncorrectSince", mock.Anything, mock.AnythingOfType("*gorm.DB"), int64(1), mock.AnythingOfType("time.Time")).
		Return(reviewFixture(), nil).Once()

	svc := newTestReviewService(t, mockHistRepo)
	dates, err := svc.GetReviewDates(ctx, 1)

	require.NoError(t, err)
	require.Len(t, dates, 2)
	// 新しい順を保つ
	assert.Equal(t, "2026-08-29", dates[0].Date)
	assert.Equal(t, 2, dates[0].Mistakes)
	assert.Equal(t, "2026-08-25", dates[1].Date)
	assert.Equal(t, 3, dates[1].Mistakes)
}

func Test_reviewService_StartSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		date      time.Time
		wantErr   error
		wantTotal int
	}{
		{
			name:      "正常系: 指定日付の間違い単語でセッション開始",
			date:      time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
			wantTotal: 3,
		},
		{
			name:    "異常系: 間違い履歴のない日付",
			date:    time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			wantErr: model.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockHistRepo := repomocks.NewMockHistoryRepository(t)
			mockHistRepo.On("FindIncorrectSince", mock.Anything, mock.AnythingOfType("*gorm.DB"), int64(1), mock.AnythingOfType("time.Time")).
				Return(reviewFixture(), nil).Once()

			svc := newTestReviewService(t, mockHistRepo)
			session, err := svc.StartSession(ctx, 1, tc.date)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, string(SessionActive), session.State)
			assert.Equal(t, tc.wantTotal, session.Total)
			assert.Equal(t, tc.wantTotal, session.Remaining)
			require.NotNil(t, session.Question)
			assert.Len(t, session.Question.Choices, 3)
			assert.Nil(t, session.Score)
		})
	}
}

func Test_reviewService_FullSessionScoresHundred(t *testing.T) {
	ctx := context.Background()

	mockHistRepo := repomocks.NewMockHistoryRepository(t)
	mockHistRepo.On("FindIncorrectSince", mock.Anything, mock.AnythingOfType("*gorm.DB"), int64(1), mock.AnythingOfType("time.Time")).
		Return(reviewFixture(), nil).Once()

	svc := newTestReviewService(t, mockHistRepo)
	session, err := svc.StartSession(ctx, 1, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sessionID, err := uuid.Parse(session.SessionID)
	require.NoError(t, err)

	// 出題はキュー順（cherry → grape → peach）
	answers := []string{"さくらんぼ", "ぶどう", "もも"}
	var last *model.ReviewAnswerResponse
	for _, a := range answers {
		last, err = svc.SubmitAnswer(ctx, sessionID, a)
		require.NoError(t, err)
		assert.True(t, last.Correct)
		assert.Equal(t, a, last.Answer)
	}

	require.NotNil(t, last)
	assert.Equal(t, string(SessionFinished), last.Session.State)
	assert.Equal(t, 3, last.Session.CorrectCount)
	require.NotNil(t, last.Session.Score)
	assert.Equal(t, 100, *last.Session.Score)

	// 終了したセッションは破棄されている
	_, err = svc.SubmitAnswer(ctx, sessionID, "りんご")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_reviewService_SubmitAnswer_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestReviewService(t, repomocks.NewMockHistoryRepository(t))

	_, err := svc.SubmitAnswer(ctx, uuid.New(), "りんご")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
