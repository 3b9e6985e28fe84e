// internal/service/quiz_service_test.go
package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/config"
	"github.com/mizuki1024/eitango-webapp/internal/model"
	repomocks "github.com/mizuki1024/eitango-webapp/internal/repository/mocks"
	"github.com/mizuki1024/eitango-webapp/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testQuizConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			QuizLimit:      20,
			OptionCount:    3,
			WordFetchLimit: 100,
		},
	}
}

func newTestQuizService(t *testing.T, wordRepo *repomocks.MockWordRepository, history *mocks.MockHistoryService, now time.Time) *quizService {
	t.Helper()
	db := setupTestDB(t)
	sampler := NewSampler(rand.New(rand.NewSource(41)))
	svc := NewQuizService(db, wordRepo, history, sampler, testQuizConfig()).(*quizService)
	svc.now = func() time.Time { return now }
	return svc
}

func Test_quizService_GetQuestionList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	tests := []struct {
		name      string
		setupMock func(wordRepo *repomocks.MockWordRepository)
		wantErr   error
		wantCount int
	}{
		{
			name: "正常系: プールの全単語分の問題を返す",
			setupMock: func(wordRepo *repomocks.MockWordRepository) {
				wordRepo.On("FindByLevelExcludingToday", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1, int64(1), today, 100).
					Return(makeWords(5), nil).Once()
			},
			wantCount: 5,
		},
		{
			name: "正常系: 本日全問解答済みなら空リスト",
			setupMock: func(wordRepo *repomocks.MockWordRepository) {
				wordRepo.On("FindByLevelExcludingToday", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1, int64(1), today, 100).
					Return(nil, nil).Once()
				wordRepo.On("CountByLevel", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1).
					Return(int64(30), nil).Once()
			},
			wantCount: 0,
		},
		{
			name: "異常系: レベル自体に単語がない",
			setupMock: func(wordRepo *repomocks.MockWordRepository) {
				wordRepo.On("FindByLevelExcludingToday", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1, int64(1), today, 100).
					Return(nil, nil).Once()
				wordRepo.On("CountByLevel", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1).
					Return(int64(0), nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockWordRepo := repomocks.NewMockWordRepository(t)
			tc.setupMock(mockWordRepo)
			svc := newTestQuizService(t, mockWordRepo, mocks.NewMockHistoryService(t), now)

			questions, err := svc.GetQuestionList(ctx, 1, 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, questions, tc.wantCount)
			for _, q := range questions {
				assert.Len(t, q.Options, 3)
			}
		})
	}
}

func Test_quizService_SessionFlow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	mockWordRepo := repomocks.NewMockWordRepository(t)
	mockWordRepo.On("FindByLevelExcludingToday", mock.Anything, mock.AnythingOfType("*gorm.DB"), 1, int64(1), today, 100).
		Return(makeWords(5), nil).Once()

	mockHistory := mocks.NewMockHistoryService(t)
	// 5問解答するたびに履歴が記録される
	mockHistory.On("Register", mock.Anything, int64(1), mock.AnythingOfType("uint"), now, mock.AnythingOfType("model.AnswerState")).
		Return(&model.History{ID: 1}, nil).Times(5)

	svc := newTestQuizService(t, mockWordRepo, mockHistory, now)

	started, err := svc.StartSession(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, string(SessionActive), started.State)
	require.NotNil(t, started.Question)

	sessionID, err := uuid.Parse(started.SessionID)
	require.NoError(t, err)

	// プールが5語なので5問で完走する
	question := started.Question
	for i := 0; i < 5; i++ {
		require.NotNil(t, question, "question %d should be present", i)
		resp, err := svc.SubmitAnswer(ctx, sessionID, question.Options[question.CorrectOption])
		require.NoError(t, err)
		assert.True(t, resp.Correct)
		question = resp.Session.Question
	}

	// 完走後はセッションが破棄されている
	_, err = svc.SubmitAnswer(ctx, sessionID, model.Option{Word: "a", Meaning: "b"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_quizService_SubmitAnswer_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(t, repomocks.NewMockWordRepository(t), mocks.NewMockHistoryService(t), time.Now())

	_, err := svc.SubmitAnswer(ctx, uuid.New(), model.Option{Word: "a", Meaning: "b"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
