// internal/repository/word_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormWordRepository_FindByLevelExcludingToday(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormWordRepository()

	today := date(2026, time.August, 30)
	yesterday := date(2026, time.August, 29)

	seedWords(t, db, []*model.Word{
		{ID: 1, Word: "apple", JWord: "りんご", Type: "noun", Level: 1},
		{ID: 2, Word: "banana", JWord: "バナナ", Type: "noun", Level: 1},
		{ID: 3, Word: "cherry", JWord: "さくらんぼ", Type: "noun", Level: 1},
		{ID: 4, Word: "run", JWord: "走る", Type: "verb", Level: 2},
	})
	seedHistories(t, db, []*model.History{
		// user1 は本日 apple に解答済み、banana は昨日
		{UserID: 1, WordID: 1, Date: today, State: model.StateCorrect},
		{UserID: 1, WordID: 2, Date: yesterday, State: model.StateIncorrect},
		// user2 は本日 banana に解答済み
		{UserID: 2, WordID: 2, Date: today, State: model.StateCorrect},
	})

	tests := []struct {
		name    string
		level   int
		userID  int64
		wantIDs []uint
	}{
		{
			name:    "本日解答済みの単語は除外される",
			level:   1,
			userID:  1,
			wantIDs: []uint{2, 3},
		},
		{
			name:    "除外は解答したユーザーに限られる",
			level:   1,
			userID:  2,
			wantIDs: []uint{1, 3},
		},
		{
			name:    "履歴のないユーザーは全単語",
			level:   1,
			userID:  3,
			wantIDs: []uint{1, 2, 3},
		},
		{
			name:    "レベルで絞り込まれる",
			level:   2,
			userID:  1,
			wantIDs: []uint{4},
		},
		{
			name:    "存在しないレベルは空",
			level:   9,
			userID:  1,
			wantIDs: []uint{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			words, err := repo.FindByLevelExcludingToday(ctx, db, tc.level, tc.userID, today, 100)
			require.NoError(t, err)

			ids := make([]uint, 0, len(words))
			for _, w := range words {
				ids = append(ids, w.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, ids)
		})
	}
}

func Test_gormWordRepository_FindByLevelExcludingToday_Limit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormWordRepository()

	words := make([]*model.Word, 0, 10)
	for i := 1; i <= 10; i++ {
		words = append(words, &model.Word{ID: uint(i), Word: "w", JWord: "j", Type: "noun", Level: 1})
	}
	seedWords(t, db, words)

	got, err := repo.FindByLevelExcludingToday(ctx, db, 1, 1, date(2026, time.August, 30), 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func Test_gormWordRepository_CountByLevel(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormWordRepository()

	seedWords(t, db, []*model.Word{
		{ID: 1, Word: "apple", JWord: "りんご", Type: "noun", Level: 1},
		{ID: 2, Word: "banana", JWord: "バナナ", Type: "noun", Level: 1},
		{ID: 3, Word: "run", JWord: "走る", Type: "verb", Level: 2},
	})

	count, err := repo.CountByLevel(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByLevel(ctx, db, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
