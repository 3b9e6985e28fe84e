// internal/repository/main_test.go
package repository

import (
	"testing"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はマイグレーション済みのインメモリDBを返します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Word{}, &model.History{}, &model.Reminder{}))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedWords(t *testing.T, db *gorm.DB, words []*model.Word) {
	t.Helper()
	require.NoError(t, db.Create(&words).Error)
}

func seedHistories(t *testing.T, db *gorm.DB, histories []*model.History) {
	t.Helper()
	require.NoError(t, db.Create(&histories).Error)
}
