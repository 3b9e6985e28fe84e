//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/model"

	"gorm.io/gorm"
)

// WordRepository は単語カタログ（読み取り専用）へのアクセスです。
type WordRepository interface {
	// FindByLevelExcludingToday は指定レベルの単語のうち、
	// そのユーザーが today にすでに解答した単語を除いて返します。
	// 除外の結果ゼロ件になるのは正常で、エラーではありません。
	FindByLevelExcludingToday(ctx context.Context, db *gorm.DB, level int, userID int64, today time.Time, limit int) ([]*model.Word, error)
	CountByLevel(ctx context.Context, db *gorm.DB, level int) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByLevelExcludingToday(ctx context.Context, db *gorm.DB, level int, userID int64, today time.Time, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word

	answeredToday := db.Model(&model.History{}).
		Select("word_id").
		Where("user_id = ? AND date = ?", userID, today)

	result := db.WithContext(ctx).
		Where("level = ?", level).
		Where("id NOT IN (?)", answeredToday).
		Limit(limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by level in DB",
			"error", result.Error,
			"level", level,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByLevelExcludingToday: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CountByLevel(ctx context.Context, db *gorm.DB, level int) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Where("level = ?", level).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words by level in DB", "error", result.Error, "level", level)
		return 0, fmt.Errorf("gormWordRepository.CountByLevel: %w", result.Error)
	}
	return count, nil
}
