package repository

import (
	"context"
	"time"

	"github.com/lshigami/QuizHub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository interface {
	CorrectlyAnsweredIDs(ctx context.Context, userID uint) ([]uint, error)
	// Upsert records the latest correctness for (userID, questionID).
	// Concurrent writers converge on the last write.
	Upsert(ctx context.Context, userID, questionID uint, correct bool, at time.Time) error
	WithTx(tx *gorm.DB) HistoryRepository
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) WithTx(tx *gorm.DB) HistoryRepository {
	return &historyRepository{db: tx}
}

func (r *historyRepository) CorrectlyAnsweredIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.UserQuestionHistory{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *historyRepository) Upsert(ctx context.Context, userID, questionID uint, correct bool, at time.Time) error {
	row := model.UserQuestionHistory{
		UserID:          userID,
		QuestionID:      questionID,
		IsCorrect:       correct,
		LastAttemptedAt: at,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_correct", "last_attempted_at"}),
	}).Create(&row).Error
}
