package repository

import (
	"context"
	"time"

	"github.com/lshigami/QuizHub/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.QuizAttempt, error)
	FindByIDWithDetails(ctx context.Context, id, userID uint) (*model.QuizAttempt, error)
	FindAllByUser(ctx context.Context, userID uint) ([]model.QuizAttempt, error)
	// MarkSubmitted finalizes an in-progress attempt. It reports false when
	// the attempt was already finalized (or does not belong to userID).
	MarkSubmitted(ctx context.Context, id, userID uint, score int, at time.Time) (bool, error)
	WithTx(tx *gorm.DB) QuizAttemptRepository
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) WithTx(tx *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: tx}
}

func (r *quizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	// GORM inserts attempt.Answers (the placeholders) in the same transaction.
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *quizAttemptRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindByIDWithDetails(ctx context.Context, id, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answers.id ASC")
		}).
		Preload("Answers.Question", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("Answers.Question.Options", orderOptionsByLetter).
		Where("user_id = ?", userID).
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindAllByUser(ctx context.Context, userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *quizAttemptRepository) MarkSubmitted(ctx context.Context, id, userID uint, score int, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Where("id = ? AND user_id = ? AND submitted_at IS NULL", id, userID).
		Updates(map[string]interface{}{
			"submitted_at": at,
			"score":        score,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
