package repository

import (
	"context"
	"errors"

	"github.com/lshigami/QuizHub/internal/model"
	"gorm.io/gorm"
)

// ErrAnswerRowMissing is returned when an update targets a (attempt, question)
// pair that has no placeholder row.
var ErrAnswerRowMissing = errors.New("quiz answer placeholder not found")

type QuizAnswerRepository interface {
	// FindQuestionIDs returns the question ids of the attempt's placeholder rows.
	FindQuestionIDs(ctx context.Context, attemptID uint) ([]uint, error)
	// Update overwrites the placeholder row in place; it never inserts.
	Update(ctx context.Context, attemptID, questionID uint, userAnswer string, correct bool) error
	WithTx(tx *gorm.DB) QuizAnswerRepository
}

type quizAnswerRepository struct {
	db *gorm.DB
}

func NewQuizAnswerRepository(db *gorm.DB) QuizAnswerRepository {
	return &quizAnswerRepository{db: db}
}

func (r *quizAnswerRepository) WithTx(tx *gorm.DB) QuizAnswerRepository {
	return &quizAnswerRepository{db: tx}
}

func (r *quizAnswerRepository) FindQuestionIDs(ctx context.Context, attemptID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.QuizAnswer{}).
		Where("quiz_attempt_id = ?", attemptID).
		Order("id ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *quizAnswerRepository) Update(ctx context.Context, attemptID, questionID uint, userAnswer string, correct bool) error {
	res := r.db.WithContext(ctx).Model(&model.QuizAnswer{}).
		Where("quiz_attempt_id = ? AND question_id = ?", attemptID, questionID).
		Updates(map[string]interface{}{
			"user_answer": userAnswer,
			"is_correct":  correct,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAnswerRowMissing
	}
	return nil
}
