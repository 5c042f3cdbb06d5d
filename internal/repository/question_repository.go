package repository

import (
	"context"

	"github.com/lshigami/QuizHub/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindAvailable returns every question whose id is not in excludeIDs,
	// options ordered by letter. An empty excludeIDs excludes nothing.
	FindAvailable(ctx context.Context, excludeIDs []uint) ([]model.Question, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error)
	CreateBatch(ctx context.Context, questions []model.Question) error
	CountByComplexity(ctx context.Context) (map[string]int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func orderOptionsByLetter(db *gorm.DB) *gorm.DB {
	return db.Order("options.letter ASC")
}

func (r *questionRepository) FindAvailable(ctx context.Context, excludeIDs []uint) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.WithContext(ctx).Preload("Options", orderOptionsByLetter)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Preload("Options", orderOptionsByLetter).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDs includes soft-deleted questions so attempts started before an
// admin removed a question can still be scored.
func (r *questionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.WithContext(ctx).Unscoped().
		Preload("Options", orderOptionsByLetter).
		Where("id IN ?", ids).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// GORM creates the Options of each question through the association.
		return tx.Create(&questions).Error
	})
}

func (r *questionRepository) CountByComplexity(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Complexity string
		Count      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("complexity, COUNT(*) AS count").
		Group("complexity").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Complexity] = row.Count
	}
	return counts, nil
}
