package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_FindAvailable(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedQuestions(t, db, 2, 2, 1)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	all, err := repo.FindAvailable(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	all, err = repo.FindAvailable(ctx, []uint{})
	require.NoError(t, err)
	assert.Len(t, all, 5, "an empty exclusion list must exclude nothing")

	some, err := repo.FindAvailable(ctx, []uint{seeded[0].ID, seeded[4].ID})
	require.NoError(t, err)
	require.Len(t, some, 3)
	for _, q := range some {
		assert.NotEqual(t, seeded[0].ID, q.ID)
		assert.NotEqual(t, seeded[4].ID, q.ID)
		require.Len(t, q.Options, 2)
		assert.Equal(t, "A", q.Options[0].Letter)
	}
}

func TestQuestionRepository_SoftDeleted(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedQuestions(t, db, 3, 0, 0)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Delete(&model.Question{}, seeded[0].ID).Error)

	available, err := repo.FindAvailable(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	counts, err := repo.CountByComplexity(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[model.ComplexityEasy])

	byIDs, err := repo.FindByIDs(ctx, []uint{seeded[0].ID, seeded[1].ID})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQuestionRepository_CreateBatch(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	subject := "Geography"
	questions := []model.Question{
		{Text: "Capital of France?", Type: model.QuestionTypeFillBlank, Complexity: model.ComplexityEasy, CorrectAnswer: "Paris", Subject: &subject},
		{
			Text: "2 + 2 = ?", Type: model.QuestionTypeObjective, Complexity: model.ComplexityModerate, CorrectAnswer: "B",
			Options: []model.Option{{Letter: "B", Text: "4"}, {Letter: "A", Text: "3"}},
		},
	}
	require.NoError(t, repo.CreateBatch(ctx, questions))
	require.NotZero(t, questions[1].ID)

	stored, err := repo.FindByID(ctx, questions[1].ID)
	require.NoError(t, err)
	require.Len(t, stored.Options, 2)
	assert.Equal(t, "A", stored.Options[0].Letter)
	assert.Equal(t, "B", stored.Options[1].Letter)

	counts, err := repo.CountByComplexity(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{model.ComplexityEasy: 1, model.ComplexityModerate: 1}, counts)

	require.NoError(t, repo.CreateBatch(ctx, nil))
}

func TestHistoryRepository_UpsertKeepsOneRow(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedQuestions(t, db, 2, 0, 0)
	repo := NewHistoryRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, 1, seeded[0].ID, true, now))
	require.NoError(t, repo.Upsert(ctx, 1, seeded[1].ID, false, now))

	ids, err := repo.CorrectlyAnsweredIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{seeded[0].ID}, ids)

	require.NoError(t, repo.Upsert(ctx, 1, seeded[0].ID, false, now.Add(time.Minute)))
	require.NoError(t, repo.Upsert(ctx, 1, seeded[1].ID, true, now.Add(time.Minute)))

	ids, err = repo.CorrectlyAnsweredIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{seeded[1].ID}, ids)

	var rows int64
	require.NoError(t, db.Model(&model.UserQuestionHistory{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)

	other, err := repo.CorrectlyAnsweredIDs(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestQuizAttemptRepository_MarkSubmittedOnce(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedQuestions(t, db, 2, 0, 0)
	attempts := NewQuizAttemptRepository(db)
	answers := NewQuizAnswerRepository(db)
	ctx := context.Background()

	attempt := &model.QuizAttempt{
		UserID:         1,
		TotalQuestions: 2,
		Answers:        []model.QuizAnswer{{QuestionID: seeded[1].ID}, {QuestionID: seeded[0].ID}},
	}
	require.NoError(t, attempts.Create(ctx, attempt))

	ids, err := answers.FindQuestionIDs(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{seeded[1].ID, seeded[0].ID}, ids)

	claimed, err := attempts.MarkSubmitted(ctx, attempt.ID, 2, 1, time.Now())
	require.NoError(t, err)
	assert.False(t, claimed, "another user cannot finalize the attempt")

	claimed, err = attempts.MarkSubmitted(ctx, attempt.ID, 1, 1, time.Now())
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = attempts.MarkSubmitted(ctx, attempt.ID, 1, 2, time.Now())
	require.NoError(t, err)
	assert.False(t, claimed)

	stored, err := attempts.FindByIDForUser(ctx, attempt.ID, 1)
	require.NoError(t, err)
	assert.True(t, stored.Completed())
	require.NotNil(t, stored.Score)
	assert.Equal(t, 1, *stored.Score)
}

func TestQuizAnswerRepository_UpdateNeverInserts(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedQuestions(t, db, 2, 0, 0)
	attempts := NewQuizAttemptRepository(db)
	answers := NewQuizAnswerRepository(db)
	ctx := context.Background()

	attempt := &model.QuizAttempt{UserID: 1, TotalQuestions: 1, Answers: []model.QuizAnswer{{QuestionID: seeded[0].ID}}}
	require.NoError(t, attempts.Create(ctx, attempt))

	require.NoError(t, answers.Update(ctx, attempt.ID, seeded[0].ID, "A", true))
	assert.ErrorIs(t, answers.Update(ctx, attempt.ID, seeded[1].ID, "A", true), ErrAnswerRowMissing)

	details, err := attempts.FindByIDWithDetails(ctx, attempt.ID, 1)
	require.NoError(t, err)
	require.Len(t, details.Answers, 1)
	assert.Equal(t, "A", details.Answers[0].UserAnswer)
	assert.True(t, details.Answers[0].IsCorrect)
	assert.Equal(t, seeded[0].Text, details.Answers[0].Question.Text)
	assert.Len(t, details.Answers[0].Question.Options, 2)
}

func TestQuizAttemptRepository_FindAllByUserNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewQuizAttemptRepository(db)
	ctx := context.Background()

	older := &model.QuizAttempt{UserID: 1, TotalQuestions: 10, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &model.QuizAttempt{UserID: 1, TotalQuestions: 10}
	foreign := &model.QuizAttempt{UserID: 2, TotalQuestions: 10}
	for _, a := range []*model.QuizAttempt{older, newer, foreign} {
		require.NoError(t, repo.Create(ctx, a))
	}

	list, err := repo.FindAllByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}
