// Package testutil opens throwaway databases and seeds questions for tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lshigami/QuizHub/database"
	"github.com/lshigami/QuizHub/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedQuestions inserts easy, moderate and complex objective questions whose
// correct answer is always "A".
func SeedQuestions(t testing.TB, db *gorm.DB, easy, moderate, complex int) []model.Question {
	t.Helper()
	var questions []model.Question
	add := func(level string, n int) {
		for i := 0; i < n; i++ {
			questions = append(questions, model.Question{
				Text:          fmt.Sprintf("%s question %d", level, i+1),
				Type:          model.QuestionTypeObjective,
				Complexity:    level,
				CorrectAnswer: "A",
				Options: []model.Option{
					{Letter: "A", Text: "right"},
					{Letter: "B", Text: "wrong"},
				},
			})
		}
	}
	add(model.ComplexityEasy, easy)
	add(model.ComplexityModerate, moderate)
	add(model.ComplexityComplex, complex)

	if len(questions) > 0 {
		require.NoError(t, db.WithContext(context.Background()).Create(&questions).Error)
	}
	return questions
}

// CreateUser inserts a user with the given role.
func CreateUser(t testing.TB, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}
