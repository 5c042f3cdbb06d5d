package service

import (
	"strings"

	"github.com/lshigami/QuizHub/internal/model"
)

type AnswerScorer interface {
	// IsCorrect compares a raw submitted answer with the question's canonical
	// answer. It is all-or-nothing and never fails.
	IsCorrect(question *model.Question, userAnswer string) bool
}

type answerScorerImpl struct{}

func NewAnswerScorer() AnswerScorer {
	return &answerScorerImpl{}
}

// IsCorrect trims both sides and compares case-insensitively. Objective
// questions compare the option letter, fill-in-the-blank questions the text.
func (s *answerScorerImpl) IsCorrect(question *model.Question, userAnswer string) bool {
	if question == nil {
		return false
	}
	submitted := strings.TrimSpace(userAnswer)
	if submitted == "" {
		return false
	}
	canonical := strings.TrimSpace(question.CorrectAnswer)

	switch question.Type {
	case model.QuestionTypeObjective:
		return strings.ToUpper(submitted) == strings.ToUpper(canonical)
	case model.QuestionTypeFillBlank:
		return strings.EqualFold(submitted, canonical)
	default:
		return false
	}
}
