package dto

import "time"

// OptionDTO is a choice of an objective question, without correctness.
type OptionDTO struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuizQuestionDTO is a question as shown to a participant during a quiz.
// It never carries the canonical answer.
type QuizQuestionDTO struct {
	ID         uint        `json:"id"`
	Text       string      `json:"text"`
	Type       string      `json:"type"`
	Complexity string      `json:"complexity"`
	Options    []OptionDTO `json:"options"`
}

// QuizStartResponseDTO is returned when a participant starts a quiz.
type QuizStartResponseDTO struct {
	AttemptID uint              `json:"attemptId"`
	Questions []QuizQuestionDTO `json:"questions"`
}

// QuestionResultDTO is the per-question outcome shown after a quiz is finalized.
type QuestionResultDTO struct {
	QuestionID    uint        `json:"questionId"`
	Text          string      `json:"text"`
	Type          string      `json:"type"`
	UserAnswer    string      `json:"userAnswer"`
	CorrectAnswer string      `json:"correctAnswer,omitempty"`
	IsCorrect     bool        `json:"isCorrect"`
	Options       []OptionDTO `json:"options"`
}

// QuizResultDTO is returned by submit and quit.
type QuizResultDTO struct {
	AttemptID      uint                `json:"attemptId"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	Results        []QuestionResultDTO `json:"results"`
}

// QuizAttemptSummaryDTO is used for listing a participant's attempts.
type QuizAttemptSummaryDTO struct {
	ID             uint       `json:"id"`
	TotalQuestions int        `json:"totalQuestions"`
	Score          *int       `json:"score,omitempty"`
	Status         string     `json:"status"` // "in_progress", "completed"
	CreatedAt      time.Time  `json:"createdAt"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
}

// QuizAttemptDetailDTO is the review of a single attempt. Canonical answers
// are only present once the attempt is completed.
type QuizAttemptDetailDTO struct {
	QuizAttemptSummaryDTO
	Results []QuestionResultDTO `json:"results"`
}
