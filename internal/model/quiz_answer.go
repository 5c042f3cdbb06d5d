package model

import (
	"time"
)

// QuizAnswer rows are created as empty placeholders when an attempt starts.
// The set of rows for an attempt is its question membership.
type QuizAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuizAttemptID uint      `json:"quiz_attempt_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question,priority:1"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question,priority:2"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer    string    `json:"user_answer" gorm:"type:text;not null;default:''"`
	IsCorrect     bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
