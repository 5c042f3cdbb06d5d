package model

import "time"

// UserQuestionHistory keeps the latest correctness of a user's answer to a
// question. There is at most one row per (user, question).
type UserQuestionHistory struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_history_user_question,priority:1"`
	QuestionID      uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_history_user_question,priority:2"`
	IsCorrect       bool      `json:"is_correct" gorm:"not null;default:false"`
	LastAttemptedAt time.Time `json:"last_attempted_at" gorm:"not null"`
}
