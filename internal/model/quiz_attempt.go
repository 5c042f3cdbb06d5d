package model

import "time"

type QuizAttempt struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	UserID         uint         `json:"user_id" gorm:"not null;index"`
	TotalQuestions int          `json:"total_questions" gorm:"not null"`
	SubmittedAt    *time.Time   `json:"submitted_at,omitempty"` // nil while in progress
	Score          *int         `json:"score,omitempty"`
	Answers        []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:QuizAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Completed reports whether the attempt has been finalized.
func (a *QuizAttempt) Completed() bool {
	return a.SubmittedAt != nil
}
