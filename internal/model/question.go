package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeObjective = "objective"
	QuestionTypeFillBlank = "fill_blank"
)

const (
	ComplexityEasy     = "easy"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"not null;size:16"`              // "objective", "fill_blank"
	Complexity    string         `json:"complexity" gorm:"not null;size:16;index"` // "easy", "moderate", "complex"
	CorrectAnswer string         `json:"correct_answer" gorm:"type:text;not null"`
	Subject       *string        `json:"subject,omitempty"`
	Options       []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type Option struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;uniqueIndex:idx_option_question_letter,priority:1"`
	Letter     string `json:"letter" gorm:"not null;size:1;uniqueIndex:idx_option_question_letter,priority:2"`
	Text       string `json:"text" gorm:"type:text;not null"`
}
