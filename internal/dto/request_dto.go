package dto

// UserAnswerDTO is a participant's raw answer to one question of an attempt.
// An empty UserAnswer is accepted and scored as incorrect.
type UserAnswerDTO struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
}

// QuizSubmitDTO is the request body of both submit and quit.
type QuizSubmitDTO struct {
	AttemptID uint            `json:"attemptId" binding:"required"`
	Answers   []UserAnswerDTO `json:"answers" binding:"dive"`
}
