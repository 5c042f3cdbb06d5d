package dto

// UploadedQuestionDTO summarises a question created by a bulk upload.
type UploadedQuestionDTO struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Complexity string `json:"complexity"`
}

// QuestionUploadResponseDTO is returned after a successful bulk upload.
type QuestionUploadResponseDTO struct {
	Message   string                `json:"message"`
	Count     int                   `json:"count"`
	Questions []UploadedQuestionDTO `json:"questions"`
}

// QuestionUploadErrorDTO lists every row that failed validation. Nothing is
// inserted when it is returned.
type QuestionUploadErrorDTO struct {
	Message        string   `json:"error"`
	Errors         []string `json:"errors"`
	ValidQuestions int      `json:"validQuestions"`
}

// QuestionDetailDTO is the admin view of a question, canonical answer included.
type QuestionDetailDTO struct {
	ID            uint        `json:"id"`
	Text          string      `json:"text"`
	Type          string      `json:"type"`
	Complexity    string      `json:"complexity"`
	CorrectAnswer string      `json:"correctAnswer"`
	Subject       *string     `json:"subject,omitempty"`
	Options       []OptionDTO `json:"options"`
}

// QuestionPoolStatsDTO reports how many questions each complexity bucket holds.
type QuestionPoolStatsDTO struct {
	Total        int64            `json:"total"`
	ByComplexity map[string]int64 `json:"byComplexity"`
	CanServeQuiz bool             `json:"canServeQuiz"`
}
