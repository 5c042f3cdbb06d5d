package dto

type ErrorResponse struct {
	Message            string   `json:"error"`
	Details            []string `json:"details,omitempty"`
	InvalidQuestionIDs []uint   `json:"invalidQuestionIds,omitempty"`
	ExpectedAnswers    *int     `json:"expectedAnswers,omitempty"`
	ReceivedAnswers    *int     `json:"receivedAnswers,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
