// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/questions/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Counts of questions per complexity level and whether a quiz can be served.",
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Question pool statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionPoolStatsDTO"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Imports questions from a CSV or XLSX file. Any invalid row rejects the whole file.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Bulk upload questions",
                "parameters": [
                    {"type": "file", "description": "CSV or XLSX file", "name": "questionsFile", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.QuestionUploadResponseDTO"}},
                    "400": {"description": "Missing file, wrong type or invalid rows", "schema": {"$ref": "#/definitions/dto.QuestionUploadErrorDTO"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Full question including its canonical answer.",
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Get a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionDetailDTO"}},
                    "400": {"description": "Invalid question ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the service and its database are reachable.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/quiz/attempts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Summaries of every attempt of the current user, newest first.",
                "produces": ["application/json"],
                "tags": ["User - Quiz"],
                "summary": "(User) List my quiz attempts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.QuizAttemptSummaryDTO"}}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/attempts/{attempt_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Full attempt details. Canonical answers are shown only once the attempt is completed.",
                "produces": ["application/json"],
                "tags": ["User - Quiz"],
                "summary": "(User) Get one of my quiz attempts",
                "parameters": [
                    {"type": "integer", "description": "Quiz attempt ID", "name": "attempt_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizAttemptDetailDTO"}},
                    "400": {"description": "Invalid attempt ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/quit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Scores the answers given so far. Unanswered questions count as incorrect.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User - Quiz"],
                "summary": "(User) Quit a quiz early",
                "parameters": [
                    {"description": "Attempt ID and any subset of answers", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizSubmitDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResultDTO"}},
                    "400": {"description": "Invalid body or foreign question IDs", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Quiz already submitted", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Generates a quiz of 10 questions the user has not yet answered correctly. Canonical answers are never included.",
                "produces": ["application/json"],
                "tags": ["User - Quiz"],
                "summary": "(User) Start a new quiz",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizStartResponseDTO"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Not enough questions available", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Scores an in-progress attempt. Exactly one answer per quiz question is required.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User - Quiz"],
                "summary": "(User) Submit a quiz",
                "parameters": [
                    {"description": "Attempt ID and one answer per question", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizSubmitDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResultDTO"}},
                    "400": {"description": "Invalid body, foreign question IDs or wrong answer count", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Quiz already submitted", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}},
                "invalidQuestionIds": {"type": "array", "items": {"type": "integer"}},
                "expectedAnswers": {"type": "integer"},
                "receivedAnswers": {"type": "integer"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.OptionDTO": {
            "type": "object",
            "properties": {
                "letter": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "dto.QuestionDetailDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "type": {"type": "string"},
                "complexity": {"type": "string"},
                "correctAnswer": {"type": "string"},
                "subject": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/dto.OptionDTO"}}
            }
        },
        "dto.QuestionPoolStatsDTO": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "byComplexity": {"type": "object", "additionalProperties": {"type": "integer"}},
                "canServeQuiz": {"type": "boolean"}
            }
        },
        "dto.QuestionResultDTO": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "text": {"type": "string"},
                "type": {"type": "string"},
                "userAnswer": {"type": "string"},
                "correctAnswer": {"type": "string"},
                "isCorrect": {"type": "boolean"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/dto.OptionDTO"}}
            }
        },
        "dto.QuestionUploadErrorDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "validQuestions": {"type": "integer"}
            }
        },
        "dto.QuestionUploadResponseDTO": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "count": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.UploadedQuestionDTO"}}
            }
        },
        "dto.QuizAttemptDetailDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "score": {"type": "integer"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "submittedAt": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResultDTO"}}
            }
        },
        "dto.QuizAttemptSummaryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "score": {"type": "integer"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "submittedAt": {"type": "string"}
            }
        },
        "dto.QuizQuestionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "type": {"type": "string"},
                "complexity": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/dto.OptionDTO"}}
            }
        },
        "dto.QuizResultDTO": {
            "type": "object",
            "properties": {
                "attemptId": {"type": "integer"},
                "score": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResultDTO"}}
            }
        },
        "dto.QuizStartResponseDTO": {
            "type": "object",
            "properties": {
                "attemptId": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuizQuestionDTO"}}
            }
        },
        "dto.QuizSubmitDTO": {
            "type": "object",
            "required": ["attemptId"],
            "properties": {
                "attemptId": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.UserAnswerDTO"}}
            }
        },
        "dto.UploadedQuestionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "type": {"type": "string"},
                "complexity": {"type": "string"}
            }
        },
        "dto.UserAnswerDTO": {
            "type": "object",
            "required": ["questionId"],
            "properties": {
                "questionId": {"type": "integer"},
                "userAnswer": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "QuizHub API",
	Description:      "Adaptive quiz service: generates quizzes from a question bank, scores submissions and tracks per-user history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
