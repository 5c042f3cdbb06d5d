package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError maps service errors to HTTP responses. Unknown errors are
// logged and answered with a generic 500 so internals never leak.
func RespondError(ctx *gin.Context, op string, err error) {
	var invalidIDs *service.InvalidQuestionIDsError
	var countMismatch *service.AnswerCountMismatchError
	var validation *service.QuestionValidationError

	switch {
	case errors.Is(err, service.ErrInsufficientQuestionPool):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAttemptNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz attempt not found"})
	case errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
	case errors.Is(err, service.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Quiz already submitted"})
	case errors.As(err, &invalidIDs):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:            "Invalid question IDs submitted. All questions must be from the original quiz attempt.",
			InvalidQuestionIDs: invalidIDs.IDs,
		})
	case errors.As(err, &countMismatch):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:         countMismatch.Error(),
			ExpectedAnswers: &countMismatch.Expected,
			ReceivedAnswers: &countMismatch.Got,
		})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, dto.QuestionUploadErrorDTO{
			Message:        "Validation errors found",
			Errors:         validation.Errors,
			ValidQuestions: validation.ValidQuestions,
		})
	case errors.Is(err, service.ErrUnsupportedFileType), errors.Is(err, service.ErrNoQuestionsFound), errors.Is(err, service.ErrFileParse):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An unexpected error occurred"})
	}
}

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the service and its database are reachable.
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339)}

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.Warn().Err(err).Msg("Health: database unreachable")
		resp.Status = "unavailable"
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
