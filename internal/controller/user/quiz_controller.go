package user

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/internal/auth"
	"github.com/lshigami/QuizHub/internal/controller"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizAttemptService
}

func NewQuizController(quizService service.QuizAttemptService) *QuizController {
	return &QuizController{quizService: quizService}
}

func currentUser(ctx *gin.Context) (uint, bool) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
	}
	return userID, ok
}

// StartQuiz godoc
// @Summary (User) Start a new quiz
// @Description Generates a quiz of 10 questions the user has not yet answered correctly. Canonical answers are never included.
// @Tags User - Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuizStartResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 422 {object} dto.ErrorResponse "Not enough questions available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	resp, err := c.quizService.StartQuiz(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "StartQuiz", err)
		return
	}
	log.Info().Uint("userID", userID).Uint("attemptID", resp.AttemptID).Msg("Quiz started")
	ctx.JSON(http.StatusOK, resp)
}

// SubmitQuiz godoc
// @Summary (User) Submit a quiz
// @Description Scores an in-progress attempt. Exactly one answer per quiz question is required.
// @Tags User - Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.QuizSubmitDTO true "Attempt ID and one answer per question"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body, foreign question IDs or wrong answer count"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Quiz attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	c.finish(ctx, "SubmitQuiz", c.quizService.SubmitQuiz)
}

// QuitQuiz godoc
// @Summary (User) Quit a quiz early
// @Description Scores the answers given so far. Unanswered questions count as incorrect.
// @Tags User - Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.QuizSubmitDTO true "Attempt ID and any subset of answers"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or foreign question IDs"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Quiz attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/quit [post]
func (c *QuizController) QuitQuiz(ctx *gin.Context) {
	c.finish(ctx, "QuitQuiz", c.quizService.QuitQuiz)
}

type finishFunc func(ctx context.Context, userID uint, req dto.QuizSubmitDTO) (*dto.QuizResultDTO, error)

func (c *QuizController) finish(ctx *gin.Context, op string, fn finishFunc) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := fn(ctx.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(ctx, op, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListAttempts godoc
// @Summary (User) List my quiz attempts
// @Description Summaries of every attempt of the current user, newest first.
// @Tags User - Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizAttemptSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	attempts, err := c.quizService.GetUserAttempts(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "ListAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttempt godoc
// @Summary (User) Get one of my quiz attempts
// @Description Full attempt details. Canonical answers are shown only once the attempt is completed.
// @Tags User - Quiz
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Quiz attempt ID"
// @Success 200 {object} dto.QuizAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Quiz attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/attempts/{attempt_id} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil || attemptID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}
	details, err := c.quizService.GetAttemptDetails(ctx.Request.Context(), uint(attemptID), userID)
	if err != nil {
		controller.RespondError(ctx, "GetAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}
