package admin

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/internal/controller"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/rs/zerolog/log"
)

// UploadFormField is the multipart field carrying the question file.
const UploadFormField = "questionsFile"

type QuestionController struct {
	questionBank   service.QuestionBankService
	uploadMaxBytes int64
}

func NewQuestionController(questionBank service.QuestionBankService, cfg *config.Config) *QuestionController {
	return &QuestionController{questionBank: questionBank, uploadMaxBytes: cfg.Server.UploadMaxBytes}
}

// UploadQuestions godoc
// @Summary (Admin) Bulk upload questions
// @Description Imports questions from a CSV or XLSX file. Any invalid row rejects the whole file.
// @Tags Admin - Questions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param questionsFile formData file true "CSV or XLSX file"
// @Success 201 {object} dto.QuestionUploadResponseDTO
// @Failure 400 {object} dto.QuestionUploadErrorDTO "Missing file, wrong type or invalid rows"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/upload [post]
func (c *QuestionController) UploadQuestions(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(UploadFormField)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No file uploaded", Details: []string{err.Error()}})
		return
	}
	if c.uploadMaxBytes > 0 && fileHeader.Size > c.uploadMaxBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Message: "File too large. Maximum size is " + strconv.FormatInt(c.uploadMaxBytes>>20, 10) + "MB",
		})
		return
	}
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv", ".xlsx":
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.ErrUnsupportedFileType.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("Admin UploadQuestions: cannot open upload")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An unexpected error occurred"})
		return
	}
	defer file.Close()

	resp, err := c.questionBank.ImportFile(ctx.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		controller.RespondError(ctx, "UploadQuestions", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestionStats godoc
// @Summary (Admin) Question pool statistics
// @Description Counts of questions per complexity level and whether a quiz can be served.
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuestionPoolStatsDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/stats [get]
func (c *QuestionController) GetQuestionStats(ctx *gin.Context) {
	stats, err := c.questionBank.GetPoolStats(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "GetQuestionStats", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Description Full question including its canonical answer.
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}
	question, err := c.questionBank.GetQuestion(ctx.Request.Context(), uint(id))
	if err != nil {
		controller.RespondError(ctx, "GetQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}
