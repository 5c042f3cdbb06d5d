package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrNoQuestionsFound = errors.New("no valid questions found in file")

// QuestionValidationError carries every row-level problem of an upload.
type QuestionValidationError struct {
	Errors         []string
	ValidQuestions int
}

func (e *QuestionValidationError) Error() string {
	return fmt.Sprintf("validation errors found in %d rows", len(e.Errors))
}

type QuestionBankService interface {
	ImportFile(ctx context.Context, filename string, r io.Reader) (*dto.QuestionUploadResponseDTO, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailDTO, error)
	GetPoolStats(ctx context.Context) (*dto.QuestionPoolStatsDTO, error)
}

type questionBankService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionBankService(questionRepo repository.QuestionRepository) QuestionBankService {
	return &questionBankService{questionRepo: questionRepo}
}

// ImportFile parses a CSV or XLSX upload and inserts its questions. The
// upload is all-or-nothing: a single invalid row rejects the whole file.
func (s *questionBankService) ImportFile(ctx context.Context, filename string, r io.Reader) (*dto.QuestionUploadResponseDTO, error) {
	rows, err := readSheetRows(filename, r)
	if err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("ImportFile: could not read upload")
		return nil, err
	}

	questions, rowErrors := parseQuestionRows(rows)
	if len(rowErrors) > 0 {
		log.Warn().Str("file", filename).Int("errors", len(rowErrors)).Int("valid", len(questions)).Msg("ImportFile: validation errors")
		return nil, &QuestionValidationError{Errors: rowErrors, ValidQuestions: len(questions)}
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsFound
	}

	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("ImportFile: failed to insert questions")
		return nil, fmt.Errorf("failed to insert questions: %w", err)
	}

	resp := dto.QuestionUploadResponseDTO{
		Message:   "Questions uploaded successfully",
		Count:     len(questions),
		Questions: make([]dto.UploadedQuestionDTO, len(questions)),
	}
	for i := range questions {
		if err := copier.Copy(&resp.Questions[i], &questions[i]); err != nil {
			return nil, fmt.Errorf("error preparing upload response: %w", err)
		}
	}

	log.Info().Str("file", filename).Int("count", len(questions)).Msg("Questions imported")
	return &resp, nil
}

func (s *questionBankService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", id).Msg("GetQuestion: repository error")
		return nil, fmt.Errorf("loading question %d: %w", id, err)
	}

	var resp dto.QuestionDetailDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	resp.Options = toOptionDTOs(question.Options)
	return &resp, nil
}

// GetPoolStats reports the bank size per complexity.
func (s *questionBankService) GetPoolStats(ctx context.Context) (*dto.QuestionPoolStatsDTO, error) {
	counts, err := s.questionRepo.CountByComplexity(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetPoolStats: repository error")
		return nil, fmt.Errorf("counting questions: %w", err)
	}

	stats := dto.QuestionPoolStatsDTO{ByComplexity: make(map[string]int64, len(complexityOrder))}
	for _, level := range complexityOrder {
		stats.ByComplexity[level] = counts[level]
	}
	for _, n := range counts {
		stats.Total += n
	}
	stats.CanServeQuiz = stats.Total >= MinQuizQuestions
	return &stats, nil
}
