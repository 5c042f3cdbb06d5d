package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
)

// QuizAttemptService owns the lifecycle of a quiz attempt:
// in_progress (SubmittedAt nil) -> completed (SubmittedAt and Score set).
type QuizAttemptService interface {
	StartQuiz(ctx context.Context, userID uint) (*dto.QuizStartResponseDTO, error)
	SubmitQuiz(ctx context.Context, userID uint, req dto.QuizSubmitDTO) (*dto.QuizResultDTO, error)
	QuitQuiz(ctx context.Context, userID uint, req dto.QuizSubmitDTO) (*dto.QuizResultDTO, error)
	GetAttemptDetails(ctx context.Context, attemptID, userID uint) (*dto.QuizAttemptDetailDTO, error)
	GetUserAttempts(ctx context.Context, userID uint) ([]dto.QuizAttemptSummaryDTO, error)
}

type quizAttemptService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.QuizAttemptRepository
	answerRepo   repository.QuizAnswerRepository
	historyRepo  repository.HistoryRepository
	generator    QuizGenerator
	scorer       AnswerScorer
	distribution Distribution
	db           *gorm.DB // Used for transactions within service methods
	now          func() time.Time
}

// NewQuizAttemptService creates a new instance of QuizAttemptService.
func NewQuizAttemptService(
	questionRepo repository.QuestionRepository,
	attemptRepo repository.QuizAttemptRepository,
	answerRepo repository.QuizAnswerRepository,
	historyRepo repository.HistoryRepository,
	generator QuizGenerator,
	scorer AnswerScorer,
	distribution Distribution,
	db *gorm.DB,
) QuizAttemptService {
	return &quizAttemptService{
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		historyRepo:  historyRepo,
		generator:    generator,
		scorer:       scorer,
		distribution: distribution,
		db:           db,
		now:          time.Now,
	}
}

// StartQuiz generates a quiz and records its membership as placeholder answers.
func (s *quizAttemptService) StartQuiz(ctx context.Context, userID uint) (*dto.QuizStartResponseDTO, error) {
	questions, err := s.generator.Generate(ctx, userID, s.distribution)
	if err != nil {
		if errors.Is(err, ErrInsufficientQuestionPool) {
			log.Warn().Uint("userID", userID).Msg("StartQuiz: question pool exhausted for user")
			return nil, err
		}
		log.Error().Err(err).Uint("userID", userID).Msg("StartQuiz: quiz generation failed")
		return nil, fmt.Errorf("generating quiz: %w", err)
	}
	if len(questions) < MinQuizQuestions {
		log.Warn().Uint("userID", userID).Int("questions", len(questions)).Msg("StartQuiz: fewer questions than the minimum")
		return nil, ErrInsufficientQuestionPool
	}

	attempt := model.QuizAttempt{
		UserID:         userID,
		TotalQuestions: len(questions),
		Answers:        make([]model.QuizAnswer, 0, len(questions)),
	}
	for _, q := range questions {
		attempt.Answers = append(attempt.Answers, model.QuizAnswer{QuestionID: q.ID})
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartQuiz: failed to create quiz attempt")
		return nil, fmt.Errorf("creating quiz attempt: %w", err)
	}

	resp := dto.QuizStartResponseDTO{
		AttemptID: attempt.ID,
		Questions: make([]dto.QuizQuestionDTO, len(questions)),
	}
	for i := range questions {
		if err := copier.Copy(&resp.Questions[i], &questions[i]); err != nil {
			return nil, fmt.Errorf("error preparing quiz questions: %w", err)
		}
		resp.Questions[i].Options = toOptionDTOs(questions[i].Options)
	}

	log.Info().Uint("userID", userID).Uint("attemptID", attempt.ID).Int("questions", len(questions)).Msg("Quiz attempt started")
	return &resp, nil
}

// SubmitQuiz scores a full set of answers and finalizes the attempt.
func (s *quizAttemptService) SubmitQuiz(ctx context.Context, userID uint, req dto.QuizSubmitDTO) (*dto.QuizResultDTO, error) {
	return s.finalize(ctx, userID, req, true)
}

// QuitQuiz scores whatever the user answered so far and finalizes the attempt.
// Unanswered questions keep their empty, incorrect placeholder.
func (s *quizAttemptService) QuitQuiz(ctx context.Context, userID uint, req dto.QuizSubmitDTO) (*dto.QuizResultDTO, error) {
	return s.finalize(ctx, userID, req, false)
}

type scoredAnswer struct {
	userAnswer string
	correct    bool
}

func (s *quizAttemptService) finalize(ctx context.Context, userID uint, req dto.QuizSubmitDTO, requireAll bool) (*dto.QuizResultDTO, error) {
	op := "QuitQuiz"
	if requireAll {
		op = "SubmitQuiz"
	}

	attempt, err := s.attemptRepo.FindByIDForUser(ctx, req.AttemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Uint("attemptID", req.AttemptID).Msg(op + ": failed to load attempt")
		return nil, fmt.Errorf("loading quiz attempt %d: %w", req.AttemptID, err)
	}
	if attempt.Completed() {
		return nil, ErrAlreadySubmitted
	}

	memberIDs, err := s.answerRepo.FindQuestionIDs(ctx, attempt.ID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg(op + ": failed to load attempt membership")
		return nil, fmt.Errorf("loading quiz membership: %w", err)
	}
	if err := validateAnswers(memberIDs, req.Answers, requireAll); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Uint("userID", userID).Msg(op + ": rejected answers")
		return nil, err
	}

	questions, err := s.questionRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg(op + ": failed to load questions")
		return nil, fmt.Errorf("loading quiz questions: %w", err)
	}
	questionMap := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		questionMap[questions[i].ID] = &questions[i]
	}

	scored := make(map[uint]scoredAnswer, len(req.Answers))
	score := 0
	for _, answer := range req.Answers {
		question, ok := questionMap[answer.QuestionID]
		if !ok {
			log.Error().Uint("questionID", answer.QuestionID).Uint("attemptID", attempt.ID).Msg(op + ": attempt references a missing question")
			return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, answer.QuestionID)
		}
		correct := s.scorer.IsCorrect(question, answer.UserAnswer)
		if correct {
			score++
		}
		scored[answer.QuestionID] = scoredAnswer{userAnswer: answer.UserAnswer, correct: correct}
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Claim the attempt first so a concurrent finalize of the same
		// attempt cannot write answers or history.
		claimed, err := s.attemptRepo.WithTx(tx).MarkSubmitted(ctx, attempt.ID, userID, score, now)
		if err != nil {
			return fmt.Errorf("finalizing quiz attempt: %w", err)
		}
		if !claimed {
			return ErrAlreadySubmitted
		}

		answers := s.answerRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)
		for _, answer := range req.Answers {
			result := scored[answer.QuestionID]
			if err := answers.Update(ctx, attempt.ID, answer.QuestionID, result.userAnswer, result.correct); err != nil {
				return fmt.Errorf("updating answer for question %d: %w", answer.QuestionID, err)
			}
			if err := history.Upsert(ctx, userID, answer.QuestionID, result.correct, now); err != nil {
				return fmt.Errorf("updating history for question %d: %w", answer.QuestionID, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			log.Warn().Uint("attemptID", attempt.ID).Msg(op + ": lost finalize race, attempt already submitted")
			return nil, err
		}
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg(op + ": transaction failed")
		return nil, err
	}

	resp := dto.QuizResultDTO{
		AttemptID:      attempt.ID,
		Score:          score,
		TotalQuestions: attempt.TotalQuestions,
		Results:        make([]dto.QuestionResultDTO, 0, len(memberIDs)),
	}
	for _, id := range memberIDs {
		question, ok := questionMap[id]
		if !ok {
			continue
		}
		result := scored[id]
		resp.Results = append(resp.Results, toResultDTO(question, result.userAnswer, result.correct, true))
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("userID", userID).
		Int("score", score).
		Int("answered", len(req.Answers)).
		Int("total", attempt.TotalQuestions).
		Msg(op + ": quiz attempt finalized")
	return &resp, nil
}

// validateAnswers enforces that every answer targets a distinct member of the
// attempt. When requireAll is set the answers must also cover every member.
func validateAnswers(memberIDs []uint, answers []dto.UserAnswerDTO, requireAll bool) error {
	members := make(map[uint]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}

	seen := make(map[uint]struct{}, len(answers))
	var invalid []uint
	for _, answer := range answers {
		_, member := members[answer.QuestionID]
		_, dup := seen[answer.QuestionID]
		if !member || dup {
			invalid = append(invalid, answer.QuestionID)
		}
		seen[answer.QuestionID] = struct{}{}
	}
	if len(invalid) > 0 {
		return &InvalidQuestionIDsError{IDs: invalid}
	}

	if requireAll && len(answers) != len(memberIDs) {
		return &AnswerCountMismatchError{Expected: len(memberIDs), Got: len(answers)}
	}
	return nil
}

// GetAttemptDetails retrieves the review of one of the user's attempts.
func (s *quizAttemptService) GetAttemptDetails(ctx context.Context, attemptID, userID uint) (*dto.QuizAttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetails: Failed to find quiz attempt by ID.")
		return nil, fmt.Errorf("loading quiz attempt %d: %w", attemptID, err)
	}

	var resp dto.QuizAttemptDetailDTO
	if err := copier.Copy(&resp.QuizAttemptSummaryDTO, attempt); err != nil {
		log.Error().Err(err).Msg("GetAttemptDetails: Failed to copy attempt model to DTO.")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Status = attemptStatus(attempt)

	completed := attempt.Completed()
	resp.Results = make([]dto.QuestionResultDTO, 0, len(attempt.Answers))
	for i := range attempt.Answers {
		answer := &attempt.Answers[i]
		if answer.Question.ID == 0 {
			log.Warn().Uint("questionID", answer.QuestionID).Uint("attemptID", attempt.ID).Msg("GetAttemptDetails: question missing for answer")
			continue
		}
		resp.Results = append(resp.Results, toResultDTO(&answer.Question, answer.UserAnswer, answer.IsCorrect, completed))
	}
	return &resp, nil
}

// GetUserAttempts lists the user's attempts, newest first.
func (s *quizAttemptService) GetUserAttempts(ctx context.Context, userID uint) ([]dto.QuizAttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserAttempts: Failed to find attempts from repository.")
		return nil, fmt.Errorf("error fetching attempts for user %d: %w", userID, err)
	}

	summaries := make([]dto.QuizAttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		var summary dto.QuizAttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempts[i]); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempts[i].ID).Msg("GetUserAttempts: Error copying attempt to summary DTO")
			continue
		}
		summary.Status = attemptStatus(&attempts[i])
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func attemptStatus(attempt *model.QuizAttempt) string {
	if attempt.Completed() {
		return AttemptStatusCompleted
	}
	return AttemptStatusInProgress
}

func toOptionDTOs(options []model.Option) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(options))
	for _, opt := range options {
		out = append(out, dto.OptionDTO{Letter: opt.Letter, Text: opt.Text})
	}
	return out
}

func toResultDTO(question *model.Question, userAnswer string, correct, revealAnswer bool) dto.QuestionResultDTO {
	result := dto.QuestionResultDTO{
		QuestionID: question.ID,
		Text:       question.Text,
		Type:       question.Type,
		UserAnswer: userAnswer,
		IsCorrect:  correct,
		Options:    toOptionDTOs(question.Options),
	}
	if revealAnswer {
		result.CorrectAnswer = question.CorrectAnswer
	}
	return result
}
