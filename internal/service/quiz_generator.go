package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/rs/zerolog/log"
)

// MinQuizQuestions is the fixed number of questions a started quiz must have,
// whatever distribution was requested.
const MinQuizQuestions = 10

// Distribution is the number of questions to draw per complexity level.
type Distribution struct {
	Easy     int
	Moderate int
	Complex  int
}

func DefaultDistribution() Distribution {
	return Distribution{Easy: 4, Moderate: 4, Complex: 2}
}

// DistributionFromConfig reads the configured draw counts, falling back to
// the default 4/4/2 split when none are set.
func DistributionFromConfig(cfg *config.Config) Distribution {
	dist := Distribution{
		Easy:     cfg.Quiz.EasyCount,
		Moderate: cfg.Quiz.ModerateCount,
		Complex:  cfg.Quiz.ComplexCount,
	}
	if dist.Total() == 0 {
		return DefaultDistribution()
	}
	return dist
}

func (d Distribution) Total() int {
	return max(d.Easy, 0) + max(d.Moderate, 0) + max(d.Complex, 0)
}

func (d Distribution) countFor(complexity string) int {
	switch complexity {
	case model.ComplexityEasy:
		return max(d.Easy, 0)
	case model.ComplexityModerate:
		return max(d.Moderate, 0)
	case model.ComplexityComplex:
		return max(d.Complex, 0)
	}
	return 0
}

var complexityOrder = []string{model.ComplexityEasy, model.ComplexityModerate, model.ComplexityComplex}

type QuizGenerator interface {
	// Generate picks dist.Total() distinct questions the user has not yet
	// answered correctly. Buckets that are too small are topped up from the
	// rest of the pool, so the distribution is a target, not a guarantee.
	Generate(ctx context.Context, userID uint, dist Distribution) ([]model.Question, error)
}

type quizGenerator struct {
	questionRepo repository.QuestionRepository
	historyRepo  repository.HistoryRepository

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewQuizGenerator builds a generator. A nil rng is replaced by a time-seeded one.
func NewQuizGenerator(questionRepo repository.QuestionRepository, historyRepo repository.HistoryRepository, rng *rand.Rand) QuizGenerator {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &quizGenerator{
		questionRepo: questionRepo,
		historyRepo:  historyRepo,
		rng:          rng,
	}
}

func (g *quizGenerator) Generate(ctx context.Context, userID uint, dist Distribution) ([]model.Question, error) {
	total := dist.Total()

	excludedIDs, err := g.historyRepo.CorrectlyAnsweredIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading answer history for user %d: %w", userID, err)
	}
	excluded := make(map[uint]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	available, err := g.questionRepo.FindAvailable(ctx, excludedIDs)
	if err != nil {
		return nil, fmt.Errorf("loading available questions: %w", err)
	}

	pool := make([]model.Question, 0, len(available))
	buckets := make(map[string][]model.Question, len(complexityOrder))
	for _, q := range available {
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		pool = append(pool, q)
		buckets[q.Complexity] = append(buckets[q.Complexity], q)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	selected := make([]model.Question, 0, total)
	chosen := make(map[uint]struct{}, total)
	for _, level := range complexityOrder {
		for _, q := range g.draw(buckets[level], dist.countFor(level)) {
			selected = append(selected, q)
			chosen[q.ID] = struct{}{}
		}
	}

	if shortfall := total - len(selected); shortfall > 0 {
		rest := make([]model.Question, 0, len(pool))
		for _, q := range pool {
			if _, taken := chosen[q.ID]; !taken {
				rest = append(rest, q)
			}
		}
		selected = append(selected, g.draw(rest, shortfall)...)
	}

	g.shuffle(selected)
	if len(selected) > total {
		selected = selected[:total]
	}

	log.Debug().
		Uint("userID", userID).
		Int("excluded", len(excludedIDs)).
		Int("pool", len(pool)).
		Int("selected", len(selected)).
		Int("target", total).
		Msg("QuizGenerator: selection done")

	if len(selected) < total {
		return nil, ErrInsufficientQuestionPool
	}
	return selected, nil
}

// draw returns min(n, len(questions)) questions chosen uniformly without
// replacement. The input slice is not modified.
func (g *quizGenerator) draw(questions []model.Question, n int) []model.Question {
	if n <= 0 || len(questions) == 0 {
		return nil
	}
	shuffled := make([]model.Question, len(questions))
	copy(shuffled, questions)
	g.shuffle(shuffled)
	return shuffled[:min(n, len(shuffled))]
}

// shuffle is a Fisher-Yates shuffle: every permutation is equally likely.
func (g *quizGenerator) shuffle(questions []model.Question) {
	for i := len(questions) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
