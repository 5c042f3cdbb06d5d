package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/internal/auth"
	"github.com/lshigami/QuizHub/internal/controller"
	adminctrl "github.com/lshigami/QuizHub/internal/controller/admin"
	userctrl "github.com/lshigami/QuizHub/internal/controller/user"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/middleware"
	"github.com/lshigami/QuizHub/internal/model"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/lshigami/QuizHub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	t      *testing.T
	engine *gin.Engine
	alice  string
	bob    string
	admin  string
}

func newAPIFixture(t *testing.T, easy, moderate, complex int) *apiFixture {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{GinMode: gin.TestMode, AllowedOrigins: []string{"*"}, UploadMaxBytes: 5 << 20},
		Auth:   config.Auth{JWTSecret: "router-test-secret"},
	}
	db := testutil.NewDB(t)
	testutil.SeedQuestions(t, db, easy, moderate, complex)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	quizService := service.NewQuizAttemptService(
		questionRepo,
		repository.NewQuizAttemptRepository(db),
		repository.NewQuizAnswerRepository(db),
		historyRepo,
		service.NewQuizGenerator(questionRepo, historyRepo, nil),
		service.NewAnswerScorer(),
		service.DefaultDistribution(),
		db,
	)

	engine := NewGinEngine(cfg)
	RegisterRoutes(engine,
		auth.NewMiddleware(cfg, userRepo),
		controller.NewHealthController(db),
		userctrl.NewQuizController(quizService),
		adminctrl.NewQuestionController(service.NewQuestionBankService(questionRepo), cfg),
	)

	token := func(user *model.User) string {
		tok, err := auth.IssueToken(cfg.Auth.JWTSecret, user.ID, time.Hour)
		require.NoError(t, err)
		return "Bearer " + tok
	}
	return &apiFixture{
		t:      t,
		engine: engine,
		alice:  token(testutil.CreateUser(t, db, "alice", model.RoleParticipant)),
		bob:    token(testutil.CreateUser(t, db, "bob", model.RoleParticipant)),
		admin:  token(testutil.CreateUser(t, db, "root", model.RoleAdmin)),
	}
}

func (f *apiFixture) do(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) upload(bearer, filename, content string) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(adminctrl.UploadFormField, filename)
	require.NoError(f.t, err)
	_, err = part.Write([]byte(content))
	require.NoError(f.t, err)
	require.NoError(f.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/questions/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (f *apiFixture) start(bearer string) dto.QuizStartResponseDTO {
	f.t.Helper()
	w := f.do(http.MethodPost, "/api/v1/quiz/start", bearer, nil)
	require.Equal(f.t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.QuizStartResponseDTO](f.t, w)
}

func allAnswers(started dto.QuizStartResponseDTO, answer string) []dto.UserAnswerDTO {
	answers := make([]dto.UserAnswerDTO, 0, len(started.Questions))
	for _, q := range started.Questions {
		answers = append(answers, dto.UserAnswerDTO{QuestionID: q.ID, UserAnswer: answer})
	}
	return answers
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t, 0, 0, 0)
	w := f.do(http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, w).Status)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestQuizRequiresAuthentication(t *testing.T) {
	f := newAPIFixture(t, 4, 4, 2)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/quiz/start", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/quiz/attempts", "Bearer nope", nil).Code)
}

func TestQuizFlow(t *testing.T) {
	f := newAPIFixture(t, 8, 8, 4)

	started := f.start(f.alice)
	require.Len(t, started.Questions, 10)
	assert.NotContains(t, f.do(http.MethodGet, "/api/v1/quiz/attempts/"+itoa(started.AttemptID), f.alice, nil).Body.String(), `"correctAnswer"`)

	w := f.do(http.MethodPost, "/api/v1/quiz/submit", f.alice, dto.QuizSubmitDTO{
		AttemptID: started.AttemptID,
		Answers:   allAnswers(started, "A")[:9],
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	mismatch := decode[dto.ErrorResponse](t, w)
	require.NotNil(t, mismatch.ExpectedAnswers)
	assert.Equal(t, 10, *mismatch.ExpectedAnswers)
	assert.Equal(t, 9, *mismatch.ReceivedAnswers)

	foreign := allAnswers(started, "A")
	foreign[0].QuestionID = 99999
	w = f.do(http.MethodPost, "/api/v1/quiz/submit", f.alice, dto.QuizSubmitDTO{AttemptID: started.AttemptID, Answers: foreign})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []uint{99999}, decode[dto.ErrorResponse](t, w).InvalidQuestionIDs)

	w = f.do(http.MethodPost, "/api/v1/quiz/submit", f.bob, dto.QuizSubmitDTO{AttemptID: started.AttemptID, Answers: allAnswers(started, "A")})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodPost, "/api/v1/quiz/submit", f.alice, dto.QuizSubmitDTO{AttemptID: started.AttemptID, Answers: allAnswers(started, "A")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[dto.QuizResultDTO](t, w)
	assert.Equal(t, 10, result.Score)
	assert.Len(t, result.Results, 10)

	w = f.do(http.MethodPost, "/api/v1/quiz/quit", f.alice, dto.QuizSubmitDTO{AttemptID: started.AttemptID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodGet, "/api/v1/quiz/attempts/"+itoa(started.AttemptID), f.alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[dto.QuizAttemptDetailDTO](t, w)
	assert.Equal(t, service.AttemptStatusCompleted, detail.Status)

	w = f.do(http.MethodGet, "/api/v1/quiz/attempts", f.alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.QuizAttemptSummaryDTO](t, w), 1)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/quiz/attempts/"+itoa(started.AttemptID), f.bob, nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/quiz/attempts/abc", f.alice, nil).Code)
}

func TestQuizSubmitBadBody(t *testing.T) {
	f := newAPIFixture(t, 4, 4, 2)
	w := f.do(http.MethodPost, "/api/v1/quiz/submit", f.alice, map[string]string{"attemptId": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/v1/quiz/submit", f.alice, map[string]int{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizStartInsufficientPool(t *testing.T) {
	f := newAPIFixture(t, 3, 3, 3)
	w := f.do(http.MethodPost, "/api/v1/quiz/start", f.alice, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, w).Message, "not enough questions")
}

func TestAdminQuestions(t *testing.T) {
	f := newAPIFixture(t, 0, 0, 0)

	csv := "Question Text,Question Type,Options,Correct Answer,Complexity Level,Subject\n" +
		`"Capital of France?",objective,"A: Paris, B: London",A,easy,Geography` + "\n" +
		`"H2O is ___",fill_blank,,water,moderate,` + "\n"

	assert.Equal(t, http.StatusForbidden, f.upload(f.alice, "q.csv", csv).Code)

	w := f.upload(f.admin, "q.txt", csv)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.upload(f.admin, "q.xlsx", "not a workbook")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.upload(f.admin, "q.csv", csv+`"Unterminated,objective,"A: x, B: y",A,easy,`+"\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.upload(f.admin, "q.csv", csv+`"Broken",essay,,x,easy,`+"\n")
	require.Equal(t, http.StatusBadRequest, w.Code)
	invalid := decode[dto.QuestionUploadErrorDTO](t, w)
	assert.Equal(t, 2, invalid.ValidQuestions)
	require.Len(t, invalid.Errors, 1)
	assert.Contains(t, invalid.Errors[0], "Row 4:")

	w = f.upload(f.admin, "q.csv", csv)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	uploaded := decode[dto.QuestionUploadResponseDTO](t, w)
	assert.Equal(t, 2, uploaded.Count)

	w = f.do(http.MethodGet, "/api/v1/admin/questions/stats", f.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.QuestionPoolStatsDTO](t, w)
	assert.EqualValues(t, 2, stats.Total)
	assert.False(t, stats.CanServeQuiz)

	w = f.do(http.MethodGet, "/api/v1/admin/questions/"+itoa(uploaded.Questions[0].ID), f.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", decode[dto.QuestionDetailDTO](t, w).CorrectAnswer)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/admin/questions/4242", f.admin, nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/admin/questions/stats", f.bob, nil).Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
