package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/internal/auth"
	"github.com/lshigami/QuizHub/internal/controller"
	adminctrl "github.com/lshigami/QuizHub/internal/controller/admin"
	userctrl "github.com/lshigami/QuizHub/internal/controller/user"
	"github.com/lshigami/QuizHub/internal/middleware"
	"github.com/lshigami/QuizHub/internal/model"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewGinEngine builds the engine with the global middleware chain.
func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 0 || (len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	if cfg.Server.UploadMaxBytes > 0 {
		r.MaxMultipartMemory = cfg.Server.UploadMaxBytes
	}

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(
	r *gin.Engine,
	authMw *auth.Middleware,
	healthCtrl *controller.HealthController,
	quizCtrl *userctrl.QuizController,
	questionCtrl *adminctrl.QuestionController,
) {
	api := r.Group("/api/v1")
	api.GET("/health", healthCtrl.Health)

	quiz := api.Group("/quiz", authMw.Authenticate())
	{
		quiz.POST("/start", quizCtrl.StartQuiz)
		quiz.POST("/submit", quizCtrl.SubmitQuiz)
		quiz.POST("/quit", quizCtrl.QuitQuiz)
		quiz.GET("/attempts", quizCtrl.ListAttempts)
		quiz.GET("/attempts/:attempt_id", quizCtrl.GetAttempt)
	}

	admin := api.Group("/admin", authMw.Authenticate(), authMw.RequireRole(model.RoleAdmin))
	{
		questions := admin.Group("/questions")
		questions.POST("/upload", questionCtrl.UploadQuestions)
		questions.GET("/stats", questionCtrl.GetQuestionStats)
		questions.GET("/:id", questionCtrl.GetQuestion)
	}
}
