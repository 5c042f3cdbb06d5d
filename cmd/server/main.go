package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/database"
	_ "github.com/lshigami/QuizHub/docs" // Swagger docs
	"github.com/lshigami/QuizHub/internal/auth"
	"github.com/lshigami/QuizHub/internal/controller"
	adminctrl "github.com/lshigami/QuizHub/internal/controller/admin"
	userctrl "github.com/lshigami/QuizHub/internal/controller/user"
	"github.com/lshigami/QuizHub/internal/logger"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/lshigami/QuizHub/internal/router"
	"github.com/lshigami/QuizHub/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Adaptive quiz service: generates quizzes from a question bank, scores submissions and tracks per-user history.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewHistoryRepository,
			repository.NewQuizAttemptRepository,
			repository.NewQuizAnswerRepository,
		),

		fx.Provide(
			service.NewAnswerScorer,
			service.DistributionFromConfig,
			func(questionRepo repository.QuestionRepository, historyRepo repository.HistoryRepository) service.QuizGenerator {
				return service.NewQuizGenerator(questionRepo, historyRepo, nil)
			},
			service.NewQuizAttemptService,
			service.NewQuestionBankService,
		),

		fx.Provide(
			auth.NewMiddleware,
			controller.NewHealthController,
			userctrl.NewQuizController,
			adminctrl.NewQuestionController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel)
}

// StartServer ties the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
