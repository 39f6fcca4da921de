package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/database"
	_ "github.com/hireloop/hireloop/docs" // Swagger docs
	"github.com/hireloop/hireloop/internal/controller"
	adminctrl "github.com/hireloop/hireloop/internal/controller/admin"
	applicantctrl "github.com/hireloop/hireloop/internal/controller/applicant"
	"github.com/hireloop/hireloop/internal/logger"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/hireloop/hireloop/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Hireloop Interview API
// @version 1.0
// @description API for managing interviews, questions and applicants, with a guided speech-transcribed interview flow and AI question suggestions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewQuestionRepository,
			repository.NewApplicantRepository,
			repository.NewAnswerRepository,
		),

		// Services
		fx.Provide(
			service.NewGenerationCache,
			service.NewGeminiLLMService,
			service.NewSuggestionService,
			service.NewStatusGate,
			service.NewSessionService,
			service.NewInterviewService,
			service.NewQuestionService,
			service.NewApplicantService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewInterviewController,
			adminctrl.NewQuestionController,
			adminctrl.NewApplicantController,
			applicantctrl.NewSessionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *adminctrl.InterviewController,
	questionCtrl *adminctrl.QuestionController,
	applicantCtrl *adminctrl.ApplicantController,
	sessionCtrl *applicantctrl.SessionController,
) {
	// Recruiter routes, guarded by the single bearer credential.
	adminGroup := router.Group("/api/v1/admin")
	adminGroup.Use(controller.BearerAuth(cfg))
	{
		adminGroup.POST("/interviews", interviewCtrl.CreateInterview)
		adminGroup.GET("/interviews", interviewCtrl.GetAllInterviews)
		adminGroup.GET("/interviews/:interview_id", interviewCtrl.GetInterviewDetails)
		adminGroup.PUT("/interviews/:interview_id", interviewCtrl.UpdateInterview)
		adminGroup.DELETE("/interviews/:interview_id", interviewCtrl.DeleteInterview)
		adminGroup.POST("/interviews/:interview_id/suggestions", interviewCtrl.GenerateSuggestions)

		adminGroup.POST("/interviews/:interview_id/questions", questionCtrl.AddQuestion)
		adminGroup.GET("/interviews/:interview_id/questions", questionCtrl.GetQuestions)
		adminGroup.POST("/interviews/:interview_id/questions/promote", questionCtrl.PromoteSuggestion)
		adminGroup.PUT("/questions/:question_id", questionCtrl.UpdateQuestion)
		adminGroup.DELETE("/questions/:question_id", questionCtrl.DeleteQuestion)

		adminGroup.POST("/interviews/:interview_id/applicants", applicantCtrl.RegisterApplicant)
		adminGroup.GET("/interviews/:interview_id/applicants", applicantCtrl.GetApplicants)
		adminGroup.GET("/applicants/:applicant_id/answers", applicantCtrl.GetApplicantAnswers)
		adminGroup.DELETE("/applicants/:applicant_id", applicantCtrl.DeleteApplicant)
	}

	// Applicant session routes, addressed by the interview-link access key.
	sessionGroup := router.Group("/api/v1/session")
	{
		sessionGroup.POST("/:access_key/start", sessionCtrl.StartSession)
		sessionGroup.GET("/:access_key/question", sessionCtrl.CurrentQuestion)
		sessionGroup.POST("/:access_key/capture", sessionCtrl.Capture)
		sessionGroup.POST("/:access_key/advance", sessionCtrl.Advance)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Hireloop API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Interview{},
		&model.Question{},
		&model.Applicant{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
