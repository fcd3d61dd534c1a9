package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/scribeset/config"
	"github.com/lshigami/scribeset/database"
	_ "github.com/lshigami/scribeset/docs" // swagger spec
	"github.com/lshigami/scribeset/internal/auth"
	"github.com/lshigami/scribeset/internal/controller"
	moderatorctrl "github.com/lshigami/scribeset/internal/controller/moderator"
	publicctrl "github.com/lshigami/scribeset/internal/controller/public"
	"github.com/lshigami/scribeset/internal/logger"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/lshigami/scribeset/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ScribeSet Handwriting Collection API
// @version 1.0
// @description Collects handwriting samples against prompts, lets moderators review them and exports the verified dataset.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// LOG_LEVEL from the process environment covers config loading; the
	// invoke below re-applies it once .env has been read.
	logger.Init(os.Getenv("LOG_LEVEL"))

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewPromptRepository,
			repository.NewSubmissionRepository,
			repository.NewModeratorRepository,
		),

		fx.Provide(
			func() *service.PromptSelector { return service.NewPromptSelector(nil) },
			service.NewImageStore,
			service.NewImageFetcher,
			auth.NewTokenManager,
			service.NewPromptService,
			service.NewSubmissionService,
			service.NewModerationService,
			service.NewDatasetArchiver,
			service.NewAuthService,
		),

		fx.Provide(
			publicctrl.NewPublicController,
			moderatorctrl.NewModeratorController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.Init(cfg.LogLevel) }),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(BootstrapModerator),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	tokens *auth.TokenManager,
	publicCtrl *publicctrl.PublicController,
	moderatorCtrl *moderatorctrl.ModeratorController,
) {
	router.GET("/healthz", controller.Health(db))
	publicCtrl.RegisterRoutes(router)
	moderatorCtrl.RegisterRoutes(router, auth.RequireModerator(tokens))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ScribeSet server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Moderator{},
		&model.Prompt{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// BootstrapModerator creates the configured moderator account on first start.
func BootstrapModerator(cfg *config.Config, authService service.AuthService) error {
	if cfg.Auth.BootstrapUsername == "" || cfg.Auth.BootstrapPassword == "" {
		log.Info().Msg("No bootstrap moderator configured")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return authService.EnsureModerator(ctx, cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword)
}
