package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/edustack/dashboard/config"
	"github.com/edustack/dashboard/internal/builder"
	"github.com/edustack/dashboard/internal/controller"
	"github.com/edustack/dashboard/internal/logger"
	"github.com/edustack/dashboard/internal/service"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
)

// @title EduStack Admin Dashboard API
// @version 1.0
// @description Backend-for-frontend serving the educational CMS admin dashboard: tab sessions, catalog list views and the staged exam builder, all backed by the remote content API.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			NewSessionStore,
			builder.NewRegistry,
			upstream.NewClient,
			NewGinEngine,
		),

		// Upstream resource façades
		fx.Provide(
			upstream.NewTrackService,
			upstream.NewSubjectService,
			upstream.NewChapterService,
			upstream.NewUniversityService,
			upstream.NewExamService,
		),

		// Services layer
		fx.Provide(
			service.NewTrackService,
			service.NewSubjectService,
			service.NewChapterService,
			service.NewUniversityService,
			service.NewExamService,
			service.NewBuilderService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewSessionController,
			controller.NewCatalogController,
			controller.NewExamController,
			controller.NewBuilderController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewSessionStore(cfg *config.Config) session.Store {
	return session.NewMemoryStore(cfg.Session.TTL)
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Zerolog-backed request logging instead of Gin's default writer.
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API groups and manages the
// HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	store session.Store,
	sessionCtrl *controller.SessionController,
	catalogCtrl *controller.CatalogController,
	examCtrl *controller.ExamController,
	builderCtrl *controller.BuilderController,
) {
	api := router.Group("/api/v1")
	sessionCtrl.RegisterRoutes(api)
	catalogCtrl.RegisterRoutes(api)
	examCtrl.RegisterRoutes(api)
	builderCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Admin dashboard API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			store.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
