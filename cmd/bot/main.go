package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WorkerOfYear/jeopardy/internal/bot"
	"github.com/WorkerOfYear/jeopardy/internal/config"
	"github.com/WorkerOfYear/jeopardy/internal/database"
	"github.com/WorkerOfYear/jeopardy/internal/handlers"
	"github.com/WorkerOfYear/jeopardy/internal/logging"
	"github.com/WorkerOfYear/jeopardy/internal/middleware"
	"github.com/WorkerOfYear/jeopardy/internal/services"
	"github.com/WorkerOfYear/jeopardy/internal/telegram"
	"github.com/WorkerOfYear/jeopardy/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Init()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Bot.Token == "" {
		log.Fatal().Msg("bot token is not configured")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authService := services.NewAuthService(db, cfg.Server.JWTSecret)
	userService := services.NewUserService(db)
	gameService := services.NewGameService(db)
	quizService := services.NewQuizService(db)

	hub := ws.NewHub()
	client := telegram.NewClient(cfg.Bot.Token)
	transport := bot.NewTelegramTransport(client)
	gateway := bot.NewGateway(userService, gameService, quizService)

	countdown := bot.NewCountdownManager(
		gateway, transport, hub,
		cfg.Game.Countdown(), cfg.Game.Tick(),
		log.With().Str("component", "countdown").Logger(),
	)
	orchestrator := bot.NewOrchestrator(
		gateway, transport, countdown, hub,
		log.With().Str("component", "orchestrator").Logger(),
	)
	poller := telegram.NewPoller(
		client, cfg.Bot.PollTimeout, orchestrator.HandleUpdate,
		log.With().Str("component", "poller").Logger(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go poller.Run(ctx)

	authHandler := handlers.NewAuthHandler(authService)
	themeHandler := handlers.NewThemeHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(quizService)
	gameHandler := handlers.NewGameHandler(gameService, countdown)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws/chat/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		themes := api.Group("/themes")
		themes.Use(middleware.JWTAuth(authService))
		{
			themes.GET("", themeHandler.ListThemes)
			themes.POST("", themeHandler.CreateTheme)
			themes.GET("/:id", themeHandler.GetTheme)
			themes.PUT("/:id", themeHandler.UpdateTheme)
			themes.DELETE("/:id", themeHandler.DeleteTheme)
			themes.GET("/:id/questions", themeHandler.ListQuestions)
			themes.POST("/:id/questions", themeHandler.CreateQuestion)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		games := api.Group("/games")
		games.Use(middleware.JWTAuth(authService))
		{
			games.GET("", gameHandler.ListOpenGames)
			games.POST("/:id/cancel", gameHandler.CancelGame)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	countdown.Stop()
	log.Info().Msg("stopped")
}
