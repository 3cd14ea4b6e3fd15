package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"resume-builder/internal/adapter/ai"
	"resume-builder/internal/adapter/store"
	"resume-builder/internal/handler"
	"resume-builder/internal/middleware"
	"resume-builder/internal/port"
	"resume-builder/internal/service"
	"resume-builder/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Resume Builder API",
		"port", cfg.Port,
		"embed_url", cfg.EmbedURL,
		"embed_model", cfg.EmbedModel,
		"summarizer_model", cfg.SummarizerModel,
	)

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	// ── AI adapters ──────────────────────────────────────────────────────
	// Either adapter may be missing; ranking requests then fail with 503
	// while the rest of the API keeps working.
	var embedder port.Embedder
	ollama := ai.NewOllamaEmbedder(ai.OllamaEmbedderConfig{
		BaseURL: cfg.EmbedURL,
		Model:   cfg.EmbedModel,
		Token:   cfg.EmbedToken,
	})
	probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ollama.Probe(probeCtx); err != nil {
		slog.Warn("embedding model unavailable, ranking disabled", "error", err)
	} else {
		embedder = ollama
	}
	cancel()

	var summarizer service.BulletSummarizer
	if cfg.SummarizerAPIKey == "" {
		slog.Warn("summarizer API key not set, ranking disabled")
	} else {
		chatClient, err := ai.NewChatClient(ai.ChatConfig{
			APIKey:  cfg.SummarizerAPIKey,
			BaseURL: cfg.SummarizerBaseURL,
			Model:   cfg.SummarizerModel,
		})
		if err != nil {
			slog.Error("failed to create summarizer client", "error", err)
			os.Exit(1)
		}
		summarizer = service.NewSummarizer(chatClient, cfg.BackoffUnit)
	}

	// ── Services ─────────────────────────────────────────────────────────
	jwtCfg := middleware.JWTConfig{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		ExpiresIn: time.Duration(cfg.JWTExpiration) * time.Hour,
	}

	authService := service.NewAuthService(pgStore, cfg.BcryptCost, jwtCfg)
	resumeService := service.NewResumeService(pgStore)
	rankService := service.NewRankService(resumeService, embedder, summarizer, service.CategoryCaps{
		WorkExperiences: cfg.TopWorkExperiences,
		Projects:        cfg.TopProjects,
	})

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	// Audit middleware (logs all requests)
	app.Use(middleware.AuditMiddleware(pgStore))

	// ── Public Routes ────────────────────────────────────────────────────
	public := app.Group("/api/v1")

	authHandler := handler.NewAuthHandler(authService)
	authHandler.Register(public)

	public.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "healthy",
			"app":              cfg.AppName,
			"embedder_ready":   embedder != nil,
			"summarizer_ready": summarizer != nil,
		})
	})

	// ── Protected Routes ─────────────────────────────────────────────────
	api := app.Group("/api/v1", middleware.JWTMiddleware(jwtCfg))

	authHandler.RegisterProtected(api)

	resumeHandler := handler.NewResumeHandler(resumeService)
	resumeHandler.Register(api)

	rankHandler := handler.NewRankHandler(rankService)
	rankHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
