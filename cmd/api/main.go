// @title StudyMate API
// @version 1.0
// @description Study-assistant backend: PDF summaries, flashcards, study plans and an AI tutor, each generated by a simulated producer and held per session.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studymate/internal/adapter"
	"studymate/internal/adapter/simulated"
	"studymate/internal/cache"
	"studymate/internal/config"
	"studymate/internal/domain"
	"studymate/internal/flashcard"
	"studymate/internal/generation"
	"studymate/internal/handler"
	"studymate/internal/logger"
	"studymate/internal/middleware"
	"studymate/internal/service"
	"studymate/internal/session"
	"studymate/internal/studyplan"
	"studymate/internal/summary"
	"studymate/internal/tutor"
	"studymate/internal/validation"

	_ "studymate/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// newResultCache connects to Redis when an address is configured. Without
// one, generated results are simply not cached.
func newResultCache(ctx context.Context, cfg config.RedisConfig) (domain.Cache, func(), error) {
	if cfg.Address == "" {
		logger.Get().Info("Redis address not set, result cache disabled")
		return adapter.NewNopCache(), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return adapter.NewRedisCacheAdapter(client), func() { _ = client.Close() }, nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resultCache, closeCache, err := newResultCache(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer closeCache()

	// Producers are shared by every session; the pages own the per-session state.
	summarizer := service.NewCachedSummarizer(simulated.NewSummarizer(), resultCache, cfg.Redis.TTL)
	flashcards := service.NewCachedFlashcardGenerator(simulated.NewFlashcardGenerator(), resultCache, cfg.Redis.TTL)
	studyPlans := service.NewCachedStudyPlanGenerator(simulated.NewStudyPlanGenerator(), resultCache, cfg.Redis.TTL)
	responder := simulated.NewTutorResponder(simulated.NewRandomSource(cfg.Tutor.Seed))

	gen := cfg.Generation
	scheduler := generation.ClockScheduler{}
	store := session.NewStore(func() session.Pages {
		return session.Pages{
			Flashcards: flashcard.NewPage(flashcards, flashcard.Config{Delay: gen.FlashcardDelay, MinNoteLength: gen.MinNoteLength, Scheduler: scheduler}),
			StudyPlan:  studyplan.NewPage(studyPlans, studyplan.Config{Delay: gen.StudyPlanDelay, MinNoteLength: gen.MinNoteLength, Scheduler: scheduler}),
			Tutor:      tutor.NewPage(responder, tutor.Config{Delay: gen.TutorDelay, Scheduler: scheduler}),
			Upload:     summary.NewPage(summarizer, summary.Config{Delay: gen.SummaryDelay, MaxBytes: cfg.Upload.MaxBytes, Scheduler: scheduler}),
		}
	}, cfg.Session.IdleTTL)

	// Initialize services
	sessionService := service.NewSessionService(store)
	flashcardService := service.NewFlashcardService(store, gen.MinNoteLength)
	studyPlanService := service.NewStudyPlanService(store, gen.MinNoteLength)
	tutorService := service.NewTutorService(store)
	uploadService := service.NewUploadService(store)
	healthService := service.NewHealthService(store, resultCache)
	appLogger.Info("Services initialized")

	// Initialize handlers
	v := validation.NewValidator()
	handlers := handler.Handlers{
		Health:    handler.NewHealthHandler(healthService),
		Session:   handler.NewSessionHandler(sessionService, v),
		Flashcard: handler.NewFlashcardHandler(flashcardService, v),
		StudyPlan: handler.NewStudyPlanHandler(studyPlanService, v),
		Tutor:     handler.NewTutorHandler(tutorService, v),
		Upload:    handler.NewUploadHandler(uploadService, cfg.Upload.MaxBytes),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		// Leave room for the multipart envelope so oversized files reach the
		// handler and get a proper FILE_TOO_LARGE response.
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1<<20,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handlers, middleware.NewValidationMiddleware(v))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		return store.Run(gctx, cfg.Session.SweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		store.CloseAll()
		logger.Sync()
		os.Exit(1)
	}
	store.CloseAll()
	appLogger.Info("Server exited gracefully")
}
