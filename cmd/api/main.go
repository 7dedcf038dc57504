// @title VocaQuiz API
// @version 1.0
// @description Quiz generation, scoring and streak tracking for vocabulary learning.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"vocaquiz/internal/adapter"
	"vocaquiz/internal/cache"
	"vocaquiz/internal/config"
	"vocaquiz/internal/database"
	"vocaquiz/internal/handler"
	"vocaquiz/internal/logger"
	"vocaquiz/internal/middleware"
	"vocaquiz/internal/quizgen"
	"vocaquiz/internal/repository"
	"vocaquiz/internal/service"

	_ "vocaquiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

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

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	wordRepository := repository.NewSQLXWordRepository(db)
	learningRepository := repository.NewSQLXLearningRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	streakRepository := repository.NewSQLXStreakRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Initialize services
	streakService := service.NewStreakService(streakRepository, txManager, cacheAdapter, cfg)
	quizService := service.NewQuizService(
		wordRepository,
		learningRepository,
		quizRepository,
		streakService,
		quizgen.New(nil),
		cacheAdapter,
		cfg,
	)
	appLogger.Info("Services initialized")

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	streakHandler := handler.NewStreakHandler(streakService)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Quiz routes
	quizGroup := apiGroup.Group("/quizzes")
	quizGroup.Post("/category", middleware.RequireJSONBody(), quizHandler.CreateCategoryQuiz)
	quizGroup.Post("/comprehensive", middleware.RequireJSONBody(), quizHandler.CreateComprehensiveQuiz)
	quizGroup.Post("/random", middleware.RequireJSONBody(), quizHandler.CreateRandomQuiz)
	quizGroup.Get("/:id", validationMiddleware.ValidateQuizID(), quizHandler.GetQuiz)
	quizGroup.Post("/:id/submit", validationMiddleware.ValidateQuizID(), middleware.RequireJSONBody(), quizHandler.SubmitQuiz)

	// User routes
	apiGroup.Get("/users/:userId/quizzes", validationMiddleware.ValidateUserIDParam(), quizHandler.GetUserQuizHistory)

	// Streak routes
	streakGroup := apiGroup.Group("/streaks")
	streakGroup.Post("/initialize", middleware.RequireJSONBody(), streakHandler.Initialize)
	streakGroup.Post("/activity", middleware.RequireJSONBody(), streakHandler.RecordActivity)
	streakGroup.Post("/reset", middleware.RequireJSONBody(), streakHandler.Reset)
	streakGroup.Get("/:userId", validationMiddleware.ValidateUserIDParam(), streakHandler.GetCurrent)
	streakGroup.Get("/:userId/history", validationMiddleware.ValidateUserIDParam(), streakHandler.GetHistory)
	streakGroup.Get("/:userId/stats", validationMiddleware.ValidateUserIDParam(), streakHandler.GetStats)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
