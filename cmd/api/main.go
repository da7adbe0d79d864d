package main

import (
	"context"
	"fwsr-hub/internal/adapter"
	"fwsr-hub/internal/adapter/textgen"
	"fwsr-hub/internal/cache"
	"fwsr-hub/internal/config"
	"fwsr-hub/internal/database"
	"fwsr-hub/internal/handler"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/middleware"
	"fwsr-hub/internal/repository"
	"fwsr-hub/internal/service"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
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

	// Initialize the Gemini text generator
	ctx := context.Background()
	textGenerator, err := textgen.NewGeminiGenerator(ctx, cfg.Gemini)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini text generator", zap.Error(err))
	}
	appLogger.Info("Gemini text generator initialized",
		zap.String("chat_model", cfg.Gemini.ChatModel),
		zap.String("fast_model", cfg.Gemini.FastModel))

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	resultRepository := repository.NewSQLXAssessmentResultRepository(db)
	chatSessionRepository := repository.NewSQLXChatSessionRepository(db)
	purchaseRepository := repository.NewSQLXPurchaseRepository(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Initialize services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("AuthService initialized")

	flowService := service.NewFlowService(cacheAdapter)
	assessmentService := service.NewAssessmentService(cacheAdapter, resultRepository, textGenerator)
	resultService := service.NewResultService(resultRepository, textGenerator)
	chatService := service.NewChatService(chatSessionRepository, textGenerator)
	paymentService := service.NewPaymentService(purchaseRepository, userRepository, cfg)
	explainerService := service.NewExplainerService(cacheAdapter, textGenerator)
	userService := service.NewUserService(userRepository)

	// Initialize handlers
	flowHandler := handler.NewFlowHandler(flowService)
	authHandler := handler.NewAuthHandler(authService, flowService, cfg)
	userHandler := handler.NewUserHandler(userService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, resultService, flowService)
	chatHandler := handler.NewChatHandler(chatService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	contentHandler := handler.NewContentHandler(explainerService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.FrontendURL, AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", AllowCredentials: true, MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Flow routes (session cookie scoped, auth optional)
	flowGroup := apiGroup.Group("/flow", middleware.OptionalAuth(authService))
	flowGroup.Get("/", flowHandler.GetFlow)
	flowGroup.Post("/navigate", flowHandler.Navigate)
	flowGroup.Post("/plan", flowHandler.SelectPlan)
	flowGroup.Post("/plan/cancel", flowHandler.CancelPlan)
	flowGroup.Post("/payment/complete", flowHandler.CompletePayment)

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// User routes (all protected)
	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMyProfile)

	// Assessment routes (all protected)
	assessmentGroup := apiGroup.Group("/assessment", middleware.Protected(authService))
	assessmentGroup.Post("/start", assessmentHandler.Start)
	assessmentGroup.Get("/current", assessmentHandler.Current)
	assessmentGroup.Post("/answer", assessmentHandler.Answer)
	assessmentGroup.Post("/answer/feedback", assessmentHandler.AnswerFeedback)
	assessmentGroup.Get("/result", assessmentHandler.Result)

	// Chat routes (all protected)
	chatGroup := apiGroup.Group("/chat", middleware.Protected(authService))
	chatGroup.Get("/", chatHandler.GetChat)
	chatGroup.Post("/send", chatHandler.Send)

	// Plan and payment routes
	apiGroup.Get("/plans", paymentHandler.GetPlans)
	apiGroup.Post("/checkout", middleware.Protected(authService), paymentHandler.Checkout)
	apiGroup.Post("/payment/notification", paymentHandler.Notification)

	// Content routes (public)
	apiGroup.Get("/pillars", contentHandler.GetPillars)
	apiGroup.Get("/pillars/:id", contentHandler.GetPillar)
	apiGroup.Get("/pillars/:id/explainer", contentHandler.GetPillarExplainer)
	apiGroup.Get("/posts", contentHandler.GetPosts)
	apiGroup.Get("/posts/:id", contentHandler.GetPost)

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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
