// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/mizuki1024/eitango-webapp/internal/config"
	"github.com/mizuki1024/eitango-webapp/internal/handlers"
	"github.com/mizuki1024/eitango-webapp/internal/middleware"
	"github.com/mizuki1024/eitango-webapp/internal/repository"
	"github.com/mizuki1024/eitango-webapp/internal/scheduler"
	"github.com/mizuki1024/eitango-webapp/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	// 開発環境ではtint、それ以外はJSONのハンドラを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	histRepo := repository.NewGormHistoryRepository()
	reminderRepo := repository.NewGormReminderRepository()

	notifier := service.NewNotifier(&config.Cfg)
	sampler := service.NewSampler(nil)

	notificationService := service.NewNotificationService(db, reminderRepo, notifier)
	historyService := service.NewHistoryService(db, histRepo, notificationService)
	quizService := service.NewQuizService(db, wordRepo, historyService, sampler, &config.Cfg)
	reviewService := service.NewReviewService(db, histRepo, sampler)

	wordHandler := handlers.NewWordHandler(quizService, logger)
	historyHandler := handlers.NewHistoryHandler(historyService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/words/{level}", wordHandler.GetQuestions)
	r.Post("/history", historyHandler.PostHistory)
	r.Get("/history_v2", historyHandler.GetHistory)
	r.Get("/history/incorrect", historyHandler.GetIncorrectWords)
	r.Post("/send-notifications", notificationHandler.SendNotifications)

	r.Route("/quiz/sessions", func(r chi.Router) {
		r.Post("/", quizHandler.StartSession)
		r.Post("/{session_id}/answers", quizHandler.SubmitAnswer)
	})

	r.Route("/review", func(r chi.Router) {
		r.Get("/dates", reviewHandler.GetDates)
		r.Post("/sessions", reviewHandler.StartSession)
		r.Post("/sessions/{session_id}/answers", reviewHandler.SubmitAnswer)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Scheduler
	var sched *scheduler.Scheduler
	if config.Cfg.Scheduler.Enabled {
		sched = scheduler.New(notificationService, logger)
		if err := sched.Start(config.Cfg.Scheduler.SweepAt); err != nil {
			slog.Error("Error starting reminder scheduler", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		slog.Info("Reminder scheduler is disabled by config")
	}

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
