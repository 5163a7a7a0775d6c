package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Favour-325/campusly-myjfn2/internal/api/http"
	"github.com/Favour-325/campusly-myjfn2/internal/api/http/handlers"
	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/config"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
	"github.com/Favour-325/campusly-myjfn2/internal/observability"
	"github.com/Favour-325/campusly-myjfn2/internal/persistence"
	"github.com/Favour-325/campusly-myjfn2/internal/ratelimit"
	"github.com/Favour-325/campusly-myjfn2/internal/repository"
	"github.com/Favour-325/campusly-myjfn2/internal/service"
	"github.com/Favour-325/campusly-myjfn2/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.UsesDefaultSecret() {
		if cfg.App.Env == "production" {
			logger.Fatal("AUTH_JWT_SECRET must be set in production")
		}
		logger.Warn("AUTH_JWT_SECRET not set, signing tokens with the built-in development secret",
			zap.String("env", cfg.App.Env))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), migrations.FS, migrations.Dir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	studentRepo := repository.NewStudentRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	universityRepo := repository.NewUniversityRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	levelRepo := repository.NewLevelRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	reactionRepo := repository.NewReactionRepository(pool)

	readiness := map[string]handlers.Pinger{"postgres": pg}

	var eventLog ratelimit.EventLog
	switch cfg.RateLimit.Backend {
	case config.RateBackendRedis:
		rdb := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer rdb.Close()
		readiness["redis"] = rdb
		retention := max(cfg.RateLimit.CommentWindow, cfg.RateLimit.FeedbackWindow)
		eventLog = ratelimit.NewRedisEventLog(rdb.Client, cfg.RateLimit.KeyPrefix, retention)
	default:
		eventLog = repository.NewRateEventRepository(pool)
	}
	limiter := ratelimit.NewWindowCounter(eventLog, map[ratelimit.EventKind]ratelimit.Policy{
		ratelimit.EventComment:  {Window: cfg.RateLimit.CommentWindow, MaxCount: cfg.RateLimit.CommentMax},
		ratelimit.EventFeedback: {Window: cfg.RateLimit.FeedbackWindow, MaxCount: cfg.RateLimit.FeedbackMax},
	})
	logger.Info("rate limiter ready",
		zap.String("backend", cfg.RateLimit.Backend),
		zap.Int("comment_max", cfg.RateLimit.CommentMax),
		zap.Duration("comment_window", cfg.RateLimit.CommentWindow),
		zap.Int("feedback_max", cfg.RateLimit.FeedbackMax),
		zap.Duration("feedback_window", cfg.RateLimit.FeedbackWindow))

	hasher, err := auth.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to init password hasher", zap.Error(err))
	}
	tokens := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	resolver := auth.NewIdentityResolver(studentRepo, professorRepo, adminRepo)
	gate := auth.NewAccessGate(tokens, resolver, logger)

	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	authService := service.NewAuthService(service.AuthDependencies{
		Students:   studentRepo,
		Professors: professorRepo,
		Admins:     adminRepo,
		Hasher:     hasher,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		StudentRepo:   studentRepo,
		ProfessorRepo: professorRepo,
		AdminRepo:     adminRepo,
		Hasher:        hasher,
	})
	campusService := service.NewCampusService(universityRepo, postRepo)
	commentService := service.NewCommentService(service.CommentDependencies{
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		Limiter:     limiter,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	feedbackService := service.NewFeedbackService(service.FeedbackDependencies{
		FeedbackRepo: feedbackRepo,
		Limiter:      limiter,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	academicService := service.NewAcademicService(departmentRepo, levelRepo, universityRepo)
	messageService := service.NewMessageService(service.MessageDependencies{
		MessageRepo: messageRepo,
		Students:    studentRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	reactionService := service.NewReactionService(reactionRepo, postRepo)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Auth:       handlers.NewAuthHandler(authService),
		Directory:  handlers.NewDirectoryHandler(directoryService),
		Campus:     handlers.NewCampusHandler(campusService),
		Engagement: handlers.NewEngagementHandler(commentService, feedbackService),
		Academic:   handlers.NewAcademicHandler(academicService),
		Messages:   handlers.NewMessageHandler(messageService),
		Reactions:  handlers.NewReactionHandler(reactionService),
		Gate:       gate,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
