// Package app wires the stores, services and routes together and runs the
// HTTP server until the process is signalled.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/config"
	"github.com/cypu/rulebook-api/internal/database"
	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/kafka/notifier"
	"github.com/cypu/rulebook-api/internal/mail"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/queue"
	"github.com/cypu/rulebook-api/internal/repository"
	"github.com/cypu/rulebook-api/internal/rights"
	"github.com/cypu/rulebook-api/internal/router"
	"github.com/cypu/rulebook-api/internal/service"
)

const (
	shutdownTimeout   = 10 * time.Second
	tokenPurgeEvery   = 15 * time.Minute
	migrationDeadline = 30 * time.Second
)

// Run blocks until SIGINT or SIGTERM, then shuts down the server, the
// background workers and the database pool in that order.
func Run(cfg config.Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if cfg.DB.Migrate {
		mctx, cancel := context.WithTimeout(ctx, migrationDeadline)
		err := database.Migrate(mctx, db)
		cancel()
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Workers outlive the HTTP server so in-flight requests can still
	// publish while it drains.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	workers := &sync.WaitGroup{}
	defer func() {
		stopWorkers()
		workers.Wait()
	}()

	sender, closeSender := mailSender(workerCtx, workers, cfg, logger)
	defer closeSender()

	events := notifier.NewNoopNotifier()
	if cfg.Kafka.Enabled {
		events = notifier.NewKafkaNotifier(workerCtx, workers, logger, cfg.Kafka)
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		logger.Warn("redis unavailable; rate limiting and response cache disabled")
	} else {
		defer rdb.Close()
	}

	users := repository.NewUserRepo(db)
	authSvc := service.NewAuthService(users, repository.NewRoleRepo(db), repository.NewMailTokenRepo(db), sender,
		service.AuthConfig{
			JWTSecret:    cfg.Auth.JWTSecret,
			SessionTTL:   cfg.Auth.SessionTTL,
			VerifyTTL:    cfg.Auth.VerifyTTL,
			MailTokenTTL: cfg.Auth.MailTokenTTL,
			BcryptCost:   cfg.Auth.BcryptCost,
			ClientURL:    cfg.ClientURL,
			MailFrom:     cfg.Mail.From,
		}, logger)

	workers.Add(1)
	go func() {
		defer workers.Done()
		purgeTokens(workerCtx, authSvc, logger)
	}()

	table, err := rights.NewTable(rights.DefaultEntries())
	if err != nil {
		return err
	}
	sessions := middleware.NewSessionStore(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, !cfg.Development)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Authenticate(authSvc, sessions))

	registerRoutes(e, db, cfg, authSvc, sessions, table, events, logger, router.Middlewares{
		RateLimit: middleware.NewAttemptLimiter(cfg.RateLimit, rdb, logger),
		Cache:     middleware.NewReadCache(cfg.Cache, rdb),
		Purge:     middleware.PurgeOnWrite(cfg.Cache, rdb, logger),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Infow("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

func registerRoutes(e *echo.Echo, db *sql.DB, cfg config.Config, authSvc *service.AuthService,
	sessions *middleware.SessionStore, table *rights.Table, events notifier.Notifier,
	logger *zap.SugaredLogger, mw router.Middlewares) {
	base := handler.NewBase(cfg.RequestTimeout, events, logger)

	router.RegisterRoutes(e, handler.NewHealthHandler(db))
	page := router.RegisterPages(e, handler.NewStaticHandler(cfg.StaticDir), table)
	router.RegisterAuth(e, handler.NewAuthHandler(base, authSvc, sessions), page, mw)
	router.RegisterUsers(e, handler.NewUserHandler(base, repository.NewUserRepo(db), repository.NewRoleRepo(db)))

	campaigns := repository.NewCampaignRepo(db)
	router.RegisterPlayer(e, page,
		handler.NewCampaignHandler(base, campaigns),
		handler.NewCharacterHandler(base, repository.NewCharacterRepo(db), campaigns))

	router.RegisterContent(e, router.ContentHandlers{
		RuleBooks:     handler.NewRuleBookHandler(base, repository.NewRuleBookRepo(db)),
		Chapters:      handler.NewChapterHandler(base, repository.NewChapterRepo(db)),
		Pages:         handler.NewPageHandler(base, repository.NewPageRepo(db)),
		Notions:       handler.NewNotionHandler(base, repository.NewNotionRepo(db)),
		Nodes:         handler.NewNodeHandler(base, repository.NewNodeRepo(db)),
		ItemModifiers: handler.NewItemModifierHandler(base, repository.NewItemModifierRepo(db)),
		Rarities: handler.NewNamedTypeHandler(base,
			repository.NewNamedTypeRepo(db, repository.Rarities), "Rarity", "rarityId"),
		PageTypes: handler.NewNamedTypeHandler(base,
			repository.NewNamedTypeRepo(db, repository.PageTypes), "PageType", "pageTypeId"),
		RuleBookTypes: handler.NewNamedTypeHandler(base,
			repository.NewNamedTypeRepo(db, repository.RuleBookTypes), "RuleBookType", "ruleBookTypeId"),
		ChapterTypes: handler.NewNamedTypeHandler(base,
			repository.NewNamedTypeRepo(db, repository.ChapterTypes), "ChapterType", "chapterTypeId"),
	}, mw)
}

// mailSender returns the sender the auth flows use.  With a broker the
// flows enqueue and a consumer delivers; without one mail goes out inline.
func mailSender(ctx context.Context, wg *sync.WaitGroup, cfg config.Config, logger *zap.SugaredLogger) (mail.Sender, func()) {
	var deliver mail.Sender
	if cfg.Mail.SMTPHost != "" {
		deliver = mail.NewSMTPSender(mail.SMTPConfig{
			Host: cfg.Mail.SMTPHost,
			Port: cfg.Mail.SMTPPort,
			User: cfg.Mail.SMTPUser,
			Pass: cfg.Mail.SMTPPass,
			From: cfg.Mail.From,
		})
	} else {
		logger.Warn("no smtp host configured; mails are logged only")
		deliver = mail.NewLogSender(logger)
	}

	if cfg.RabbitMQ.URL == "" {
		return deliver, func() {}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := queue.StartMailConsumer(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.MailQueue, deliver, logger); err != nil && !errors.Is(err, context.Canceled) {
			logger.Errorw("mail consumer stopped", "error", err)
		}
	}()

	pub := queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.MailQueue, logger)
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warnw("failed to close mail publisher", "error", err)
		}
	}
}

func purgeTokens(ctx context.Context, auth *service.AuthService, logger *zap.SugaredLogger) {
	ticker := time.NewTicker(tokenPurgeEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpiredTokens(ctx)
			if err != nil {
				logger.Warnw("mail token purge failed", "error", err)
			} else if n > 0 {
				logger.Debugw("expired mail tokens purged", "count", n)
			}
		}
	}
}
