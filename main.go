package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"makeyou-digital/backend/config"
	"makeyou-digital/backend/controllers"
	"makeyou-digital/backend/database"
	"makeyou-digital/backend/middlewares"
	"makeyou-digital/backend/routes"
	"makeyou-digital/backend/utils"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// serve builds every collaborator once and runs the HTTP server until
// SIGINT or SIGTERM.
func serve(cfg config.Config) error {
	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	routes.Register(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.Any("features", deps.Features))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// buildDeps constructs the optional collaborators. An interface field is
// only assigned when its adapter exists so handlers see a true nil.
func buildDeps(ctx context.Context, cfg config.Config, logger *zap.Logger) (routes.Deps, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	contact := controllers.ContactDeps{
		AdminRecipient: cfg.AdminRecipient(),
		Location:       cfg.BusinessLocation(),
		SheetTimeout:   cfg.SheetsTimeout,
		MailTimeout:    cfg.SMTPTimeout,
		Logger:         logger,
	}
	if cfg.SheetsEnabled() {
		sheet, err := utils.NewGoogleSheet(ctx, sheetsConfig(cfg))
		if err != nil {
			logger.Warn("sheets_disabled", zap.Error(err))
		} else {
			contact.Sheet = sheet
		}
	} else {
		logger.Warn("sheets_disabled", zap.String("reason", "GOOGLE_SHEET_ID or service account missing"))
	}
	if cfg.SMTPEnabled() {
		mailer := utils.NewSMTPMailer(smtpConfig(cfg))
		if cfg.SMTPVerify {
			vctx, cancel := context.WithTimeout(ctx, cfg.SMTPTimeout)
			if err := mailer.Verify(vctx); err != nil {
				logger.Warn("smtp_verify_failed", zap.Error(err))
			} else {
				logger.Info("smtp_verified", zap.String("host", cfg.SMTPHost))
			}
			cancel()
		}
		contact.Mailer = mailer
	} else {
		logger.Warn("smtp_disabled", zap.String("reason", "SMTP_HOST, SMTP_USER or SMTP_PASS missing"))
	}

	suggest := controllers.SuggestDeps{Timeout: cfg.AITimeout, Logger: logger}
	if cfg.AIEnabled() {
		gen, err := utils.NewGeminiGenerator(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
		if err != nil {
			logger.Warn("ai_disabled", zap.Error(err))
		} else {
			suggest.Generator = gen
			closers = append(closers, func() { _ = gen.Close() })
		}
	} else {
		logger.Warn("ai_disabled", zap.String("reason", "GEMINI_API_KEY missing"))
	}

	leads, projects, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}
	closers = append(closers, closeStores)

	if !cfg.AdminEnabled() {
		logger.Warn("admin_disabled", zap.String("reason", "ADMIN_PASSWORD_HASH or ADMIN_JWT_SECRET missing"))
	}

	return routes.Deps{
		Contact:     contact,
		Suggest:     suggest,
		Leads:       controllers.LeadDeps{Store: leads, Logger: logger},
		Submissions: controllers.SubmissionDeps{Store: projects, Logger: logger},
		Admin: controllers.AdminDeps{
			PasswordHash: cfg.AdminPasswordHash,
			JWTSecret:    cfg.AdminJWTSecret,
			SessionTTL:   cfg.AdminSessionTTL,
			Logger:       logger,
		},
		Features: controllers.Features{
			Sheets:   contact.Sheet != nil,
			SMTP:     contact.Mailer != nil,
			AI:       suggest.Generator != nil,
			Database: cfg.DatabaseEnabled(),
			Admin:    cfg.AdminEnabled(),
		},
	}, cleanup, nil
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (database.LeadStore, database.ProjectStore, func(), error) {
	if !cfg.DatabaseEnabled() {
		logger.Warn("database_disabled", zap.String("reason", "DATABASE_URL missing, using in-memory stores"))
		return database.NewMemoryLeadStore(), database.NewMemoryProjectStore(), func() {}, nil
	}
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	logger.Info("database_connected")
	return database.NewPgLeadStore(pool), database.NewPgProjectStore(pool), pool.Close, nil
}

func sheetsConfig(cfg config.Config) utils.SheetsConfig {
	return utils.SheetsConfig{
		ClientEmail:   cfg.SheetsClientEmail,
		PrivateKey:    cfg.SheetsPrivateKey,
		SpreadsheetID: cfg.SheetID,
		Range:         cfg.SheetRange,
		Timeout:       cfg.SheetsTimeout,
	}
}

func smtpConfig(cfg config.Config) utils.SMTPConfig {
	return utils.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Secure:   cfg.SMTPSecure,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom(),
		Timeout:  cfg.SMTPTimeout,
	}
}
