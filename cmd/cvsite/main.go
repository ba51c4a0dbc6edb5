package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkoehler/cvsite/internal/config"
	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/cookie"
	"github.com/pkoehler/cvsite/internal/httpserver"
	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/logger"
	"github.com/pkoehler/cvsite/internal/mailer"
	"github.com/pkoehler/cvsite/internal/web"
)

var version = "dev"

type appConfig struct {
	Log    logger.Config
	Server httpserver.Config
	Cookie cookie.Config
	Mail   mailer.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewFromConfig(cfg.Log, logger.WithAttrs(logger.Component("cvsite")))
	log.Info("starting", "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Content: embedded YAML documents, preloaded so a broken document
	// fails startup instead of the first request.
	store := content.NewStore(content.EmbeddedSource(), content.DefaultLanguage, content.WithStoreLogger(log))
	if err := store.Preload(ctx, content.Languages...); err != nil {
		return fmt.Errorf("preloading content: %w", err)
	}

	// UI translations and language detection.
	messages, err := i18n.LoadMessages(web.LocaleFS(), "locales")
	if err != nil {
		return fmt.Errorf("loading ui translations: %w", err)
	}
	tr, err := i18n.NewTranslator(messages,
		i18n.WithDefaultLanguage(content.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("building translator: %w", err)
	}
	detector := i18n.NewDetector(content.Languages, i18n.WithDefault(content.DefaultLanguage))

	sender, err := mailer.New(cfg.Mail)
	if err != nil {
		return fmt.Errorf("building mailer: %w", err)
	}

	tmpl, err := web.ParseTemplates()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	static, err := web.StaticFS()
	if err != nil {
		return fmt.Errorf("opening static assets: %w", err)
	}

	handler, err := web.NewHandler(web.Deps{
		Logger:     log,
		Store:      store,
		Translator: tr,
		Detector:   detector,
		Cookies:    cookie.New(cfg.Cookie),
		Sender:     sender,
		Templates:  tmpl,
		Sections:   web.DefaultSections(tmpl, tr),
		Static:     static,
	})
	if err != nil {
		return fmt.Errorf("building handler: %w", err)
	}

	srv := httpserver.New(cfg.Server, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.Router())
}
