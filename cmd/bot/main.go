package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/blob"
	"github.com/xaenox/gallery-bot/internal/bot"
	"github.com/xaenox/gallery-bot/internal/catalog"
	"github.com/xaenox/gallery-bot/internal/intent"
	"github.com/xaenox/gallery-bot/internal/knowledge"
	"github.com/xaenox/gallery-bot/internal/session"
	"github.com/xaenox/gallery-bot/internal/translate"
	"github.com/xaenox/gallery-bot/internal/vision"
	"github.com/xaenox/gallery-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize session and catalog stores
	var (
		sessions     session.Store
		catalogStore catalog.Store
		blobs        blob.Store
	)
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		sessions = session.NewMemoryStore()
		catalogStore = catalog.NewMemoryStore()
		blobs = blob.NewMemoryStore(cfg.Blob.BaseURL)
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := session.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}
		pgSessions, err := session.NewPostgresStore(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize session storage", zap.Error(err))
		}
		sessions = pgSessions
		catalogStore = catalog.NewPostgresStoreWithDB(pgSessions.DB())

		fileStore, err := blob.NewFileStore(cfg.Blob.Dir, cfg.Blob.BaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to initialize blob storage", zap.Error(err))
		}
		blobs = fileStore
	}
	defer sessions.Close()

	// Initialize cognitive adapters
	classifier := vision.NewGPTClassifier(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.VisionModel,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)
	recognizer := intent.NewGPTRecognizer(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.IntentModel,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)
	translator := translate.NewGPTTranslator(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.TranslateModel,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)

	matcher := catalog.NewMatcher(catalogStore, cfg.Catalog.Size, cfg.Catalog.Concurrency, logger)

	controller := bot.NewController(bot.ControllerDeps{
		Classifier:  classifier,
		Matcher:     matcher,
		Catalog:     catalogStore,
		Bridge:      translate.NewBridge(translator, logger),
		Recognizer:  recognizer,
		Knowledge:   knowledge.NewQnAClient(cfg.Knowledge.Endpoint, cfg.Knowledge.APIKey, logger),
		Search:      knowledge.NewSearchClient(cfg.Search.Endpoint, cfg.Search.APIKey, logger),
		Blobs:       blobs,
		Sessions:    sessions,
		CallTimeout: time.Duration(cfg.Turn.CallTimeoutSeconds) * time.Second,
		Logger:      logger,
	})

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, controller, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Stop the update loop on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Shutting down")
		b.Stop()
	}()

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
