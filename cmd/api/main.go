package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"hearmeout/internal/config"
	"hearmeout/internal/db"
	apihttp "hearmeout/internal/http"
	"hearmeout/internal/lexicon"
	"hearmeout/internal/llm"
	"hearmeout/internal/repository"
	"hearmeout/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store := lexicon.NewDefaultStore()
	if err := store.Validate(); err != nil {
		logger.Fatal("lexicon invalid", zap.Error(err))
	}

	var journal *service.TurnJournalService
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
		journal = service.NewTurnJournalService(
			repository.NewPgSessionRepository(pool),
			repository.NewPgTurnRepository(pool),
		)
	} else {
		logger.Warn("database not configured, turn journal disabled")
	}

	var (
		turnLimiter   service.TurnRateLimiter
		snapshotStore = service.NewMemoryHistoryStore()
		redisClient   *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			turnLimiter = service.NewRedisTurnRateLimiter(redisClient, cfg.TurnRateWindow, cfg.TurnRateLimit)
			snapshotStore = service.NewRedisHistoryStore(redisClient)
		}
		cancel()
	}

	var responder llm.Responder
	switch cfg.Responder {
	case config.ResponderHosted:
		responder = llm.NewHTTPResponder(cfg.HostedResponseURL, cfg.HostedResponseKey, nil, logger)
	case config.ResponderOpenAI:
		responder = llm.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	}
	var translator llm.Translator
	if cfg.TranslationEnabled {
		translator = llm.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	}

	engine := service.NewSessionEngine(store, service.EngineOptions{
		TierPolicy:    cfg.IntensityTierPolicy,
		QuickIntents:  cfg.QuickIntentsEnabled,
		HistoryWindow: cfg.HistoryWindow,
		Translator:    translator,
		Responder:     responder,
		HostedTimeout: cfg.HostedTimeout,
	}, logger)
	manager := service.NewSessionManager(engine, snapshotStore, cfg.SnapshotTTL, logger)
	go manager.RunEvictor(ctx, time.Minute)

	tokens := service.NewSessionTokenService(cfg.SessionSecret, cfg.SessionTTL)
	if !tokens.Enabled() {
		logger.Warn("session secret not configured")
	}

	chatHandler := apihttp.NewChatHandler(logger, manager, tokens, turnLimiter, journal, service.NewInsightsService(), cfg.DefaultLanguage)
	generateHandler := apihttp.NewGenerateHandler(logger, engine, cfg.DefaultLanguage)
	router := apihttp.NewRouter(logger, chatHandler, generateHandler, tokens)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("responder", cfg.Responder),
		zap.Int("history_window", cfg.HistoryWindow),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
