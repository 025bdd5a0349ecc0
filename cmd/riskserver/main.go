package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diabd/platform/pkg/audit"
	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/common/database"
	"github.com/diabd/platform/pkg/common/kafka"
	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/model"
	"github.com/diabd/platform/pkg/predictor"
	"github.com/diabd/platform/pkg/vocabulary"
	"github.com/gorilla/mux"
)

type RiskServer struct {
	cfg       *config.Config
	loader    *model.Loader
	predictor *predictor.Predictor
	audit     *audit.Service
}

func main() {
	logger.Init()
	cfg := config.Load()

	if err := cfg.EnsureDirs(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to prepare data directories")
	}

	vocab, err := vocabulary.Load(cfg.VocabularyPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Vocabulary file unavailable, using defaults")
	}

	encoder := features.NewEncoder(vocab)
	loader := model.NewLoader(cfg.ModelPath, cfg.MetaPath)
	if _, err := loader.Get(); err != nil {
		logger.Log.WithError(err).Warn("Model not loaded yet; will retry on first request")
	}

	service := &RiskServer{
		cfg:       cfg,
		loader:    loader,
		predictor: predictor.New(loader, encoder),
		audit:     buildAuditService(cfg),
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api/v1/predict", service.handlePredict).Methods("POST")
	router.HandleFunc("/api/v1/model-info", service.handleModelInfo).Methods("GET")
	router.HandleFunc("/api/v1/logs", service.handleLogs).Methods("GET")
	router.HandleFunc("/api/v1/status", service.handleStatus).Methods("GET")

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Risk Server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Risk Server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	database.ClosePostgres()
	database.CloseRedis()

	logger.Log.Info("Risk Server stopped")
}

// buildAuditService wires the optional audit sinks. The CSV trail is always
// on; database, cache and event bus attach only when configured, and a sink
// that fails to connect is skipped rather than blocking startup.
func buildAuditService(cfg *config.Config) *audit.Service {
	csvLog := audit.NewCSVLog(cfg.PredictionLogPath)

	var repo *audit.Repository
	if cfg.PostgresEnabled {
		if db, err := database.GetPostgres(cfg); err == nil {
			repo = audit.NewRepository(db)
			if err := repo.AutoMigrate(); err != nil {
				logger.Log.WithError(err).Warn("Audit table migration failed")
				repo = nil
			}
		} else {
			logger.Log.WithError(err).Warn("Audit database unavailable")
		}
	}

	var cache *audit.Cache
	if cfg.RedisEnabled {
		cache = audit.NewCache(database.GetRedis(cfg), cfg.AuditRecentLimit)
	}

	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	return audit.NewService(csvLog, repo, cache, producer)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
