package config

import (
	migration "Agri-Assist-Backend/cmd/database/migrate"
	"Agri-Assist-Backend/internal/utils"
	"Agri-Assist-Backend/pkg/gemini"
	"Agri-Assist-Backend/pkg/scan"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// NewScanRepository opens the store selected by STORE_DRIVER. The returned
// close function releases the underlying connection.
func NewScanRepository(ctx context.Context, cfg *utils.Config, logger *zap.Logger) (scan.ScanRepository, func() error, error) {
	switch cfg.StoreDriver {
	case utils.StoreDriverPostgres:
		db, err := ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres scan store", zap.String("host", cfg.DBHost))
		return scan.NewScanRepository(db), sqlDB.Close, nil

	case utils.StoreDriverFirestore:
		client, err := ConnectFirestore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using firestore scan store", zap.String("project", cfg.FirestoreProjectID))
		return scan.NewFirestoreRepository(client), client.Close, nil

	case utils.StoreDriverBolt:
		db, err := ConnectBolt(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using bolt scan store", zap.String("path", cfg.BoltPath))
		return scan.NewBoltRepository(db), db.Close, nil

	case utils.StoreDriverMemory:
		logger.Warn("using in-memory scan store, data is lost on restart")
		return scan.NewMemoryRepository(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// NewCompleter builds the Gemini transport selected by GEMINI_PROVIDER.
func NewCompleter(ctx context.Context, cfg *utils.Config, httpClient *http.Client) (gemini.Completer, error) {
	geminiConfig := gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	}

	switch cfg.GeminiProvider {
	case utils.GeminiProviderGenAI:
		return gemini.NewGenAICompleter(ctx, httpClient, geminiConfig)
	case utils.GeminiProviderREST:
		return gemini.NewRESTCompleter(httpClient, geminiConfig), nil
	}
	return nil, fmt.Errorf("unknown gemini provider %q", cfg.GeminiProvider)
}
