package config

import (
	"Agri-Assist-Backend/internal/utils"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/firestore"
	bolt "go.etcd.io/bbolt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg *utils.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.GetConfig("DB_HOST"),
		cfg.GetConfig("DB_USER"),
		cfg.GetConfig("DB_PASSWORD"),
		cfg.GetConfig("DB_NAME"),
		cfg.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// ConnectFirestore uses application default credentials, or the emulator
// when FIRESTORE_EMULATOR_HOST is set.
func ConnectFirestore(ctx context.Context, cfg *utils.Config) (*firestore.Client, error) {
	projectID := cfg.GetConfig("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore connection failed: %w", err)
	}
	return client, nil
}

func ConnectBolt(cfg *utils.Config) (*bolt.DB, error) {
	path := cfg.GetConfig("BOLT_PATH")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt open failed: %w", err)
	}
	return db, nil
}
