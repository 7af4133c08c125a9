package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	StoreDriverMemory    = "memory"
	StoreDriverPostgres  = "postgres"
	StoreDriverFirestore = "firestore"
	StoreDriverBolt      = "bolt"

	DefaultBoltPath = "./data/agri-assist.bolt"

	GeminiProviderREST  = "rest"
	GeminiProviderGenAI = "genai"
)

type Config struct {
	// Server configuration
	AppPort       string `yaml:"APP_PORT"`
	LogLevel      string `yaml:"LOG_LEVEL"`
	LogFormat     string `yaml:"LOG_FORMAT"`
	AccessLogFile string `yaml:"ACCESS_LOG_FILE"`

	// Store configuration
	StoreDriver        string `yaml:"STORE_DRIVER"`
	FirestoreProjectID string `yaml:"FIRESTORE_PROJECT_ID"`
	BoltPath           string `yaml:"BOLT_PATH"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Gemini API configuration
	GeminiAPIKey   string `yaml:"GEMINI_API_KEY"`
	GeminiModel    string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL  string `yaml:"GEMINI_BASE_URL"`
	GeminiProvider string `yaml:"GEMINI_PROVIDER"`
}

// LoadConfig reads .env and the YAML file at path, then lets environment
// variables of the same names override the file. Missing files are skipped:
// a deployment may provide everything through the environment.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":             &c.AppPort,
		"LOG_LEVEL":            &c.LogLevel,
		"LOG_FORMAT":           &c.LogFormat,
		"ACCESS_LOG_FILE":      &c.AccessLogFile,
		"STORE_DRIVER":         &c.StoreDriver,
		"FIRESTORE_PROJECT_ID": &c.FirestoreProjectID,
		"BOLT_PATH":            &c.BoltPath,
		"DB_USER":              &c.DBUser,
		"DB_NAME":              &c.DBName,
		"DB_PASSWORD":          &c.DBPassword,
		"DB_PORT":              &c.DBPort,
		"DB_HOST":              &c.DBHost,
		"GEMINI_API_KEY":       &c.GeminiAPIKey,
		"GEMINI_MODEL":         &c.GeminiModel,
		"GEMINI_BASE_URL":      &c.GeminiBaseURL,
		"GEMINI_PROVIDER":      &c.GeminiProvider,
	}
}

func (c *Config) applyEnv() {
	for key, field := range c.fields() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}
}

func (c *Config) applyDefaults() {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.StoreDriver == "" {
		c.StoreDriver = StoreDriverMemory
	}
	if c.StoreDriver == StoreDriverBolt && c.BoltPath == "" {
		c.BoltPath = DefaultBoltPath
	}
	if c.GeminiProvider == "" {
		c.GeminiProvider = GeminiProviderREST
	}
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres, StoreDriverFirestore, StoreDriverBolt:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.GeminiProvider {
	case GeminiProviderREST, GeminiProviderGenAI:
	default:
		return fmt.Errorf("unknown GEMINI_PROVIDER %q", c.GeminiProvider)
	}
	return nil
}

// GetConfig looks a setting up by its YAML key.
func (c *Config) GetConfig(key string) string {
	if field, ok := c.fields()[key]; ok {
		return *field
	}
	return ""
}
