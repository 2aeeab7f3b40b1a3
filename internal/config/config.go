package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Sketch  SketchConfig
	Sheets  SheetsConfig
	Backup  BackupConfig
	MongoDB MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AIConfig holds settings for the LLM providers. Either key may be empty,
// which disables the corresponding feature.
type AIConfig struct {
	AnthropicKey string
	OpenAIKey    string
}

// SketchConfig holds options for the botanical sketch cache.
type SketchConfig struct {
	CachePath string
}

// SheetsConfig contains configuration required to publish the ledger to
// Google Sheets. Empty credentials disable the export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// BackupConfig holds scheduler-related settings for snapshots and exports.
type BackupConfig struct {
	SnapshotDir  string
	SnapshotCron string
	ExportCron   string
}

// MongoDBConfig holds settings for the optional off-site snapshot store.
// An empty URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		AI: AIConfig{
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		},
		Sketch: SketchConfig{
			CachePath: getenvWithDefault("SKETCH_CACHE_PATH", "sketch_cache.json"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
		Backup: BackupConfig{
			SnapshotDir:  getenvWithDefault("BACKUP_SNAPSHOT_DIR", "snapshots"),
			SnapshotCron: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 2 * * *"),
			ExportCron:   getenvWithDefault("EXPORT_CRON_SCHEDULE", "0 20 * * 5"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "beeyard"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures required fields are populated and that partially
// configured integrations are rejected instead of failing at first use.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_LEDGER_ID must be provided when sheets credentials are set")
	}
	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when a ledger sheet is set")
	}

	if c.Backup.SnapshotDir == "" {
		return errors.New("BACKUP_SNAPSHOT_DIR must not be empty")
	}
	if c.Backup.SnapshotCron == "" {
		return errors.New("BACKUP_CRON_SCHEDULE must not be empty")
	}
	if c.Backup.ExportCron == "" {
		return errors.New("EXPORT_CRON_SCHEDULE must not be empty")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	return nil
}

// SheetsEnabled reports whether the ledger export integration is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
