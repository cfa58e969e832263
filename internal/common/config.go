package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Extract  ExtractConfig
	Export   ExportConfig
}

// DatabaseConfig holds record-store configuration
type DatabaseConfig struct {
	// DSN selects the store: postgres://... uses the Postgres driver,
	// anything else is treated as a SQLite path/URI.
	DSN string
}

// ExtractConfig holds text-recovery configuration
type ExtractConfig struct {
	ForceFallback     bool   // bypass direct text extraction, always OCR
	ShowRawText       bool   // debug passthrough; no effect on extraction
	OpticalEnginePath string // forwarded verbatim to the text source
	RendererPath      string // forwarded verbatim to the text source
	OCRDPI            int
	OCRMaxPages       int
	MinTextBytes      int
}

// ExportConfig holds snapshot-export configuration
type ExportConfig struct {
	SnapshotFile string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", "file:orders.db"),
		},
		Extract: ExtractConfig{
			ForceFallback:     getEnvAsBool("FORCE_FALLBACK_EXTRACTION", false),
			ShowRawText:       getEnvAsBool("SHOW_RAW_TEXT", false),
			OpticalEnginePath: getEnv("OPTICAL_ENGINE_PATH", "tesseract"),
			RendererPath:      getEnv("RENDERER_PATH", "pdftoppm"),
			OCRDPI:            getEnvAsInt("OCR_DPI", 300),
			OCRMaxPages:       getEnvAsInt("OCR_MAX_PAGES", 0),
			MinTextBytes:      getEnvAsInt("MIN_TEXT_BYTES", 32),
		},
		Export: ExportConfig{
			SnapshotFile: getEnv("SNAPSHOT_FILE", "orders_snapshot.csv"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_DSN is required", ErrInvalidInput)
	}
	if c.Extract.OCRDPI < 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be non-negative", ErrInvalidInput)
	}
	return nil
}
