package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT string
	// storage config
	DATA_DIR       string
	STORAGE_DRIVER string
	// logger config
	LOG_FILE_PATH string
	// report export config
	REPORT_CONFIG_PATH string
}

// LoadEnvConfig loads .env (when present) and builds the configuration from the
// environment with defaults.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:           getEnvString("APP_PORT", "5001"),
		DATA_DIR:           resolveDataDir(),
		STORAGE_DRIVER:     getEnvString("STORAGE_DRIVER", "json"),
		LOG_FILE_PATH:      getEnvString("LOG_FILE_PATH", ""),
		REPORT_CONFIG_PATH: getEnvString("REPORT_CONFIG_PATH", "report_config.yaml"),
	}
	return nil
}

// resolveDataDir honors DATA_DIR, but serverless environments only allow writes
// under /tmp, so their markers override the default local folder.
func resolveDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	if os.Getenv("VERCEL") != "" || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return filepath.Join(os.TempDir(), "employee-records")
	}
	return "./data"
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
