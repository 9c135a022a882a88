package config

import "os"

type Config struct {
	Port        string
	DatabaseDSN string
	LedgerPath  string
	CatalogPath string
	Env         string
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded in main) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "")
	cfg.LedgerPath = getEnv("LEDGER_PATH", "orders_local.csv")
	cfg.CatalogPath = getEnv("CATALOG_PATH", "")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
