package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends. Picked once at startup; nothing switches backends at runtime.
const (
	BackendPostgres  = "postgres"
	BackendSheet     = "sheet"
	BackendSimulated = "simulated"
	BackendWebhook   = "webhook"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Store    StoreConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type StoreConfig struct {
	Backend string

	// sheet backend
	SheetID          string
	SheetCredentials string // path to a service-account JSON file

	// webhook backend: externally-defined field names for the five order columns
	WebhookURL          string
	WebhookFieldOrderID string
	WebhookFieldDate    string
	WebhookFieldItems   string
	WebhookFieldTotal   string
	WebhookFieldPayment string

	// read path for backends without their own ledger (simulated, webhook)
	LedgerCSVURL string

	TimeoutSeconds int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	timeout, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	if timeout <= 0 {
		timeout = 10
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "hotchick"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Store: StoreConfig{
			Backend:             getEnv("STORE_BACKEND", BackendSimulated),
			SheetID:             getEnv("SHEET_ID", ""),
			SheetCredentials:    getEnv("SHEET_CREDENTIALS", ""),
			WebhookURL:          getEnv("WEBHOOK_URL", ""),
			WebhookFieldOrderID: getEnv("WEBHOOK_FIELD_ORDER_ID", ""),
			WebhookFieldDate:    getEnv("WEBHOOK_FIELD_DATETIME", ""),
			WebhookFieldItems:   getEnv("WEBHOOK_FIELD_ITEMS", ""),
			WebhookFieldTotal:   getEnv("WEBHOOK_FIELD_TOTAL", ""),
			WebhookFieldPayment: getEnv("WEBHOOK_FIELD_PAYMENT", ""),
			LedgerCSVURL:        getEnv("LEDGER_CSV_URL", ""),
			TimeoutSeconds:      timeout,
		},
	}

	switch cfg.Store.Backend {
	case BackendPostgres, BackendSheet, BackendSimulated, BackendWebhook:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
