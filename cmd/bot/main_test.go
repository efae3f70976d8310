package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server:      config.ServerConfig{Port: 3001, ShutdownTimeout: 10 * time.Second},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         "paybot.db",
			QueryTimeout: 5 * time.Second,
		},
		Logger:    config.LoggerConfig{Level: "info"},
		Telegram:  config.TelegramConfig{Token: "123:abc"},
		CryptoPay: config.CryptoPayConfig{Token: "555:xyz", Network: "testnet"},
		Payment: config.PaymentConfig{
			Asset:          "TON",
			Amount:         "0.1",
			Credits:        1,
			RequestTimeout: 10 * time.Second,
		},
		Webhook:   config.WebhookConfig{Path: "/crypto-secret-path"},
		Retention: config.RetentionConfig{Window: 720 * time.Hour, Interval: time.Hour},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"retention disabled", func(c *config.Config) { c.Retention = config.RetentionConfig{} }, ""},
		{"missing tokens", func(c *config.Config) {
			c.Telegram.Token = ""
			c.CryptoPay.Token = ""
		}, "telegram.token"},
		{"postgres without host", func(c *config.Config) {
			c.Database.Driver = "postgres"
			c.Database.Username = "paybot"
			c.Database.Database = "paybot"
		}, "database.host"},
		{"unknown driver", func(c *config.Config) { c.Database.Driver = "mysql" }, "invalid database driver"},
		{"unknown environment", func(c *config.Config) { c.Environment = "staging" }, "invalid environment value"},
		{"relative webhook path", func(c *config.Config) { c.Webhook.Path = "hook" }, "webhook.path"},
		{"retention without interval", func(c *config.Config) { c.Retention.Interval = 0 }, "retention.interval"},
		{"bad amount", func(c *config.Config) { c.Payment.Amount = "abc" }, "invalid payment configuration"},
		{"zero credits", func(c *config.Config) { c.Payment.Credits = 0 }, "invalid payment configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDatabaseConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "Postgres"
	cfg.Database.Host = "db"
	cfg.Database.Port = "6432"
	cfg.Database.Username = "paybot"
	cfg.Database.Database = "paybot"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5

	got := databaseConfig(cfg)

	assert.Equal(t, "postgres", got.Driver)
	assert.Equal(t, 6432, got.Port)
	assert.Equal(t, "info", got.LogLevel)
	require.NoError(t, got.Validate())
}
