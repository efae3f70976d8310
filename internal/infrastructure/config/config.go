package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Telegram    TelegramConfig  `mapstructure:"telegram"`
	CryptoPay   CryptoPayConfig `mapstructure:"cryptopay"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Webhook     WebhookConfig   `mapstructure:"webhook"`
	Retention   RetentionConfig `mapstructure:"retention"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
	Secrets     SecretsConfig   `mapstructure:"secrets"`
	Admins      []int64         `mapstructure:"admins"`
}

// ServerConfig contains HTTP server settings for the webhook listener
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"` // sqlite only
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds, 0 disables pool monitoring
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TelegramConfig contains Bot API settings
type TelegramConfig struct {
	Token         string        `mapstructure:"token"`
	BaseURL       string        `mapstructure:"baseURL"`
	PollTimeout   time.Duration `mapstructure:"pollTimeout"`   // seconds
	HandleTimeout time.Duration `mapstructure:"handleTimeout"` // seconds
}

// CryptoPayConfig contains payment processor API settings
type CryptoPayConfig struct {
	Token     string `mapstructure:"token"`
	Network   string `mapstructure:"network"` // mainnet or testnet
	BaseURL   string `mapstructure:"baseURL"`
	ListCount int    `mapstructure:"listCount"`
}

// PaymentConfig describes the single product the bot sells
type PaymentConfig struct {
	Asset          string        `mapstructure:"asset"`
	Amount         string        `mapstructure:"amount"`
	Credits        int64         `mapstructure:"credits"`
	Entitlement    string        `mapstructure:"entitlement"`
	Description    string        `mapstructure:"description"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
}

// WebhookConfig contains the processor callback route
type WebhookConfig struct {
	Path string `mapstructure:"path"`
}

// RetentionConfig controls purging of terminal invoices
type RetentionConfig struct {
	Window   time.Duration `mapstructure:"window"`   // hours, 0 keeps invoices forever
	Interval time.Duration `mapstructure:"interval"` // minutes
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"serviceName"`
}

// SecretsConfig points at an optional token file with "telegram:..." and "crypto:..." lines
type SecretsConfig struct {
	TokenFile string `mapstructure:"tokenFile"`
}
