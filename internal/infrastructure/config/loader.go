package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "PB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(ConfigPaths)
}

// Load reads <env>.yaml from the first matching path and applies environment overrides
func Load(paths []string) (*Config, error) {
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := applyTokenFile(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "paybot.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)       // seconds
	v.SetDefault("database.monitorInterval", 60) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("telegram.baseURL", "https://api.telegram.org")
	v.SetDefault("telegram.pollTimeout", 30)   // seconds
	v.SetDefault("telegram.handleTimeout", 30) // seconds

	v.SetDefault("cryptopay.network", "testnet")
	v.SetDefault("cryptopay.listCount", 100)

	v.SetDefault("payment.asset", "TON")
	v.SetDefault("payment.amount", "0.1")
	v.SetDefault("payment.credits", 1)
	v.SetDefault("payment.requestTimeout", 10) // seconds

	v.SetDefault("webhook.path", "/crypto-secret-path")

	v.SetDefault("retention.window", 720)  // hours
	v.SetDefault("retention.interval", 60) // minutes

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.serviceName", "paybot")
}

// getEnvironment determines the environment to use based on PB_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PB_DB_DRIVER":          "database.driver",
		"PB_DB_PATH":            "database.path",
		"PB_DB_HOST":            "database.host",
		"PB_DB_PORT":            "database.port",
		"PB_DB_USERNAME":        "database.username",
		"PB_DB_PASSWORD":        "database.password",
		"PB_DB_NAME":            "database.database",
		"PB_DB_SSL_MODE":        "database.sslMode",
		"PB_SERVER_HOST":        "server.host",
		"PB_LOGGER_LEVEL":       "logger.level",
		"PB_TELEGRAM_TOKEN":     "telegram.token",
		"PB_CRYPTOPAY_TOKEN":    "cryptopay.token",
		"PB_CRYPTOPAY_NETWORK":  "cryptopay.network",
		"PB_WEBHOOK_PATH":       "webhook.path",
		"PB_SECRETS_TOKEN_FILE": "secrets.tokenFile",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if port := getEnvInt("PB_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("PB_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("PB_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("PB_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if requestTimeout := getEnvInt("PB_PAYMENT_REQUEST_TIMEOUT_SECONDS", 0); requestTimeout > 0 {
		v.Set("payment.requestTimeout", requestTimeout)
	}
	if window := getEnvInt("PB_RETENTION_WINDOW_HOURS", -1); window >= 0 {
		v.Set("retention.window", window)
	}

	if admins := os.Getenv("PB_ADMINS"); admins != "" {
		if ids, err := parseIDList(admins); err == nil {
			v.Set("admins", ids)
		} else {
			fmt.Println("Warning: ignoring PB_ADMINS:", err)
		}
	}
}

// getEnvInt gets an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// parseIDList parses a comma-separated list of user IDs
func parseIDList(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.MonitorInterval = config.Database.MonitorInterval * time.Second

	config.Telegram.PollTimeout = config.Telegram.PollTimeout * time.Second
	config.Telegram.HandleTimeout = config.Telegram.HandleTimeout * time.Second
	config.Payment.RequestTimeout = config.Payment.RequestTimeout * time.Second

	config.Retention.Window = config.Retention.Window * time.Hour
	config.Retention.Interval = config.Retention.Interval * time.Minute
}
