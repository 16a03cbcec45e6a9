package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	LoginURL    string
	ItemPerPage int
	CORSOrigins []string
	TrustProxy  bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	TTLHours       int
	CookieName     string
	CookieSecure   bool
	RetentionHours int
	PurgeMinutes   int
}

// TTL returns how long a freshly created session stays valid.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Retention is how long dead sessions are kept before the sweeper drops them.
func (c SessionConfig) Retention() time.Duration {
	return time.Duration(c.RetentionHours) * time.Hour
}

func (c SessionConfig) PurgeInterval() time.Duration {
	return time.Duration(c.PurgeMinutes) * time.Minute
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LoadConfig reads .env when present, then lets real environment variables win.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "book-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOGIN_URL", "/login")
	v.SetDefault("ITEM_PER_PAGE", DefaultItemPerPage)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SESSION_COOKIE_NAME", "session_token")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_RETENTION_HOURS", 168)
	v.SetDefault("SESSION_PURGE_MINUTES", 60)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			LoginURL:    v.GetString("LOGIN_URL"),
			ItemPerPage: v.GetInt("ITEM_PER_PAGE"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustProxy:  v.GetBool("TRUST_PROXY"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			TTLHours:       v.GetInt("SESSION_TTL_HOURS"),
			CookieName:     v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:   v.GetBool("SESSION_COOKIE_SECURE"),
			RetentionHours: v.GetInt("SESSION_RETENTION_HOURS"),
			PurgeMinutes:   v.GetInt("SESSION_PURGE_MINUTES"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.App.ItemPerPage < 1 {
		config.App.ItemPerPage = DefaultItemPerPage
	}
	if config.Session.PurgeMinutes < 1 {
		config.Session.PurgeMinutes = 60
	}

	return config, nil
}

// splitList parses a comma separated env value, dropping empty items.
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
