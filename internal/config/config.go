package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	Webhook WebhookConfig `yaml:"webhook"`
	Chat    ChatConfig    `yaml:"chat"`
	Session SessionConfig `yaml:"session"`
	I18n    I18nConfig    `yaml:"i18n"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DemoUser is a mock citizen account. PasswordHash is a bcrypt hash; when it is
// empty, Password is hashed at startup (dev configs only).
type DemoUser struct {
	ID           int    `yaml:"id"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Name         string `yaml:"name"`
	CitizenID    string `yaml:"citizen_id"`
}

type AuthConfig struct {
	JWTSecret string     `yaml:"jwt_secret"`
	TokenTTLH int        `yaml:"token_ttl_hours"`
	Users     []DemoUser `yaml:"users"`
}

// WebhookConfig points at the external registration endpoint, typically an n8n flow.
// An empty URL means registrations always take the failure path.
type WebhookConfig struct {
	URL       string `yaml:"url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type ChatConfig struct {
	TypingDelayMS int `yaml:"typing_delay_ms"`
}

type SessionConfig struct {
	TTLMinutes   int `yaml:"ttl_minutes"`
	SweepMinutes int `yaml:"sweep_minutes"`
}

type I18nConfig struct {
	DefaultLocale string `yaml:"default_locale"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, AllowOrigins: []string{"*"}},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Auth: AuthConfig{
			JWTSecret: "citizen-services-dev-secret",
			TokenTTLH: 7 * 24,
			Users: []DemoUser{{
				ID:        1,
				Username:  "somchai",
				Password:  "somchai1234",
				Name:      "header.userName",
				CitizenID: "1-2345-67890-12-3",
			}},
		},
		Webhook: WebhookConfig{TimeoutMS: 10000},
		Chat:    ChatConfig{TypingDelayMS: 1500},
		Session: SessionConfig{TTLMinutes: 60, SweepMinutes: 5},
		I18n:    I18nConfig{DefaultLocale: "th"},
	}
}

func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config-dev.yaml", "/etc/citizen-services/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.Webhook.URL, "WEBHOOK_URL")
	envOverride(&c.I18n.DefaultLocale, "DEFAULT_LOCALE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Webhook.TimeoutMS, "WEBHOOK_TIMEOUT_MS")
	envOverrideInt(&c.Chat.TypingDelayMS, "CHAT_TYPING_DELAY_MS")
	envOverrideInt(&c.Session.TTLMinutes, "SESSION_TTL_MIN")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.Chat.TypingDelayMS) * time.Millisecond
}

func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutMS) * time.Millisecond
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLH) * time.Hour
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Session.SweepMinutes) * time.Minute
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
