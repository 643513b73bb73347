package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Режимы отправки заявок
const (
	SubmissionSimulated = "simulated"
	SubmissionStorage   = "storage"
	SubmissionWebhook   = "webhook"
)

var (
	ErrConfigNotFound = errors.New("config: file not found")
	ErrInvalidConfig  = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Wizard     WizardConfig     `toml:"wizard"`
	Submission SubmissionConfig `toml:"submission"`
	Webhook    WebhookConfig    `toml:"webhook"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Sessions   SessionsConfig   `toml:"sessions"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды, 0 - без ограничения (нужно для SSE)
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"` // json | console
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате postgres:// для мигратора
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type WizardConfig struct {
	SubmitLatencyMs int `toml:"submit_latency_ms"`
	ResetDelayMs    int `toml:"reset_delay_ms"`
}

func (w WizardConfig) SubmitLatency() time.Duration {
	return time.Duration(w.SubmitLatencyMs) * time.Millisecond
}

func (w WizardConfig) ResetDelay() time.Duration {
	return time.Duration(w.ResetDelayMs) * time.Millisecond
}

type SubmissionConfig struct {
	Mode string `toml:"mode"`
}

type WebhookConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

type SessionsConfig struct {
	TTL             int `toml:"ttl"`              // секунды простоя до удаления
	MaxSessions     int `toml:"max_sessions"`     // 0 - без ограничения
	JanitorInterval int `toml:"janitor_interval"` // секунды
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    0,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "interior-studio",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "interior_studio",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrateOnStart:  true,
		},
		Wizard: WizardConfig{
			SubmitLatencyMs: int(domain.DefaultSubmitLatency / time.Millisecond),
			ResetDelayMs:    int(domain.DefaultResetDelay / time.Millisecond),
		},
		Submission: SubmissionConfig{
			Mode: SubmissionSimulated,
		},
		Webhook: WebhookConfig{
			Timeout: 5,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 30,
			Burst:             5,
		},
		Sessions: SessionsConfig{
			TTL:             1800,
			MaxSessions:     10000,
			JanitorInterval: 60,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("config: stat %s: %v", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}

	switch strings.ToLower(c.Logs.Format) {
	case "json", "console":
	default:
		problems = append(problems, "logs.format must be json or console")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if c.Wizard.SubmitLatencyMs < 0 {
		problems = append(problems, "wizard.submit_latency_ms must not be negative")
	}
	if c.Wizard.ResetDelayMs <= 0 {
		problems = append(problems, "wizard.reset_delay_ms must be positive")
	}

	switch c.Submission.Mode {
	case SubmissionSimulated:
	case SubmissionStorage:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for storage submission")
		}
	case SubmissionWebhook:
		if c.Webhook.URL == "" {
			problems = append(problems, "webhook.url is required for webhook submission")
		}
		if c.Webhook.Timeout <= 0 {
			problems = append(problems, "webhook.timeout must be positive")
		}
	default:
		problems = append(problems, fmt.Sprintf("submission.mode %q is unknown", c.Submission.Mode))
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit.requests_per_minute and rate_limit.burst must be positive")
	}

	if c.Sessions.TTL <= 0 {
		problems = append(problems, "sessions.ttl must be positive")
	}
	if c.Sessions.MaxSessions < 0 {
		problems = append(problems, "sessions.max_sessions must not be negative")
	}
	if c.Sessions.JanitorInterval <= 0 {
		problems = append(problems, "sessions.janitor_interval must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
