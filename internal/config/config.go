package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Database DatabaseConfig `toml:"database"`
	Metrics  MetricsConfig  `toml:"metrics"`
	App      AppConfig      `toml:"app"`
	Admin    AdminConfig    `toml:"admin"`
	Line     LineConfig     `toml:"line"`
	Events   EventsConfig   `toml:"events"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DatabaseConfig настройки подключения к Postgres
// Если не указаны ни dsn, ни host - используется in-memory хранилище
type DatabaseConfig struct {
	URL             string `toml:"dsn"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AppConfig общие настройки приложения
type AppConfig struct {
	BaseURL  string `toml:"base_url"`
	Timezone string `toml:"timezone"`
}

// AdminConfig демо-учетная запись администратора
type AdminConfig struct {
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  int    `toml:"token_ttl_minutes"`
}

// LineConfig настройки интеграции с LINE Messaging API
type LineConfig struct {
	APIBaseURL string                 `toml:"api_base_url"`
	Timeout    int                    `toml:"timeout"`
	Channels   map[string]LineChannel `toml:"channels"`
}

// LineChannel учетные данные канала LINE для одного типа бизнеса
type LineChannel struct {
	ChannelID          string `toml:"channel_id" envconfig:"CHANNEL_ID"`
	ChannelSecret      string `toml:"channel_secret" envconfig:"CHANNEL_SECRET"`
	ChannelAccessToken string `toml:"channel_access_token" envconfig:"CHANNEL_ACCESS_TOKEN"`
	LiffID             string `toml:"liff_id" envconfig:"LIFF_ID"`
}

// EventsConfig настройки публикации доменных событий в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// envOverrides значения, переопределяемые через переменные окружения
type envOverrides struct {
	HTTPPort      int    `envconfig:"HTTP_PORT"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN"`
	BaseURL       string `envconfig:"APP_BASE_URL"`
	AdminUsername string `envconfig:"ADMIN_USERNAME"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	JWTSecret     string `envconfig:"ADMIN_JWT_SECRET"`
	AMQPURL       string `envconfig:"AMQP_URL"`
}

// LineBusinessTypes типы бизнеса, для которых читаются учетные данные LINE из окружения
var LineBusinessTypes = []string{"salon", "clinic", "restaurant"}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/app.log",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "reservation-showcase",
		},
		App: AppConfig{
			BaseURL:  "http://localhost:8080",
			Timezone: "Asia/Tokyo",
		},
		Admin: AdminConfig{
			Username:  "admin",
			Password:  "admin123",
			JWTSecret: "demo-secret-change-me",
			TokenTTL:  480,
		},
		Line: LineConfig{
			APIBaseURL: "https://api.line.me",
			Timeout:    10,
			Channels:   map[string]LineChannel{},
		},
		Events: EventsConfig{
			Exchange: "reservations",
		},
	}
}

// Load загружает конфигурацию из TOML файла, .env и переменных окружения
// Отсутствие файла конфигурации не ошибка: используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFile, path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadEnv, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("%w: %v", ErrReadEnv, err)
	}

	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	setIfNotEmpty(&c.Logs.Level, env.LogLevel)
	setIfNotEmpty(&c.Database.URL, env.DatabaseDSN)
	setIfNotEmpty(&c.App.BaseURL, env.BaseURL)
	setIfNotEmpty(&c.Admin.Username, env.AdminUsername)
	setIfNotEmpty(&c.Admin.Password, env.AdminPassword)
	setIfNotEmpty(&c.Admin.JWTSecret, env.JWTSecret)
	setIfNotEmpty(&c.Events.URL, env.AMQPURL)

	if c.Line.Channels == nil {
		c.Line.Channels = map[string]LineChannel{}
	}
	for _, businessType := range LineBusinessTypes {
		var channel LineChannel
		prefix := "LINE_" + strings.ToUpper(businessType)
		if err := envconfig.Process(prefix, &channel); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadEnv, prefix, err)
		}
		c.Line.Channels[businessType] = mergeChannel(c.Line.Channels[businessType], channel)
	}

	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("%w: app.timezone=%q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.jwt_secret is empty", ErrInvalidConfig)
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("%w: admin.token_ttl_minutes=%d", ErrInvalidConfig, c.Admin.TokenTTL)
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("%w: events.url is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}

// Configured сообщает, задано ли подключение к базе данных
func (d DatabaseConfig) Configured() bool {
	return d.URL != "" || d.Host != ""
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает часовой пояс бизнеса
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Channel возвращает учетные данные LINE для типа бизнеса
func (l LineConfig) Channel(businessType string) (LineChannel, bool) {
	ch, ok := l.Channels[businessType]
	if !ok || !ch.Configured() {
		return LineChannel{}, false
	}
	return ch, true
}

// Configured сообщает, заданы ли секрет и токен канала
func (ch LineChannel) Configured() bool {
	return ch.ChannelSecret != "" && ch.ChannelAccessToken != ""
}

func mergeChannel(base, override LineChannel) LineChannel {
	setIfNotEmpty(&base.ChannelID, override.ChannelID)
	setIfNotEmpty(&base.ChannelSecret, override.ChannelSecret)
	setIfNotEmpty(&base.ChannelAccessToken, override.ChannelAccessToken)
	setIfNotEmpty(&base.LiffID, override.LiffID)
	return base
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
