package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
)

// Бэкенды журнала бронирований
const (
	LedgerBackendMemory   = "memory"
	LedgerBackendRedis    = "redis"
	LedgerBackendPostgres = "postgres"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    Server    `toml:"server"`
	Logs      Logs      `toml:"logs"`
	Metrics   Metrics   `toml:"metrics"`
	Catalog   Catalog   `toml:"catalog"`
	Ledger    Ledger    `toml:"ledger"`
	Redis     Redis     `toml:"redis"`
	Database  Database  `toml:"database"`
	Transport Transport `toml:"transport"`
	Booking   Booking   `toml:"booking"`
	Calendar  Calendar  `toml:"calendar"`
	Session   Session   `toml:"session"`
}

// Server настройки HTTP сервера (таймауты в секундах)
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Logs настройки логирования
type Logs struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Metrics настройки prometheus
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Catalog источник расписаний врачей; пустой путь - встроенный каталог
type Catalog struct {
	Path string `toml:"path"`
}

// Ledger выбор хранилища журнала бронирований
type Ledger struct {
	Backend string `toml:"backend"`
}

// Redis настройки подключения к Redis
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
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

// Transport сервер приема заявок; пустой URL - офлайн-режим
type Transport struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Booking политика отправки заявок
type Booking struct {
	Mode       string `toml:"mode"`
	VerifySlot *bool  `toml:"verify_slot"`
}

// Calendar вариант сетки календаря
type Calendar struct {
	Layout string `toml:"layout"`
}

// Session настройки сессий форм (idle_ttl в секундах)
type Session struct {
	IdleTTL int `toml:"idle_ttl"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "clinic_booking"
	}

	if c.Ledger.Backend == "" {
		c.Ledger.Backend = LedgerBackendMemory
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 10
	}

	if c.Booking.Mode == "" {
		c.Booking.Mode = string(domain.CommitModeOptimistic)
	}
	if c.Booking.VerifySlot == nil {
		verify := true
		c.Booking.VerifySlot = &verify
	}

	if c.Calendar.Layout == "" {
		c.Calendar.Layout = string(calendar.LayoutWeek)
	}

	if c.Session.IdleTTL == 0 {
		c.Session.IdleTTL = 1800
	}
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	}

	switch c.Ledger.Backend {
	case LedgerBackendMemory, LedgerBackendRedis, LedgerBackendPostgres:
	default:
		return fmt.Errorf("%w: unknown ledger.backend %q", ErrInvalidConfig, c.Ledger.Backend)
	}

	if c.Ledger.Backend == LedgerBackendPostgres {
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port must be in 1..65535", ErrInvalidConfig)
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres ledger", ErrInvalidConfig)
		}
	}

	if c.Transport.Timeout <= 0 {
		return fmt.Errorf("%w: transport.timeout must be positive", ErrInvalidConfig)
	}

	switch domain.CommitMode(c.Booking.Mode) {
	case domain.CommitModeOptimistic, domain.CommitModeStrict:
	default:
		return fmt.Errorf("%w: unknown booking.mode %q", ErrInvalidConfig, c.Booking.Mode)
	}

	if !calendar.Layout(c.Calendar.Layout).IsValid() {
		return fmt.Errorf("%w: unknown calendar.layout %q", ErrInvalidConfig, c.Calendar.Layout)
	}

	if c.Session.IdleTTL < 0 {
		return fmt.Errorf("%w: session.idle_ttl must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TransportTimeout таймаут запроса отправки заявки
func (t Transport) TransportTimeout() time.Duration {
	return time.Duration(t.Timeout) * time.Second
}

// ShouldVerifySlot возвращает политику повторной проверки слота
func (b Booking) ShouldVerifySlot() bool {
	return b.VerifySlot == nil || *b.VerifySlot
}
