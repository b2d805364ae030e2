package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Storage backends
const (
	BackendJSONFile = "jsonfile"
	BackendPostgres = "postgres"
)

var (
	// ErrInvalidBackend возвращается при неизвестном storage backend
	ErrInvalidBackend = errors.New("config: invalid storage backend")
	// ErrMissingDatabase возвращается, когда выбран postgres, но секция database не заполнена
	ErrMissingDatabase = errors.New("config: database section is required for postgres backend")
)

// Config конфигурация приложения
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
}

// StorageConfig настройки хранилища снапшотов
type StorageConfig struct {
	Backend string `toml:"backend"` // jsonfile | postgres
	Dir     string `toml:"dir"`     // каталог для jsonfile backend
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSONFile
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "data"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 5
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendJSONFile:
		return nil
	case BackendPostgres:
		if cfg.Database.Host == "" || cfg.Database.Port == 0 || cfg.Database.DBName == "" {
			return ErrMissingDatabase
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, cfg.Storage.Backend)
	}
}
