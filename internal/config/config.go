package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// Defaults
const (
	DefaultBaseURL  = "https://api.deskbird.com/v1.1"
	DefaultTimeZone = "Europe/Berlin"
)

// configPaths относительные пути, по которым ищется конфигурационный файл.
// Выигрывает первый существующий корректный файл; битые файлы молча пропускаются.
var configPaths = []string{
	"deskbird.toml",
	".deskbird.toml",
	filepath.Join("config", "deskbird.toml"),
}

// Config конфигурация CLI
type Config struct {
	Token       string `toml:"token"`
	BaseURL     string `toml:"base_url"`
	OfficeID    string `toml:"office_id"`
	TimeZone    string `toml:"timezone"`
	HorizonDays int    `toml:"horizon_days"`

	Logs LogsConfig `toml:"logs"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load загружает конфигурацию: значения по умолчанию, затем первый корректный
// TOML-файл из configPaths, затем переопределения из переменных DESKBIRD_*.
func Load() (*Config, error) {
	return load(configPaths)
}

func load(paths []string) (*Config, error) {
	cfg := &Config{
		BaseURL:     DefaultBaseURL,
		TimeZone:    DefaultTimeZone,
		HorizonDays: domain.DefaultHorizonDays,
		Logs:        LogsConfig{Level: "info"},
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			// Некорректный файл пропускаем и пробуем следующий путь
			continue
		}
		break
	}

	applyEnv(cfg)

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = domain.DefaultHorizonDays
	}

	return cfg, nil
}

// applyEnv накладывает переменные окружения поверх файла
func applyEnv(cfg *Config) {
	setIfPresent(&cfg.Token, "DESKBIRD_TOKEN")
	setIfPresent(&cfg.BaseURL, "DESKBIRD_BASE_URL")
	setIfPresent(&cfg.OfficeID, "DESKBIRD_OFFICE_ID")
	setIfPresent(&cfg.TimeZone, "DESKBIRD_TZ")
	setIfPresent(&cfg.Logs.File, "DESKBIRD_LOG_FILE")
	setIfPresent(&cfg.Logs.Level, "DESKBIRD_LOG_LEVEL")

	if v := os.Getenv("DESKBIRD_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HorizonDays = n
		}
	}
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Location резолвит настроенную IANA-зону
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, c.TimeZone)
	}
	return loc, nil
}
