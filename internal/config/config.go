package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/andy/toolrent/internal/holiday"
)

// Catalog sources
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceDatabase = "database"
)

type Config struct {
	// Where the item catalog comes from
	Catalog CatalogConfig `yaml:"catalog"`

	// Encrypted catalog database (catalog.source = database)
	Database DatabaseConfig `yaml:"database"`

	// Observed holidays
	Holidays HolidaysConfig `yaml:"holidays"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type CatalogConfig struct {
	Source string `yaml:"source"` // builtin, file, or database
	File   string `yaml:"file"`   // YAML catalog path when source is file
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type HolidaysConfig struct {
	Enabled []string        `yaml:"enabled"` // Built-in holiday names
	Custom  []CustomHoliday `yaml:"custom,omitempty"`
}

// CustomHoliday is either a fixed month/day (with optional weekend shift) or
// the nth weekday of a month
type CustomHoliday struct {
	Name           string `yaml:"name"`
	Month          int    `yaml:"month"`
	Day            int    `yaml:"day,omitempty"`
	ObserveWeekend bool   `yaml:"observe_weekend,omitempty"`
	Weekday        string `yaml:"weekday,omitempty"` // e.g. "monday"
	Nth            int    `yaml:"nth,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// configDir returns ~/.config/toolrent
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "toolrent")
}

// DefaultConfigPath returns ~/.config/toolrent/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source: SourceBuiltin,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(configDir(), "catalog.db"),
		},
		Holidays: HolidaysConfig{
			Enabled: []string{"independence_day", "labor_day"},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate returns an error if the config is unusable
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin, SourceDatabase:
	case SourceFile:
		if c.Catalog.File == "" {
			return errors.New("catalog.file is required when catalog.source is file")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}

	if c.Catalog.Source == SourceDatabase && c.Database.Path == "" {
		return errors.New("database.path is required when catalog.source is database")
	}

	_, err := c.HolidayRules()
	return err
}

// HolidayRules builds the holiday rules described by the holidays section
func (c *Config) HolidayRules() ([]holiday.Rule, error) {
	rules := make([]holiday.Rule, 0, len(c.Holidays.Enabled)+len(c.Holidays.Custom))

	for _, name := range c.Holidays.Enabled {
		r, ok := holiday.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown holiday %q (known: %s)", name, strings.Join(holiday.Names(), ", "))
		}
		rules = append(rules, r)
	}

	for _, h := range c.Holidays.Custom {
		r, err := h.rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return rules, nil
}

func (h CustomHoliday) rule() (holiday.Rule, error) {
	if strings.TrimSpace(h.Name) == "" {
		return nil, errors.New("custom holiday name is required")
	}
	if h.Month < 1 || h.Month > 12 {
		return nil, fmt.Errorf("custom holiday %s: month must be 1-12", h.Name)
	}
	month := time.Month(h.Month)

	if h.Weekday == "" {
		// 2024 is a leap year, so February 29th passes
		if !(civil.Date{Year: 2024, Month: month, Day: h.Day}).IsValid() {
			return nil, fmt.Errorf("custom holiday %s: %s has no day %d", h.Name, month, h.Day)
		}
		return holiday.FixedDate{Label: h.Name, Month: month, Day: h.Day, ObserveWeekend: h.ObserveWeekend}, nil
	}

	wd, ok := parseWeekday(h.Weekday)
	if !ok {
		return nil, fmt.Errorf("custom holiday %s: unknown weekday %q", h.Name, h.Weekday)
	}
	if h.Nth < 1 || h.Nth > 4 {
		return nil, fmt.Errorf("custom holiday %s: nth must be 1-4", h.Name)
	}
	return holiday.NthWeekday{Label: h.Name, Month: month, Weekday: wd, N: h.Nth}, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return 0, false
}

// EnsureDirectories creates the database directory when the database is in use
func (c *Config) EnsureDirectories() error {
	if c.Catalog.Source != SourceDatabase {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Database.Path), 0755)
}
