// Package config loads skyplan settings from a TOML file, a .env file and
// the process environment, in increasing order of precedence.
//
//	[log]
//	level = "info"
//	dir = "./logs"          # empty: stdout only
//	file = "skyplan.log"
//	max_size_mb = 100
//	max_backups = 7
//	max_age_days = 30
//	compress = true
//
//	[planner]
//	max_results = 3
//	max_legs = 0            # 0: unbounded
//	max_paths = 0           # 0: unbounded
//	workers = 1
//
//	[mysql]
//	dsn = "user:pass@tcp(127.0.0.1:3306)/skyplan?parseTime=true"
//	table = "flights"
//
//	[http]
//	addr = ":8080"
//	allowed_origins = ["*"]
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment overrides.
const (
	EnvMySQLDSN = "SKYPLAN_MYSQL_DSN"
	EnvHTTPAddr = "SKYPLAN_HTTP_ADDR"
	EnvLogLevel = "SKYPLAN_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config is the full settings tree.
type Config struct {
	Log     Log     `toml:"log"`
	Planner Planner `toml:"planner"`
	MySQL   MySQL   `toml:"mysql"`
	HTTP    HTTP    `toml:"http"`
}

// Log controls logrus level and lumberjack rotation.
type Log struct {
	Level      string `toml:"level"`
	Dir        string `toml:"dir"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Planner mirrors the itinerary.Planner options.
type Planner struct {
	MaxResults int `toml:"max_results"`
	MaxLegs    int `toml:"max_legs"`
	MaxPaths   int `toml:"max_paths"`
	Workers    int `toml:"workers"`
}

// MySQL configures the optional database flight source.
type MySQL struct {
	DSN   string `toml:"dsn"`
	Table string `toml:"table"`
}

// HTTP configures cmd/skyplan-server.
type HTTP struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: Log{
			Level:      "info",
			File:       "skyplan.log",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Planner: Planner{MaxResults: 3, Workers: 1},
		MySQL:   MySQL{Table: "flights"},
		HTTP:    HTTP{Addr: ":8080"},
	}
}

// Load builds a Config from defaults, the TOML file at path, the given .env
// files (".env" when none are named) and the environment, then validates it.
// A missing TOML or .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Warningf("config file %s not found, using defaults", path)
		} else if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv loads the existing files among names; variables already set in
// the environment win.
func loadDotEnv(names []string) error {
	if len(names) == 0 {
		names = []string{".env"}
	}
	for _, name := range names {
		if _, err := os.Stat(name); err != nil {
			log.Debugf("no env file %s, using process environment", name)
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("config: load %s: %w", name, err)
		}
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMySQLDSN); v != "" {
		c.MySQL.DSN = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Log.Dir != "" && c.Log.File == "" {
		return fmt.Errorf("%w: log.file is required when log.dir is set", ErrInvalid)
	}

	p := c.Planner
	switch {
	case p.MaxResults <= 0:
		return fmt.Errorf("%w: planner.max_results must be positive, got %d", ErrInvalid, p.MaxResults)
	case p.MaxLegs < 0:
		return fmt.Errorf("%w: planner.max_legs cannot be negative, got %d", ErrInvalid, p.MaxLegs)
	case p.MaxPaths < 0:
		return fmt.Errorf("%w: planner.max_paths cannot be negative, got %d", ErrInvalid, p.MaxPaths)
	case p.Workers <= 0:
		return fmt.Errorf("%w: planner.workers must be positive, got %d", ErrInvalid, p.Workers)
	}

	if !tableName.MatchString(c.MySQL.Table) {
		return fmt.Errorf("%w: mysql.table %q is not a plain identifier", ErrInvalid, c.MySQL.Table)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalid)
	}

	return nil
}
