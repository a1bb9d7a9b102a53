package configs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SourceStatic   = "static"
	SourceAirtable = "airtable"
	SourceDatabase = "database"
)

var knownSources = []string{SourceStatic, SourceAirtable, SourceDatabase}

// 环境变量优先于配置文件
const (
	EnvAirtableAPIKey = "AIRTABLE_API_KEY"
	EnvPostgresDSN    = "RANKFI_POSTGRES_DSN"
	EnvProxy          = "RANKFI_PROXY"
)

type Config struct {
	// 基础配置
	Proxy    string `json:"proxy" yaml:"proxy"`         // HTTP(S) 代理
	LogLevel string `json:"log_level" yaml:"log_level"` // debug/info/warn/error

	// 数据源按顺序尝试, 第一个成功的生效
	Sources []string `json:"sources" yaml:"sources"`

	Airtable AirtableConfig `json:"airtable" yaml:"airtable"`

	Database Database `json:"database" yaml:"database"`

	// 币安实时上币数量
	Binance BinanceConfig `json:"binance" yaml:"binance"`

	// 表格默认视图
	Table TableConfig `json:"table" yaml:"table"`
}

type AirtableConfig struct {
	BaseURL  string `json:"base_url" yaml:"base_url"`
	BaseID   string `json:"base_id" yaml:"base_id"`
	Table    string `json:"table" yaml:"table"`
	View     string `json:"view" yaml:"view"`
	APIKey   string `json:"api_key" yaml:"api_key"` // 建议使用 AIRTABLE_API_KEY
	PageSize int    `json:"page_size" yaml:"page_size"`
}

type Database struct {
	Driver  string `json:"driver" yaml:"driver"`     // postgres/sqlite/mysql
	ConnStr string `json:"conn_str" yaml:"conn_str"` // 数据库连接字符串
}

type BinanceConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Testnet bool   `json:"testnet" yaml:"testnet"`
}

type TableConfig struct {
	Filter   string `json:"filter" yaml:"filter"`
	PageSize int    `json:"page_size" yaml:"page_size"`
	Region   string `json:"region" yaml:"region"`
	Discount bool   `json:"discount" yaml:"discount"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// Load reads a JSON or YAML file, chosen by extension, fills defaults and
// applies environment overrides. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, cfg)
		default:
			err = json.Unmarshal(raw, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.fillDefaults()
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	if len(c.Sources) == 0 {
		c.Sources = []string{SourceStatic}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Airtable.Table == "" {
		c.Airtable.Table = "Exchanges"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Table.Filter == "" {
		c.Table.Filter = "features"
	}
	if c.Table.PageSize <= 0 {
		c.Table.PageSize = 25
	}
	if c.Table.Region == "" {
		c.Table.Region = "global"
	}
}

func (c *Config) overrideWithEnv() {
	if key := os.Getenv(EnvAirtableAPIKey); key != "" {
		c.Airtable.APIKey = key
	}
	if dsn := os.Getenv(EnvPostgresDSN); dsn != "" {
		c.Database.Driver = "postgres"
		c.Database.ConnStr = dsn
	}
	if proxy := os.Getenv(EnvProxy); proxy != "" {
		c.Proxy = proxy
	}
}

// Validate checks source names and the settings each enabled source needs.
func (c *Config) Validate() error {
	for _, s := range c.Sources {
		if !slices.Contains(knownSources, s) {
			return fmt.Errorf("unknown source: %q", s)
		}
	}

	if slices.Contains(c.Sources, SourceAirtable) && c.Airtable.BaseID == "" {
		return fmt.Errorf("airtable source requires airtable.base_id")
	}
	if slices.Contains(c.Sources, SourceDatabase) && c.Database.ConnStr == "" {
		return fmt.Errorf("database source requires database.conn_str")
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ExportProxy publishes the proxy to HTTP_PROXY and HTTPS_PROXY so every
// client that reads the environment picks it up.
func (c *Config) ExportProxy() {
	if c.Proxy == "" {
		return
	}
	_ = os.Setenv("HTTP_PROXY", c.Proxy)
	_ = os.Setenv("HTTPS_PROXY", c.Proxy)
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Airtable.APIKey != "" {
		c.Airtable.APIKey = "***"
	}
	if c.Database.ConnStr != "" {
		c.Database.ConnStr = "***"
	}
	c.Sources = slices.Clone(c.Sources)
	return c
}
