package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const defaultListenAddr = ":50051"

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server ServerConfig `yaml:"server"`
	Input  InputConfig  `yaml:"input"`
	Finder FinderConfig `yaml:"finder"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// InputConfig は解析対象の入力に関する設定です。
type InputConfig struct {
	// Path は CLI で入力ファイルを省略した場合に使用されます。
	Path string `yaml:"path"`
	// DateFormat を指定すると日付はこのフォーマットのみで解釈されます。
	DateFormat string `yaml:"date_format"`
}

// FinderConfig はペア探索に関する設定です。
type FinderConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig はロガーに関する設定です。
type LogConfig struct {
	Level       string        `yaml:"level"`
	Development bool          `yaml:"development"`
	ZapLevel    zapcore.Level `yaml:"-"`
}

// Default は設定ファイルが無い場合に用いる設定を返します。
func Default() *Config {
	cfg := &Config{}
	if err := cfg.validateAndNormalize(); err != nil {
		panic(err)
	}
	return cfg
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	c.Server.ListenAddr = strings.TrimSpace(c.Server.ListenAddr)
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}

	c.Input.Path = strings.TrimSpace(c.Input.Path)
	c.Input.DateFormat = strings.TrimSpace(c.Input.DateFormat)

	if c.Finder.Workers < 0 {
		return fmt.Errorf("config: finder.workers must not be negative")
	}

	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	if strings.TrimSpace(l.Level) == "" {
		l.Level = "info"
	}

	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	l.ZapLevel = level

	return nil
}
