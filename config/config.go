// Package config 定义服务配置（YAML），加载时填默认值并做校验。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是服务的顶层配置。
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Index   IndexConfig   `yaml:"index"`
	Catalog CatalogConfig `yaml:"catalog"`
	Engine  EngineConfig  `yaml:"engine"`
	Tracker TrackerConfig `yaml:"tracker"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // 默认 ":8000"
}

type IndexConfig struct {
	// VectorsPath 是向量快照（JSON 数组）的路径，维度在载入时校验。
	VectorsPath string `yaml:"vectors_path"`
	// Dimension 大于 0 时校验快照维度必须与之一致。
	Dimension int `yaml:"dimension"`
}

type CatalogConfig struct {
	MetadataPath string `yaml:"metadata_path"`
	// PrefetchConcurrency 大于 0 时启动期并发预取归一化 embedding。
	PrefetchConcurrency int `yaml:"prefetch_concurrency"`
}

type EngineConfig struct {
	Lambda        float64 `yaml:"lambda"`         // 默认 0.7
	DefaultCount  int     `yaml:"default_count"`  // HTTP 层未指定数量时的默认值，默认 20
	MaxCandidates int     `yaml:"max_candidates"` // MMR 前候选上限，0 表示不截断
}

type TrackerConfig struct {
	Backend        string `yaml:"backend"` // memory / redis，默认 memory
	RedisAddr      string `yaml:"redis_addr"`
	RedisDB        int    `yaml:"redis_db"`
	RedisKeyPrefix string `yaml:"redis_key_prefix"`
}

type LogConfig struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load 从 YAML 文件加载配置。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Engine.DefaultCount <= 0 {
		c.Engine.DefaultCount = 20
	}
	if c.Tracker.Backend == "" {
		c.Tracker.Backend = "memory"
	}
}

// Validate 校验配置；索引或元数据缺失是致命错误，服务不应启动。
func (c *Config) Validate() error {
	if c.Index.VectorsPath == "" {
		return fmt.Errorf("config: index.vectors_path is required")
	}
	if c.Catalog.MetadataPath == "" {
		return fmt.Errorf("config: catalog.metadata_path is required")
	}
	switch c.Tracker.Backend {
	case "memory":
	case "redis":
		if c.Tracker.RedisAddr == "" {
			return fmt.Errorf("config: tracker.redis_addr is required for redis backend")
		}
	default:
		return fmt.Errorf("config: unknown tracker backend %q (supported: memory, redis)", c.Tracker.Backend)
	}
	if c.Engine.Lambda < 0 || c.Engine.Lambda > 1 {
		return fmt.Errorf("config: engine.lambda must be in [0, 1]")
	}
	return nil
}
