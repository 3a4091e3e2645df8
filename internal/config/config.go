package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/tractor/internal/game/card"
)

// Config 服务端与模拟器配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug/info/warn/error
	File  string `yaml:"file"`  // 为空时只输出到标准错误
}

// GameConfig 对局配置
type GameConfig struct {
	DominantRank     string  `yaml:"dominant_rank"`      // 级牌："2".."10"、"J"、"Q"、"K"、"A"
	EnableCounterBid bool    `yaml:"enable_counter_bid"` // 允许抄底
	EnableCombos     bool    `yaml:"enable_combos"`      // 允许甩牌
	ComboPenalty     float64 `yaml:"combo_penalty"`      // 甩牌失败惩罚
	TurnTimeout      int     `yaml:"turn_timeout"`       // 出牌超时（秒），超时座位转托管
}

// TurnTimeoutDuration 返回出牌超时时长
func (c *GameConfig) TurnTimeoutDuration() time.Duration {
	return time.Duration(c.TurnTimeout) * time.Second
}

// ParseDominantRank 解析配置的级牌点数
func (c *GameConfig) ParseDominantRank() (card.Rank, error) {
	for r := card.Rank2; r <= card.RankA; r++ {
		if r.String() == c.DominantRank {
			return r, nil
		}
	}
	return 0, fmt.Errorf("无法识别的级牌: %q", c.DominantRank)
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if _, err := cfg.Game.ParseDominantRank(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 设置默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1790
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Game.DominantRank == "" {
		c.Game.DominantRank = "2"
	}
	if c.Game.ComboPenalty == 0 {
		c.Game.ComboPenalty = 0.1
	}
	if c.Game.TurnTimeout == 0 {
		c.Game.TurnTimeout = 30
	}
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
