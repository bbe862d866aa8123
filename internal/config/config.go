package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/game"
)

// 默认值
const (
	defaultHandSize   = game.DefaultHandSize
	defaultLowestRank = "6"
	defaultBotDelayMs = 600
	defaultRedisAddr  = "localhost:6379"
	defaultSoundDir   = "assets/sounds"
)

// Config 客户端配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Sound SoundConfig `yaml:"sound"`
	Log   LogConfig   `yaml:"log"`
}

// PlayerConfig 座位配置，按顺序入座
type PlayerConfig struct {
	Name string `yaml:"name"`
	Bot  bool   `yaml:"bot"`
}

// GameConfig 游戏配置
type GameConfig struct {
	HandSize   int            `yaml:"hand_size"`
	LowestRank string         `yaml:"lowest_rank"` // "2".."A"
	Seed       uint64         `yaml:"seed"`        // 0 表示按时间随机
	BotDelayMs int            `yaml:"bot_delay_ms"`
	Players    []PlayerConfig `yaml:"players"`
}

// RedisConfig Redis 配置，排行榜用
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// BotDelay 返回机器人出牌间隔
func (c *GameConfig) BotDelay() time.Duration {
	return time.Duration(c.BotDelayMs) * time.Millisecond
}

// Rank 解析最小点数
func (c *GameConfig) Rank() (card.Rank, error) {
	return card.RankFromString(c.LowestRank)
}

// EngineOptions converts the game section into engine options.
func (c *GameConfig) EngineOptions() ([]game.Option, error) {
	r, err := c.Rank()
	if err != nil {
		return nil, err
	}
	return []game.Option{
		game.WithHandSize(c.HandSize),
		game.WithLowestRank(r),
		game.WithSeed(c.Seed),
	}, nil
}

// NewPlayers seats the configured players. IDs are derived from names so stats persist
// between runs.
func (c *GameConfig) NewPlayers() []*game.Player {
	players := make([]*game.Player, 0, len(c.Players))
	for i, pc := range c.Players {
		var p *game.Player
		if pc.Bot {
			var control game.Control = game.NewBotControl(nil)
			if c.Seed != 0 {
				control = game.NewBotControl(game.NewRand(c.Seed + uint64(i) + 1))
			}
			p = game.NewBot(pc.Name, control)
		} else {
			p = game.NewHuman(pc.Name)
		}
		p.ID = game.StableID(pc.Name)
		players = append(players, p)
	}
	return players
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	var errs []error
	if c.Game.HandSize < 1 {
		errs = append(errs, fmt.Errorf("game.hand_size must be positive, got %d", c.Game.HandSize))
	}
	if _, err := c.Game.Rank(); err != nil {
		errs = append(errs, fmt.Errorf("game.lowest_rank: %w", err))
	}
	if c.Game.BotDelayMs < 0 {
		errs = append(errs, fmt.Errorf("game.bot_delay_ms must not be negative, got %d", c.Game.BotDelayMs))
	}
	if len(c.Game.Players) < 2 {
		errs = append(errs, fmt.Errorf("game.players needs at least 2 seats, got %d", len(c.Game.Players)))
	}
	if r, err := c.Game.Rank(); err == nil && c.Game.HandSize >= 1 {
		if limit := game.MaxPlayers(c.Game.HandSize, r); len(c.Game.Players) > limit {
			errs = append(errs, fmt.Errorf("game.players: at most %d seats with hand_size %d and lowest_rank %s, got %d",
				limit, c.Game.HandSize, c.Game.LowestRank, len(c.Game.Players)))
		}
	}
	seen := make(map[string]bool, len(c.Game.Players))
	humans := 0
	for i, p := range c.Game.Players {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("game.players[%d]: name is empty", i))
		case seen[p.Name]:
			errs = append(errs, fmt.Errorf("game.players[%d]: duplicate name %q", i, p.Name))
		}
		seen[p.Name] = true
		if !p.Bot {
			humans++
		}
	}
	// 终端只有一个真人座位
	if humans > 1 {
		errs = append(errs, fmt.Errorf("game.players: at most 1 human seat, got %d", humans))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	return errors.Join(errs...)
}

// Load 加载配置文件，未设置的字段取默认值，环境变量优先
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// 显式写 0 或空串也回落到默认值
	if cfg.Game.HandSize == 0 {
		cfg.Game.HandSize = defaultHandSize
	}
	if cfg.Game.LowestRank == "" {
		cfg.Game.LowestRank = defaultLowestRank
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Sound.Dir == "" {
		cfg.Sound.Dir = defaultSoundDir
	}
	if len(cfg.Game.Players) == 0 {
		cfg.Game.Players = defaultPlayers()
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default with the environment
// overrides applied.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	cfg = Default()
	loadFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}
	return cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			HandSize:   defaultHandSize,
			LowestRank: defaultLowestRank,
			BotDelayMs: defaultBotDelayMs,
			Players:    defaultPlayers(),
		},
		Redis: RedisConfig{
			Addr: defaultRedisAddr,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     defaultSoundDir,
		},
	}
}

func defaultPlayers() []PlayerConfig {
	return []PlayerConfig{
		{Name: "You"},
		{Name: "Bot", Bot: true},
	}
}

// loadFromEnv 环境变量覆盖
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("GAME101_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("GAME101_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("GAME101_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v := os.Getenv("GAME101_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = debug
		}
	}
}
