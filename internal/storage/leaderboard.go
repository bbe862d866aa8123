package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/game-101/internal/config"
	"github.com/palemoky/game-101/internal/game"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:points"
	dailyKeyPrefix = "leaderboard:daily:"

	dailyExpiration = 48 * time.Hour
)

// PlayerStats 玩家统计数据。Points 是罚分，越低越好
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	Rounds int `json:"rounds"` // 总局数
	Wins   int `json:"wins"`   // 胜局
	Points int `json:"points"` // 累计罚分

	QueenFinishes int `json:"queen_finishes"` // 以 Q 收尾的胜局
	CurrentStreak int `json:"current_streak"` // 正数为连胜，负数为连败
	MaxWinStreak  int `json:"max_win_streak"`

	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// WinRate 胜率（百分比）
func (s *PlayerStats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Points     int     `json:"points"`
	Rounds     int     `json:"rounds"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// Recorder is what the table needs from a score store.
type Recorder interface {
	RecordRound(ctx context.Context, summary *game.RoundSummary, players []*game.Player) error
	GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}

// Leaderboard 基于 Redis 的排行榜
type Leaderboard struct {
	redis *redis.Client
	now   func() time.Time
}

// NewLeaderboard 创建排行榜
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client, now: time.Now}
}

// Connect opens a client for cfg and checks it answers within five seconds.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}
	return rdb, nil
}

// GetPlayerStats 获取玩家统计，不存在时返回 nil
func (lb *Leaderboard) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := lb.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("反序列化玩家统计失败: %w", err)
	}
	return &stats, nil
}

func (lb *Leaderboard) getOrCreateStats(ctx context.Context, p *game.Player) (*PlayerStats, error) {
	stats, err := lb.GetPlayerStats(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:  p.ID,
			CreatedAt: lb.now().Unix(),
		}
	}
	stats.PlayerName = p.Name
	return stats, nil
}

// applyRound 把一局结果计入统计
func applyRound(stats *PlayerStats, summary *game.RoundSummary, p *game.Player, at time.Time) {
	won := summary.Winner == p

	stats.Rounds++
	stats.Points = max(0, stats.Points+summary.Delta(p))
	stats.LastPlayedAt = at.Unix()

	if won {
		stats.Wins++
		if summary.FinishingCard.IsQueen() {
			stats.QueenFinishes++
		}
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
	} else {
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
	}
	stats.MaxWinStreak = max(stats.MaxWinStreak, stats.CurrentStreak)
}

// RecordRound 记录一局结果并更新排行榜。所有玩家的统计在同一个事务里写入，
// 任何一个失败都不会留下部分记录
func (lb *Leaderboard) RecordRound(ctx context.Context, summary *game.RoundSummary, players []*game.Player) error {
	if summary == nil {
		return nil
	}

	now := lb.now()
	dailyKey := dailyKeyPrefix + now.Format("2006-01-02")

	type update struct {
		player *game.Player
		points int
		data   []byte
	}
	updates := make([]update, 0, len(players))
	for _, p := range players {
		stats, err := lb.getOrCreateStats(ctx, p)
		if err != nil {
			return fmt.Errorf("读取 %s 的统计失败: %w", p.Name, err)
		}
		applyRound(stats, summary, p, now)

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		updates = append(updates, update{player: p, points: stats.Points, data: data})
	}

	_, err := lb.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, u := range updates {
			pipe.Set(ctx, playerStatsKey+u.player.ID, u.data, 0)
			pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(u.points), Member: u.player.ID})
			pipe.ZIncrBy(ctx, dailyKey, float64(summary.Delta(u.player)), u.player.ID)
		}
		pipe.Expire(ctx, dailyKey, dailyExpiration)
		return nil
	})
	if err != nil {
		return fmt.Errorf("保存第 %d 局统计失败: %w", summary.Round, err)
	}
	return nil
}

// GetLeaderboard 获取排行榜，罚分从低到高
func (lb *Leaderboard) GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	results, err := lb.redis.ZRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*LeaderboardEntry, 0, len(results))
	for _, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}

		stats, err := lb.GetPlayerStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}

		entries = append(entries, &LeaderboardEntry{
			Rank:       len(entries) + 1,
			PlayerID:   playerID,
			PlayerName: stats.PlayerName,
			Points:     int(result.Score),
			Rounds:     stats.Rounds,
			Wins:       stats.Wins,
			WinRate:    stats.WinRate(),
		})
	}
	return entries, nil
}

// GetPlayerRank 获取玩家排名，未上榜返回 -1
func (lb *Leaderboard) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lb.redis.ZRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil
}

// GetDailyPoints 当天累计的罚分变化
func (lb *Leaderboard) GetDailyPoints(ctx context.Context, playerID string) (int, error) {
	key := dailyKeyPrefix + lb.now().Format("2006-01-02")
	score, err := lb.redis.ZScore(ctx, key, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int(score), nil
}
