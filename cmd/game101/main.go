package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/game-101/internal/config"
	"github.com/palemoky/game-101/internal/game"
	"github.com/palemoky/game-101/internal/logger"
	"github.com/palemoky/game-101/internal/sound"
	"github.com/palemoky/game-101/internal/storage"
	"github.com/palemoky/game-101/internal/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	simRounds := flag.Int("sim", 0, "只让机器人对局 N 局并打印结算")
	flag.Parse()

	if err := run(*configPath, *simRounds); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("game101: %v", err)
	}
}

func run(configPath string, simRounds int) (err error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if err := logger.Init(); err != nil {
		// 终端界面下不能往 stderr 打日志
		logger.Discard()
	}
	defer logger.Close()
	logger.SetDebug(cfg.Log.Debug)

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("panic: %v (日志: %s)", r, logger.GetLogPath())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, closeStore := openRecorder(ctx, cfg.Redis)
	defer closeStore()

	if simRounds > 0 {
		_, err := simulate(ctx, os.Stdout, cfg, simRounds, recorder)
		return err
	}
	return play(ctx, cfg, recorder)
}

// openRecorder connects the leaderboard when redis is enabled. A failed connection only
// disables score recording.
func openRecorder(ctx context.Context, cfg config.RedisConfig) (storage.Recorder, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}

	client, err := storage.Connect(ctx, cfg)
	if err != nil {
		logger.LogError("leaderboard disabled: %v", err)
		fmt.Fprintf(os.Stderr, "排行榜不可用: %v\n", err)
		return nil, func() {}
	}
	logger.LogInfo("leaderboard connected to %s", cfg.Addr)
	return storage.NewLeaderboard(client), func() { _ = client.Close() }
}

func play(ctx context.Context, cfg *config.Config, recorder storage.Recorder) error {
	opts, err := cfg.Game.EngineOptions()
	if err != nil {
		return err
	}
	engine, err := game.NewEngine(cfg.Game.NewPlayers(), opts...)
	if err != nil {
		return err
	}
	if err := engine.StartNewRound(); err != nil {
		return err
	}

	sm := sound.NewSoundManager(cfg.Sound)
	if err := sm.Init(); err != nil {
		logger.LogError("sound disabled: %v", err)
	}
	defer sm.Close()

	m := ui.New(engine, ui.Options{
		BotDelay: cfg.Game.BotDelay(),
		Sound:    sm,
		Recorder: recorder,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("启动界面时出错: %w", err)
	}
	return nil
}
