package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/config"
	"github.com/palemoky/game-101/internal/game"
	"github.com/palemoky/game-101/internal/logger"
	"github.com/palemoky/game-101/internal/storage"
)

// maxBotSteps 单局机器人行动上限
const maxBotSteps = 10000

// simulate seats a bot in every configured seat, plays rounds and prints each summary.
// Rounds whose piles run dry are reported and skipped. It returns how many rounds
// finished with a winner.
func simulate(ctx context.Context, w io.Writer, cfg *config.Config, rounds int, recorder storage.Recorder) (int, error) {
	gc := cfg.Game
	gc.Players = make([]config.PlayerConfig, len(cfg.Game.Players))
	for i, p := range cfg.Game.Players {
		gc.Players[i] = config.PlayerConfig{Name: p.Name, Bot: true}
	}

	opts, err := gc.EngineOptions()
	if err != nil {
		return 0, err
	}
	players := gc.NewPlayers()
	engine, err := game.NewEngine(players, opts...)
	if err != nil {
		return 0, err
	}

	finished := 0
	for r := 1; r <= rounds; r++ {
		if err := ctx.Err(); err != nil {
			return finished, err
		}
		if err := engine.StartNewRound(); err != nil {
			return finished, err
		}

		summary, err := playOut(engine)
		if errors.Is(err, apperrors.ErrPilesExhausted) {
			fmt.Fprintf(w, "第 %d 局: 牌堆摸空，本局作废\n", engine.Round())
			continue
		}
		if err != nil {
			return finished, err
		}

		finished++
		printSummary(w, summary, players)
		if recorder != nil {
			if err := recorder.RecordRound(ctx, summary, players); err != nil {
				logger.LogError("record round %d: %v", summary.Round, err)
			}
		}
	}

	fmt.Fprintln(w, "总分:")
	for _, p := range players {
		fmt.Fprintf(w, "  %-10s %d\n", p.Name, engine.Score(p))
	}
	return finished, nil
}

// playOut 让机器人一直出牌直到本局结束
func playOut(engine *game.Engine) (*game.RoundSummary, error) {
	for range maxBotSteps {
		summary, err := engine.PlayBotTurn()
		if err != nil || summary != nil {
			return summary, err
		}
	}
	return nil, fmt.Errorf("round %d did not finish after %d bot turns", engine.Round(), maxBotSteps)
}

func printSummary(w io.Writer, s *game.RoundSummary, players []*game.Player) {
	fmt.Fprintf(w, "第 %d 局: %s 以 %s 获胜\n", s.Round, s.Winner.Name, s.FinishingCard)
	for _, p := range players {
		fmt.Fprintf(w, "  %-10s %+4d → %d\n", p.Name, s.Delta(p), s.Score(p))
	}
}
