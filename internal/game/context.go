package game

import (
	"maps"

	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/rule"
)

// State 引擎状态
type State int

const (
	StateNotStarted State = iota
	StateAwaitingPlay
	StateAwaitingSuitChoice
	StateRoundEnded
)

var stateNames = map[State]string{
	StateNotStarted:         "not-started",
	StateAwaitingPlay:       "awaiting-play",
	StateAwaitingSuitChoice: "awaiting-suit-choice",
	StateRoundEnded:         "round-ended",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// GameContext is the immutable view handed to a Control.
type GameContext struct {
	Hand         []card.Card
	TopCard      card.Card
	SuitOverride *card.Suit
	SixToCover   *card.Card
}

func newContext(hand []card.Card, t rule.Table) GameContext {
	return GameContext{
		Hand:         card.Clone(hand),
		TopCard:      t.Top,
		SuitOverride: t.SuitOverride,
		SixToCover:   t.SixToCover,
	}
}

// Table returns the legality view of the context.
func (c GameContext) Table() rule.Table {
	return rule.Table{Top: c.TopCard, SuitOverride: c.SuitOverride, SixToCover: c.SixToCover}
}

// IsLegal 按快照判断能否出牌
func (c GameContext) IsLegal(cd card.Card) bool {
	return rule.IsLegal(cd, c.Table())
}

// RoundSummary is returned by the call that ends a round. Scores and Deltas are keyed by
// player ID.
type RoundSummary struct {
	Round         int
	Winner        *Player
	FinishingCard card.Card
	Scores        map[string]int
	Deltas        map[string]int
}

// Delta 某玩家本局分数变化
func (s *RoundSummary) Delta(p *Player) int {
	return s.Deltas[p.ID]
}

// Score 某玩家累计分数
func (s *RoundSummary) Score(p *Player) int {
	return s.Scores[p.ID]
}

func cloneScores(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	maps.Copy(out, m)
	return out
}
