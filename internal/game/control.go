package game

import (
	"math/rand/v2"

	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/rule"
)

// Control decides moves for a player from a snapshot of the table. Implementations must
// not keep references into the engine; everything they need is in the GameContext.
type Control interface {
	// MakeMove returns a currently legal card, or false when the player has to draw.
	MakeMove(ctx GameContext) (card.Card, bool)
	// ChooseSuit picks the suit to request after a Queen.
	ChooseSuit(ctx GameContext) card.Suit
}

// ExternalControl marks a player whose decisions come from outside the engine (a human at
// the terminal). The engine never calls it.
type ExternalControl struct{}

func (ExternalControl) MakeMove(GameContext) (card.Card, bool) {
	panic("game: external player moves must be supplied by the caller")
}

func (ExternalControl) ChooseSuit(GameContext) card.Suit {
	panic("game: external player suit choice must be supplied by the caller")
}

// BotControl 简单机器人：出第一张能出的牌，指定手里最多的花色
type BotControl struct {
	rng *rand.Rand
}

// NewBotControl creates the easy bot. rng is only used to pick a suit for an empty hand;
// nil falls back to the global source.
func NewBotControl(rng *rand.Rand) *BotControl {
	return &BotControl{rng: rng}
}

func (b *BotControl) MakeMove(ctx GameContext) (card.Card, bool) {
	return rule.FirstLegal(ctx.Hand, ctx.Table())
}

func (b *BotControl) ChooseSuit(ctx GameContext) card.Suit {
	if s, ok := rule.MostHeldSuit(ctx.Hand); ok {
		return s
	}
	if b.rng != nil {
		return card.Suits[b.rng.IntN(len(card.Suits))]
	}
	return card.Suits[rand.IntN(len(card.Suits))]
}
