// Package game implements the 101 rules engine: the deck and its legality rules, card
// effects, turn order and round scoring. An Engine is a single-threaded state machine;
// callers serialize every call into it.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/palemoky/game-101/internal/card"
)

// DefaultHandSize 每局每人发牌数
const DefaultHandSize = 4

// MaxPlayers returns how many seats a deal of handSize cards from the set starting at
// lowest can serve. After the deal the piles must still hold the starting top card plus
// one full draw-five penalty.
func MaxPlayers(handSize int, lowest card.Rank) int {
	if handSize < 1 {
		return 0
	}
	return (len(card.NewSet(lowest)) - 1 - drawFiveCount) / handSize
}

type options struct {
	handSize   int
	lowestRank card.Rank
	rng        *rand.Rand
}

// Option configures an Engine.
type Option func(*options)

// WithHandSize sets how many cards each player is dealt.
func WithHandSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.handSize = n
		}
	}
}

// WithLowestRank sets the lowest rank of the generated card set.
func WithLowestRank(r card.Rank) Option {
	return func(o *options) {
		if r.Valid() {
			o.lowestRank = r
		}
	}
}

// WithRand injects the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed is WithRand over a PCG source seeded with seed. Zero keeps the time-based default.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		if seed != 0 {
			o.rng = NewRand(seed)
		}
	}
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultOptions() options {
	return options{
		handSize:   DefaultHandSize,
		lowestRank: card.DefaultLowestRank,
		rng:        NewRand(uint64(time.Now().UnixNano())),
	}
}
