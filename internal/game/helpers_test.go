package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palemoky/game-101/internal/card"
)

func cards(specs ...string) []card.Card {
	out := make([]card.Card, len(specs))
	for i, s := range specs {
		out[i] = card.MustParse(s)
	}
	return out
}

func newBots(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewBot("bot", NewBotControl(NewRand(uint64(i+1))))
	}
	return players
}

func newTestEngine(t *testing.T, players []*Player) *Engine {
	t.Helper()
	e, err := NewEngine(players, WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, e.StartNewRound())
	return e
}

// rigTable replaces the dealt state: hands[i] goes to player i, top seeds the discard
// pile and the remaining cards form the draw pile with next drawn first, in order.
func rigTable(t *testing.T, e *Engine, hands [][]card.Card, top card.Card, next ...card.Card) {
	t.Helper()
	require.Len(t, hands, len(e.players))

	rest := card.NewSet(e.deck.lowest)
	take := func(c card.Card) {
		t.Helper()
		var ok bool
		rest, ok = card.RemoveCard(rest, c)
		require.True(t, ok, "card %s used twice", c)
	}

	for i, p := range e.players {
		p.clearHand()
		for _, c := range hands[i] {
			take(c)
		}
		p.addCards(hands[i]...)
	}
	take(top)
	for _, c := range next {
		take(c)
	}

	draw := rest
	for i := len(next) - 1; i >= 0; i-- {
		draw = append(draw, next[i])
	}

	e.deck.drawPile = draw
	e.deck.discardPile = []card.Card{top}
	e.deck.suitOverride = nil
	e.deck.sixToCover = nil
	e.current = 0
	e.direction = 1
	e.pendingSuitChoice = nil
	e.roundOver = false
}

// requireConserved checks that every card of the set is in exactly one place.
func requireConserved(t *testing.T, e *Engine) {
	t.Helper()

	seen := make(map[card.Card]int)
	total := 0
	add := func(cs []card.Card) {
		for _, c := range cs {
			seen[c]++
			total++
		}
	}
	add(e.deck.drawPile)
	add(e.deck.discardPile)
	for _, p := range e.players {
		add(p.hand)
	}

	require.Equal(t, e.deck.Size(), total, "card count")
	for _, c := range card.NewSet(e.deck.lowest) {
		require.Equal(t, 1, seen[c], "card %s", c)
	}
}
