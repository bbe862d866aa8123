package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
)

func TestEffects_TurnOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		players   int
		play      string
		next      []string
		wantSeat  int
		wantDir   int
		wantHands []int
	}{
		{"plain card", 3, "8H", nil, 1, 1, []int{1, 1, 1}},
		{"ten reverses", 3, "10H", nil, 2, -1, []int{1, 1, 1}},
		{"ten with two players", 2, "10H", nil, 1, -1, []int{1, 1}},
		{"seven feeds next without skip", 3, "7H", []string{"AS", "KD"}, 1, 1, []int{1, 3, 1}},
		{"king of spade feeds five and skips", 3, "KS", []string{"6C", "7C", "8C", "JC", "AC"}, 2, 1, []int{1, 6, 1}},
		{"king of heart feeds five and skips", 3, "KH", []string{"6C", "7C", "8C", "JC", "AC"}, 2, 1, []int{1, 6, 1}},
		{"king of club is plain", 3, "KC", nil, 1, 1, []int{1, 1, 1}},
		{"ace skips", 3, "AH", nil, 2, 1, []int{1, 1, 1}},
		{"ace with two players comes back", 2, "AH", nil, 0, 1, []int{1, 1}},
		{"six passes normally", 3, "6H", nil, 1, 1, []int{1, 1, 1}},
	}

	fillers := []string{"9C", "9D", "9S"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			players := newBots(tt.players)
			e := newTestEngine(t, players)

			playCard := card.MustParse(tt.play)
			hands := make([][]card.Card, tt.players)
			hands[0] = []card.Card{playCard, card.MustParse("JD")}
			for i := 1; i < tt.players; i++ {
				hands[i] = cards(fillers[i-1])
			}
			top := card.MustParse("QH")
			if playCard.Suit != card.Heart {
				top = card.Card{Suit: playCard.Suit, Rank: card.Rank8}
			}
			rigTable(t, e, hands, top, cards(tt.next...)...)

			summary, err := e.PlayTurn(playCard)
			require.NoError(t, err)
			assert.Nil(t, summary)

			assert.Same(t, players[tt.wantSeat], e.CurrentPlayer())
			assert.Equal(t, tt.wantDir, e.Direction())
			for i, want := range tt.wantHands {
				assert.Equal(t, want, players[i].HandSize(), "player %d", i)
			}
			requireConserved(t, e)
		})
	}
}

func TestEffects_DoubleReverseRestoresOrder(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 4, 5} {
		players := newBots(n)
		e := newTestEngine(t, players)
		e.current = 1
		before := e.NextPlayer()

		_, err := reverseDirection(e, card.MustParse("10C"))
		require.NoError(t, err)
		assert.NotSame(t, before, e.NextPlayer())

		_, err = reverseDirection(e, card.MustParse("10D"))
		require.NoError(t, err)
		assert.Same(t, before, e.NextPlayer())
		assert.Equal(t, 1, e.Direction())
	}
}

func TestEffects_ReverseThenSevenHitsNewNext(t *testing.T) {
	t.Parallel()

	players := newBots(3)
	e := newTestEngine(t, players)
	rigTable(t, e,
		[][]card.Card{cards("10H", "JD"), cards("9C"), cards("7H", "9S")},
		card.MustParse("QH"),
		cards("6C", "7C")...,
	)

	_, err := e.PlayTurn(card.MustParse("10H"))
	require.NoError(t, err)
	require.Same(t, players[2], e.CurrentPlayer())

	_, err = e.PlayTurn(card.MustParse("7H"))
	require.NoError(t, err)

	// direction is reversed, so seat 1 is next after seat 2
	assert.Equal(t, cards("9C", "6C", "7C"), players[1].Hand())
	assert.Same(t, players[1], e.CurrentPlayer())
	requireConserved(t, e)
}

func TestEffects_SixCoverFlow(t *testing.T) {
	t.Parallel()

	players := []*Player{NewBot("bot", nil), NewHuman("you")}
	e := newTestEngine(t, players)
	rigTable(t, e,
		[][]card.Card{cards("6H", "JD"), cards("AS", "KC")},
		card.MustParse("9H"),
		cards("8S", "10C", "JH")...,
	)

	_, err := e.PlayTurn(card.MustParse("6H"))
	require.NoError(t, err)
	require.Same(t, players[1], e.CurrentPlayer())

	six, ok := e.Deck().SixToCover()
	require.True(t, ok)
	assert.Equal(t, card.MustParse("6H"), six)

	// nothing in hand covers a six of hearts
	assert.False(t, e.IsMoveLegal(card.MustParse("AS")))
	assert.False(t, e.IsMoveLegal(card.MustParse("KC")))

	_, err = e.DrawForCurrentPlayer()
	assert.ErrorIs(t, err, apperrors.ErrMustCoverSix)

	drawn, summary, err := e.CoverSix()
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, cards("8S", "10C", "JH"), drawn)

	// 8S and 10C stay in hand, JH covered the six
	assert.Equal(t, cards("AS", "KC", "8S", "10C"), players[1].Hand())
	assert.Equal(t, card.MustParse("JH"), e.Deck().TopCard())
	_, ok = e.Deck().SixToCover()
	assert.False(t, ok)
	assert.Same(t, players[0], e.CurrentPlayer())

	_, _, err = e.CoverSix()
	assert.ErrorIs(t, err, apperrors.ErrNoSixToCover)
	requireConserved(t, e)
}

func TestEffects_SixCoveredFromHand(t *testing.T) {
	t.Parallel()

	players := newBots(2)
	e := newTestEngine(t, players)
	rigTable(t, e, [][]card.Card{cards("6H", "JD"), cards("6S", "KC")}, card.MustParse("9H"))

	_, err := e.PlayTurn(card.MustParse("6H"))
	require.NoError(t, err)

	// another six covers and re-arms the obligation for the next player
	_, err = e.PlayTurn(card.MustParse("6S"))
	require.NoError(t, err)
	six, ok := e.Deck().SixToCover()
	require.True(t, ok)
	assert.Equal(t, card.Spade, six.Suit)
	assert.Same(t, players[0], e.CurrentPlayer())
}
