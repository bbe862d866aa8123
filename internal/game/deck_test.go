package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
)

func newTestDeck(seed uint64) *Deck {
	d := NewDeck(card.Rank6, NewRand(seed))
	d.Reset()
	return d
}

func TestDeck_Reset(t *testing.T) {
	t.Parallel()

	d := newTestDeck(1)
	d.SetSuitOverride(card.Heart)
	d.sixToCover = &card.Card{Suit: card.Club, Rank: card.Rank6}

	d.Reset()

	assert.Equal(t, 36, d.Size())
	assert.Equal(t, 35, d.DrawPileSize())
	assert.Equal(t, 1, d.DiscardPileSize())
	_, ok := d.SuitOverride()
	assert.False(t, ok)
	_, ok = d.SixToCover()
	assert.False(t, ok)
	assert.NotEqual(t, card.Card{}, d.TopCard())
}

func TestDeck_Reset_SeededOrder(t *testing.T) {
	t.Parallel()

	a := newTestDeck(7)
	b := newTestDeck(7)
	c := newTestDeck(8)

	assert.Equal(t, a.drawPile, b.drawPile)
	assert.Equal(t, a.TopCard(), b.TopCard())
	assert.NotEqual(t, a.drawPile, c.drawPile)
}

func TestDeck_PlayCard(t *testing.T) {
	t.Parallel()

	t.Run("illegal card leaves state unchanged", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(1)
		d.discardPile = cards("9H")

		err := d.PlayCard(card.MustParse("7S"))
		assert.ErrorIs(t, err, apperrors.ErrIllegalMove)
		assert.Equal(t, cards("9H"), d.discardPile)
	})

	t.Run("six arms the cover", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(1)
		d.discardPile = cards("9H")

		require.NoError(t, d.PlayCard(card.MustParse("6H")))
		six, ok := d.SixToCover()
		assert.True(t, ok)
		assert.Equal(t, card.MustParse("6H"), six)
		assert.Equal(t, card.MustParse("6H"), d.TopCard())
	})

	t.Run("covering card clears the six", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(1)
		d.discardPile = cards("9H")
		require.NoError(t, d.PlayCard(card.MustParse("6H")))

		require.NoError(t, d.PlayCard(card.MustParse("AH")))
		_, ok := d.SixToCover()
		assert.False(t, ok)
	})

	t.Run("six on six re-arms with the new six", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(1)
		d.discardPile = cards("9H")
		require.NoError(t, d.PlayCard(card.MustParse("6H")))

		require.NoError(t, d.PlayCard(card.MustParse("6S")))
		six, ok := d.SixToCover()
		assert.True(t, ok)
		assert.Equal(t, card.Spade, six.Suit)
	})

	t.Run("play clears the suit override", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(1)
		d.discardPile = cards("QH")
		d.SetSuitOverride(card.Club)

		require.NoError(t, d.PlayCard(card.MustParse("8C")))
		_, ok := d.SuitOverride()
		assert.False(t, ok)
	})
}

func TestDeck_SuitOverridePrecedence(t *testing.T) {
	t.Parallel()

	d := newTestDeck(1)
	d.discardPile = cards("9H")
	d.SetSuitOverride(card.Spade)

	// same rank and same suit as the top card no longer count
	assert.False(t, d.IsMoveLegal(card.MustParse("9C")))
	assert.False(t, d.IsMoveLegal(card.MustParse("KH")))
	assert.True(t, d.IsMoveLegal(card.MustParse("KS")))
	assert.True(t, d.IsMoveLegal(card.MustParse("QD")), "a queen may always be replayed")

	for _, c := range card.NewSet(card.Rank6) {
		if c.Suit != card.Spade && c.Rank != card.RankQ {
			assert.False(t, d.IsMoveLegal(c), "card %s", c)
		}
	}
}

func TestDeck_SixCoverEnforcement(t *testing.T) {
	t.Parallel()

	d := newTestDeck(3)
	d.discardPile = cards("9D")
	require.NoError(t, d.PlayCard(card.MustParse("6D")))

	for _, c := range card.NewSet(card.Rank6) {
		want := c.Rank == card.Rank6 || c.Suit == card.Diamond
		assert.Equal(t, want, d.IsMoveLegal(c), "card %s", c)
	}
}

func TestDeck_Draw_Reshuffle(t *testing.T) {
	t.Parallel()

	d := newTestDeck(5)
	total := d.DrawPileSize() + d.DiscardPileSize()

	// move the whole draw pile onto the discard pile
	d.discardPile = append(d.discardPile, d.drawPile...)
	d.drawPile = nil
	top := d.TopCard()
	require.GreaterOrEqual(t, d.DiscardPileSize(), 2)

	c, err := d.Draw()
	require.NoError(t, err)

	assert.Equal(t, 1, d.DiscardPileSize())
	assert.Equal(t, top, d.TopCard())
	assert.Positive(t, d.DrawPileSize())
	assert.NotEqual(t, top, c)
	assert.Equal(t, total, d.DrawPileSize()+d.DiscardPileSize()+1)
}

func TestDeck_Draw_Exhausted(t *testing.T) {
	t.Parallel()

	d := newTestDeck(5)
	d.drawPile = nil
	d.discardPile = cards("AS")

	_, err := d.Draw()
	assert.ErrorIs(t, err, apperrors.ErrPilesExhausted)
	assert.Equal(t, cards("AS"), d.discardPile)
}

func TestDeck_DrawN(t *testing.T) {
	t.Parallel()

	t.Run("draw order", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(5)
		d.drawPile = cards("6C", "7C", "8C")

		drawn, err := d.DrawN(2)
		require.NoError(t, err)
		assert.Equal(t, cards("8C", "7C"), drawn)
		assert.Equal(t, cards("6C"), d.drawPile)
	})

	t.Run("partial draw is returned with the error", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(5)
		d.drawPile = cards("6C")
		d.discardPile = cards("AS")

		drawn, err := d.DrawN(3)
		assert.ErrorIs(t, err, apperrors.ErrPilesExhausted)
		assert.Equal(t, cards("6C"), drawn)
	})
}

func TestDeck_TableIsSnapshot(t *testing.T) {
	t.Parallel()

	d := newTestDeck(1)
	d.SetSuitOverride(card.Heart)

	table := d.Table()
	*table.SuitOverride = card.Spade

	s, ok := d.SuitOverride()
	require.True(t, ok)
	assert.Equal(t, card.Heart, s)
}
