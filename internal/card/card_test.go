package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lowest Rank
		size   int
	}{
		{"default 6..A", Rank6, 36},
		{"full 2..A", Rank2, 52},
		{"short 9..A", Rank9, 24},
		{"invalid falls back to default", Rank(99), 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set := NewSet(tt.lowest)
			assert.Len(t, set, tt.size)

			seen := make(map[Card]bool, len(set))
			for _, c := range set {
				assert.False(t, seen[c], "duplicate card %s", c)
				seen[c] = true
			}
		})
	}
}

func TestCard_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank     Rank
		expected int
	}{
		{Rank6, 6},
		{Rank7, 7},
		{Rank8, 8},
		{Rank9, 0},
		{Rank10, 10},
		{RankJ, 2},
		{RankQ, 3},
		{RankK, 4},
		{RankA, 11},
		{Rank2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			t.Parallel()
			for _, s := range Suits {
				assert.Equal(t, tt.expected, Card{Suit: s, Rank: tt.rank}.Value())
			}
		})
	}
}

func TestCard_QueenPenalty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, Card{Suit: Club, Rank: RankQ}.QueenPenalty())
	assert.Equal(t, 20, Card{Suit: Diamond, Rank: RankQ}.QueenPenalty())
	assert.Equal(t, 20, Card{Suit: Heart, Rank: RankQ}.QueenPenalty())
	assert.Equal(t, 40, Card{Suit: Spade, Rank: RankQ}.QueenPenalty())
}

func TestCard_Effect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card     string
		expected Effect
	}{
		{"10H", EffectReverse},
		{"7C", EffectDrawTwo},
		{"KS", EffectDrawFive},
		{"KH", EffectDrawFive},
		{"KC", EffectNone},
		{"KD", EffectNone},
		{"QD", EffectChooseSuit},
		{"AS", EffectSkip},
		{"6H", EffectCoverSix},
		{"8C", EffectNone},
		{"9D", EffectNone},
		{"JS", EffectNone},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MustParse(tt.card).Effect())
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Card
		hasError bool
	}{
		{"QS", Card{Suit: Spade, Rank: RankQ}, false},
		{"10h", Card{Suit: Heart, Rank: Rank10}, false},
		{"th", Card{Suit: Heart, Rank: Rank10}, false},
		{"6♣", Card{Suit: Club, Rank: Rank6}, false},
		{" ad ", Card{Suit: Diamond, Rank: RankA}, false},
		{"Q", Card{}, true},
		{"1S", Card{}, true},
		{"QX", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCard_Strings(t *testing.T) {
	t.Parallel()

	c := Card{Suit: Spade, Rank: RankQ}
	assert.Equal(t, "Q♠", c.String())
	assert.Equal(t, "Queen of Spade", c.Name())
	assert.Equal(t, "10 of Heart", Card{Suit: Heart, Rank: Rank10}.Name())
	assert.True(t, Heart.IsRed())
	assert.False(t, Club.IsRed())
	assert.False(t, Suit(7).Valid())
}
