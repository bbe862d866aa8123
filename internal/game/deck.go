package game

import (
	"math/rand/v2"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/rule"
)

// Deck 摸牌堆与弃牌堆。弃牌堆最后一张为顶牌
type Deck struct {
	lowest card.Rank
	rng    *rand.Rand

	drawPile    []card.Card
	discardPile []card.Card

	suitOverride *card.Suit
	sixToCover   *card.Card
}

// NewDeck creates an empty deck; call Reset before use.
func NewDeck(lowest card.Rank, rng *rand.Rand) *Deck {
	if !lowest.Valid() {
		lowest = card.DefaultLowestRank
	}
	if rng == nil {
		rng = defaultOptions().rng
	}
	return &Deck{lowest: lowest, rng: rng}
}

// Reset rebuilds and shuffles the full set, seeds the discard pile with one card and
// clears the suit override and the six to cover.
func (d *Deck) Reset() {
	d.drawPile = card.NewSet(d.lowest)
	d.shuffle(d.drawPile)

	seed := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	d.discardPile = []card.Card{seed}

	d.suitOverride = nil
	d.sixToCover = nil
}

func (d *Deck) shuffle(cards []card.Card) {
	d.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Size 牌组总张数
func (d *Deck) Size() int {
	return len(card.Suits) * int(card.RankA-d.lowest+1)
}

// TopCard 弃牌堆顶牌
func (d *Deck) TopCard() card.Card {
	if len(d.discardPile) == 0 {
		return card.Card{}
	}
	return d.discardPile[len(d.discardPile)-1]
}

// SuitOverride 当前 Q 指定的花色
func (d *Deck) SuitOverride() (card.Suit, bool) {
	if d.suitOverride == nil {
		return 0, false
	}
	return *d.suitOverride, true
}

// SixToCover 当前需要盖住的 6
func (d *Deck) SixToCover() (card.Card, bool) {
	if d.sixToCover == nil {
		return card.Card{}, false
	}
	return *d.sixToCover, true
}

// DrawPileSize 摸牌堆剩余张数
func (d *Deck) DrawPileSize() int {
	return len(d.drawPile)
}

// DiscardPileSize 弃牌堆张数
func (d *Deck) DiscardPileSize() int {
	return len(d.discardPile)
}

// DiscardPile returns a copy of the discard pile, bottom first.
func (d *Deck) DiscardPile() []card.Card {
	return card.Clone(d.discardPile)
}

// Table returns a snapshot that shares no memory with the deck.
func (d *Deck) Table() rule.Table {
	t := rule.Table{Top: d.TopCard()}
	if s, ok := d.SuitOverride(); ok {
		t.SuitOverride = &s
	}
	if six, ok := d.SixToCover(); ok {
		t.SixToCover = &six
	}
	return t
}

// IsMoveLegal 判断能否出这张牌
func (d *Deck) IsMoveLegal(c card.Card) bool {
	return rule.IsLegal(c, d.Table())
}

// PlayCard puts c on the discard pile, clears the suit override and arms or clears the
// six to cover.
func (d *Deck) PlayCard(c card.Card) error {
	if !d.IsMoveLegal(c) {
		return apperrors.ErrIllegalMove
	}

	d.discardPile = append(d.discardPile, c)
	d.suitOverride = nil
	if c.Rank == card.Rank6 {
		six := c
		d.sixToCover = &six
	} else {
		d.sixToCover = nil
	}
	return nil
}

// SetSuitOverride 设置指定花色
func (d *Deck) SetSuitOverride(s card.Suit) {
	d.suitOverride = &s
}

// Draw pops the draw pile, restocking it from the discard pile first when empty.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.drawPile) == 0 {
		d.restock()
	}
	if len(d.drawPile) == 0 {
		return card.Card{}, apperrors.ErrPilesExhausted
	}

	c := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return c, nil
}

// DrawN draws n cards in draw order. On error the cards drawn so far are still returned
// so the caller can keep them.
func (d *Deck) DrawN(n int) ([]card.Card, error) {
	drawn := make([]card.Card, 0, n)
	for range n {
		c, err := d.Draw()
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

// restock 除顶牌外的弃牌洗回摸牌堆
func (d *Deck) restock() {
	if len(d.discardPile) < 2 {
		return
	}
	top := d.TopCard()
	d.drawPile = append(d.drawPile, d.discardPile[:len(d.discardPile)-1]...)
	d.shuffle(d.drawPile)
	d.discardPile = []card.Card{top}
}
