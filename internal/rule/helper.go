package rule

import "github.com/palemoky/game-101/internal/card"

// FirstLegal 按手牌顺序返回第一张能出的牌
func FirstLegal(hand []card.Card, t Table) (card.Card, bool) {
	for _, c := range hand {
		if IsLegal(c, t) {
			return c, true
		}
	}
	return card.Card{}, false
}

// LegalCards 返回手牌中所有能出的牌，保持原顺序
func LegalCards(hand []card.Card, t Table) []card.Card {
	var result []card.Card
	for _, c := range hand {
		if IsLegal(c, t) {
			result = append(result, c)
		}
	}
	return result
}

// MostHeldSuit returns the suit the hand holds most of, ties going to the earlier suit in
// enumeration order. ok is false for an empty hand.
func MostHeldSuit(hand []card.Card) (card.Suit, bool) {
	if len(hand) == 0 {
		return card.Club, false
	}

	counts := card.CountBySuit(hand)
	best := card.Suits[0]
	for _, s := range card.Suits[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best, true
}
