// Package rule holds the move-legality predicate shared by the deck and by bot controls.
package rule

import "github.com/palemoky/game-101/internal/card"

// Table 出牌判定所需的桌面状态快照（值类型，不持有牌堆）
type Table struct {
	Top          card.Card
	SuitOverride *card.Suit // Q 指定的花色
	SixToCover   *card.Card // 需要盖住的 6
}

// HasSuitOverride 是否有指定花色
func (t Table) HasSuitOverride() bool {
	return t.SuitOverride != nil
}

// HasSixToCover 是否有待盖的 6
func (t Table) HasSixToCover() bool {
	return t.SixToCover != nil
}

// IsLegal reports whether c may be played on t. Precedence: suit override, then an
// open six, then the top card.
func IsLegal(c card.Card, t Table) bool {
	if t.SuitOverride != nil {
		return c.Suit == *t.SuitOverride || c.Rank == card.RankQ
	}

	if t.SixToCover != nil {
		return c.Rank == card.Rank6 || c.Suit == t.SixToCover.Suit
	}

	return c.Rank == t.Top.Rank || c.Suit == t.Top.Suit
}
