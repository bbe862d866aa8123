package card

import (
	"slices"
	"strings"
)

// Contains 手牌中是否有这张牌
func Contains(hand []Card, c Card) bool {
	return slices.Contains(hand, c)
}

// RemoveCard 从手牌中移除一张牌，返回新手牌和是否找到
func RemoveCard(hand []Card, c Card) ([]Card, bool) {
	idx := slices.Index(hand, c)
	if idx < 0 {
		return hand, false
	}
	return slices.Delete(hand, idx, idx+1), true
}

// CountBySuit 统计手牌中各花色的数量
func CountBySuit(hand []Card) map[Suit]int {
	counts := make(map[Suit]int)
	for _, c := range hand {
		counts[c.Suit]++
	}
	return counts
}

// AllQueens 手牌非空且全是 Q
func AllQueens(hand []Card) bool {
	if len(hand) == 0 {
		return false
	}
	for _, c := range hand {
		if !c.IsQueen() {
			return false
		}
	}
	return true
}

// Clone 返回手牌副本
func Clone(hand []Card) []Card {
	if hand == nil {
		return nil
	}
	return slices.Clone(hand)
}

// FormatHand renders cards as a space-separated list.
func FormatHand(hand []Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
