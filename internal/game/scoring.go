package game

import "github.com/palemoky/game-101/internal/card"

const queenFinishMultiplier = 2

// HandPenalty is what a losing hand costs before the round multiplier: the queen suit
// penalties when the hand holds only Queens, the end-game values otherwise.
func HandPenalty(hand []card.Card) int {
	sum := 0
	if card.AllQueens(hand) {
		for _, c := range hand {
			sum += c.QueenPenalty()
		}
		return sum
	}
	for _, c := range hand {
		sum += c.Value()
	}
	return sum
}

// scoreRound 结算：以 Q 收尾时输家翻倍，赢家减去该 Q 的花色罚分，最低为 0。
// 输家全是 Q 时同时适用 Q 罚分与翻倍。
func (e *Engine) scoreRound(winner *Player) *RoundSummary {
	finishing := e.deck.TopCard()

	multiplier, winnerAdjustment := 1, 0
	if finishing.IsQueen() {
		multiplier = queenFinishMultiplier
		winnerAdjustment = -finishing.QueenPenalty()
	}

	deltas := make(map[string]int, len(e.players))
	for _, p := range e.players {
		if p == winner {
			continue
		}
		delta := HandPenalty(p.hand) * multiplier
		e.scores[p.ID] += delta
		deltas[p.ID] = delta
	}

	prev := e.scores[winner.ID]
	e.scores[winner.ID] = max(prev+winnerAdjustment, 0)
	deltas[winner.ID] = e.scores[winner.ID] - prev

	return &RoundSummary{
		Round:         e.round,
		Winner:        winner,
		FinishingCard: finishing,
		Scores:        cloneScores(e.scores),
		Deltas:        deltas,
	}
}
