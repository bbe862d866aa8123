package game

import "github.com/palemoky/game-101/internal/card"

const (
	drawTwoCount  = 2
	drawFiveCount = 5
)

// transition applies one card effect to the engine. suspend reports that the normal
// turn advance must wait (a suit has to be chosen first).
type transition func(e *Engine, played card.Card) (suspend bool, err error)

// transitions 效果到状态转换的映射表，EffectNone 与 EffectCoverSix 只做普通轮转
// （6 的盖牌义务由 Deck.PlayCard 设置）
var transitions = map[card.Effect]transition{
	card.EffectReverse:    reverseDirection,
	card.EffectDrawTwo:    nextDrawsTwo,
	card.EffectDrawFive:   nextDrawsFiveAndSkips,
	card.EffectChooseSuit: requestSuit,
	card.EffectSkip:       skipNext,
}

func applyEffect(e *Engine, played card.Card) (bool, error) {
	t, ok := transitions[played.Effect()]
	if !ok {
		return false, nil
	}
	return t(e, played)
}

func reverseDirection(e *Engine, _ card.Card) (bool, error) {
	e.direction = -e.direction
	return false, nil
}

func nextDrawsTwo(e *Engine, _ card.Card) (bool, error) {
	return false, e.AddCardsToPlayer(e.NextPlayer(), drawTwoCount)
}

func nextDrawsFiveAndSkips(e *Engine, _ card.Card) (bool, error) {
	return false, e.giveCardsToNext(drawFiveCount)
}

func requestSuit(e *Engine, _ card.Card) (bool, error) {
	e.pendingSuitChoice = e.CurrentPlayer()
	return true, nil
}

func skipNext(e *Engine, _ card.Card) (bool, error) {
	e.advance()
	return false, nil
}
