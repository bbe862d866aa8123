package game

import (
	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/logger"
)

// PlayBotTurn lets the current player act through its Control. It does nothing for a
// human player. A bot that has to choose a suit after its own Queen does so here and the
// turn moves on.
func (e *Engine) PlayBotTurn() (*RoundSummary, error) {
	if !e.started {
		return nil, apperrors.ErrRoundNotStarted
	}
	p := e.CurrentPlayer()
	if !p.IsBot() {
		return nil, nil
	}
	if e.pendingSuitChoice == p {
		return nil, e.resolveBotSuitChoice(p)
	}
	if err := e.checkCanAct(); err != nil {
		return nil, err
	}

	if c, ok := p.control.MakeMove(e.ContextFor(p)); ok {
		return e.playBotCard(p, c)
	}

	if e.deck.sixToCover != nil {
		_, summary, err := e.CoverSix()
		if err != nil || summary != nil {
			return summary, err
		}
		if e.pendingSuitChoice == p {
			return nil, e.resolveBotSuitChoice(p)
		}
		return nil, nil
	}

	// 摸一张，能出就出，否则过
	if _, err := e.DrawForCurrentPlayer(); err != nil {
		return nil, err
	}
	if c, ok := p.control.MakeMove(e.ContextFor(p)); ok {
		return e.playBotCard(p, c)
	}
	return nil, e.PassTurnToTheNextPlayer()
}

func (e *Engine) playBotCard(p *Player, c card.Card) (*RoundSummary, error) {
	summary, err := e.PlayTurn(c)
	if err != nil || summary != nil {
		return summary, err
	}
	if e.pendingSuitChoice == p {
		return nil, e.resolveBotSuitChoice(p)
	}
	return nil, nil
}

func (e *Engine) resolveBotSuitChoice(p *Player) error {
	s := p.control.ChooseSuit(e.ContextFor(p))
	if err := e.SetCurrentSuitOverride(s); err != nil {
		return err
	}
	return e.PassTurnToTheNextPlayer()
}

// DrawForCurrentPlayer draws one card into the current hand. With a six on the table the
// player has to use CoverSix instead.
func (e *Engine) DrawForCurrentPlayer() (card.Card, error) {
	if err := e.checkCanAct(); err != nil {
		return card.Card{}, err
	}
	if e.deck.sixToCover != nil {
		return card.Card{}, apperrors.ErrMustCoverSix
	}

	c, err := e.deck.Draw()
	if err != nil {
		logger.LogError("round %d: draw failed: %v", e.round, err)
		e.voidRound()
		return card.Card{}, err
	}
	e.CurrentPlayer().addCards(c)
	return c, nil
}

// CoverSix draws for the current player until a card covers the open six, then plays it.
// drawn lists every card taken, the played one last.
func (e *Engine) CoverSix() (drawn []card.Card, summary *RoundSummary, err error) {
	if err := e.checkCanAct(); err != nil {
		return nil, nil, err
	}
	if e.deck.sixToCover == nil {
		return nil, nil, apperrors.ErrNoSixToCover
	}

	p := e.CurrentPlayer()
	for {
		c, err := e.deck.Draw()
		if err != nil {
			logger.LogError("round %d: covering six failed: %v", e.round, err)
			e.voidRound()
			return drawn, nil, err
		}
		p.addCards(c)
		drawn = append(drawn, c)

		if e.deck.IsMoveLegal(c) {
			summary, err := e.PlayTurn(c)
			return drawn, summary, err
		}
	}
}
