package game

import (
	"fmt"
	"slices"

	"github.com/palemoky/game-101/internal/apperrors"
	"github.com/palemoky/game-101/internal/card"
	"github.com/palemoky/game-101/internal/logger"
)

// DeckView is the read-only face of the deck exposed to callers.
type DeckView interface {
	TopCard() card.Card
	SuitOverride() (card.Suit, bool)
	SixToCover() (card.Card, bool)
	IsMoveLegal(c card.Card) bool
	DrawPileSize() int
	DiscardPileSize() int
	Size() int
}

// deckView 只暴露查询方法，调用方拿不到 *Deck
type deckView struct {
	d *Deck
}

func (v deckView) TopCard() card.Card { return v.d.TopCard() }
func (v deckView) SuitOverride() (card.Suit, bool) { return v.d.SuitOverride() }
func (v deckView) SixToCover() (card.Card, bool) { return v.d.SixToCover() }
func (v deckView) IsMoveLegal(c card.Card) bool { return v.d.IsMoveLegal(c) }
func (v deckView) DrawPileSize() int { return v.d.DrawPileSize() }
func (v deckView) DiscardPileSize() int { return v.d.DiscardPileSize() }
func (v deckView) Size() int { return v.d.Size() }

// Engine 一场比赛的规则引擎，跨局累计分数
type Engine struct {
	players   []*Player
	current   int
	direction int
	deck      *Deck
	scores    map[string]int
	handSize  int

	pendingSuitChoice *Player

	round     int
	started   bool
	roundOver bool
}

// NewEngine creates an engine for players in seating order. Call StartNewRound to deal.
func NewEngine(players []*Player, opts ...Option) (*Engine, error) {
	if len(players) < 2 {
		return nil, apperrors.ErrNotEnoughPlayers
	}
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: player %d is nil", apperrors.ErrNotEnoughPlayers, i)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	deck := NewDeck(o.lowestRank, o.rng)
	if limit := MaxPlayers(o.handSize, o.lowestRank); len(players) > limit {
		return nil, fmt.Errorf("%w: %d players x %d cards from %d, at most %d seats",
			apperrors.ErrTooManyPlayers, len(players), o.handSize, deck.Size(), limit)
	}

	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p.ID] = 0
	}

	return &Engine{
		players:   slices.Clone(players),
		direction: 1,
		deck:      deck,
		scores:    scores,
		handSize:  o.handSize,
	}, nil
}

// StartNewRound resets the deck, clears every hand and deals in seating order.
func (e *Engine) StartNewRound() error {
	e.deck.Reset()
	for _, p := range e.players {
		p.clearHand()
	}
	e.direction = 1
	e.pendingSuitChoice = nil
	e.current = 0
	e.round++
	e.started = true
	e.roundOver = false

	for range e.handSize {
		for _, p := range e.players {
			c, err := e.deck.Draw()
			if err != nil {
				logger.LogError("round %d: deal failed: %v", e.round, err)
				return fmt.Errorf("deal: %w", err)
			}
			p.addCards(c)
		}
	}

	logger.LogInfo("round %d started: %d players, top card %s", e.round, len(e.players), e.deck.TopCard())
	return nil
}

// State 当前状态
func (e *Engine) State() State {
	switch {
	case !e.started:
		return StateNotStarted
	case e.roundOver:
		return StateRoundEnded
	case e.pendingSuitChoice != nil:
		return StateAwaitingSuitChoice
	default:
		return StateAwaitingPlay
	}
}

// checkCanAct 只有在 AwaitingPlay 状态才允许推进对局
func (e *Engine) checkCanAct() error {
	switch e.State() {
	case StateNotStarted:
		return apperrors.ErrRoundNotStarted
	case StateRoundEnded:
		return apperrors.ErrRoundEnded
	case StateAwaitingSuitChoice:
		return apperrors.ErrAwaitingSuitChoice
	}
	return nil
}

// PlayTurn plays c from the current player's hand. The caller is expected to have checked
// IsMoveLegal; an illegal card is rejected and nothing changes. A non-nil summary means the
// card ended the round.
func (e *Engine) PlayTurn(c card.Card) (*RoundSummary, error) {
	if err := e.checkCanAct(); err != nil {
		return nil, err
	}

	p := e.CurrentPlayer()
	if !p.HasCard(c) {
		return nil, fmt.Errorf("%w: %s does not hold %s", apperrors.ErrCardNotInHand, p.Name, c)
	}
	if !e.deck.IsMoveLegal(c) {
		return nil, fmt.Errorf("%w: %s on %s", apperrors.ErrIllegalMove, c, e.deck.TopCard())
	}

	p.removeCard(c)
	if err := e.deck.PlayCard(c); err != nil {
		p.addCards(c)
		return nil, err
	}
	logger.LogDebug("round %d: %s played %s (%s)", e.round, p.Name, c, c.Effect())

	suspend, err := applyEffect(e, c)
	if err != nil {
		logger.LogError("round %d: effect %s failed: %v", e.round, c.Effect(), err)
		return nil, err
	}

	if p.HandSize() == 0 {
		return e.endRound(p), nil
	}
	if !suspend {
		e.advance()
	}
	return nil, nil
}

// SetCurrentSuitOverride answers a pending suit choice. It does not advance the turn; the
// caller resumes play with PassTurnToTheNextPlayer.
func (e *Engine) SetCurrentSuitOverride(s card.Suit) error {
	if !s.Valid() {
		return apperrors.ErrInvalidSuit
	}
	if e.pendingSuitChoice == nil {
		return apperrors.ErrNoSuitChoice
	}

	e.deck.SetSuitOverride(s)
	logger.LogDebug("round %d: %s chose %s", e.round, e.pendingSuitChoice.Name, s.Name())
	e.pendingSuitChoice = nil
	return nil
}

// PassTurnToTheNextPlayer moves the turn one seat in the current direction.
func (e *Engine) PassTurnToTheNextPlayer() error {
	if err := e.checkCanAct(); err != nil {
		return err
	}
	e.advance()
	return nil
}

func (e *Engine) advance() {
	e.current = e.seatAfter(e.current)
}

func (e *Engine) seatAfter(seat int) int {
	n := len(e.players)
	return ((seat+e.direction)%n + n) % n
}

// AddCardsToPlayer draws n cards into p's hand.
func (e *Engine) AddCardsToPlayer(p *Player, n int) error {
	if !slices.Contains(e.players, p) {
		return apperrors.ErrUnknownPlayer
	}
	if !e.started {
		return apperrors.ErrRoundNotStarted
	}

	drawn, err := e.deck.DrawN(n)
	p.addCards(drawn...)
	if err != nil {
		logger.LogError("round %d: dealing %d to %s: %v", e.round, n, p.Name, err)
		e.voidRound()
		return fmt.Errorf("deal %d cards to %s: %w", n, p.Name, err)
	}
	return nil
}

// GiveCardsToNextPlayer draws n cards into the next player's hand and passes the turn to
// that player.
func (e *Engine) GiveCardsToNextPlayer(n int) error {
	if err := e.checkCanAct(); err != nil {
		return err
	}
	return e.giveCardsToNext(n)
}

func (e *Engine) giveCardsToNext(n int) error {
	if err := e.AddCardsToPlayer(e.NextPlayer(), n); err != nil {
		return err
	}
	e.advance()
	return nil
}

// voidRound ends a round whose piles ran dry. Nobody wins and scores are untouched; the
// caller starts a new round.
func (e *Engine) voidRound() {
	e.roundOver = true
	e.pendingSuitChoice = nil
	logger.LogError("round %d voided: piles exhausted", e.round)
}

func (e *Engine) endRound(winner *Player) *RoundSummary {
	e.roundOver = true
	e.pendingSuitChoice = nil

	summary := e.scoreRound(winner)
	logger.LogInfo("round %d won by %s on %s, scores %v", e.round, winner.Name, summary.FinishingCard, summary.Scores)
	return summary
}

// CurrentPlayer 当前出牌玩家
func (e *Engine) CurrentPlayer() *Player {
	return e.players[e.current]
}

// NextPlayer 按当前方向的下家
func (e *Engine) NextPlayer() *Player {
	return e.players[e.seatAfter(e.current)]
}

// PlayerToChooseSuit returns the player who owes a suit choice, or nil.
func (e *Engine) PlayerToChooseSuit() *Player {
	return e.pendingSuitChoice
}

// Players returns the players in seating order.
func (e *Engine) Players() []*Player {
	return slices.Clone(e.players)
}

// Direction is +1 for seating order and -1 when reversed.
func (e *Engine) Direction() int {
	return e.direction
}

// Round 当前局数，从 1 开始
func (e *Engine) Round() int {
	return e.round
}

// Deck returns a read-only view of the deck.
func (e *Engine) Deck() DeckView {
	return deckView{d: e.deck}
}

// IsMoveLegal 判断当前能否出这张牌
func (e *Engine) IsMoveLegal(c card.Card) bool {
	return e.deck.IsMoveLegal(c)
}

// PlayerScores returns a copy of the cumulative scores keyed by player ID.
func (e *Engine) PlayerScores() map[string]int {
	return cloneScores(e.scores)
}

// Score 某玩家的累计分数
func (e *Engine) Score(p *Player) int {
	return e.scores[p.ID]
}

// Context snapshots the table for the current player.
func (e *Engine) Context() GameContext {
	return e.ContextFor(e.CurrentPlayer())
}

// ContextFor snapshots the table as seen by p.
func (e *Engine) ContextFor(p *Player) GameContext {
	return newContext(p.hand, e.deck.Table())
}
