package game

import (
	"github.com/google/uuid"

	"github.com/palemoky/game-101/internal/card"
)

// Player 玩家。手牌只由 Engine 修改
type Player struct {
	ID   string
	Name string

	hand    []card.Card
	control Control
	isBot   bool
}

// NewBot creates a player driven by control. A nil control gets the default BotControl.
func NewBot(name string, control Control) *Player {
	if control == nil {
		control = NewBotControl(nil)
	}
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		control: control,
		isBot:   true,
	}
}

// NewHuman creates a player whose moves are supplied by the caller through PlayTurn,
// DrawForCurrentPlayer, CoverSix and SetCurrentSuitOverride.
func NewHuman(name string) *Player {
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		control: ExternalControl{},
	}
}

// playerNamespace 用于从名字派生稳定 ID
var playerNamespace = uuid.MustParse("6f1c2a4e-9d1b-4f57-8a43-101c4a7d5e21")

// StableID derives the same ID for the same name on every run, so stored stats follow a
// player between sessions.
func StableID(name string) string {
	return uuid.NewSHA1(playerNamespace, []byte(name)).String()
}

// IsBot 是否为机器人
func (p *Player) IsBot() bool {
	return p.isBot
}

// Control returns the player's decision capability.
func (p *Player) Control() Control {
	return p.control
}

// Hand returns a copy of the player's cards in hand order.
func (p *Player) Hand() []card.Card {
	return card.Clone(p.hand)
}

// HandSize 手牌张数
func (p *Player) HandSize() int {
	return len(p.hand)
}

// HasCard 手牌中是否有这张牌
func (p *Player) HasCard(c card.Card) bool {
	return card.Contains(p.hand, c)
}

func (p *Player) String() string {
	return p.Name
}

func (p *Player) addCards(cards ...card.Card) {
	p.hand = append(p.hand, cards...)
}

func (p *Player) removeCard(c card.Card) bool {
	var ok bool
	p.hand, ok = card.RemoveCard(p.hand, c)
	return ok
}

func (p *Player) clearHand() {
	p.hand = nil
}
