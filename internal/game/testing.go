//go:build !production

package game

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/game-101/internal/card"
)

// MockControl 可编排的 Control mock
type MockControl struct {
	mock.Mock
}

func (m *MockControl) MakeMove(ctx GameContext) (card.Card, bool) {
	args := m.Called(ctx)
	return args.Get(0).(card.Card), args.Bool(1)
}

func (m *MockControl) ChooseSuit(ctx GameContext) card.Suit {
	args := m.Called(ctx)
	return args.Get(0).(card.Suit)
}
