//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/game-101/internal/game"
	"github.com/palemoky/game-101/internal/storage"
)

// MockRecorder 排行榜 mock
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordRound(ctx context.Context, summary *game.RoundSummary, players []*game.Player) error {
	args := m.Called(ctx, summary, players)
	return args.Error(0)
}

func (m *MockRecorder) GetLeaderboard(ctx context.Context, limit int) ([]*storage.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.LeaderboardEntry), args.Error(1)
}
