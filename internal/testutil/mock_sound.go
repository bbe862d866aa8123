//go:build !production

package testutil

import (
	"sync"

	"github.com/palemoky/game-101/internal/sound"
)

// RecordingSound 记录播放过的音效
type RecordingSound struct {
	mu     sync.Mutex
	played []sound.Cue
}

func (r *RecordingSound) Play(cue sound.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, cue)
}

// Played 按顺序返回播放过的音效
func (r *RecordingSound) Played() []sound.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sound.Cue(nil), r.played...)
}
