//go:build ci

package sound

import "github.com/palemoky/game-101/internal/config"

type SoundManager struct{}

func NewSoundManager(config.SoundConfig) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(Cue) {
	// No-op
}

func (sm *SoundManager) Has(Cue) bool {
	return false
}

func (sm *SoundManager) Close() {
	// No-op
}
