//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/game-101/internal/config"
	"github.com/palemoky/game-101/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

type SoundManager struct {
	dir     string
	wanted  bool
	mu      sync.RWMutex
	buffers map[Cue]*beep.Buffer
	enabled bool
}

func NewSoundManager(cfg config.SoundConfig) *SoundManager {
	return &SoundManager{
		dir:     cfg.Dir,
		wanted:  cfg.Enabled,
		buffers: make(map[Cue]*beep.Buffer),
	}
}

// Init opens the speaker and loads the cue files. A disabled manager stays silent and
// never touches the audio device.
func (sm *SoundManager) Init() error {
	if !sm.wanted {
		return nil
	}

	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	if err := sm.loadSoundFiles(); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

// loadSoundFiles loads every .mp3/.wav file in the sound directory
func (sm *SoundManager) loadSoundFiles() error {
	files, err := os.ReadDir(sm.dir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		cue := Cue(strings.TrimSuffix(name, filepath.Ext(name)))
		if err := sm.loadSoundFile(filepath.Join(sm.dir, name), ext, cue); err != nil {
			// Continue loading other files even if one fails
			logger.LogError("sound: skip %s: %v", name, err)
			continue
		}
	}

	return nil
}

// loadSoundFile decodes one file into a resampled stereo buffer
func (sm *SoundManager) loadSoundFile(path, ext string, cue Cue) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	sm.mu.Lock()
	sm.buffers[cue] = buffer
	sm.mu.Unlock()
	return nil
}

// Has 是否加载了某个音效
func (sm *SoundManager) Has(cue Cue) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.buffers[cue]
	return ok
}

func (sm *SoundManager) Play(cue Cue) {
	sm.mu.RLock()
	buffer, ok := sm.buffers[cue]
	enabled := sm.enabled
	sm.mu.RUnlock()

	// Silent when disabled or the cue has no file
	if !enabled || !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	sm.enabled = false
	sm.mu.Unlock()
}
