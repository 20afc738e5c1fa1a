package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundType identifies a feedback cue
type SoundType int

const (
	SoundClick SoundType = iota // copy, paste, stash
	SoundBell                   // save succeeded
	SoundError                  // rejected operation
)

// SoundManager plays short feedback cues through a shared mixer
// All methods are safe to call before or without successful initialization
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given linear volume [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio: speaker initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker teardown; clearing the mixer leaves it silent
	sm.initialized = false
}

// Play queues a cue
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch st {
	case SoundClick:
		s = clickSound(sampleRate)
	case SoundBell:
		s = bellSound(sampleRate)
	case SoundError:
		s = errorSound(sampleRate)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// PlayClick plays the short confirmation tick
func (sm *SoundManager) PlayClick() { sm.Play(SoundClick) }

// PlayBell plays the save chime
func (sm *SoundManager) PlayBell() { sm.Play(SoundBell) }

// PlayError plays a short error buzz
func (sm *SoundManager) PlayError() { sm.Play(SoundError) }
