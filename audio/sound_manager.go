// Package audio renders sonar echoes, collisions and the steering drone with beep
package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/sonar"
)

// ErrDisabled is returned by Initialize when audio is turned off in config
var ErrDisabled = errors.New("audio disabled")

// SoundManager owns the speaker and the shared mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	fad         *fadDrone
	initialized bool
}

// NewSoundManager creates a sound manager, nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Normalize()
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the silent FAD drone
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	fad, err := newFADDrone(rate)
	if err != nil {
		return err
	}

	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.fad = fad
	sm.mixer.Add(fad.mix)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayPing plays the outgoing pulse followed by its echoes
func (sm *SoundManager) PlayPing(pongs []sonar.Pong) {
	if !sm.Initialized() {
		return
	}
	sm.play(CreatePingSound(sm.cfg, pongs))
}

// PlayCollision plays the hull impact thud
func (sm *SoundManager) PlayCollision() {
	if !sm.Initialized() {
		return
	}
	sm.play(CreateCollisionSound(sm.cfg))
}

// PlayFinish plays the arrival chord
func (sm *SoundManager) PlayFinish() {
	if !sm.Initialized() {
		return
	}
	sm.play(CreateFinishSound(sm.cfg))
}

// SetFAD retunes the steering drone for an aid bearing, ok=false silences it
func (sm *SoundManager) SetFAD(bearing float64, ok bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	pos, neg := FADGains(bearing, ok)
	speaker.Lock()
	sm.fad.set(pos*sm.cfg.MasterVolume, neg*sm.cfg.MasterVolume)
	speaker.Unlock()
}
