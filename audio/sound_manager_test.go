package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/deepecho/sonar"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayPing([]sonar.Pong{{Delay: 0.1}})
	sm.PlayCollision()
	sm.PlayFinish()
	sm.SetFAD(1, true)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("manager reports initialized without Initialize")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Initialize = %v, want ErrDisabled", err)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail without an audio device, the game runs muted then
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.SetFAD(0.5, true)
	sm.PlayCollision()
	sm.Cleanup()
}
