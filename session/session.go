// Package session runs the fixed-rate game loop wiring ship, input, view and audio
package session

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deepecho/input"
	"github.com/lixenwraith/deepecho/physics"
	"github.com/lixenwraith/deepecho/render"
	"github.com/lixenwraith/deepecho/ship"
	"github.com/lixenwraith/deepecho/sonar"
)

// Sound is the audio feedback the loop drives, satisfied by *audio.SoundManager
type Sound interface {
	PlayPing(pongs []sonar.Pong)
	PlayCollision()
	PlayFinish()
	SetFAD(bearing float64, ok bool)
}

type nopSound struct{}

func (nopSound) PlayPing([]sonar.Pong) {}
func (nopSound) PlayCollision()        {}
func (nopSound) PlayFinish()           {}
func (nopSound) SetFAD(float64, bool)  {}

// Options configures a session, zero values disable the matching collaborator
type Options struct {
	Screen tcell.Screen // nil runs headless without input or view
	Sound  Sound
	Logger zerolog.Logger
}

// Session is the single owner of the ship while running
type Session struct {
	ship       *ship.Ship
	controller *input.Controller
	screen     tcell.Screen
	view       *render.View
	sound      Sound
	log        zerolog.Logger

	interval time.Duration
	ticks    int64
	now      func() time.Time
	quit     bool
}

// New wires ship events to logging, audio and the view
func New(s *ship.Ship, ctl *input.Controller, tuning ship.Tuning, opts Options) *Session {
	sess := &Session{
		ship:       s,
		controller: ctl,
		screen:     opts.Screen,
		sound:      opts.Sound,
		log:        opts.Logger,
		interval:   time.Duration(tuning.TickTime * float64(time.Second)),
		now:        time.Now,
	}
	if sess.sound == nil {
		sess.sound = nopSound{}
	}
	if sess.screen != nil {
		sess.view = render.NewView(sess.screen)
	}

	s.Events.Collisions.Subscribe(func(h physics.HitTest) {
		sess.log.Debug().
			Int64("tick", sess.ticks).
			Float64("nx", h.Normal.X).
			Float64("ny", h.Normal.Y).
			Msg("collision")
		sess.sound.PlayCollision()
	})
	s.Events.Finished.Subscribe(func(struct{}) {
		sess.log.Info().Int64("tick", sess.ticks).Msg("finish reached")
		sess.sound.PlayFinish()
	})
	s.Events.SegmentChanged.Subscribe(func(ref ship.SegmentRef) {
		sess.log.Debug().Int("route", ref.Route).Int("segment", ref.Segment).Msg("segment changed")
	})
	s.Events.RouteChanged.Subscribe(func(route int) {
		sess.log.Info().Int("route", route).Msg("route changed")
	})
	s.Events.Pongs.Subscribe(func(pongs []sonar.Pong) {
		sess.log.Debug().Int("pongs", len(pongs)).Msg("ping")
		if sess.view != nil {
			sess.view.AddPongs(pongs, sess.now())
		}
		sess.sound.PlayPing(pongs)
	})

	return sess
}

// Run ticks the ship until the context ends or the player quits
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	if s.screen != nil {
		go func() {
			for {
				ev := s.screen.PollEvent()
				if ev == nil {
					// Screen finalized
					return
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}()
		s.draw()
	}

	s.log.Info().Dur("interval", s.interval).Msg("session started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Int64("ticks", s.ticks).Msg("session cancelled")
			return ctx.Err()

		case ev := <-events:
			s.HandleEvent(ev)
			if s.quit {
				s.log.Info().Int64("ticks", s.ticks).Msg("session quit")
				return nil
			}

		case <-ticker.C:
			s.Step()
		}
	}
}

// HandleEvent applies one terminal event
func (s *Session) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch s.controller.HandleKey(ev) {
		case input.IntentQuit:
			s.quit = true
		case input.IntentPing:
			s.ship.Ping()
		case input.IntentToggleFAD:
			enabled := s.ship.ToggleFAD()
			s.log.Debug().Bool("enabled", enabled).Msg("fad toggled")
		case input.IntentCycleRoute:
			s.ship.CycleRoute()
		}

	case *tcell.EventResize:
		s.controller.Release()
		if s.screen != nil {
			s.screen.Sync()
		}
	}
}

// Step advances the simulation one tick and refreshes outputs
func (s *Session) Step() {
	thrust, rotate := s.controller.Axes()
	s.ship.Tick(thrust, rotate)
	s.controller.Advance()
	s.ticks++

	s.sound.SetFAD(s.ship.FADBearing())
	s.draw()
}

// Ticks returns the number of completed steps
func (s *Session) Ticks() int64 {
	return s.ticks
}

// Quit reports whether the player asked to leave
func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) draw() {
	if s.view != nil {
		s.view.Draw(s.ship, s.now())
	}
}
