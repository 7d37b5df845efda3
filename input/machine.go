package input

import (
	"github.com/gdamore/tcell/v2"
)

// Controller turns key events into per-tick axes and one-shot commands
type Controller struct {
	table *KeyTable
	latch holdLatch
}

// NewController builds a controller from config, overrides are merged over the defaults
func NewController(cfg Config) (*Controller, error) {
	table := DefaultKeyTable()
	if len(cfg.Bindings) > 0 {
		override, err := LoadKeyConfig(cfg.Bindings)
		if err != nil {
			return nil, err
		}
		table.Merge(override)
	}

	ticks := cfg.HoldTicks
	if ticks < 1 {
		ticks = 1
	}
	return &Controller{
		table: table,
		latch: holdLatch{ticks: ticks},
	}, nil
}

// HandleKey resolves ev and latches continuous intents
// Returns the intent so callers can act on discrete commands
func (c *Controller) HandleKey(ev *tcell.EventKey) IntentType {
	it := c.table.Lookup(ev)
	if it.Continuous() {
		c.latch.press(it)
	}
	return it
}

// Axes returns the current thrust and rotate inputs in [-1, 1]
// Rotate is right minus left, positive turns clockwise
func (c *Controller) Axes() (thrust, rotate float64) {
	if c.latch.active(IntentThrustForward) {
		thrust++
	}
	if c.latch.active(IntentThrustReverse) {
		thrust--
	}
	if c.latch.active(IntentRotateRight) {
		rotate++
	}
	if c.latch.active(IntentRotateLeft) {
		rotate--
	}
	return thrust, rotate
}

// Advance ages the hold latch by one tick
func (c *Controller) Advance() {
	c.latch.advance()
}

// Release drops every held key, used on focus loss or resize
func (c *Controller) Release() {
	c.latch.clear()
}
