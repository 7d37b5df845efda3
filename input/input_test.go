package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"w", runeKey('w'), IntentThrustForward},
		{"up", specialKey(tcell.KeyUp), IntentThrustForward},
		{"s", runeKey('s'), IntentThrustReverse},
		{"down", specialKey(tcell.KeyDown), IntentThrustReverse},
		{"a", runeKey('a'), IntentRotateLeft},
		{"left", specialKey(tcell.KeyLeft), IntentRotateLeft},
		{"d", runeKey('d'), IntentRotateRight},
		{"right", specialKey(tcell.KeyRight), IntentRotateRight},
		{"space", runeKey(' '), IntentPing},
		{"f", runeKey('f'), IntentToggleFAD},
		{"c", runeKey('c'), IntentCycleRoute},
		{"q", runeKey('q'), IntentQuit},
		{"esc", specialKey(tcell.KeyEscape), IntentQuit},
		{"ctrl+c", specialKey(tcell.KeyCtrlC), IntentQuit},
		{"unbound", runeKey('z'), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHoldLatch(t *testing.T) {
	c, err := NewController(Config{HoldTicks: 3})
	if err != nil {
		t.Fatal(err)
	}

	if it := c.HandleKey(runeKey('w')); it != IntentThrustForward {
		t.Fatalf("HandleKey = %v", it)
	}
	c.HandleKey(runeKey('d'))

	for tick := 0; tick < 3; tick++ {
		thrust, rotate := c.Axes()
		if thrust != 1 || rotate != 1 {
			t.Fatalf("tick %d: axes (%v, %v), want (1, 1)", tick, thrust, rotate)
		}
		c.Advance()
	}

	if thrust, rotate := c.Axes(); thrust != 0 || rotate != 0 {
		t.Errorf("after hold expired: axes (%v, %v), want (0, 0)", thrust, rotate)
	}
}

func TestAutoRepeatExtendsHold(t *testing.T) {
	c, _ := NewController(Config{HoldTicks: 2})

	c.HandleKey(runeKey('a'))
	c.Advance()
	c.HandleKey(runeKey('a'))
	c.Advance()

	if _, rotate := c.Axes(); rotate != -1 {
		t.Errorf("rotate = %v after repeat, want -1", rotate)
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	c, _ := NewController(DefaultConfig())

	c.HandleKey(runeKey('w'))
	c.HandleKey(runeKey('s'))
	if thrust, _ := c.Axes(); thrust != -1 {
		t.Errorf("thrust = %v, want -1 after reverse press", thrust)
	}

	c.Release()
	if thrust, rotate := c.Axes(); thrust != 0 || rotate != 0 {
		t.Errorf("axes after Release = (%v, %v)", thrust, rotate)
	}
}

func TestDiscreteIntentsNotLatched(t *testing.T) {
	c, _ := NewController(DefaultConfig())

	if it := c.HandleKey(runeKey(' ')); it != IntentPing {
		t.Errorf("HandleKey(space) = %v, want ping", it)
	}
	if thrust, rotate := c.Axes(); thrust != 0 || rotate != 0 {
		t.Errorf("ping moved the axes: (%v, %v)", thrust, rotate)
	}
}

func TestBindingOverrides(t *testing.T) {
	c, err := NewController(Config{
		HoldTicks: 1,
		Bindings: map[string]string{
			"k":     "thrust",
			"w":     "none",
			"space": "cycle_route",
			"enter": "ping",
		},
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{runeKey('k'), IntentThrustForward},
		{runeKey('w'), IntentNone},
		{runeKey(' '), IntentCycleRoute},
		{specialKey(tcell.KeyEnter), IntentPing},
		{runeKey('s'), IntentThrustReverse},
	}
	for _, tt := range tests {
		if got := c.table.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig(map[string]string{"x": "warp"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action error = %v", err)
	}
	if _, err := LoadKeyConfig(map[string]string{"pagedown": "ping"}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown key error = %v", err)
	}
}

func TestIntentNames(t *testing.T) {
	for name, it := range actionRegistry {
		if it.String() != name {
			t.Errorf("%v.String() = %q, want %q", it, it.String(), name)
		}
	}
}
