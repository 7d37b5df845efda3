package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable resolves key events to intents
// Runes holds printable keys, Keys holds tcell special keys
type KeyTable struct {
	Runes map[rune]IntentType
	Keys  map[tcell.Key]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			'w': IntentThrustForward,
			's': IntentThrustReverse,
			'a': IntentRotateLeft,
			'd': IntentRotateRight,
			' ': IntentPing,
			'f': IntentToggleFAD,
			'c': IntentCycleRoute,
			'q': IntentQuit,
		},
		Keys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentThrustForward,
			tcell.KeyDown:   IntentThrustReverse,
			tcell.KeyLeft:   IntentRotateLeft,
			tcell.KeyRight:  IntentRotateRight,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}

// Lookup returns the intent bound to ev, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Merge applies sparse overrides on top of kt, IntentNone entries unbind
func (kt *KeyTable) Merge(override *KeyTable) {
	for r, it := range override.Runes {
		if it == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = it
	}
	for k, it := range override.Keys {
		if it == IntentNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = it
	}
}
