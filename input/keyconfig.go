package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deepecho/parameter"
)

// Sentinel errors for binding config
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Special key names accepted in bindings
var specialKeys = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// Config controls keyboard handling
type Config struct {
	// HoldTicks is how long a continuous key stays active after a press or auto-repeat
	HoldTicks int `mapstructure:"hold_ticks"`

	// Bindings maps key names to action names, "none" unbinds
	Bindings map[string]string `mapstructure:"bindings"`
}

// DefaultConfig returns the default hold latch and no binding overrides
func DefaultConfig() Config {
	return Config{HoldTicks: parameter.InputHoldTicks}
}

// LoadKeyConfig parses binding overrides into a sparse KeyTable
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]IntentType),
		Keys:  make(map[tcell.Key]IntentType),
	}

	for keyName, action := range bindings {
		intent, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("%w: %q bound to %q", ErrUnknownAction, action, keyName)
		}

		name := strings.ToLower(keyName)
		if k, ok := specialKeys[name]; ok {
			kt.Keys[k] = intent
			continue
		}
		if r, ok := runeAliases[name]; ok {
			kt.Runes[r] = intent
			continue
		}
		// Case-sensitive single character
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = intent
			continue
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyName)
	}

	return kt, nil
}
