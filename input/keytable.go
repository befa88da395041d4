package input

import "github.com/lixenwraith/counter/terminal"

// KeyTable maps keys to intents
// Named keys and printable runes are looked up separately, runes are case-sensitive
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[terminal.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the counter bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]IntentType{
			terminal.KeyRight: IntentIncrement,
			terminal.KeyLeft:  IntentDecrement,
			terminal.KeyCtrlC: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'j': IntentIncrement,
			'k': IntentDecrement,
			'q': IntentQuit,
			'Q': IntentQuit,
		},
	}
}

// QuitKeyTable returns a table that only binds quit
func QuitKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]IntentType{
			terminal.KeyCtrlC: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
		},
	}
}

// chordMods are modifiers that turn a rune into a different chord
const chordMods = terminal.ModAlt | terminal.ModCtrl

// Lookup returns the intent bound to a key event, IntentNone for anything else
// Rune bindings match only without Alt or Ctrl held; press/release filtering is the caller's concern
func (t *KeyTable) Lookup(ev terminal.Event) IntentType {
	if ev.Type != terminal.EventKey {
		return IntentNone
	}
	if ev.Key == terminal.KeyRune {
		if ev.Mod&chordMods != 0 {
			return IntentNone
		}
		return t.Runes[ev.Rune]
	}
	return t.SpecialKeys[ev.Key]
}

// BindKey binds or rebinds a named key, IntentNone removes the binding
func (t *KeyTable) BindKey(k terminal.Key, intent IntentType) {
	if t.SpecialKeys == nil {
		t.SpecialKeys = make(map[terminal.Key]IntentType)
	}
	if intent == IntentNone {
		delete(t.SpecialKeys, k)
		return
	}
	t.SpecialKeys[k] = intent
}

// BindRune binds or rebinds a printable rune, IntentNone removes the binding
func (t *KeyTable) BindRune(r rune, intent IntentType) {
	if t.Runes == nil {
		t.Runes = make(map[rune]IntentType)
	}
	if intent == IntentNone {
		delete(t.Runes, r)
		return
	}
	t.Runes[r] = intent
}
