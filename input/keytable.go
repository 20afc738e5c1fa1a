package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-painter/editor"
)

// KeyEntry describes the intent a key produces
type KeyEntry struct {
	Intent editor.IntentType
	Dx, Dy int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Mode-independent special keys (Ctrl+*, Tab, Esc, F10)
	SpecialKeys map[tcell.Key]KeyEntry

	// Ctrl+letter for terminals that report it as a rune with ModCtrl
	CtrlRunes map[rune]KeyEntry

	// Paint mode rune bindings
	PaintRunes map[rune]KeyEntry

	// Arrow directions
	Arrows map[tcell.Key]KeyEntry

	// F1-F9 store the clipboard into slot N, Shift clears the slot
	StashKeys map[tcell.Key]int
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyTab:    {Intent: editor.IntentNextMode},
			tcell.KeyEscape: {Intent: editor.IntentCancel},
			tcell.KeyCtrlQ:  {Intent: editor.IntentQuit},
			tcell.KeyCtrlS:  {Intent: editor.IntentSave},
			tcell.KeyCtrlC:  {Intent: editor.IntentCopy},
			tcell.KeyCtrlV:  {Intent: editor.IntentPaste},
			tcell.KeyCtrlF:  {Intent: editor.IntentFlood},
			tcell.KeyF10:    {Intent: editor.IntentStashList},
		},

		CtrlRunes: map[rune]KeyEntry{
			'q': {Intent: editor.IntentQuit},
			's': {Intent: editor.IntentSave},
			'c': {Intent: editor.IntentCopy},
			'v': {Intent: editor.IntentPaste},
			'f': {Intent: editor.IntentFlood},
		},

		PaintRunes: map[rune]KeyEntry{
			'=': {Intent: editor.IntentAdjustFg, Dx: 1},
			'-': {Intent: editor.IntentAdjustFg, Dx: -1},
			'+': {Intent: editor.IntentAdjustBg, Dx: 1},
			'_': {Intent: editor.IntentAdjustBg, Dx: -1},
		},

		Arrows: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    {Dy: -1},
			tcell.KeyDown:  {Dy: 1},
			tcell.KeyLeft:  {Dx: -1},
			tcell.KeyRight: {Dx: 1},
		},

		StashKeys: map[tcell.Key]int{
			tcell.KeyF1: 1, tcell.KeyF2: 2, tcell.KeyF3: 3,
			tcell.KeyF4: 4, tcell.KeyF5: 5, tcell.KeyF6: 6,
			tcell.KeyF7: 7, tcell.KeyF8: 8, tcell.KeyF9: 9,
		},
	}
}
