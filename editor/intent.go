package editor

import "github.com/lixenwraith/glyph-painter/core"

// IntentType discriminates editing actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Session
	IntentNextMode // Tab
	IntentCancel   // Esc
	IntentQuit     // Ctrl+Q
	IntentSave     // Ctrl+S

	// Pointer
	IntentHover       // motion without buttons
	IntentPaint       // left button on the canvas, paint mode
	IntentPickGlyph   // left button on the glyph picker
	IntentPlaceCursor // left button, text mode
	IntentFlood       // Ctrl+F, middle button
	IntentEyedrop     // right button

	// Selection, paint mode
	IntentBeginSelect
	IntentUpdateSelect
	IntentEndSelect

	// Keyboard navigation and colors
	IntentMovePicker // arrows, paint mode
	IntentMoveCursor // arrows, text mode
	IntentAdjustFg   // Shift+Left/Right, = and -
	IntentAdjustBg   // Shift+Up/Down, + and _

	// Editing
	IntentTypeChar // printable rune, text mode
	IntentErase    // Backspace, Delete
	IntentResize

	// Clipboard
	IntentCopy
	IntentPaste
	IntentStashStore  // F1-F9
	IntentStashLoad   // Alt+1-9
	IntentStashDelete // Shift+F1-F9
	IntentStashList   // F10
)

// Intent is a decoded operator action
// Pure data, produced by the input decoder and consumed by Session.Apply
type Intent struct {
	Type IntentType

	// At is the pointer cell for mouse-originated intents; Pointer marks it valid
	At      core.Point
	Pointer bool

	Dx, Dy     int  // picker, cursor and resize steps; color delta in Dx
	Char       rune // typed character
	ClearBlack bool // erase resets the background to black
	Slot       int  // stash slot 1-9
}

var intentNames = [...]string{
	IntentNone:         "None",
	IntentNextMode:     "NextMode",
	IntentCancel:       "Cancel",
	IntentQuit:         "Quit",
	IntentSave:         "Save",
	IntentHover:        "Hover",
	IntentPaint:        "Paint",
	IntentPickGlyph:    "PickGlyph",
	IntentPlaceCursor:  "PlaceCursor",
	IntentFlood:        "Flood",
	IntentEyedrop:      "Eyedrop",
	IntentBeginSelect:  "BeginSelect",
	IntentUpdateSelect: "UpdateSelect",
	IntentEndSelect:    "EndSelect",
	IntentMovePicker:   "MovePicker",
	IntentMoveCursor:   "MoveCursor",
	IntentAdjustFg:     "AdjustFg",
	IntentAdjustBg:     "AdjustBg",
	IntentTypeChar:     "Type",
	IntentErase:        "Erase",
	IntentResize:       "Resize",
	IntentCopy:         "Copy",
	IntentPaste:        "Paste",
	IntentStashStore:   "StashStore",
	IntentStashLoad:    "StashLoad",
	IntentStashDelete:  "StashDelete",
	IntentStashList:    "StashList",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}
