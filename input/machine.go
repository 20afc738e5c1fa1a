// @focus: #input { keys, mouse }
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/editor"
)

// Machine is the input state machine
// Parses tcell events into editor intents, one intent per event
type Machine struct {
	mode     editor.Mode
	picker   core.Rect
	keyTable *KeyTable

	// Mouse state
	prevButtons tcell.ButtonMask
	selecting   bool
	pointer     core.Point
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		mode:     editor.ModePaint,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
// Called by the poll loop before each batch of events
func (m *Machine) SetMode(mode editor.Mode) {
	if mode != m.mode {
		m.selecting = false
	}
	m.mode = mode
}

// SetPicker updates the glyph picker region used to route left clicks
func (m *Machine) SetPicker(area core.Rect) {
	m.picker = area
}

// Selecting reports whether a modifier drag is in progress
func (m *Machine) Selecting() bool {
	return m.selecting
}

// Process parses a terminal event and returns an Intent
// Returns nil for events that carry no action
func (m *Machine) Process(ev tcell.Event) *editor.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *editor.Intent {
	mods := ev.Modifiers()
	key := ev.Key()

	if entry, ok := m.keyTable.SpecialKeys[key]; ok {
		return m.fromEntry(entry)
	}
	if dir, ok := m.keyTable.Arrows[key]; ok {
		return m.processArrow(dir, mods)
	}
	if slot, ok := m.keyTable.StashKeys[key]; ok {
		if mods&tcell.ModShift != 0 {
			return &editor.Intent{Type: editor.IntentStashDelete, Slot: slot}
		}
		return &editor.Intent{Type: editor.IntentStashStore, Slot: slot}
	}

	switch key {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return &editor.Intent{
			Type:       editor.IntentErase,
			ClearBlack: mods&(tcell.ModCtrl|tcell.ModAlt) != 0,
		}
	case tcell.KeyRune:
		return m.processRune(ev.Rune(), mods)
	}
	return nil
}

func (m *Machine) processArrow(dir KeyEntry, mods tcell.ModMask) *editor.Intent {
	switch {
	case mods&tcell.ModAlt != 0:
		// Right/Up grow, Left/Down shrink
		return &editor.Intent{Type: editor.IntentResize, Dx: dir.Dx, Dy: -dir.Dy}
	case mods&tcell.ModShift != 0 && m.mode == editor.ModePaint:
		if dir.Dx != 0 {
			return &editor.Intent{Type: editor.IntentAdjustFg, Dx: dir.Dx}
		}
		return &editor.Intent{Type: editor.IntentAdjustBg, Dx: -dir.Dy}
	case m.mode == editor.ModePaint:
		return &editor.Intent{Type: editor.IntentMovePicker, Dx: dir.Dx, Dy: dir.Dy}
	}
	return &editor.Intent{Type: editor.IntentMoveCursor, Dx: dir.Dx, Dy: dir.Dy}
}

func (m *Machine) processRune(r rune, mods tcell.ModMask) *editor.Intent {
	if mods&tcell.ModCtrl != 0 {
		if entry, ok := m.keyTable.CtrlRunes[r]; ok {
			return m.fromEntry(entry)
		}
		return nil
	}
	if mods&tcell.ModAlt != 0 {
		if r >= '1' && r <= '9' {
			return &editor.Intent{Type: editor.IntentStashLoad, Slot: int(r - '0')}
		}
		return nil
	}

	if m.mode == editor.ModeText {
		return &editor.Intent{Type: editor.IntentTypeChar, Char: r}
	}
	if entry, ok := m.keyTable.PaintRunes[r]; ok {
		return m.fromEntry(entry)
	}
	return nil
}

func (m *Machine) fromEntry(entry KeyEntry) *editor.Intent {
	return &editor.Intent{Type: entry.Intent, Dx: entry.Dx, Dy: entry.Dy}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *editor.Intent {
	x, y := ev.Position()
	m.pointer = core.Point{X: x, Y: y}
	buttons := ev.Buttons()
	mods := ev.Modifiers()

	pressed := buttons &^ m.prevButtons
	m.prevButtons = buttons

	leftDown := buttons&tcell.Button1 != 0

	if m.selecting {
		if leftDown {
			return m.pointerIntent(editor.IntentUpdateSelect)
		}
		m.selecting = false
		return m.pointerIntent(editor.IntentEndSelect)
	}

	switch {
	case pressed&tcell.Button1 != 0 && mods&(tcell.ModShift|tcell.ModCtrl) != 0 && m.mode == editor.ModePaint:
		m.selecting = true
		return m.pointerIntent(editor.IntentBeginSelect)

	case leftDown:
		// Press and drag both paint, like holding the brush down
		return m.pointerIntent(m.primaryIntent())

	case buttons&tcell.Button2 != 0:
		return m.pointerIntent(editor.IntentEyedrop)

	case pressed&tcell.Button3 != 0 && m.mode == editor.ModePaint:
		return m.pointerIntent(editor.IntentFlood)
	}

	return m.pointerIntent(editor.IntentHover)
}

// primaryIntent routes the left button by mode and region
func (m *Machine) primaryIntent() editor.IntentType {
	if m.mode == editor.ModeText {
		return editor.IntentPlaceCursor
	}
	if m.picker.Contains(m.pointer) {
		return editor.IntentPickGlyph
	}
	return editor.IntentPaint
}

func (m *Machine) pointerIntent(t editor.IntentType) *editor.Intent {
	return &editor.Intent{Type: t, At: m.pointer, Pointer: true}
}
