package editor

// Mode selects which intents the session accepts
type Mode uint8

const (
	ModePaint Mode = iota
	ModeText
	numModes
)

// Next returns the following mode of the cycle
func (m Mode) Next() Mode {
	return (m + 1) % numModes
}

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "Paint"
	case ModeText:
		return "Text Entry"
	}
	return "Unknown"
}
