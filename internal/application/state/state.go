// Package state holds the screen-transition vocabulary shared by every screen
// and the navigation driver.
package state

import "fmt"

// Code is a screen-transition code. Codes are compared as members, never by
// their legacy numeric Value: MainMenu and Winner share a value but are
// different codes.
type Code uint8

const (
	Running Code = iota
	Quit
	MainMenu
	Winner
	PlayerVsPlayer
	PlayerVsComputer
	ComputerVsComputer
	TrainComputer
	EasyMode
	NormalMode
	HardMode
	MasterMode
	LoadComputer
	Back
	ComputerTurn

	numCodes
)

var codeNames = [numCodes]string{
	Running:            "RUNNING",
	Quit:               "QUIT",
	MainMenu:           "MAIN_MENU",
	Winner:             "WINNER",
	PlayerVsPlayer:     "PLAYER_VS_PLAYER",
	PlayerVsComputer:   "PLAYER_VS_COMPUTER",
	ComputerVsComputer: "COMPUTER_VS_COMPUTER",
	TrainComputer:      "TRAIN_COMPUTER",
	EasyMode:           "EASY_MODE",
	NormalMode:         "NORMAL_MODE",
	HardMode:           "HARD_MODE",
	MasterMode:         "MASTER_MODE",
	LoadComputer:       "LOAD_COMPUTER",
	Back:               "BACK",
	ComputerTurn:       "COMPUTER_TURN",
}

var codeValues = [numCodes]int{
	Running:            0,
	Quit:               -1,
	MainMenu:           1,
	Winner:             1,
	PlayerVsPlayer:     2,
	PlayerVsComputer:   3,
	ComputerVsComputer: 4,
	TrainComputer:      5,
	EasyMode:           6,
	NormalMode:         7,
	HardMode:           8,
	MasterMode:         9,
	LoadComputer:       10,
	Back:               11,
	ComputerTurn:       13,
}

// Codes returns every defined code.
func Codes() []Code {
	out := make([]Code, 0, numCodes)
	for c := Code(0); c < numCodes; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	if c >= numCodes {
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
	return codeNames[c]
}

// Value returns the legacy numeric value. It is not unique.
func (c Code) Value() int {
	if c >= numCodes {
		return -1
	}
	return codeValues[c]
}

// Valid reports whether c is a defined code.
func (c Code) Valid() bool {
	return c < numCodes
}

// IsMode reports whether c selects a game mode.
func (c Code) IsMode() bool {
	switch c {
	case PlayerVsPlayer, PlayerVsComputer, ComputerVsComputer, TrainComputer:
		return true
	}
	return false
}

// IsDifficulty reports whether c selects a difficulty tier.
func (c Code) IsDifficulty() bool {
	switch c {
	case EasyMode, NormalMode, HardMode, MasterMode:
		return true
	}
	return false
}

// IsTerminal reports whether c is a process or game signal rather than a
// navigation target.
func (c Code) IsTerminal() bool {
	switch c {
	case Quit, Running, Winner, ComputerTurn:
		return true
	}
	return false
}

// ParseCode resolves a symbolic name such as "MAIN_MENU".
func ParseCode(name string) (Code, error) {
	for c := Code(0); c < numCodes; c++ {
		if codeNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown screen code %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid screen code %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
