package config

import (
	"fmt"

	"github.com/younwookim/connectfour/internal/application/state"
)

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Start      state.Code       `json:"start"`
	Players    PlayersConfig    `json:"players"`
	Kinematics KinematicsConfig `json:"kinematics"`
	Board      BoardConfig      `json:"board"`
	Computer   ComputerConfig   `json:"computer"`
	Training   TrainingConfig   `json:"training"`
}

type DisplayConfig struct {
	Title        string  `json:"title"`
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        float64 `json:"scale"` // window scaling factor
	Framerate    int     `json:"framerate"`
}

type PlayersConfig struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type KinematicsConfig struct {
	SymmetricClamp bool    `json:"symmetricClamp"`
	TitleSpeed     float64 `json:"titleSpeed"` // pixels/frame
	TitleAccel     float64 `json:"titleAccel"` // pixels/frame²
}

type BoardConfig struct {
	Columns              int     `json:"columns"`
	Rows                 int     `json:"rows"`
	CellSize             int     `json:"cellSize"`
	DiscGravity          float64 `json:"discGravity"`          // pixels/frame²
	DiscTerminalVelocity float64 `json:"discTerminalVelocity"` // pixels/frame
}

type ComputerConfig struct {
	Depth         map[state.Code]int `json:"depth"` // search plies per difficulty tier
	ThinkFrames   int                `json:"thinkFrames"`
	LoadingFrames int                `json:"loadingFrames"`
	Seed          uint64             `json:"seed"` // 0 = seed from the clock
	Names         [2]string          `json:"names"`
}

// DepthFor returns the search depth of a difficulty tier, or 1.
func (c ComputerConfig) DepthFor(tier state.Code) int {
	if d, ok := c.Depth[tier]; ok && d > 0 {
		return d
	}
	return 1
}

type TrainingConfig struct {
	RestartFrames int `json:"restartFrames"`
}

// Validate reports the first setting that cannot drive the game.
func (s *SettingsConfig) Validate() error {
	switch {
	case s.Display.ScreenWidth <= 0 || s.Display.ScreenHeight <= 0:
		return fmt.Errorf("display: invalid screen size %dx%d", s.Display.ScreenWidth, s.Display.ScreenHeight)
	case s.Display.Scale <= 0:
		return fmt.Errorf("display: scale must be positive, got %v", s.Display.Scale)
	case s.Board.Columns <= 0 || s.Board.Rows <= 0:
		return fmt.Errorf("board: invalid grid %dx%d", s.Board.Columns, s.Board.Rows)
	case s.Board.CellSize <= 0:
		return fmt.Errorf("board: cellSize must be positive, got %d", s.Board.CellSize)
	}
	for tier := range s.Computer.Depth {
		if !tier.IsDifficulty() {
			return fmt.Errorf("computer: depth keyed by %v, want a difficulty tier", tier)
		}
	}
	return nil
}
