package replay

import "github.com/younwookim/connectfour/internal/application/state"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
	B  bool `json:"b,omitempty"`  // Back (Escape)
	Q  bool `json:"q,omitempty"`  // Quit (window close)
	C  int  `json:"c,omitempty"`  // Column key, 1-based
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      uint64       `json:"seed"`  // computer tie-break seed
	Start     state.Code   `json:"start"` // first screen
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
