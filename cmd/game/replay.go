package main

import (
	"errors"
	"log"

	"github.com/younwookim/connectfour/internal/application/flow"
	"github.com/younwookim/connectfour/internal/application/nav"
	"github.com/younwookim/connectfour/internal/application/replay"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/gfx"
)

// replayInput feeds recorded frames to the game, then stays idle.
type replayInput struct {
	replayer *replay.Replayer
	done     bool
}

func newReplayInput(r *replay.Replayer) *replayInput {
	return &replayInput{replayer: r}
}

func (r *replayInput) GetInput() system.InputState {
	in, ok := r.replayer.GetInput()
	if !ok && !r.done {
		r.done = true
		log.Printf("Replay finished after %d frames", r.replayer.CurrentFrame())
	}
	return in
}

// HeadlessResult summarizes a replay run without a window.
type HeadlessResult struct {
	Frames      int
	Quit        bool
	Stack       []string
	Transitions []nav.Transition
}

// RunHeadless drives the screens with the recorded input, drawing every
// frame onto an off-screen canvas. It stops at the end of the recording or
// when the driver quits. A non-zero recorded seed replaces the configured
// one. onTransition may be nil.
func RunHeadless(kit *ui.Kit, data replay.ReplayData, onTransition func(nav.Transition)) (HeadlessResult, error) {
	var res HeadlessResult
	r := replay.NewReplayer(data)
	if r.Seed() != 0 {
		kit.Settings.Computer.Seed = r.Seed()
	}

	d, err := flow.NewDriver(kit, r.Start())
	if err != nil {
		return res, err
	}
	d.OnTransition = func(t nav.Transition) {
		res.Transitions = append(res.Transitions, t)
		if onTransition != nil {
			onTransition(t)
		}
	}

	canvas := gfx.NewCanvas(kit.ScreenSize())
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		res.Frames++

		err := d.Update(in)
		if errors.Is(err, nav.ErrQuit) {
			res.Quit = true
			break
		}
		if err != nil {
			return res, err
		}
		d.Draw(canvas)
	}

	res.Stack = d.Stack()
	return res, nil
}
