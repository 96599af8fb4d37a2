package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/connectfour/internal/application/flow"
	"github.com/younwookim/connectfour/internal/application/game"
	"github.com/younwookim/connectfour/internal/application/nav"
	"github.com/younwookim/connectfour/internal/application/replay"
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/infrastructure/config"
)

// loadConfig reads configs from dir, or from the embedded copy when dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// recordPath resolves the -record flag. "auto" picks a timestamped name.
func recordPath(flagValue string) string {
	if flagValue == "auto" {
		return replay.GenerateFilename()
	}
	return flagValue
}

func logTransition(t nav.Transition) {
	log.Printf("transition %s", t)
}

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Load configs from a directory instead of the embedded ones")
	startFlag := flag.String("start", "", "First screen (e.g., -start PLAYER_VS_COMPUTER)")
	scaleFlag := flag.Float64("scale", 0, "Window scale, overrides settings.json")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window")
	debugFlag := flag.Bool("debug", false, "Show TPS and the screen stack")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings := cfg.Settings

	start := settings.Start
	if *startFlag != "" {
		if start, err = state.ParseCode(*startFlag); err != nil {
			log.Fatalf("Invalid -start: %v", err)
		}
	}
	if *scaleFlag > 0 {
		settings.Display.Scale = *scaleFlag
	}

	recordFile := recordPath(*recordFlag)

	var data *replay.ReplayData
	var replayer *replay.Replayer
	switch {
	case *replayFlag != "":
		if data, err = replay.LoadReplay(*replayFlag); err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		settings.Computer.Seed = replayer.Seed()
		start = replayer.Start()
	case recordFile != "" && settings.Computer.Seed == 0:
		// pin the seed so the recording can be played back
		settings.Computer.Seed = uint64(time.Now().UnixNano())
	}

	kit, err := ui.NewKit(settings, cfg.Theme)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	if data != nil && *headlessFlag {
		res, err := RunHeadless(kit, *data, logTransition)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay finished: %d/%d frames, quit=%t, stack=%v",
			res.Frames, len(data.Frames), res.Quit, res.Stack)
		return
	}

	driver, err := flow.NewDriver(kit, start)
	if err != nil {
		log.Fatalf("Failed to start at %v: %v", start, err)
	}
	driver.OnTransition = logTransition

	var input game.InputSource = system.NewInputSystem()
	if replayer != nil {
		input = newReplayInput(replayer)
	}

	w, h := kit.ScreenSize()
	g := game.New(driver, input, w, h)
	g.SetDebug(*debugFlag)

	var recorder *replay.Recorder
	if recordFile != "" {
		recorder = replay.NewRecorder(settings.Computer.Seed, start)
		g.SetRecorder(recorder)
		log.Printf("Recording enabled: %s (seed: %d)", recordFile, settings.Computer.Seed)
	}

	// Set up ebiten
	scale := settings.Display.Scale
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(settings.Display.Title)
	ebiten.SetTPS(settings.Display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(recordFile); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", recordFile, recorder.FrameCount())
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
