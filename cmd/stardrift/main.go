package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nightwell/stardrift/audio"
	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/engine"
	"github.com/nightwell/stardrift/render"
)

var (
	envFileFlag = flag.String("env", "", "Path to a .env file with STARDRIFT_* overrides")
	seedFlag    = flag.Int64("seed", 0, "Random seed for entity placement (0 = clock-derived)")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack so the
	// trace is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARDRIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()

	// Audio is optional: run silent when no device is available
	var sounds engine.Sounder = engine.NopSounder{}
	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err == nil {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	loop, err := engine.NewLoop(cfg, rng, render.New(screen, cfg), sounds)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer loop.Stop()

	// The poller goroutine feeds terminal events to the loop; PollEvent
	// returns nil once the screen is finalized, which closes the channel
	// and unblocks Run.
	events := make(chan tcell.Event, 128)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	loop.Run(events)
}
