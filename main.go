package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yes-or-no/audio"
	"github.com/lixenwraith/yes-or-no/config"
	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/core"
	"github.com/lixenwraith/yes-or-no/telemetry"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/yes-or-no.log and show the metrics overlay")
	watchFlag  = flag.Bool("watch", false, "Restart the session when the config file changes")
	muteFlag   = flag.Bool("mute", false, "Run without audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		// Non-fatal, run with defaults
		log.Printf("Config load failed, using defaults: %v", err)
		fmt.Fprintf(os.Stderr, "Config load failed, using defaults: %v\n", err)
		cfg = config.Default()
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Telemetry setup failed: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Printf("Telemetry shutdown failed: %v", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	var sound *audio.SoundManager
	if !*muteFlag && !cfg.Mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
			sound = nil
		} else {
			core.OnCrash(sound.Cleanup)
			defer sound.Cleanup()
		}
	}

	app := NewApp(AppDeps{
		Screen:     screen,
		Config:     cfg,
		ConfigPath: *configFlag,
		Debug:      *debugFlag,
		Sound:      sound,
	})

	var reloads <-chan string
	var watchErrs <-chan error
	if *watchFlag && *configFlag != "" {
		watcher, err := config.NewWatcher(*configFlag)
		if err != nil {
			log.Printf("Config watch failed: %v", err)
		} else {
			defer watcher.Close()
			reloads, watchErrs = watcher.Events, watcher.Errors
		}
	}

	events := make(chan tcell.Event, constants.EventBufferSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			events <- ev
		}
	})

	app.run(events, reloads, watchErrs)
}
