package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/galaxy-monkey/audio"
	"github.com/lixenwraith/galaxy-monkey/config"
	"github.com/lixenwraith/galaxy-monkey/core"
	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/loop"
	"github.com/lixenwraith/galaxy-monkey/status"
	"github.com/lixenwraith/galaxy-monkey/terminal"
)

var (
	configFlag = flag.String("config", "", "TOML config file (default $"+config.EnvConfig+")")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+core.LogDir+"/"+core.LogFileName)
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config loaded from %s", cfg.Source)

	keys, err := cfg.KeyMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else if err := sound.Ready(); err != nil {
		log.Printf("Audio disabled by config: %v", err)
	}

	src := terminal.NewInput(screen, keys, cfg.KeyHold())
	src.Start()

	metrics := status.NewRegistry()
	driver := loop.New(loop.Config{
		Tuning:   cfg.EngineTuning(),
		Source:   src,
		Renderer: screen,
		Texts:    screen.Texts(),
		Clock:    engine.NewSystemClock(),
		Metrics:  metrics,
		Overlay:  cfg.Debug.Overlay,
	})
	driver.AddHandler(loop.LogHandler{})
	driver.AddHandler(sound)

	runErr := driver.Run()

	// Normal exit cleanup
	sound.Cleanup()
	core.SetCrashCleanup(nil)
	screen.Fini()

	for _, line := range metrics.Lines() {
		log.Print(line)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", runErr)
		os.Exit(1)
	}
}
