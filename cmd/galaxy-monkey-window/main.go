package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/galaxy-monkey/audio"
	"github.com/lixenwraith/galaxy-monkey/config"
	"github.com/lixenwraith/galaxy-monkey/core"
	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/loop"
	"github.com/lixenwraith/galaxy-monkey/render"
	"github.com/lixenwraith/galaxy-monkey/status"
	"github.com/lixenwraith/galaxy-monkey/window"
)

const title = "Galaxy Monkey"

var (
	configFlag = flag.String("config", "", "TOML config file (default $"+config.EnvConfig+")")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+core.LogDir+"/"+core.LogFileName)
)

func main() {
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
	tuning := cfg.EngineTuning()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else if err := sound.Ready(); err != nil {
		log.Printf("Audio disabled by config: %v", err)
	}

	renderer := &window.Renderer{}
	metrics := status.NewRegistry()
	driver := loop.New(loop.Config{
		Tuning:   tuning,
		Source:   window.NewInput(keys),
		Renderer: renderer,
		Texts:    render.NewTextCache(renderer),
		Clock:    engine.NewSystemClock(),
		Metrics:  metrics,
		Overlay:  cfg.Debug.Overlay,
	})
	driver.AddHandler(loop.LogHandler{})
	driver.AddHandler(sound)

	// Ebiten paces ticks itself, one driver frame per tick
	ebiten.SetTPS(int(time.Second / tuning.FrameBudget))
	ebiten.SetWindowSize(engine.ScreenWidth, engine.ScreenHeight)
	ebiten.SetWindowTitle(title)

	runErr := ebiten.RunGame(window.NewGame(driver, renderer))
	sound.Cleanup()

	for _, line := range metrics.Lines() {
		log.Print(line)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", runErr)
		os.Exit(1)
	}
}
