package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plug-n-chug/asset"
	"github.com/lixenwraith/plug-n-chug/audio"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/input"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/render"
	"github.com/lixenwraith/plug-n-chug/render/renderers"
	"github.com/lixenwraith/plug-n-chug/system"
)

var (
	ordersFlag  = flag.String("orders", "", "Recipe document (.toml, .yaml), built-in catalog when empty")
	cupsFlag    = flag.String("cups", "", "Cup geometry document (.toml), built-in geometry when empty")
	keysFlag    = flag.String("keys", "", "Keymap override document (.toml)")
	seedFlag    = flag.Int64("seed", 0, "Random seed, time-based when zero")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	metricsFlag = flag.Bool("metrics", false, "Show session metrics in the HUD")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, keys, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "plug-n-chug: %v\n", err)
		os.Exit(1)
	}

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	}
	defer player.Stop()
	cfg.Audio = player

	game, err := engine.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plug-n-chug: %v\n", err)
		os.Exit(1)
	}
	system.Install(game)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.Register(orchestrator, game.World, *metricsFlag)

	log.Printf("session started: seed=%d recipes=%d", cfg.Seed, len(cfg.Recipes))
	run(screen, game, orchestrator, keys, player)
	log.Printf("session ended: %s", game.World.Resources.Status.Summary())
}

// loadConfig resolves the recipe, cup and keymap documents from flags
func loadConfig() (engine.Config, *input.KeyTable, error) {
	var cfg engine.Config
	var err error

	if *ordersFlag != "" {
		cfg.Recipes, err = order.LoadRecipes(*ordersFlag)
	} else {
		cfg.Recipes, err = order.ParseRecipes([]byte(asset.DefaultOrders), order.FormatTOML)
	}
	if err != nil {
		return cfg, nil, err
	}

	if *cupsFlag != "" {
		cfg.Cups, err = order.LoadCupConfig(*cupsFlag)
	} else {
		cfg.Cups, err = order.ParseCupConfig([]byte(asset.DefaultCupConfig))
	}
	if err != nil {
		return cfg, nil, err
	}

	keys := input.DefaultKeyTable()
	if *keysFlag != "" {
		if keys, err = input.LoadKeyFile(*keysFlag); err != nil {
			return cfg, nil, err
		}
	}

	cfg.Seed = *seedFlag
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, keys, nil
}

// run drives frames on a ticker and feeds key presses into the game until quit
func run(screen tcell.Screen, game *engine.Game, orchestrator *render.RenderOrchestrator, keys *input.KeyTable, player *audio.Player) {
	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		pollEvents(screen, eventChan, done)
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				orchestrator.Resize(w, h)

			case *tcell.EventKey:
				action, ok := keys.Lookup(ev)
				if !ok {
					continue
				}
				switch action {
				case input.ActionQuit:
					return
				case input.ActionRestart:
					if err := game.Reset(); err != nil {
						log.Printf("reset failed: %v", err)
					}
					log.Printf("session restarted")
				case input.ActionToggleMute:
					log.Printf("audio muted=%v", player.ToggleMute())
				default:
					game.World.PushEvent(event.EventInputAction, &event.InputActionPayload{Action: action})
				}
			}

		case now := <-frameTicker.C:
			game.Step(now.Sub(last))
			last = now
			orchestrator.RenderFrame(game.World)
		}
	}
}

// eventSource is the polling half of tcell.Screen
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events to out until the source closes or done is closed
func pollEvents(src eventSource, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		// Clean exit on terminal closure
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
