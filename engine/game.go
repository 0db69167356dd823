package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/input"
	"github.com/lixenwraith/plug-n-chug/level"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// Config is everything a session needs from the host
type Config struct {
	Recipes []*order.Recipe
	Cups    *order.CupConfig
	Seed    int64
	Audio   AudioPlayer // Optional
}

// Game owns the world and drives one frame at a time
type Game struct {
	World  *World
	Router *EventRouter
}

// tapLayout is the fixed x position of each tap nozzle
var tapLayout = [...]struct {
	Input tap.DrinkInput
	X     float64
}{
	{tap.Tap1, parameter.Tap1X},
	{tap.Tap2, parameter.Tap2X},
	{tap.Tap3, parameter.Tap3X},
}

// NewGame builds session resources and the static bar entities
func NewGame(cfg Config) (*Game, error) {
	if cfg.Cups == nil {
		return nil, fmt.Errorf("cup config is missing")
	}
	catalog, err := order.NewCatalog(cfg.Recipes)
	if err != nil {
		return nil, err
	}

	queue := event.NewEventQueue()
	res := &Resource{
		Time:     &TimeResource{},
		Clock:    NewVirtualClock(),
		Event:    queue,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Status:   status.NewRegistry(),
		Tap:      tap.NewState(),
		Controls: &input.Controls{},
		Orders: &OrderResource{
			Catalog: catalog,
			Recipes: cfg.Recipes,
			Cups:    cfg.Cups,
		},
		Level: &LevelResource{},
		Audio: &AudioResource{Player: cfg.Audio},
	}

	g := &Game{
		World:  NewWorld(res),
		Router: NewEventRouter(queue),
	}
	g.spawnBar()
	g.publishStatus()
	return g, nil
}

// AddSystem registers a system for updates and for its event types
func (g *Game) AddSystem(s System) {
	g.World.AddSystem(s)
	g.Router.Register(s)
}

// Step runs dispatch, every system by priority, then flushes events raised during the frame
func (g *Game) Step(real time.Duration) {
	real = min(real, parameter.MaxFrameDelta)

	res := g.World.Resources
	delta, virtual := res.Clock.Advance(real)
	res.Time.Update(delta, virtual)

	g.Router.DispatchAll()
	g.World.Update()
	g.Router.DispatchAll()

	g.publishStatus()
}

// Reset discards the session and starts over with the same recipes
func (g *Game) Reset() error {
	res := g.World.Resources
	catalog, err := order.NewCatalog(res.Orders.Recipes)
	if err != nil {
		return err
	}

	g.World.Clear()
	res.Orders.Catalog = catalog
	res.Tap = tap.NewState()
	res.Controls.Clear()
	res.Level.State = level.State{}
	res.Clock.Resume()
	res.Status.ResetInts()
	g.spawnBar()

	// Stale events refer to destroyed entities
	res.Event.Consume()
	g.World.PushEvent(event.EventGameReset, nil)
	g.Router.DispatchAll()
	g.publishStatus()
	return nil
}

// GameOver reports whether the failure state machine has terminated
func (g *Game) GameOver() bool {
	return g.World.Resources.Level.State.IsGameOver()
}

// Tap returns the entity of the given tap input
func (g *Game) Tap(input tap.DrinkInput) (core.Entity, bool) {
	for _, e := range g.World.Components.Tap.GetAllEntities() {
		if t, ok := g.World.Components.Tap.GetComponent(e); ok && t.Input == input {
			return e, true
		}
	}
	return core.NoEntity, false
}

func (g *Game) spawnBar() {
	w := g.World

	With(
		w.NewEntity().At(0, parameter.BarTableY),
		w.Components.BarTable, component.BarTableComponent{
			HalfWidth:  parameter.BarTableWidth / 2,
			HalfHeight: parameter.BarTableHeight / 2,
		},
	).Build()

	for _, t := range tapLayout {
		With(
			With(
				w.NewEntity().At(t.X, parameter.TapY),
				w.Components.Tap, component.TapComponent{Input: t.Input},
			),
			w.Components.OpenForOrder, component.OpenForOrderComponent{
				Cooldown: core.NewTimer(parameter.TapReopenCooldown, core.TimerOnce),
			},
		).Build()
	}
}

func (g *Game) publishStatus() {
	res := g.World.Resources
	res.Status.Floats.Get(status.KeyClockScale).Set(res.Clock.Scale())
	res.Status.Bools.Get(status.KeyClockPaused).Store(res.Clock.IsPaused())
	res.Status.Strings.Get(status.KeyLevelState).Store(res.Level.State.String())
	res.Status.Ints.Get(status.KeyOrdersPending).Store(int64(g.World.Components.PendingOrder.CountEntities()))
	res.Status.Ints.Get(status.KeyRecipesReady).Store(int64(len(res.Orders.Catalog.Ready())))
}
