// Package engine hosts the frame loop: an ECS world, ordered systems gated by
// run conditions, state machines with enter/exit hooks, layered renderers and
// shared resources. App implements ebiten.Game.
package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// System runs once per frame when all of its conditions hold
type System func(a *App)

// Condition gates a system or renderer
type Condition func(a *App) bool

// Renderer draws into the screen for one layer
type Renderer func(a *App, screen *ebiten.Image)

// Plugin bundles the registration of related systems and resources
type Plugin interface {
	Build(a *App)
}

// Stage orders groups of systems inside a frame
type Stage int

const (
	StageFirst Stage = iota
	StageUpdate
	StageLast
	stageCount
)

// Layer orders renderers inside a frame
type Layer int

const (
	LayerWorld Layer = iota
	LayerUI
	LayerDebug
	layerCount
)

type scheduled struct {
	name  string
	run   System
	conds []Condition
}

type layered struct {
	draw  Renderer
	conds []Condition
}

// Time is the frame clock resource
type Time struct {
	Delta   float64 // seconds since previous frame
	Elapsed float64
	Frame   uint64
}

// Viewport is the logical screen size resource
type Viewport struct {
	Width, Height int
}

// AppExitEvent asks the loop to terminate after the current frame
type AppExitEvent struct{}

// AppExit is published by systems that want to quit
var AppExit = events.NewEventType[AppExitEvent]()

type App struct {
	World     donburi.World
	Resources *ResourceStore

	startup   []scheduled
	systems   [stageCount][]scheduled
	renderers [layerCount][]layered
	machines  []machine

	started bool
	exit    bool
	cursor  ebiten.CursorShapeType
}

// NewApp creates an app with the built-in resources installed
func NewApp(width, height int) *App {
	a := &App{
		World:     donburi.NewWorld(),
		Resources: NewResourceStore(),
		cursor:    ebiten.CursorShapeDefault,
	}
	AddResource(a.Resources, &Time{})
	AddResource(a.Resources, &Viewport{Width: width, Height: height})
	AddResource(a.Resources, NewInput())
	AddResource(a.Resources, &Cursor{Shape: ebiten.CursorShapeDefault})
	AddResource(a.Resources, NewDebugLog(DebugLogCapacity))
	AppExit.Subscribe(a.World, func(w donburi.World, _ AppExitEvent) {
		a.exit = true
	})
	return a
}

// AddPlugins builds each plugin in order
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddStartupSystem registers a system that runs once on the first frame
// before the initial states are entered
func (a *App) AddStartupSystem(name string, s System) *App {
	a.startup = append(a.startup, scheduled{name: name, run: s})
	return a
}

// AddSystem registers a system in the update stage
func (a *App) AddSystem(name string, s System, conds ...Condition) *App {
	return a.AddSystemTo(StageUpdate, name, s, conds...)
}

// AddSystemTo registers a system in the given stage; systems in a stage run
// in registration order
func (a *App) AddSystemTo(stage Stage, name string, s System, conds ...Condition) *App {
	a.systems[stage] = append(a.systems[stage], scheduled{name: name, run: s, conds: conds})
	return a
}

// AddRenderer registers a renderer on a layer
func (a *App) AddRenderer(layer Layer, r Renderer, conds ...Condition) *App {
	a.renderers[layer] = append(a.renderers[layer], layered{draw: r, conds: conds})
	return a
}

// Exit terminates the loop after the current frame
func (a *App) Exit() {
	a.exit = true
}

// Exiting reports whether an exit was requested
func (a *App) Exiting() bool {
	return a.exit
}

func (a *App) allow(conds []Condition) bool {
	for _, c := range conds {
		if !c(a) {
			return false
		}
	}
	return true
}

// Tick advances the world by one frame of dt seconds
// Order: startup (first frame only), state transitions, stages, events
func (a *App) Tick(dt float64) {
	t := MustGetResource[*Time](a.Resources)
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++

	if !a.started {
		a.started = true
		for _, s := range a.startup {
			log.Debug().Str("system", s.name).Msg("startup")
			s.run(a)
		}
		for _, m := range a.machines {
			m.enterInitial(a)
		}
	}

	for _, m := range a.machines {
		m.transition(a)
	}

	for stage := range a.systems {
		for _, s := range a.systems[stage] {
			if a.allow(s.conds) {
				s.run(a)
			}
		}
	}

	events.ProcessAllEvents(a.World)
}

// Update implements ebiten.Game
func (a *App) Update() error {
	MustGetResource[*Input](a.Resources).sample()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	a.Tick(1 / float64(tps))

	if c := MustGetResource[*Cursor](a.Resources); c.Shape != a.cursor {
		a.cursor = c.Shape
		ebiten.SetCursorShape(c.Shape)
	}

	if a.exit {
		log.Info().Msg("exit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	for layer := range a.renderers {
		for _, r := range a.renderers[layer] {
			if a.allow(r.conds) {
				r.draw(a, screen)
			}
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := MustGetResource[*Viewport](a.Resources)
	return vp.Width, vp.Height
}
