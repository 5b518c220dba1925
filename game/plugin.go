package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"RoomCrawler/config"
	"RoomCrawler/engine"
)

// Plugin wires the gameplay systems, item handlers and world renderers
type Plugin struct {
	Config config.Config
	States *States
}

func (p Plugin) Build(a *engine.App) {
	g := NewGeometry(p.Config.Room)
	engine.AddResource(a.Resources, &Settings{
		Player:   p.Config.Player,
		Room:     p.Config.Room,
		Geometry: g,
		Dungeon:  p.Config.Dungeon,
	})
	engine.AddResource(a.Resources, NewSpace(g))
	engine.AddResource(a.Resources, NewDungeon(p.Config.Dungeon))

	s := p.States
	s.App.OnEnter(AppSetupGame, SetupGame(s))
	s.App.OnExit(AppGame, TeardownGame(s))

	a.AddSystem("toggle pause", TogglePause(s), s.InGame(), engine.KeyJustPressed(ebiten.KeyEscape))
	a.AddSystem("move player", MovePlayer, s.Playing())
	a.AddSystem("door transitions", DoorTransitions, s.Playing())
	a.AddSystem("use items", UseItems, s.Playing())
	a.AddSystem("pick up items", PickUpItems, s.Playing())
	a.AddSystem("move bullets", MoveBullets, s.Playing())
	a.AddSystem("kill bullets", KillBullets, s.Playing())
	a.AddSystem("log player", LogPlayer, s.InGame())

	ItemEvents.Subscribe(a.World, useConsoleItem(a))
	ItemEvents.Subscribe(a.World, useCasualBulletItem(a))
	ItemEvents.Subscribe(a.World, dropItem(a))

	a.AddRenderer(engine.LayerWorld, DrawWorld, s.InGame())
	a.AddRenderer(engine.LayerDebug, DrawColliders, s.InGame(), engine.InState(s.Debug, DebugVisible))
}
