package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/config"
	"RoomCrawler/engine"
)

const dt = 1.0 / 60

type session struct {
	app    *engine.App
	states *States
	in     *engine.Input
}

func startGame(t *testing.T) *session {
	t.Helper()
	a := engine.NewApp(1200, 840)
	s := AddStates(a)
	a.AddPlugins(Plugin{Config: config.Default(), States: s})
	s.App.Set(AppSetupGame)
	a.Tick(dt)
	a.Tick(dt)
	if s.App.Current() != AppGame {
		t.Fatalf("Expected game state, got %v", s.App.Current())
	}
	return &session{app: a, states: s, in: engine.MustGetResource[*engine.Input](a.Resources)}
}

func (s *session) hold(frames int, keys ...ebiten.Key) {
	for range frames {
		s.in.SetKeys(keys, nil)
		s.app.Tick(dt)
	}
	s.in.SetKeys(nil, nil)
}

func (s *session) tap(keys ...ebiten.Key) {
	s.in.SetKeys(nil, keys)
	s.app.Tick(dt)
	s.in.SetKeys(nil, nil)
}

func (s *session) player() Transform {
	return *TransformComponent.Get(Player(s.app.World))
}

func count(w donburi.World, c component.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestSetupSpawnsRoomAndPlayer(t *testing.T) {
	s := startGame(t)
	w := s.app.World

	if got := count(w, WallComponent); got != 8 {
		t.Errorf("Expected 8 walls, got %d", got)
	}
	open := 0
	DoorComponent.Each(w, func(entry *donburi.Entry) {
		if DoorComponent.Get(entry).Open {
			open++
		}
	})
	if open != 1 {
		t.Errorf("Expected only the top door open, got %d", open)
	}
	if got := s.player().Pos; got != (Vec{600, 420}) {
		t.Errorf("Expected player centered, got %v", got)
	}
	if got := LifeComponent.Get(Player(w)).Hearts; got != 3 {
		t.Errorf("Expected 3 hearts, got %d", got)
	}
}

func TestPlayerMovesDiagonallyAtSpeed(t *testing.T) {
	s := startGame(t)
	start := s.player().Pos
	s.hold(6, ebiten.KeyD, ebiten.KeyS)
	moved := s.player().Pos.Sub(start).Len()
	want := 500 * dt * 6
	if math.Abs(moved-want) > 1e-6 {
		t.Errorf("Expected %v px, got %v", want, moved)
	}
	if f := s.player().Facing; math.Abs(f.X-f.Y) > 1e-9 || f.X <= 0 {
		t.Errorf("Expected facing down-right, got %v", f)
	}
}

func TestWallsStopThePlayer(t *testing.T) {
	s := startGame(t)
	s.hold(200, ebiten.KeyA)
	// left door is closed, so the player rests against the wall
	if x := s.player().Pos.X; x < 84 || x > 86 {
		t.Errorf("Expected player against the left wall at 85, got %v", x)
	}
}

func TestWalkingThroughOpenDoor(t *testing.T) {
	s := startGame(t)
	dungeon := engine.MustGetResource[*Dungeon](s.app.Resources)
	g := engine.MustGetResource[*Settings](s.app.Resources).Geometry

	for i := 0; i < 200 && dungeon.Current == (config.Coord{}); i++ {
		s.hold(1, ebiten.KeyW)
	}
	if dungeon.Current != (config.Coord{X: 0, Y: 1}) {
		t.Fatalf("Expected to reach the room above, still in %v", dungeon.Current)
	}
	if got, want := s.player().Pos, g.Entry(SideBottom, 50); got != want {
		t.Errorf("Expected player at %v, got %v", want, got)
	}
	if got := count(s.app.World, WallComponent); got != 8 {
		t.Errorf("Expected the old room gone and 8 new walls, got %d", got)
	}
	DoorComponent.Each(s.app.World, func(entry *donburi.Entry) {
		d := DoorComponent.Get(entry)
		if d.Open != (d.Side == SideBottom) {
			t.Errorf("Door %v open=%v", d.Side, d.Open)
		}
	})
}

func TestShootingSpawnsAndKillsBullets(t *testing.T) {
	s := startGame(t)
	s.tap(ebiten.KeySpace)
	if got := count(s.app.World, BulletComponent); got != 1 {
		t.Fatalf("Expected one bullet, got %d", got)
	}

	s.hold(10)
	var pos Vec
	BulletComponent.Each(s.app.World, func(entry *donburi.Entry) {
		pos = TransformComponent.Get(entry).Pos
	})
	if pos.X <= 600 || pos.Y != 420 {
		t.Errorf("Expected bullet flying right, got %v", pos)
	}

	s.hold(150)
	if got := count(s.app.World, BulletComponent); got != 0 {
		t.Errorf("Expected bullets gone, got %d", got)
	}
}

func TestConsoleItemLogs(t *testing.T) {
	s := startGame(t)
	s.tap(ebiten.KeyK)
	dl := engine.MustGetResource[*engine.DebugLog](s.app.Resources)
	found := false
	for _, l := range dl.Lines() {
		if l.Key == ConsoleItemKey && l.Value == "yallo" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected console item line, got %v", dl.Lines())
	}
}

func TestDropAndPickUp(t *testing.T) {
	s := startGame(t)
	s.tap(ebiten.KeyQ)
	inv := InventoryComponent.Get(Player(s.app.World))
	if inv.Main != donburi.Null {
		t.Fatal("Expected empty main hand after drop")
	}
	if got := count(s.app.World, BodyComponent); got != 8+4+1+1 {
		t.Errorf("Expected the dropped item to get a body, got %d bodies", got)
	}

	s.tap(ebiten.KeyE)
	inv = InventoryComponent.Get(Player(s.app.World))
	if inv.Main == donburi.Null {
		t.Fatal("Expected item picked up again")
	}
	s.tap(ebiten.KeySpace)
	if got := count(s.app.World, BulletComponent); got != 1 {
		t.Errorf("Expected the picked up gun to fire, got %d bullets", got)
	}
}

func TestPauseStopsMovement(t *testing.T) {
	s := startGame(t)
	s.tap(ebiten.KeyEscape)
	s.app.Tick(dt)
	if s.states.Game.Current() != GamePaused {
		t.Fatalf("Expected paused, got %v", s.states.Game.Current())
	}
	before := s.player().Pos
	s.hold(10, ebiten.KeyD)
	if s.player().Pos != before {
		t.Error("Expected no movement while paused")
	}
	s.tap(ebiten.KeyEscape)
	s.app.Tick(dt)
	if s.states.Game.Current() != GameRunning {
		t.Errorf("Expected running again, got %v", s.states.Game.Current())
	}
}

func TestLeavingGameCleansUp(t *testing.T) {
	s := startGame(t)
	s.tap(ebiten.KeySpace)
	s.states.App.Set(AppSplash)
	s.app.Tick(dt)

	if got := count(s.app.World, GameEntityComponent); got != 0 {
		t.Errorf("Expected no game entities, got %d", got)
	}
	if got := engine.MustGetResource[*Space](s.app.Resources).Bodies(); got != 0 {
		t.Errorf("Expected empty collision space, got %d", got)
	}
}
