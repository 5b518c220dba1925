package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/config"
	"RoomCrawler/engine"
)

var (
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}
	keysUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}
	keysDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}

	KeysPrimary = []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}
	KeysOffHand = []ebiten.Key{ebiten.KeyK}
	KeysDrop    = []ebiten.Key{ebiten.KeyQ}
	KeysPickUp  = []ebiten.Key{ebiten.KeyE}
)

var playerQuery = donburi.NewQuery(filter.Contains(
	PlayerComponent, TransformComponent, BodyComponent, InventoryComponent,
))

// InputAxis maps WASD and arrows to a unit (or zero) direction, y down
func InputAxis(in *engine.Input) Vec {
	return Vec{
		X: in.Axis(keysLeft, keysRight),
		Y: in.Axis(keysUp, keysDown),
	}.Normalize()
}

// SpawnPlayer creates the player at pos holding inv
func SpawnPlayer(w donburi.World, space *Space, cfg config.Player, tex *ebiten.Image, pos Vec, inv Inventory) donburi.Entity {
	e := w.Create(
		PlayerComponent,
		GameEntityComponent,
		TransformComponent,
		SpriteComponent,
		LifeComponent,
		InventoryComponent,
	)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, Transform{Pos: pos, Facing: Vec{1, 0}})
	SpriteComponent.SetValue(entry, Sprite{
		Size:    Vec{cfg.Size, cfg.Size},
		Color:   cfg.Color.RGBA,
		Texture: tex,
		Z:       1,
	})
	LifeComponent.SetValue(entry, Life{Hearts: cfg.Lives})
	InventoryComponent.SetValue(entry, inv)
	space.AddBody(w, e, CenteredRect(pos, cfg.Size, cfg.Size), tagPlayer)
	return e
}

// Player returns the player entry; exactly one must exist
func Player(w donburi.World) *donburi.Entry {
	return engine.Single(w, playerQuery)
}

// MovePlayer walks the player and slides it along walls
func MovePlayer(a *engine.App) {
	in := engine.MustGetResource[*engine.Input](a.Resources)
	dt := engine.MustGetResource[*engine.Time](a.Resources).Delta
	settings := engine.MustGetResource[*Settings](a.Resources)
	space := engine.MustGetResource[*Space](a.Resources)

	entry := Player(a.World)
	tr := TransformComponent.Get(entry)
	axis := InputAxis(in)
	if axis.IsZero() {
		return
	}
	tr.Facing = axis

	moved := space.MoveBy(entry, axis.Scale(settings.Player.Speed*dt), tagWall)
	tr.Pos = tr.Pos.Add(moved)

	// never leave the room box, even through a corner
	half := settings.Player.Size / 2
	clamped := Vec{
		X: min(max(tr.Pos.X, half), settings.Geometry.Width-half),
		Y: min(max(tr.Pos.Y, half), settings.Geometry.Height-half),
	}
	if clamped != tr.Pos {
		teleport(entry, clamped)
	}
}

// teleport moves the transform and body of entry to pos
func teleport(entry *donburi.Entry, pos Vec) {
	tr := TransformComponent.Get(entry)
	d := pos.Sub(tr.Pos)
	BodyComponent.Get(entry).Shape.Move(d.X, d.Y)
	tr.Pos = pos
}

// UseItems publishes item events for the keys pressed this frame
func UseItems(a *engine.App) {
	in := engine.MustGetResource[*engine.Input](a.Resources)
	entry := Player(a.World)
	tr := TransformComponent.Get(entry)
	inv := InventoryComponent.Get(entry)

	use := func(hand Hand) {
		if item, ok := inv.Use(hand, a.World.Valid); ok {
			ItemEvents.Publish(a.World, ItemEvent{Kind: ItemUsed, Item: item, Position: tr.Pos, Direction: tr.Facing})
		}
	}
	if in.AnyJustPressed(KeysPrimary...) {
		use(HandPrimary)
	}
	if in.AnyJustPressed(KeysOffHand...) {
		use(HandOff)
	}
	if in.AnyJustPressed(KeysDrop...) && inv.Kind != RevolverKind && inv.Main != donburi.Null {
		item := inv.Main
		inv.Main = donburi.Null
		if a.World.Valid(item) {
			ItemEvents.Publish(a.World, ItemEvent{Kind: ItemDropped, Item: item, Position: tr.Pos, Direction: tr.Facing})
		}
	}
}

// PickUpItems puts a dropped item under the player back in the main hand
func PickUpItems(a *engine.App) {
	in := engine.MustGetResource[*engine.Input](a.Resources)
	if !in.AnyJustPressed(KeysPickUp...) {
		return
	}
	space := engine.MustGetResource[*Space](a.Resources)
	entry := Player(a.World)
	inv := InventoryComponent.Get(entry)
	if inv.Kind == RevolverKind || inv.Main != donburi.Null {
		return
	}
	for _, e := range space.Touching(entry, tagItem) {
		item := a.World.Entry(e)
		space.RemoveBody(item)
		item.RemoveComponent(BodyComponent)
		item.RemoveComponent(RoomComponent)
		item.RemoveComponent(SpriteComponent)
		inv.Main = e
		return
	}
}

// TogglePause flips between running and paused
func TogglePause(states *States) engine.System {
	return func(*engine.App) {
		if states.Game.Current() == GameRunning {
			states.Game.Set(GamePaused)
		} else {
			states.Game.Set(GameRunning)
		}
	}
}

// LogPlayer mirrors the player state into the debug log
func LogPlayer(a *engine.App) {
	dl := engine.MustGetResource[*engine.DebugLog](a.Resources)
	d := engine.MustGetResource[*Dungeon](a.Resources)
	entry := Player(a.World)
	tr := TransformComponent.Get(entry)
	dl.Log("Room", fmt.Sprintf("%d,%d", d.Current.X, d.Current.Y))
	dl.Log("Player", fmt.Sprintf("%.0f,%.0f", tr.Pos.X, tr.Pos.Y))
	dl.Log("Hearts", LifeComponent.Get(entry).Hearts)
	dl.Log("Bullets", bulletQuery.Count(a.World))
}
