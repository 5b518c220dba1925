package game

import (
	"github.com/rs/zerolog/log"

	"RoomCrawler/assets"
	"RoomCrawler/config"
	"RoomCrawler/engine"
)

// Asset names used by the game
const (
	TexturePlayer = "textures/cat.png"
	TextureBullet = "textures/bullet.png"
	TextureHeart  = "textures/heart.png"
	SoundShot     = "shot"
	SoundDoor     = "door"
)

// Manifest lists the assets the game needs for the configured dungeon
func Manifest(cfg config.Config) assets.Manifest {
	textures := []string{TexturePlayer, TextureBullet, TextureHeart}
	textures = append(textures, NewDungeon(cfg.Dungeon).Floors()...)
	return assets.Manifest{
		Dir:      cfg.Assets.Dir,
		Textures: textures,
		Sounds: map[string]assets.Sound{
			SoundShot: {Path: "sounds/shot.wav", Freq: 950, Dur: 0.07},
			SoundDoor: {Path: "sounds/door.ogg", Freq: 240, Dur: 0.12},
		},
	}
}

// Settings is the static game configuration as a resource
type Settings struct {
	Player   config.Player
	Room     config.Room
	Geometry Geometry
	Dungeon  config.Dungeon
}

// SpawnRoom builds the floor, walls and doors of the current room. Doors
// without a neighbor are solid.
func SpawnRoom(a *engine.App) {
	w := a.World
	settings := engine.MustGetResource[*Settings](a.Resources)
	space := engine.MustGetResource[*Space](a.Resources)
	dungeon := engine.MustGetResource[*Dungeon](a.Resources)
	lib, _ := engine.GetResource[*assets.Library](a.Resources)
	g := settings.Geometry

	def, ok := dungeon.Room(dungeon.Current)
	if !ok {
		panic("game: current room is not in the dungeon")
	}

	floor := w.Entry(w.Create(RoomComponent, GameEntityComponent, TransformComponent, SpriteComponent))
	TransformComponent.SetValue(floor, Transform{Pos: Vec{g.Width / 2, g.Height / 2}})
	SpriteComponent.SetValue(floor, Sprite{
		Size:    Vec{g.Width, g.Height},
		Color:   settings.Room.FloorColor.RGBA,
		Texture: lib.Texture(def.Floor),
		Z:       -1,
	})

	for _, r := range g.Walls() {
		e := w.Create(RoomComponent, GameEntityComponent, WallComponent, TransformComponent, SpriteComponent)
		entry := w.Entry(e)
		TransformComponent.SetValue(entry, Transform{Pos: r.Center()})
		SpriteComponent.SetValue(entry, Sprite{Size: Vec{r.W, r.H}, Color: settings.Room.WallColor.RGBA})
		space.AddBody(w, e, r, tagWall)
	}

	for _, side := range Sides {
		_, open := dungeon.Neighbor(side)
		r := g.Door(side)
		e := w.Create(RoomComponent, GameEntityComponent, DoorComponent, TransformComponent, SpriteComponent)
		entry := w.Entry(e)
		DoorComponent.SetValue(entry, Door{Side: side, Open: open})
		TransformComponent.SetValue(entry, Transform{Pos: r.Center()})
		c := settings.Room.WallColor.RGBA
		if open {
			c = settings.Room.DoorColor.RGBA
		}
		SpriteComponent.SetValue(entry, Sprite{Size: Vec{r.W, r.H}, Color: c})
		if open {
			space.AddBody(w, e, r, tagDoor)
		} else {
			space.AddBody(w, e, r, tagDoor, tagWall)
		}
	}
	log.Info().Int("x", dungeon.Current.X).Int("y", dungeon.Current.Y).Str("floor", def.Floor).Msg("room spawned")
}

// EnterRoom moves to the neighbor behind side and places the player just
// inside the opposite door
func EnterRoom(a *engine.App, side Side) {
	dungeon := engine.MustGetResource[*Dungeon](a.Resources)
	if _, ok := dungeon.Neighbor(side); !ok {
		return
	}
	space := engine.MustGetResource[*Space](a.Resources)
	settings := engine.MustGetResource[*Settings](a.Resources)

	step := side.Step()
	dungeon.Current = config.Coord{X: dungeon.Current.X + step.X, Y: dungeon.Current.Y + step.Y}
	space.Despawn(a.World, RoomComponent)
	SpawnRoom(a)

	teleport(Player(a.World), settings.Geometry.Entry(side.Opposite(), settings.Player.Size))
	if lib, ok := engine.GetResource[*assets.Library](a.Resources); ok {
		lib.Play(SoundDoor)
	}
}

// DoorTransitions enters the next room when the player stands in an open
// door
func DoorTransitions(a *engine.App) {
	space := engine.MustGetResource[*Space](a.Resources)
	for _, e := range space.Touching(Player(a.World), tagDoor) {
		door := DoorComponent.Get(a.World.Entry(e))
		if door.Open {
			EnterRoom(a, door.Side)
			return
		}
	}
}

// SetupGame spawns a fresh dungeon, the player and its starting items
func SetupGame(states *States) engine.System {
	return func(a *engine.App) {
		w := a.World
		settings := engine.MustGetResource[*Settings](a.Resources)
		lib, _ := engine.GetResource[*assets.Library](a.Resources)

		space := NewSpace(settings.Geometry)
		dungeon := NewDungeon(settings.Dungeon)
		engine.AddResource(a.Resources, space)
		engine.AddResource(a.Resources, dungeon)

		console := w.Entry(w.Create(ItemComponent, ConsoleItemComponent, GameEntityComponent))
		ItemComponent.SetValue(console, Item{Name: "console"})
		ConsoleItemComponent.SetValue(console, ConsoleItem{Message: "yallo"})

		gun := w.Entry(w.Create(ItemComponent, CasualBulletItemComponent, GameEntityComponent))
		ItemComponent.SetValue(gun, Item{Name: "casual bullet"})

		g := settings.Geometry
		SpawnPlayer(w, space, settings.Player, lib.Texture(TexturePlayer), Vec{g.Width / 2, g.Height / 2},
			DoubleHanded(console.Entity(), gun.Entity()))
		SpawnRoom(a)

		states.App.Set(AppGame)
	}
}

// TeardownGame removes every game entity
func TeardownGame(states *States) engine.System {
	return func(a *engine.App) {
		if space, ok := engine.GetResource[*Space](a.Resources); ok {
			space.Despawn(a.World, GameEntityComponent)
		}
		states.Game.Set(GameRunning)
	}
}
