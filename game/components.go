package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Transform is the center of an entity and the direction it faces
type Transform struct {
	Pos    Vec
	Facing Vec
}

// Sprite is drawn centered on the transform; a nil texture draws Color
type Sprite struct {
	Size    Vec
	Color   color.RGBA
	Texture *ebiten.Image
	Z       int
}

// Body is the collision shape of an entity, registered in the Space
type Body struct {
	Shape resolv.IShape
	Size  Vec
}

// Life counts the player's hearts
type Life struct {
	Hearts int
}

// Door is a trigger filling the gap of one side
type Door struct {
	Side Side
	Open bool
}

// Item marks an entity that can sit in an inventory
type Item struct {
	Name string
}

// ConsoleItem writes Message to the debug log when used
type ConsoleItem struct {
	Message string
}

// Lifetime counts seconds up to Span
type Lifetime struct {
	Current, Span float64
}

// Fraction is how far through its life the entity is, in [0, 1]
func (l Lifetime) Fraction() float64 {
	if l.Span <= 0 {
		return 1
	}
	return min(1, l.Current/l.Span)
}

func (l Lifetime) Expired() bool {
	return l.Current >= l.Span
}

var (
	TransformComponent        = donburi.NewComponentType[Transform]()
	SpriteComponent           = donburi.NewComponentType[Sprite]()
	BodyComponent             = donburi.NewComponentType[Body]()
	LifeComponent             = donburi.NewComponentType[Life]()
	DoorComponent             = donburi.NewComponentType[Door]()
	InventoryComponent        = donburi.NewComponentType[Inventory]()
	ItemComponent             = donburi.NewComponentType[Item]()
	ConsoleItemComponent      = donburi.NewComponentType[ConsoleItem]()
	CasualBulletItemComponent = donburi.NewComponentType[struct{}]()
	TrajectoryComponent       = donburi.NewComponentType[Trajectory]()
	LifetimeComponent         = donburi.NewComponentType[Lifetime]()

	PlayerComponent = donburi.NewComponentType[struct{}]()
	WallComponent   = donburi.NewComponentType[struct{}]()
	BulletComponent = donburi.NewComponentType[struct{}]()
	// RoomComponent marks everything that belongs to the current room
	RoomComponent = donburi.NewComponentType[struct{}]()
	// GameEntityComponent marks everything that lives only while in game
	GameEntityComponent = donburi.NewComponentType[struct{}]()
)
