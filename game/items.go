package game

import (
	"image/color"

	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"RoomCrawler/assets"
	"RoomCrawler/engine"
)

type ItemEventKind uint8

const (
	ItemUsed ItemEventKind = iota
	ItemDropped
)

// ItemEvent reports an item being used or dropped by its holder
type ItemEvent struct {
	Kind      ItemEventKind
	Item      donburi.Entity
	Position  Vec
	Direction Vec
}

var ItemEvents = events.NewEventType[ItemEvent]()

const (
	droppedItemSize = 24
	ConsoleItemKey  = "Console Item"
)

var droppedItemColor = color.RGBA{0xfa, 0xcc, 0x15, 0xff}

// useConsoleItem writes the item's message to the debug log
func useConsoleItem(a *engine.App) events.Subscriber[ItemEvent] {
	return func(w donburi.World, ev ItemEvent) {
		if ev.Kind != ItemUsed || !w.Valid(ev.Item) {
			return
		}
		entry := w.Entry(ev.Item)
		if !entry.HasComponent(ConsoleItemComponent) {
			return
		}
		engine.MustGetResource[*engine.DebugLog](a.Resources).Log(ConsoleItemKey, ConsoleItemComponent.Get(entry).Message)
	}
}

// useCasualBulletItem fires a bullet from the holder along its facing
func useCasualBulletItem(a *engine.App) events.Subscriber[ItemEvent] {
	return func(w donburi.World, ev ItemEvent) {
		if ev.Kind != ItemUsed || !w.Valid(ev.Item) || !w.Entry(ev.Item).HasComponent(CasualBulletItemComponent) {
			return
		}
		lib, _ := engine.GetResource[*assets.Library](a.Resources)
		space := engine.MustGetResource[*Space](a.Resources)
		SpawnBullet(w, space, lib.Texture(TextureBullet), ev.Position, ev.Direction)
		lib.Play(SoundShot)
	}
}

// dropItem puts the item on the floor of the current room
func dropItem(a *engine.App) events.Subscriber[ItemEvent] {
	return func(w donburi.World, ev ItemEvent) {
		if ev.Kind != ItemDropped || !w.Valid(ev.Item) {
			return
		}
		space := engine.MustGetResource[*Space](a.Resources)
		entry := w.Entry(ev.Item)
		engine.Insert(entry, TransformComponent, Transform{Pos: ev.Position})
		engine.Insert(entry, SpriteComponent, Sprite{
			Size:  Vec{droppedItemSize, droppedItemSize},
			Color: droppedItemColor,
			Z:     1,
		})
		engine.Insert(entry, RoomComponent, struct{}{})
		space.AddBody(w, ev.Item, CenteredRect(ev.Position, droppedItemSize, droppedItemSize), tagItem)

		name := ""
		if entry.HasComponent(ItemComponent) {
			name = ItemComponent.Get(entry).Name
		}
		log.Debug().Str("item", name).Float64("x", ev.Position.X).Float64("y", ev.Position.Y).Msg("item dropped")
	}
}
