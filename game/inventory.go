package game

import (
	"github.com/yohamta/donburi"
)

// Hand selects which item of an inventory is used
type Hand uint8

const (
	HandPrimary Hand = iota
	HandOff
)

type InventoryKind uint8

const (
	// OneHanded holds at most one item
	OneHandedKind InventoryKind = iota
	// DoubleHanded holds an optional off-hand item and a main item
	DoubleHandedKind
	// Revolver cycles through a queue of items
	RevolverKind
)

// Inventory is what the player carries. Empty slots hold donburi.Null.
type Inventory struct {
	Kind    InventoryKind
	Main    donburi.Entity
	Off     donburi.Entity
	Chamber []donburi.Entity
}

func OneHanded(item donburi.Entity) Inventory {
	return Inventory{Kind: OneHandedKind, Main: item, Off: donburi.Null}
}

func DoubleHanded(off, main donburi.Entity) Inventory {
	return Inventory{Kind: DoubleHandedKind, Main: main, Off: off}
}

func Revolver(items ...donburi.Entity) Inventory {
	return Inventory{Kind: RevolverKind, Main: donburi.Null, Off: donburi.Null, Chamber: items}
}

// Use picks the item for hand. alive reports whether an item entity still
// exists. A revolver always rotates, even when its front item is gone.
func (inv *Inventory) Use(hand Hand, alive func(donburi.Entity) bool) (donburi.Entity, bool) {
	pick := func(e donburi.Entity) (donburi.Entity, bool) {
		if e == donburi.Null || !alive(e) {
			return donburi.Null, false
		}
		return e, true
	}
	switch inv.Kind {
	case OneHandedKind:
		if hand == HandPrimary {
			return pick(inv.Main)
		}
	case DoubleHandedKind:
		if hand == HandPrimary {
			return pick(inv.Main)
		}
		return pick(inv.Off)
	case RevolverKind:
		if len(inv.Chamber) == 0 {
			return donburi.Null, false
		}
		front := inv.Chamber[0]
		copy(inv.Chamber, inv.Chamber[1:])
		inv.Chamber[len(inv.Chamber)-1] = front
		return pick(front)
	}
	return donburi.Null, false
}

// Items lists every item entity held
func (inv Inventory) Items() []donburi.Entity {
	var out []donburi.Entity
	for _, e := range []donburi.Entity{inv.Off, inv.Main} {
		if e != donburi.Null {
			out = append(out, e)
		}
	}
	return append(out, inv.Chamber...)
}
