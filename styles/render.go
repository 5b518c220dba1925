package styles

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"

	"RoomCrawler/engine"
)

var rootSeq atomic.Uint64

// Builder spawns entities under a parent. A Null parent makes every spawned
// node a root.
type Builder struct {
	World  donburi.World
	parent donburi.Entity
}

func NewBuilder(w donburi.World, parent donburi.Entity) *Builder {
	return &Builder{World: w, parent: parent}
}

// Parent is the entity new nodes attach to
func (b *Builder) Parent() donburi.Entity {
	return b.parent
}

// Under returns a builder attaching to parent
func (b *Builder) Under(parent donburi.Entity) *Builder {
	return &Builder{World: b.World, parent: parent}
}

func (b *Builder) attach(e donburi.Entity) {
	if b.parent == donburi.Null {
		engine.Insert(b.World.Entry(e), RootComponent, Root{Order: rootSeq.Add(1)})
		return
	}
	engine.SetParent(b.World, e, b.parent)
}

// Render lowers el into the world and returns the entity that represents it.
// Fragments return the builder's parent; components return whatever their
// Render returns.
func Render(b *Builder, el Element) donburi.Entity {
	switch el.kind {
	case KindFragment:
		for _, child := range el.children {
			Render(b, child)
		}
		return b.parent
	case KindDynamic:
		return el.component.Render(b, Fragment(el.children...))
	case KindDiv:
		return spawnNode(b, el, DivDefaults())
	case KindButton, KindImage:
		return spawnNode(b, el, ButtonDefaults())
	case KindText:
		return spawnText(b, el)
	}
	panic(fmt.Sprintf("styles: unknown element kind %d", el.kind))
}

// RenderAs renders el and tags the resulting entity with v. Used by
// components to mark their root, e.g. a button that should react to clicks.
func RenderAs[T any](b *Builder, c *donburi.ComponentType[T], v T, el Element) donburi.Entity {
	e := Render(b, el)
	if e != donburi.Null && b.World.Valid(e) {
		engine.Insert(b.World.Entry(e), c, v)
	}
	return e
}

// With wraps el so that rendering it also tags its entity with v
func With[T any](c *donburi.ComponentType[T], v T, el Element) Element {
	return El(RendererFunc(func(b *Builder, slot Element) donburi.Entity {
		e := RenderAs(b, c, v, el)
		Render(b.Under(e), slot)
		return e
	}))
}

// SpawnRoot creates a full-screen flex root tagged with marker and renders
// tree inside it. Despawning by marker removes the whole tree.
func SpawnRoot[T any](w donburi.World, marker *donburi.ComponentType[T], v T, tree Element) donburi.Entity {
	root := w.Create(
		NodeComponent,
		StyleComponent,
		BackgroundColorComponent,
		VisibilityComponent,
		RootComponent,
		marker,
	)
	entry := w.Entry(root)
	StyleComponent.SetValue(entry, Style{
		Display: DisplayFlex,
		Width:   Percent(100),
		Height:  Percent(100),
	})
	BackgroundColorComponent.SetValue(entry, Transparent)
	RootComponent.SetValue(entry, Root{Order: rootSeq.Add(1)})
	marker.SetValue(entry, v)

	Render(NewBuilder(w, root), tree)
	return root
}

func spawnNode(b *Builder, el Element, base NodeBundle) donburi.Entity {
	snaps := Resolve(el.node, base)

	types := []component.IComponentType{
		NodeComponent,
		StyleComponent,
		BackgroundColorComponent,
		VisibilityComponent,
		InteractionComponent,
		InteractionStyleComponent,
		InteractionBackgroundColorComponent,
		InteractionVisibilityComponent,
	}
	switch el.kind {
	case KindButton:
		types = append(types, ButtonComponent)
	case KindImage:
		types = append(types, ImageComponent)
	}

	e := b.World.Create(types...)
	entry := b.World.Entry(e)
	StyleComponent.SetValue(entry, snaps.None.Style)
	BackgroundColorComponent.SetValue(entry, snaps.None.BackgroundColor)
	VisibilityComponent.SetValue(entry, snaps.None.Visibility)
	InteractionStyleComponent.SetValue(entry, mapSnapshots(snaps, func(n NodeBundle) Style {
		return n.Style
	}))
	InteractionBackgroundColorComponent.SetValue(entry, mapSnapshots(snaps, func(n NodeBundle) color.RGBA {
		return n.BackgroundColor
	}))
	InteractionVisibilityComponent.SetValue(entry, mapSnapshots(snaps, func(n NodeBundle) Visibility {
		return n.Visibility
	}))
	if el.kind == KindImage {
		ImageComponent.SetValue(entry, UiImage{Texture: el.texture})
	}
	b.attach(e)

	inner := b.Under(e)
	for _, child := range el.children {
		Render(inner, child)
	}
	return e
}

func spawnText(b *Builder, el Element) donburi.Entity {
	snaps := Resolve(el.textClass, TextDefaults())

	e := b.World.Create(
		NodeComponent,
		StyleComponent,
		VisibilityComponent,
		TextComponent,
		InteractionComponent,
		InteractionTextStyleComponent,
	)
	entry := b.World.Entry(e)
	TextComponent.SetValue(entry, TextBlock{
		Sections: []TextSection{{Value: el.text, Style: snaps.None}},
	})
	InteractionTextStyleComponent.SetValue(entry, snaps)
	b.attach(e)
	return e
}
