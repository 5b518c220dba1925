package styles

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/engine"
)

var (
	interactionQuery = donburi.NewQuery(filter.Contains(InteractionComponent, NodeComponent))
	buttonQuery      = donburi.NewQuery(filter.Contains(ButtonComponent, InteractionComponent))

	layoutStyleQuery = donburi.NewQuery(filter.Contains(
		InteractionComponent, InteractionStyleComponent, StyleComponent,
	))
	backgroundQuery = donburi.NewQuery(filter.Contains(
		InteractionComponent, InteractionBackgroundColorComponent, BackgroundColorComponent,
	))
	visibilityQuery = donburi.NewQuery(filter.Contains(
		InteractionComponent, InteractionVisibilityComponent, VisibilityComponent,
	))
	textStyleQuery = donburi.NewQuery(filter.Contains(
		InteractionComponent, InteractionTextStyleComponent, TextComponent,
	))
)

// UpdateInteractions hit tests the pointer against the last layout. Nodes
// are tested front to back; the first button hit stops the walk so nodes
// beneath it are not hovered.
func UpdateInteractions(a *engine.App) {
	in := engine.MustGetResource[*engine.Input](a.Resources)
	stack := engine.MustGetResource[*UiStack](a.Resources)
	w := a.World

	hovered := make(map[donburi.Entity]bool)
	for i := len(stack.Entities) - 1; i >= 0; i-- {
		e := stack.Entities[i]
		if !w.Valid(e) {
			continue
		}
		entry := w.Entry(e)
		if !entry.HasComponent(InteractionComponent) {
			continue
		}
		n := NodeComponent.Get(entry)
		if !n.Visible || !n.Contains(in.MouseX, in.MouseY) {
			continue
		}
		hovered[e] = true
		if entry.HasComponent(ButtonComponent) {
			break
		}
	}

	interactionQuery.Each(w, func(entry *donburi.Entry) {
		st := InteractionComponent.Get(entry)
		st.settle()
		over := hovered[entry.Entity()]
		switch {
		case st.Current == InteractionPressed && in.MouseJustReleased:
			if over {
				st.Set(InteractionHovered)
			} else {
				st.Set(InteractionNone)
			}
		case st.Current == InteractionPressed && in.MouseDown:
		case over && in.MouseJustPressed:
			st.Set(InteractionPressed)
		case over:
			st.Set(InteractionHovered)
		default:
			st.Set(InteractionNone)
		}
	})
}

// ApplyLayoutStyle copies the layout snapshot for the new interaction
func ApplyLayoutStyle(a *engine.App) {
	layoutStyleQuery.Each(a.World, func(entry *donburi.Entry) {
		st := InteractionComponent.Get(entry)
		if !st.Changed() {
			return
		}
		StyleComponent.SetValue(entry, InteractionStyleComponent.Get(entry).For(st.Current))
	})
}

// ApplyTextStyle restyles every section of changed text nodes
func ApplyTextStyle(a *engine.App) {
	textStyleQuery.Each(a.World, func(entry *donburi.Entry) {
		st := InteractionComponent.Get(entry)
		if !st.Changed() {
			return
		}
		style := InteractionTextStyleComponent.Get(entry).For(st.Current)
		t := TextComponent.Get(entry)
		for i := range t.Sections {
			t.Sections[i].Style = style
		}
	})
}

// ApplyBackgroundColor copies the color snapshot for the new interaction
func ApplyBackgroundColor(a *engine.App) {
	backgroundQuery.Each(a.World, func(entry *donburi.Entry) {
		st := InteractionComponent.Get(entry)
		if !st.Changed() {
			return
		}
		BackgroundColorComponent.SetValue(entry, InteractionBackgroundColorComponent.Get(entry).For(st.Current))
	})
}

// ApplyVisibility copies the visibility snapshot for the new interaction.
// A node hidden on hover stops being hit tested, so it drops back to its
// base visibility on the following frame.
func ApplyVisibility(a *engine.App) {
	visibilityQuery.Each(a.World, func(entry *donburi.Entry) {
		st := InteractionComponent.Get(entry)
		if !st.Changed() {
			return
		}
		VisibilityComponent.SetValue(entry, InteractionVisibilityComponent.Get(entry).For(st.Current))
	})
}

// CursorFeedback shows a pointer while any button is hovered or pressed
func CursorFeedback(a *engine.App) {
	shape := ebiten.CursorShapeDefault
	buttonQuery.Each(a.World, func(entry *donburi.Entry) {
		if InteractionComponent.Get(entry).Current != InteractionNone {
			shape = ebiten.CursorShapePointer
		}
	})
	engine.MustGetResource[*engine.Cursor](a.Resources).Shape = shape
}

// ClickHandler receives the clicked entity and its interaction
type ClickHandler func(a *engine.App, entry *donburi.Entry, i Interaction)

// OnClick builds a system calling handler for every entity tagged with c
// that was released this frame while still under the pointer. Handlers run
// after the query so they may spawn or despawn freely.
func OnClick[T any](c *donburi.ComponentType[T], handler ClickHandler) engine.System {
	q := donburi.NewQuery(filter.Contains(c, InteractionComponent))
	return func(a *engine.App) {
		if !engine.MustGetResource[*engine.Input](a.Resources).MouseJustReleased {
			return
		}
		var clicked []donburi.Entity
		q.Each(a.World, func(entry *donburi.Entry) {
			st := InteractionComponent.Get(entry)
			if st.Changed() && st.Current == InteractionHovered && st.Previous == InteractionPressed {
				clicked = append(clicked, entry.Entity())
			}
		})
		for _, e := range clicked {
			if a.World.Valid(e) {
				handler(a, a.World.Entry(e), InteractionHovered)
			}
		}
	}
}

// Plugin installs the UI resources, the interaction chain and the renderer
type Plugin struct {
	Font *UiFont
}

func (p Plugin) Build(a *engine.App) {
	engine.AddResource(a.Resources, &UiStack{})
	if p.Font != nil {
		engine.AddResource(a.Resources, p.Font)
	}
	a.AddSystemTo(engine.StageFirst, "ui interactions", UpdateInteractions)
	a.AddSystemTo(engine.StageFirst, "ui layout style", ApplyLayoutStyle)
	a.AddSystemTo(engine.StageFirst, "ui text style", ApplyTextStyle)
	a.AddSystemTo(engine.StageFirst, "ui background color", ApplyBackgroundColor)
	a.AddSystemTo(engine.StageFirst, "ui visibility", ApplyVisibility)
	a.AddSystemTo(engine.StageFirst, "ui cursor", CursorFeedback)
	a.AddSystemTo(engine.StageLast, "ui layout", ComputeLayout)
	a.AddRenderer(engine.LayerUI, Draw)
}
