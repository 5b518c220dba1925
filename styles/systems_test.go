package styles

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"RoomCrawler/engine"
)

type harness struct {
	app *engine.App
	in  *engine.Input
}

func newHarness() *harness {
	a := engine.NewApp(800, 600)
	a.AddPlugins(Plugin{})
	return &harness{app: a, in: engine.MustGetResource[*engine.Input](a.Resources)}
}

// pointer moves the mouse and optionally changes the button state
func (h *harness) pointer(x, y float64, down bool) {
	h.in.MouseX, h.in.MouseY = x, y
	h.in.MouseJustPressed = down && !h.in.MouseDown
	h.in.MouseJustReleased = !down && h.in.MouseDown
	h.in.MouseDown = down
	h.app.Tick(1.0 / 60)
}

func (h *harness) spawnMenu(t *testing.T) (donburi.Entity, donburi.Entity) {
	SpawnRoot(h.app.World, menuRootComponent, menuRoot{}, Div(
		Cn(HFull, WFull, JustifyCenter, ItemsCenter),
		Div(Cn(FlexCol),
			El(startButton{label: "Start"}),
			tag(9, Button(Cn(W64, H16, BgWhite, Hover(BgRed600)))),
		),
	))
	var start donburi.Entity
	startButtonComponent.Each(h.app.World, func(entry *donburi.Entry) { start = entry.Entity() })
	other := find(t, h.app.World, 9)
	return start, other
}

func (h *harness) bg(e donburi.Entity) color.RGBA {
	return *BackgroundColorComponent.Get(h.app.World.Entry(e))
}

func (h *harness) interaction(e donburi.Entity) InteractionState {
	return *InteractionComponent.Get(h.app.World.Entry(e))
}

func (h *harness) center(e donburi.Entity) (float64, float64) {
	n := *NodeComponent.Get(h.app.World.Entry(e))
	return n.X + n.Width/2, n.Y + n.Height/2
}

func TestHoverPressRelease(t *testing.T) {
	h := newHarness()
	start, _ := h.spawnMenu(t)
	h.pointer(-10, -10, false)

	x, y := h.center(start)
	h.pointer(x, y, false)
	if got := h.interaction(start).Current; got != InteractionHovered {
		t.Fatalf("Expected hovered, got %v", got)
	}
	if h.bg(start) != Red.Shade(600) {
		t.Errorf("Expected hover color, got %v", h.bg(start))
	}
	if c := engine.MustGetResource[*engine.Cursor](h.app.Resources); c.Shape != ebiten.CursorShapePointer {
		t.Error("Expected pointer cursor over a button")
	}

	h.pointer(x, y, true)
	if got := h.interaction(start).Current; got != InteractionPressed {
		t.Fatalf("Expected pressed, got %v", got)
	}
	if h.bg(start) != Red.Shade(800) {
		t.Errorf("Expected pressed color, got %v", h.bg(start))
	}

	// holding keeps the press even off the button
	h.pointer(1, 1, true)
	if got := h.interaction(start).Current; got != InteractionPressed {
		t.Errorf("Expected press to persist while held, got %v", got)
	}

	h.pointer(1, 1, false)
	if got := h.interaction(start).Current; got != InteractionNone {
		t.Errorf("Expected none after release elsewhere, got %v", got)
	}
	if h.bg(start) != White {
		t.Errorf("Expected base color, got %v", h.bg(start))
	}
	if c := engine.MustGetResource[*engine.Cursor](h.app.Resources); c.Shape != ebiten.CursorShapeDefault {
		t.Error("Expected default cursor with no active button")
	}
}

func TestTextStyleFollowsInteraction(t *testing.T) {
	h := newHarness()
	SpawnRoot(h.app.World, menuRootComponent, menuRoot{}, tag(1, Text(Cn(TextBase, TextBlack, Hover(TextRed600)), "label")))
	h.pointer(-10, -10, false)

	txt := find(t, h.app.World, 1)
	x, y := h.center(txt)
	h.pointer(x, y, false)
	block := TextComponent.Get(h.app.World.Entry(txt))
	if block.Sections[0].Style.Color != Red.Shade(600) {
		t.Errorf("Expected hover text color, got %v", block.Sections[0].Style.Color)
	}
}

func TestStylesOnlyRewrittenOnChange(t *testing.T) {
	h := newHarness()
	start, _ := h.spawnMenu(t)
	h.pointer(-10, -10, false)

	x, y := h.center(start)
	h.pointer(x, y, false)
	// a manual override survives while the interaction stays the same
	BackgroundColorComponent.SetValue(h.app.World.Entry(start), Blue.Shade(500))
	h.pointer(x+1, y, false)
	if h.bg(start) != Blue.Shade(500) {
		t.Errorf("Expected untouched color without a change, got %v", h.bg(start))
	}
}

func TestButtonsBlockNodesBelow(t *testing.T) {
	h := newHarness()
	SpawnRoot(h.app.World, menuRootComponent, menuRoot{}, tag(1, Button(Cn(W64, H64, ItemsStart),
		tag(2, Button(Cn(W16, H16))),
	)))
	outer := find(t, h.app.World, 1)
	inner := find(t, h.app.World, 2)
	h.pointer(-10, -10, false)

	h.pointer(10, 10, false)
	if h.interaction(inner).Current != InteractionHovered {
		t.Error("Expected front button hovered")
	}
	if h.interaction(outer).Current != InteractionNone {
		t.Error("Expected button below to be blocked")
	}

	h.pointer(200, 200, false)
	if h.interaction(outer).Current != InteractionHovered {
		t.Error("Expected outer button hovered outside the inner one")
	}
}

func TestInvisibleNodesIgnored(t *testing.T) {
	h := newHarness()
	SpawnRoot(h.app.World, menuRootComponent, menuRoot{}, tag(1, Button(Cn(W64, H64, Invisible))))
	h.pointer(-10, -10, false)
	h.pointer(10, 10, false)
	if h.interaction(find(t, h.app.World, 1)).Current != InteractionNone {
		t.Error("Expected hidden button to ignore the pointer")
	}
}

func TestHoverVisibility(t *testing.T) {
	h := newHarness()
	SpawnRoot(h.app.World, menuRootComponent, menuRoot{}, tag(1, Button(Cn(W64, H64, Hover(Invisible)))))
	e := find(t, h.app.World, 1)
	entry := h.app.World.Entry(e)

	h.pointer(-10, -10, false)
	if got := *VisibilityComponent.Get(entry); got != VisibilityInherited {
		t.Fatalf("Expected inherited visibility at rest, got %v", got)
	}

	h.pointer(10, 10, false)
	if got := *VisibilityComponent.Get(entry); got != VisibilityHidden {
		t.Fatalf("Expected hover to hide the button, got %v", got)
	}
	if NodeComponent.Get(entry).Visible {
		t.Error("Expected layout to mark the hovered button invisible")
	}

	// hidden nodes are not hit tested, so the hover is released
	h.pointer(10, 10, false)
	if h.interaction(e).Current != InteractionNone {
		t.Errorf("Expected hidden button to lose hover, got %v", h.interaction(e).Current)
	}
	if got := *VisibilityComponent.Get(entry); got != VisibilityInherited {
		t.Errorf("Expected base visibility restored, got %v", got)
	}
}

func TestOnClick(t *testing.T) {
	h := newHarness()
	var clicks []string
	h.app.AddSystem("start click", OnClick(startButtonComponent, func(a *engine.App, entry *donburi.Entry, i Interaction) {
		clicks = append(clicks, startButtonComponent.Get(entry).label)
		if i != InteractionHovered {
			t.Errorf("Expected hovered interaction, got %v", i)
		}
	}))
	start, other := h.spawnMenu(t)
	h.pointer(-10, -10, false)

	x, y := h.center(start)
	h.pointer(x, y, false)
	h.pointer(x, y, true)
	h.pointer(x, y, true)
	if len(clicks) != 0 {
		t.Fatal("Expected no click before release")
	}
	h.pointer(x, y, false)
	if len(clicks) != 1 || clicks[0] != "Start" {
		t.Fatalf("Expected one click on Start, got %v", clicks)
	}

	// release while merely hovering
	h.pointer(x, y, false)
	h.in.MouseJustReleased = true
	h.app.Tick(1.0 / 60)
	if len(clicks) != 1 {
		t.Errorf("Expected no click without a press, got %v", clicks)
	}

	// press here, release elsewhere
	h.pointer(x, y, true)
	ox, oy := h.center(other)
	h.pointer(ox, oy, false)
	if len(clicks) != 1 {
		t.Errorf("Expected no click after dragging off, got %v", clicks)
	}
}

func TestOnClickHandlerMayDespawn(t *testing.T) {
	h := newHarness()
	h.app.AddSystem("close", OnClick(startButtonComponent, func(a *engine.App, _ *donburi.Entry, _ Interaction) {
		engine.DespawnWith(a.World, menuRootComponent)
	}))
	start, _ := h.spawnMenu(t)
	h.pointer(-10, -10, false)
	x, y := h.center(start)
	h.pointer(x, y, false)
	h.pointer(x, y, true)
	h.pointer(x, y, false)
	if h.app.World.Valid(start) {
		t.Error("Expected button despawned")
	}
	if n := rootQuery.Count(h.app.World); n != 0 {
		t.Errorf("Expected no roots left, got %d", n)
	}
	h.pointer(x, y, false)
}
