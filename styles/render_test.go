package styles

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yohamta/donburi"

	"RoomCrawler/engine"
)

type menuRoot struct{}

type startButton struct {
	label string
}

var (
	menuRootComponent    = donburi.NewComponentType[menuRoot]()
	startButtonComponent = donburi.NewComponentType[startButton]()
)

func (s startButton) Render(b *Builder, slot Element) donburi.Entity {
	return RenderAs(b, startButtonComponent, s, Button(
		Cn(WFull, BgWhite, Hover(BgRed600), Pressed(BgRed800)),
		Text(Cn(Text5xl, TextBlack), s.label),
		slot,
	))
}

func TestFragmentReturnsParent(t *testing.T) {
	w := donburi.NewWorld()
	parent := w.Create()
	b := NewBuilder(w, parent)

	got := Render(b, Fragment(Div(Cn(W4)), Fragment(Div(Cn(W8))), Text(nil, "x")))
	if got != parent {
		t.Errorf("Expected fragment to return its parent %v, got %v", parent, got)
	}
	kids := engine.ChildrenOf(w, parent)
	if len(kids) != 3 {
		t.Fatalf("Expected 3 children flattened under parent, got %d", len(kids))
	}
	if s := StyleComponent.Get(w.Entry(kids[1])); s.Width != Px(32) {
		t.Errorf("Expected nested fragment child second, got width %+v", s.Width)
	}
}

func TestElementDefaults(t *testing.T) {
	w := donburi.NewWorld()
	b := NewBuilder(w, w.Create())

	div := w.Entry(Render(b, Div(nil)))
	if *BackgroundColorComponent.Get(div) != Transparent {
		t.Error("Expected transparent div")
	}
	if div.HasComponent(ButtonComponent) {
		t.Error("Expected div without button marker")
	}

	btn := w.Entry(Render(b, Button(nil)))
	if *BackgroundColorComponent.Get(btn) != White || !btn.HasComponent(ButtonComponent) {
		t.Error("Expected white button with button marker")
	}

	img := w.Entry(Render(b, Img(Cn(H16, W16), nil)))
	if *BackgroundColorComponent.Get(img) != White || !img.HasComponent(ImageComponent) {
		t.Error("Expected white tinted image")
	}

	txt := w.Entry(Render(b, Text(Cn(Text2xl), "hello")))
	block := TextComponent.Get(txt)
	want := TextBlock{Sections: []TextSection{{Value: "hello", Style: TextStyle{FontSize: 24, Color: White}}}}
	if diff := cmp.Diff(want, *block); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractionSnapshotsStored(t *testing.T) {
	w := donburi.NewWorld()
	b := NewBuilder(w, w.Create())
	e := w.Entry(Render(b, Button(Cn(WFull, BgWhite, Hover(BgRed600), Pressed(BgRed800)))))

	bg := InteractionBackgroundColorComponent.Get(e)
	want := Snapshots[color.RGBA]{None: White, Hover: Red.Shade(600), Pressed: Red.Shade(800)}
	if diff := cmp.Diff(want, *bg); diff != "" {
		t.Errorf("snapshots mismatch (-want +got):\n%s", diff)
	}
	st := InteractionComponent.Get(e)
	if st.Current != InteractionNone || st.Changed() {
		t.Errorf("Expected fresh node to be idle, got %+v", *st)
	}
}

func TestRenderAsTagsComponentRoot(t *testing.T) {
	w := donburi.NewWorld()
	root := SpawnRoot(w, menuRootComponent, menuRoot{}, Div(
		Cn(Flex, FlexCol),
		Slot(startButton{label: "Start game"}, Text(nil, "extra")),
	))

	n := 0
	startButtonComponent.Each(w, func(entry *donburi.Entry) {
		n++
		if !entry.HasComponent(ButtonComponent) {
			t.Error("Expected marker on the button entity")
		}
		if got := startButtonComponent.Get(entry).label; got != "Start game" {
			t.Errorf("Expected label, got %q", got)
		}
		if kids := engine.ChildrenOf(w, entry.Entity()); len(kids) != 2 {
			t.Errorf("Expected label and slot child, got %d", len(kids))
		}
	})
	if n != 1 {
		t.Errorf("Expected one tagged button, got %d", n)
	}
	if !w.Entry(root).HasComponent(RootComponent) {
		t.Error("Expected root marker")
	}
}

func TestWithTagsElement(t *testing.T) {
	w := donburi.NewWorld()
	b := NewBuilder(w, w.Create())
	e := Render(b, With(startButtonComponent, startButton{label: "x"}, Div(nil)))
	if !w.Entry(e).HasComponent(startButtonComponent) {
		t.Error("Expected tag on the wrapped div")
	}
}

func TestDespawnRootRemovesTree(t *testing.T) {
	w := donburi.NewWorld()
	SpawnRoot(w, menuRootComponent, menuRoot{}, Div(nil,
		Div(nil, El(startButton{label: "a"})),
		El(startButton{label: "b"}),
	))
	if w.Len() == 0 {
		t.Fatal("Expected spawned entities")
	}
	engine.DespawnWith(w, menuRootComponent)
	if w.Len() != 0 {
		t.Errorf("Expected empty world, got %d entities", w.Len())
	}
}

func TestRenderWithoutParentMakesRoots(t *testing.T) {
	w := donburi.NewWorld()
	b := NewBuilder(w, donburi.Null)
	if got := Render(b, Fragment(Div(nil))); got != donburi.Null {
		t.Errorf("Expected Null from a root fragment, got %v", got)
	}
	n := 0
	RootComponent.Each(w, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Errorf("Expected one root, got %d", n)
	}
}
