package styles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ComputedNode is the rectangle a node occupies after layout
type ComputedNode struct {
	X, Y, Width, Height float64
	// Visible is the resolved visibility after inheritance
	Visible bool
}

// Contains reports whether the point lies inside the node
func (n ComputedNode) Contains(x, y float64) bool {
	return x >= n.X && x < n.X+n.Width && y >= n.Y && y < n.Y+n.Height
}

// InteractionState tracks the pointer state of a node across frames
type InteractionState struct {
	Current  Interaction
	Previous Interaction
	changed  bool
}

// Set moves to next, recording the previous value when it differs
func (s *InteractionState) Set(next Interaction) {
	if next == s.Current {
		return
	}
	s.Previous = s.Current
	s.Current = next
	s.changed = true
}

// Changed reports whether Set changed the state since the last settle
func (s InteractionState) Changed() bool {
	return s.changed
}

func (s *InteractionState) settle() {
	s.changed = false
}

// UiImage is the texture of an image node; nil draws the tint as a box
type UiImage struct {
	Texture *ebiten.Image
}

// Root orders top level trees. Higher layers paint above lower ones, and
// within a layer later roots paint above earlier ones.
type Root struct {
	Layer int
	Order uint64
}

var (
	NodeComponent            = donburi.NewComponentType[ComputedNode]()
	StyleComponent           = donburi.NewComponentType[Style]()
	BackgroundColorComponent = donburi.NewComponentType[color.RGBA]()
	VisibilityComponent      = donburi.NewComponentType[Visibility]()
	InteractionComponent     = donburi.NewComponentType[InteractionState]()
	ButtonComponent          = donburi.NewComponentType[struct{}]()
	ImageComponent           = donburi.NewComponentType[UiImage]()
	TextComponent            = donburi.NewComponentType[TextBlock]()
	RootComponent            = donburi.NewComponentType[Root]()

	InteractionStyleComponent           = donburi.NewComponentType[Snapshots[Style]]()
	InteractionBackgroundColorComponent = donburi.NewComponentType[Snapshots[color.RGBA]]()
	InteractionTextStyleComponent       = donburi.NewComponentType[Snapshots[TextStyle]]()
	InteractionVisibilityComponent      = donburi.NewComponentType[Snapshots[Visibility]]()
)
