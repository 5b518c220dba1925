package styles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Unit of a Val
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Val is a length along one axis
type Val struct {
	Unit  Unit
	Value float64
}

var Auto = Val{}

func Px(v float64) Val      { return Val{Unit: UnitPx, Value: v} }
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Resolve returns the length in pixels against parent, or ok=false for auto
func (v Val) Resolve(parent float64) (float64, bool) {
	switch v.Unit {
	case UnitPx:
		return v.Value, true
	case UnitPercent:
		return parent * v.Value / 100, true
	}
	return 0, false
}

// UiRect holds per-edge pixel lengths
type UiRect struct {
	Left, Right, Top, Bottom float64
}

func All(v float64) UiRect { return UiRect{v, v, v, v} }
func (r UiRect) Width() float64 { return r.Left + r.Right }
func (r UiRect) Height() float64 { return r.Top + r.Bottom }
func (r UiRect) Add(o UiRect) UiRect {
	return UiRect{r.Left + o.Left, r.Right + o.Right, r.Top + o.Top, r.Bottom + o.Bottom}
}

type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
)

type AlignItems uint8

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsStart
	AlignItemsCenter
	AlignItemsEnd
)

type JustifyContent uint8

const (
	JustifyContentStart JustifyContent = iota
	JustifyContentCenter
	JustifyContentEnd
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

// Style is the layout description of a node. The zero value is a flex row
// sized by its content.
type Style struct {
	Display        Display
	FlexDirection  FlexDirection
	FlexGrow       float64
	Width, Height  Val
	Padding        UiRect
	Margin         UiRect
	Gap            float64
	AlignItems     AlignItems
	JustifyContent JustifyContent
}

// Visibility of a node; Inherited follows the parent
type Visibility uint8

const (
	VisibilityInherited Visibility = iota
	VisibilityHidden
	VisibilityVisible
)

// NodeBundle is the styleable state of a box node
type NodeBundle struct {
	Style           Style
	BackgroundColor color.RGBA
	Visibility      Visibility
}

var (
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black       = color.RGBA{0, 0, 0, 0xff}
	Transparent = color.RGBA{}
)

// DivDefaults is the base bundle of a div: transparent background
func DivDefaults() NodeBundle {
	return NodeBundle{BackgroundColor: Transparent}
}

// ButtonDefaults is the base bundle of buttons and images: white background
// (for images the background tints the texture)
func ButtonDefaults() NodeBundle {
	return NodeBundle{BackgroundColor: White}
}

// TextStyle is the styleable state of a text node. A nil Font falls back to
// the UiFont resource.
type TextStyle struct {
	Font     *text.GoTextFaceSource
	FontSize float64
	Color    color.RGBA
}

// TextDefaults is the base text style: 12px white
func TextDefaults() TextStyle {
	return TextStyle{FontSize: 12, Color: White}
}

// TextSection is a run of text drawn with one style
type TextSection struct {
	Value string
	Style TextStyle
}

// TextBlock is the content of a text node
type TextBlock struct {
	Sections []TextSection
}

// String concatenates all sections
func (t TextBlock) String() string {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Value)
	}
	b := make([]byte, 0, n)
	for _, s := range t.Sections {
		b = append(b, s.Value...)
	}
	return string(b)
}
