package styles

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Kind of an Element
type Kind uint8

const (
	KindFragment Kind = iota
	KindDiv
	KindButton
	KindImage
	KindText
	KindDynamic
)

// Element is a declarative UI tree node. Elements are plain values; nothing
// touches the world until Render lowers them.
type Element struct {
	kind      Kind
	node      Class[NodeBundle]
	textClass Class[TextStyle]
	texture   *ebiten.Image
	text      string
	component Renderer
	children  []Element
}

// Renderer is a user component that renders itself into the world.
// slot holds the children it was given, wrapped in a Fragment.
type Renderer interface {
	Render(b *Builder, slot Element) donburi.Entity
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(b *Builder, slot Element) donburi.Entity

func (f RendererFunc) Render(b *Builder, slot Element) donburi.Entity {
	return f(b, slot)
}

func (e Element) Kind() Kind          { return e.kind }
func (e Element) Children() []Element { return e.children }

// Fragment groups children without creating a node of its own
func Fragment(children ...Element) Element {
	return Element{kind: KindFragment, children: children}
}

// Div is a styled container
func Div(class Class[NodeBundle], children ...Element) Element {
	return Element{kind: KindDiv, node: class, children: children}
}

// Button is a styled container that reacts to the pointer and blocks it
// from nodes below
func Button(class Class[NodeBundle], children ...Element) Element {
	return Element{kind: KindButton, node: class, children: children}
}

// Img is a styled texture; the background color tints it
func Img(class Class[NodeBundle], texture *ebiten.Image, children ...Element) Element {
	return Element{kind: KindImage, node: class, texture: texture, children: children}
}

// Text is a single section of styled text
func Text(class Class[TextStyle], value string) Element {
	return Element{kind: KindText, textClass: class, text: value}
}

// El embeds a user component
func El(r Renderer) Element {
	return Element{kind: KindDynamic, component: r}
}

// Slot embeds a user component and hands it children
func Slot(r Renderer, children ...Element) Element {
	return Element{kind: KindDynamic, component: r, children: children}
}
