package styles

import "fmt"

// Interaction is the pointer state of a node
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	}
	return fmt.Sprintf("Interaction(%d)", uint8(i))
}

// ApplyStyle is a style token over the styleable state T. Each method
// mutates t in place for one pass of a class; plain atoms only act in the
// base pass.
type ApplyStyle[T any] interface {
	Style(t *T)
	StyleHover(t *T)
	StylePressed(t *T)
}

// atom is a stateless token that acts in the base pass only
type atom[T any] func(*T)

func (a atom[T]) Style(t *T)                          { a(t) }
func (atom[T]) StyleHover(*T)                         {}
func (atom[T]) StylePressed(*T)                       {}
func node(f func(*NodeBundle)) ApplyStyle[NodeBundle] { return atom[NodeBundle](f) }
func txt(f func(*TextStyle)) ApplyStyle[TextStyle]    { return atom[TextStyle](f) }

// Atom makes a custom base-pass token
func Atom[T any](f func(*T)) ApplyStyle[T] {
	return atom[T](f)
}

type hover[T any] struct{ inner ApplyStyle[T] }

func (hover[T]) Style(*T)          {}
func (h hover[T]) StyleHover(t *T) { h.inner.Style(t) }
func (hover[T]) StylePressed(*T)   {}

type pressed[T any] struct{ inner ApplyStyle[T] }

func (pressed[T]) Style(*T)            {}
func (pressed[T]) StyleHover(*T)       {}
func (p pressed[T]) StylePressed(t *T) { p.inner.Style(t) }

// Hover applies the base effect of inner in the hover pass only
func Hover[T any](inner ApplyStyle[T]) ApplyStyle[T] {
	return hover[T]{inner: inner}
}

// Pressed applies the base effect of inner in the pressed pass only
func Pressed[T any](inner ApplyStyle[T]) ApplyStyle[T] {
	return pressed[T]{inner: inner}
}

// Class maps a base value and an interaction to the styled value
type Class[T any] func(base T, i Interaction) T

// Cn composes tokens into a class. Passes are cumulative: every interaction
// runs the base pass of all tokens in order, hovered and pressed then run
// their hover pass, and pressed finally runs its pressed pass. Later tokens
// overwrite earlier ones within a pass.
func Cn[T any](tokens ...ApplyStyle[T]) Class[T] {
	return func(base T, i Interaction) T {
		for _, tok := range tokens {
			tok.Style(&base)
		}
		if i == InteractionHovered || i == InteractionPressed {
			for _, tok := range tokens {
				tok.StyleHover(&base)
			}
		}
		if i == InteractionPressed {
			for _, tok := range tokens {
				tok.StylePressed(&base)
			}
		}
		return base
	}
}

// Snapshots holds a class resolved for each interaction
type Snapshots[T any] struct {
	None, Hover, Pressed T
}

// Resolve evaluates class against base for all three interactions
func Resolve[T any](class Class[T], base T) Snapshots[T] {
	if class == nil {
		return Snapshots[T]{None: base, Hover: base, Pressed: base}
	}
	return Snapshots[T]{
		None:    class(base, InteractionNone),
		Hover:   class(base, InteractionHovered),
		Pressed: class(base, InteractionPressed),
	}
}

// For selects the snapshot for i
func (s Snapshots[T]) For(i Interaction) T {
	switch i {
	case InteractionNone:
		return s.None
	case InteractionHovered:
		return s.Hover
	case InteractionPressed:
		return s.Pressed
	}
	panic(fmt.Sprintf("styles: no snapshot for %v", i))
}

func mapSnapshots[T, U any](s Snapshots[T], f func(T) U) Snapshots[U] {
	return Snapshots[U]{None: f(s.None), Hover: f(s.Hover), Pressed: f(s.Pressed)}
}
