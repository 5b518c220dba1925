package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame snapshot of mouse and keyboard state. It is sampled
// once at the start of Update so systems never query ebiten directly.
type Input struct {
	MouseX, MouseY    float64
	MouseDown         bool
	MouseJustPressed  bool
	MouseJustReleased bool

	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
	buf         []ebiten.Key
}

func NewInput() *Input {
	return &Input{
		pressed:     make(map[ebiten.Key]bool),
		justPressed: make(map[ebiten.Key]bool),
	}
}

func (in *Input) sample() {
	x, y := ebiten.CursorPosition()
	in.MouseX, in.MouseY = float64(x), float64(y)
	in.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.MouseJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	clear(in.pressed)
	clear(in.justPressed)
	in.buf = inpututil.AppendPressedKeys(in.buf[:0])
	for _, k := range in.buf {
		in.pressed[k] = true
	}
	in.buf = inpututil.AppendJustPressedKeys(in.buf[:0])
	for _, k := range in.buf {
		in.justPressed[k] = true
	}
}

// SetKeys replaces the keyboard state; used by headless drivers and tests
func (in *Input) SetKeys(pressed, justPressed []ebiten.Key) {
	clear(in.pressed)
	clear(in.justPressed)
	for _, k := range pressed {
		in.pressed[k] = true
	}
	for _, k := range justPressed {
		in.pressed[k] = true
		in.justPressed[k] = true
	}
}

func (in *Input) Pressed(k ebiten.Key) bool {
	return in.pressed[k]
}

func (in *Input) JustPressed(k ebiten.Key) bool {
	return in.justPressed[k]
}

// AnyPressed reports whether any of keys is held
func (in *Input) AnyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.pressed[k] {
			return true
		}
	}
	return false
}

// AnyJustPressed reports whether any of keys went down this frame
func (in *Input) AnyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.justPressed[k] {
			return true
		}
	}
	return false
}

// Axis maps two opposing key groups to -1, 0 or 1
func (in *Input) Axis(negative, positive []ebiten.Key) float64 {
	v := 0.0
	if in.AnyPressed(negative...) {
		v--
	}
	if in.AnyPressed(positive...) {
		v++
	}
	return v
}

// Cursor is the desired OS cursor shape; the app applies it after each frame
type Cursor struct {
	Shape ebiten.CursorShapeType
}

// KeyJustPressed gates a system on any of keys going down this frame
func KeyJustPressed(keys ...ebiten.Key) Condition {
	return func(a *App) bool {
		return MustGetResource[*Input](a.Resources).AnyJustPressed(keys...)
	}
}

// KeyPressed gates a system on any of keys being held
func KeyPressed(keys ...ebiten.Key) Condition {
	return func(a *App) bool {
		return MustGetResource[*Input](a.Resources).AnyPressed(keys...)
	}
}
