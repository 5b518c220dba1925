package styles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"RoomCrawler/engine"
)

// Draw paints the UI stack back to front
func Draw(a *engine.App, screen *ebiten.Image) {
	stack := engine.MustGetResource[*UiStack](a.Resources)
	var font *text.GoTextFaceSource
	if f, ok := engine.GetResource[*UiFont](a.Resources); ok {
		font = f.Source
	}

	for _, e := range stack.Entities {
		if !a.World.Valid(e) {
			continue
		}
		entry := a.World.Entry(e)
		n := *NodeComponent.Get(entry)
		if !n.Visible || n.Width <= 0 || n.Height <= 0 {
			continue
		}

		var bg color.RGBA
		if entry.HasComponent(BackgroundColorComponent) {
			bg = *BackgroundColorComponent.Get(entry)
		}

		switch {
		case entry.HasComponent(ImageComponent):
			drawImage(screen, n, ImageComponent.Get(entry).Texture, bg)
		case bg.A > 0:
			vector.DrawFilledRect(screen, float32(n.X), float32(n.Y), float32(n.Width), float32(n.Height), bg, false)
		}

		if entry.HasComponent(TextComponent) {
			drawText(screen, n, *TextComponent.Get(entry), font)
		}
	}
}

func drawImage(screen *ebiten.Image, n ComputedNode, tex *ebiten.Image, tint color.RGBA) {
	if tex == nil {
		if tint.A > 0 {
			vector.DrawFilledRect(screen, float32(n.X), float32(n.Y), float32(n.Width), float32(n.Height), tint, false)
		}
		return
	}
	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	op.GeoM.Translate(n.X, n.Y)
	op.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(tex, op)
}

func drawText(screen *ebiten.Image, n ComputedNode, t TextBlock, fallback *text.GoTextFaceSource) {
	x, y := n.X, n.Y
	lineH := 0.0
	for _, sec := range t.Sections {
		src := sec.Style.Font
		if src == nil {
			src = fallback
		}
		for i, part := range splitLines(sec.Value) {
			if i > 0 {
				x = n.X
				y += lineH
				lineH = 0
			}
			lineH = max(lineH, sec.Style.FontSize*LineHeight)
			if part == "" {
				continue
			}
			if src == nil {
				ebitenutil.DebugPrintAt(screen, part, int(x), int(y))
			} else {
				op := &text.DrawOptions{}
				op.GeoM.Translate(x, y)
				op.ColorScale.ScaleWithColor(sec.Style.Color)
				text.Draw(screen, part, &text.GoTextFace{Source: src, Size: sec.Style.FontSize}, op)
			}
			x += Advance(part, sec.Style, fallback)
		}
	}
}
