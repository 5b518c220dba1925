package game

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/engine"
)

var (
	spriteQuery = donburi.NewQuery(filter.Contains(TransformComponent, SpriteComponent))
	bodyQuery   = donburi.NewQuery(filter.Contains(TransformComponent, BodyComponent))
)

var (
	colliderColor = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	triggerColor  = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
)

// roomOrigin centers the room in the viewport
func roomOrigin(a *engine.App) (float64, float64) {
	vp := engine.MustGetResource[*engine.Viewport](a.Resources)
	g := engine.MustGetResource[*Settings](a.Resources).Geometry
	return (float64(vp.Width) - g.Width) / 2, (float64(vp.Height) - g.Height) / 2
}

type drawable struct {
	tr Transform
	sp Sprite
}

// DrawWorld draws every sprite back to front by Z
func DrawWorld(a *engine.App, screen *ebiten.Image) {
	ox, oy := roomOrigin(a)
	var list []drawable
	spriteQuery.Each(a.World, func(entry *donburi.Entry) {
		list = append(list, drawable{*TransformComponent.Get(entry), *SpriteComponent.Get(entry)})
	})
	slices.SortStableFunc(list, func(x, y drawable) int { return x.sp.Z - y.sp.Z })

	for _, d := range list {
		r := CenteredRect(d.tr.Pos, d.sp.Size.X, d.sp.Size.Y)
		if d.sp.Texture == nil {
			vector.DrawFilledRect(screen, float32(ox+r.X), float32(oy+r.Y), float32(r.W), float32(r.H), d.sp.Color, false)
			continue
		}
		b := d.sp.Texture.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
		op.GeoM.Translate(ox+r.X, oy+r.Y)
		screen.DrawImage(d.sp.Texture, op)
	}
}

// DrawColliders outlines every collision body
func DrawColliders(a *engine.App, screen *ebiten.Image) {
	ox, oy := roomOrigin(a)
	bodyQuery.Each(a.World, func(entry *donburi.Entry) {
		body := BodyComponent.Get(entry)
		if body.Shape == nil {
			return
		}
		clr := colliderColor
		if body.Shape.Tags().Has(tagDoor) {
			clr = triggerColor
		}
		r := CenteredRect(TransformComponent.Get(entry).Pos, body.Size.X, body.Size.Y)
		vector.StrokeRect(screen, float32(ox+r.X), float32(oy+r.Y), float32(r.W), float32(r.H), 1, clr, false)
	})
}
