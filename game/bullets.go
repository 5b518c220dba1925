package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"RoomCrawler/engine"
)

const (
	BulletSize     = 64
	BulletHitbox   = 8
	BulletRange    = 1000
	BulletLifespan = 2
)

var bulletColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}

// TrajectoryPoint is a position reached at time fraction T in [0, 1]
type TrajectoryPoint struct {
	Pos Vec
	T   float64
}

// Trajectory is a polyline traversed over an entity's lifetime
type Trajectory struct {
	Points []TrajectoryPoint
}

// Straight runs length pixels from from along dir
func Straight(from, dir Vec, length float64) Trajectory {
	return Trajectory{Points: []TrajectoryPoint{
		{Pos: from, T: 0},
		{Pos: from.Add(dir.Normalize().Scale(length)), T: 1},
	}}
}

// At interpolates the position at time fraction t
func (tr Trajectory) At(t float64) Vec {
	pts := tr.Points
	if len(pts) == 0 {
		return Vec{}
	}
	if t <= pts[0].T {
		return pts[0].Pos
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if t > b.T {
			continue
		}
		span := b.T - a.T
		if span <= 0 {
			return b.Pos
		}
		return a.Pos.Lerp(b.Pos, (t-a.T)/span)
	}
	return pts[len(pts)-1].Pos
}

var bulletQuery = donburi.NewQuery(filter.Contains(
	BulletComponent, TransformComponent, TrajectoryComponent, LifetimeComponent, BodyComponent,
))

// SpawnBullet fires a bullet from pos along dir
func SpawnBullet(w donburi.World, space *Space, tex *ebiten.Image, pos, dir Vec) donburi.Entity {
	if dir.IsZero() {
		dir = Vec{1, 0}
	}
	e := w.Create(
		BulletComponent,
		GameEntityComponent,
		TransformComponent,
		SpriteComponent,
		TrajectoryComponent,
		LifetimeComponent,
	)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, Transform{Pos: pos, Facing: dir.Normalize()})
	SpriteComponent.SetValue(entry, Sprite{
		Size:    Vec{BulletSize, BulletSize},
		Color:   bulletColor,
		Texture: tex,
		Z:       2,
	})
	TrajectoryComponent.SetValue(entry, Straight(pos, dir, BulletRange))
	LifetimeComponent.SetValue(entry, Lifetime{Span: BulletLifespan})
	space.AddBody(w, e, CenteredRect(pos, BulletHitbox, BulletHitbox), tagBullet)
	return e
}

// MoveBullets advances lifetimes and moves bullets along their trajectory
func MoveBullets(a *engine.App) {
	dt := engine.MustGetResource[*engine.Time](a.Resources).Delta
	bulletQuery.Each(a.World, func(entry *donburi.Entry) {
		life := LifetimeComponent.Get(entry)
		life.Current += dt
		tr := TransformComponent.Get(entry)
		next := TrajectoryComponent.Get(entry).At(life.Fraction())
		d := next.Sub(tr.Pos)
		BodyComponent.Get(entry).Shape.Move(d.X, d.Y)
		tr.Pos = next
	})
}

// KillBullets despawns bullets at the end of their life or inside a wall
func KillBullets(a *engine.App) {
	space := engine.MustGetResource[*Space](a.Resources)
	var dead []donburi.Entity
	bulletQuery.Each(a.World, func(entry *donburi.Entry) {
		if LifetimeComponent.Get(entry).Expired() || len(space.Touching(entry, tagWall)) > 0 {
			dead = append(dead, entry.Entity())
		}
	})
	for _, e := range dead {
		space.RemoveBody(a.World.Entry(e))
		engine.DespawnRecursive(a.World, e)
	}
}
