package game

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"RoomCrawler/engine"
)

var (
	tagWall   = resolv.NewTag("wall")
	tagDoor   = resolv.NewTag("door")
	tagPlayer = resolv.NewTag("player")
	tagBullet = resolv.NewTag("bullet")
	tagItem   = resolv.NewTag("item")
)

const cellSize = 32

// Space is the collision world and the entity owning each shape
type Space struct {
	*resolv.Space
	owners map[resolv.IShape]donburi.Entity
}

func NewSpace(g Geometry) *Space {
	return &Space{
		Space:  resolv.NewSpace(int(g.Width), int(g.Height), cellSize, cellSize),
		owners: make(map[resolv.IShape]donburi.Entity),
	}
}

// AddBody creates a rectangle for r, tags it and registers it for e
func (s *Space) AddBody(w donburi.World, e donburi.Entity, r Rect, tags ...resolv.Tags) {
	sh := resolv.NewRectangleFromTopLeft(r.X, r.Y, r.W, r.H)
	for _, t := range tags {
		sh.Tags().Set(t)
	}
	s.Add(sh)
	s.owners[sh] = e
	engine.Insert(w.Entry(e), BodyComponent, Body{Shape: sh, Size: Vec{r.W, r.H}})
}

// Owner returns the entity a shape belongs to
func (s *Space) Owner(sh resolv.IShape) (donburi.Entity, bool) {
	e, ok := s.owners[sh]
	return e, ok
}

// RemoveBody unregisters the shape of entry, if any
func (s *Space) RemoveBody(entry *donburi.Entry) {
	if !entry.HasComponent(BodyComponent) {
		return
	}
	sh := BodyComponent.Get(entry).Shape
	if sh == nil {
		return
	}
	s.Remove(sh)
	delete(s.owners, sh)
}

// Bodies returns the number of registered shapes
func (s *Space) Bodies() int {
	return len(s.owners)
}

// Despawn removes every entity carrying marker and its collision shapes
func (s *Space) Despawn(w donburi.World, marker *donburi.ComponentType[struct{}]) {
	marker.Each(w, func(entry *donburi.Entry) {
		s.RemoveBody(entry)
	})
	engine.DespawnWith(w, marker)
}

// MoveBy moves the body of entry by d and slides it out of anything tagged
// solid. Returns the displacement actually applied.
func (s *Space) MoveBy(entry *donburi.Entry, d Vec, solid resolv.Tags) Vec {
	sh := BodyComponent.Get(entry).Shape
	before := sh.Position()
	sh.Move(d.X, d.Y)
	sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: sh.SelectTouchingCells(1).FilterShapes().ByTags(solid),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			sh.Move(set.MTV.X, set.MTV.Y)
			return true
		},
	})
	after := sh.Position()
	return Vec{after.X - before.X, after.Y - before.Y}
}

// Touching returns the owners of shapes tagged tag that overlap entry's body
func (s *Space) Touching(entry *donburi.Entry, tag resolv.Tags) []donburi.Entity {
	sh := BodyComponent.Get(entry).Shape
	var out []donburi.Entity
	sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: sh.SelectTouchingCells(1).FilterShapes().ByTags(tag),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if e, ok := s.owners[set.OtherShape]; ok {
				out = append(out, e)
			}
			return true
		},
	})
	return out
}
