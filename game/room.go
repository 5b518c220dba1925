package game

import (
	"fmt"

	"RoomCrawler/config"
)

// Side of a room
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

var Sides = [...]Side{SideTop, SideBottom, SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	}
	return SideLeft
}

// Step is the grid offset of the neighbor behind this side. Rooms with a
// larger y lie above.
func (s Side) Step() config.Coord {
	switch s {
	case SideTop:
		return config.Coord{X: 0, Y: 1}
	case SideBottom:
		return config.Coord{X: 0, Y: -1}
	case SideLeft:
		return config.Coord{X: -1, Y: 0}
	}
	return config.Coord{X: 1, Y: 0}
}

// Geometry lays out the walls and doors of a room in room space, with the
// origin at the top-left corner
type Geometry struct {
	Width, Height, Thickness, DoorWidth float64
}

func NewGeometry(r config.Room) Geometry {
	return Geometry{
		Width:     r.Width,
		Height:    r.Height,
		Thickness: r.WallThickness,
		DoorWidth: r.DoorWidth,
	}
}

// Walls returns two segments per side around a centered door gap
func (g Geometry) Walls() []Rect {
	t, d := g.Thickness, g.DoorWidth
	hw := (g.Width - d) / 2
	hh := (g.Height - d) / 2
	return []Rect{
		{0, 0, hw, t},                       // top left
		{g.Width - hw, 0, hw, t},            // top right
		{0, g.Height - t, hw, t},            // bottom left
		{g.Width - hw, g.Height - t, hw, t}, // bottom right
		{0, 0, t, hh},                       // left upper
		{0, g.Height - hh, t, hh},           // left lower
		{g.Width - t, 0, t, hh},             // right upper
		{g.Width - t, g.Height - hh, t, hh}, // right lower
	}
}

// Door returns the gap on side s
func (g Geometry) Door(s Side) Rect {
	t, d := g.Thickness, g.DoorWidth
	switch s {
	case SideTop:
		return Rect{(g.Width - d) / 2, 0, d, t}
	case SideBottom:
		return Rect{(g.Width - d) / 2, g.Height - t, d, t}
	case SideLeft:
		return Rect{0, (g.Height - d) / 2, t, d}
	}
	return Rect{g.Width - t, (g.Height - d) / 2, t, d}
}

// Interior is the walkable floor inside the walls
func (g Geometry) Interior() Rect {
	t := g.Thickness
	return Rect{t, t, g.Width - 2*t, g.Height - 2*t}
}

// Entry is where a body of the given size is placed after coming in
// through side s: centered on the door, just clear of it
func (g Geometry) Entry(s Side, size float64) Vec {
	inset := g.Thickness + size/2 + 1
	switch s {
	case SideTop:
		return Vec{g.Width / 2, inset}
	case SideBottom:
		return Vec{g.Width / 2, g.Height - inset}
	case SideLeft:
		return Vec{inset, g.Height / 2}
	}
	return Vec{g.Width - inset, g.Height / 2}
}

// Dungeon is the grid of rooms and the room the player is in
type Dungeon struct {
	rooms   map[config.Coord]config.RoomDef
	Current config.Coord
}

func NewDungeon(cfg config.Dungeon) *Dungeon {
	d := &Dungeon{rooms: make(map[config.Coord]config.RoomDef, len(cfg.Rooms)), Current: cfg.Start}
	for _, r := range cfg.Rooms {
		d.rooms[r.At] = r
	}
	return d
}

// Room returns the definition at c
func (d *Dungeon) Room(c config.Coord) (config.RoomDef, bool) {
	r, ok := d.rooms[c]
	return r, ok
}

// Neighbor returns the room behind side s of the current room
func (d *Dungeon) Neighbor(s Side) (config.RoomDef, bool) {
	step := s.Step()
	return d.Room(config.Coord{X: d.Current.X + step.X, Y: d.Current.Y + step.Y})
}

// Floors lists floor textures of every room
func (d *Dungeon) Floors() []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range d.rooms {
		if r.Floor != "" && !seen[r.Floor] {
			seen[r.Floor] = true
			out = append(out, r.Floor)
		}
	}
	return out
}
