package game

import "math"

// Vec is a 2D vector in world pixels, y pointing down
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec             { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec             { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec       { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64              { return math.Hypot(v.X, v.Y) }
func (v Vec) IsZero() bool              { return v.X == 0 && v.Y == 0 }
func (v Vec) Lerp(o Vec, t float64) Vec { return v.Add(o.Sub(v).Scale(t)) }

// Normalize returns the unit vector, or zero for the zero vector
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Rect is an axis aligned box given by its top-left corner
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CenteredRect builds a rect of size w*h around c
func CenteredRect(c Vec, w, h float64) Rect {
	return Rect{c.X - w/2, c.Y - h/2, w, h}
}
