package game

import "math"

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (a Vec2) Add(b Vec2) Vec2     { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2     { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64        { return math.Hypot(a.X, a.Y) }
func (a Vec2) Dist(b Vec2) float64 { return a.Sub(b).Len() }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
