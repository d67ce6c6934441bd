package item

import "math"

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float64
}

// Lerp blends the receiver towards target by t.
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// Dist returns the euclidean distance to target.
func (v Vec2) Dist(target Vec2) float64 {
	return math.Hypot(target.X-v.X, target.Y-v.Y)
}
