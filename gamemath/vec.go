package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the vector type shared by components and systems. Arithmetic uses
// its methods (Add, Sub, MulScalar, Magnitude, Normalized, Rotate); this file
// only adds what it lacks.
type Vec2 = dmath.Vec2

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return dmath.NewVec2(x, y)
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// ToAngle returns the angle of v in radians, measured from +X.
func ToAngle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v by the rotation encoded in the unit vector by (complex multiplication).
// Rotate(FromAngle(a), v) turns v by a radians.
func Rotate(by, v Vec2) Vec2 {
	return Vec2{
		X: by.X*v.X - by.Y*v.Y,
		Y: by.Y*v.X + by.X*v.Y,
	}
}

// AngleTo returns the signed angle in (-π, π] that turns a onto b.
func AngleTo(a, b Vec2) float64 {
	return math.Atan2(a.X*b.Y-a.Y*b.X, a.X*b.X+a.Y*b.Y)
}

// RotateTowards turns v toward target by at most maxAngle radians without
// overshooting. The length of v is preserved; a negative maxAngle turns away.
func RotateTowards(v, target Vec2, maxAngle float64) Vec2 {
	a := AngleTo(v, target)
	abs := math.Abs(a)
	step := math.Max(abs-math.Pi, math.Min(maxAngle, abs))
	if a < 0 {
		step = -step
	}
	return v.Rotate(step)
}

// Clamp limits v to the rectangle [min, max] per axis.
func Clamp(v, min, max Vec2) Vec2 {
	return Vec2{
		X: math.Max(min.X, math.Min(max.X, v.X)),
		Y: math.Max(min.Y, math.Min(max.Y, v.Y)),
	}
}
