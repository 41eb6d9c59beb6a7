package gamemath

// Circle is a collision circle in world space.
type Circle struct {
	Pos    Vec2
	Radius float64
}

func NewCircle(radius float64, pos Vec2) Circle {
	return Circle{Pos: pos, Radius: radius}
}

// Hits reports whether two circles overlap. Touching circles do not hit.
func (c Circle) Hits(other Circle) bool {
	return c.Pos.Distance(other.Pos)-(c.Radius+other.Radius) < 0
}

// Rect is an axis aligned rectangle given by its corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds a rectangle of the given size centered on c.
func RectFromCenter(c Vec2, w, h float64) Rect {
	return Rect{
		Min: Vec2{X: c.X - w/2, Y: c.Y - h/2},
		Max: Vec2{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Shrink moves every edge inwards by d.
func (r Rect) Shrink(d float64) Rect {
	return Rect{
		Min: Vec2{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Vec2{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}
