package components

import (
	"github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broad-phase body of a collidable entity. The body's Data
// holds the owning donburi.Entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space. It covers the despawn rectangle,
// shifted so the world origin sits at its center.
var Space = donburi.NewComponentType[resolv.Space]()

// ColliderData is the circle used for exact hit tests.
type ColliderData struct {
	Radius float64
}

var Collider = donburi.NewComponentType[ColliderData]()

// Circle returns the collider centered at pos.
func (c *ColliderData) Circle(pos gamemath.Vec2) gamemath.Circle {
	return gamemath.NewCircle(c.Radius, pos)
}

// SpaceOffset converts world coordinates into space coordinates.
func SpaceOffset() float64 {
	return config.Arena.DespawnExtent
}

// NewCircleObject creates the square broad-phase body around a circle.
func NewCircleObject(pos gamemath.Vec2, radius float64, tags ...string) *resolv.Object {
	off := SpaceOffset()
	return resolv.NewObject(pos.X-radius+off, pos.Y-radius+off, radius*2, radius*2, tags...)
}

// Sync moves the body to pos and refreshes its cells.
func (o *ObjectData) Sync(pos gamemath.Vec2, radius float64) {
	if o == nil || o.Object == nil {
		return
	}
	off := SpaceOffset()
	o.X = pos.X - radius + off
	o.Y = pos.Y - radius + off
	o.W = radius * 2
	o.H = radius * 2
	o.Update()
}
