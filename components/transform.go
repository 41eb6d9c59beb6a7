package components

import (
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is a world space position and a rotation in radians.
type TransformData struct {
	Position gamemath.Vec2
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
