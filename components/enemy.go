package components

import (
	"github.com/automoto/spellcard/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name string
}

var Enemy = donburi.NewComponentType[EnemyData]()

// RandomMovementData moves the boss between random waypoints. Each leg is a
// pair of eased tweens, one per axis.
type RandomMovementData struct {
	NextMove  Timer
	MoveStart gamemath.Vec2
	MoveEnd   gamemath.Vec2
	MoveTime  float64

	tweenX *gween.Tween
	tweenY *gween.Tween
}

var RandomMovement = donburi.NewComponentType[RandomMovementData]()

// StartLeg begins easing from the current end point to next.
func (m *RandomMovementData) StartLeg(next gamemath.Vec2) {
	m.MoveStart = m.MoveEnd
	m.MoveEnd = next
	m.tweenX = gween.New(float32(m.MoveStart.X), float32(m.MoveEnd.X), float32(m.MoveTime), ease.InOutSine)
	m.tweenY = gween.New(float32(m.MoveStart.Y), float32(m.MoveEnd.Y), float32(m.MoveTime), ease.InOutSine)
}

// Advance steps the current leg and returns the new position. ok is false
// when no leg is in progress.
func (m *RandomMovementData) Advance(dt float64) (pos gamemath.Vec2, ok bool) {
	if m.tweenX == nil || m.tweenY == nil {
		return gamemath.Vec2{}, false
	}
	x, doneX := m.tweenX.Update(float32(dt))
	y, doneY := m.tweenY.Update(float32(dt))
	if doneX && doneY {
		m.tweenX, m.tweenY = nil, nil
	}
	return gamemath.V(float64(x), float64(y)), true
}
