package systems

import (
	"math"
	"testing"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const eps = 1e-9

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateEncounter(e, "test", 1)
	factory.CreateSpace(e)
	return e
}

func newTestEnemy(e *ecs.ECS, pos gamemath.Vec2, health int) *donburi.Entry {
	return factory.CreateEnemy(e, factory.BossDef{
		Name:     "dummy",
		Health:   health,
		Radius:   50,
		Start:    pos,
		FirstLeg: pos,
	})
}

func testBullet(radius float64) components.BulletSpawner {
	return components.NewBulletSpawner(radius, components.SpriteData{Key: "test"})
}

func bulletsOf(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(components.Lifetime)).Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b gamemath.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func runTicks(e *ecs.ECS, n int, systems ...ecs.System) {
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(e)
		}
	}
}
