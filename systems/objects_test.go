package systems

import (
	"testing"

	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDespawnOutOfBoundsEdges(t *testing.T) {
	edge := cfg.Arena.DespawnExtent
	spawners := map[string]func(e *ecs.ECS, pos gamemath.Vec2) *donburi.Entry{
		"enemy": func(e *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
			return factory.CreateEnemyBullet(e, testBullet(5), pos)
		},
		"player": func(e *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
			return factory.CreatePlayerBullet(e, testBullet(6), pos, 2, false, false)
		},
	}
	tests := []struct {
		name string
		pos  gamemath.Vec2
		kept bool
	}{
		{"inside", gamemath.V(edge-1, 0), true},
		{"right edge", gamemath.V(edge, 0), true},
		{"left edge", gamemath.V(-edge, 0), true},
		{"top edge", gamemath.V(0, edge), true},
		{"corner", gamemath.V(-edge, -edge), true},
		{"past right", gamemath.V(edge+1, 0), false},
		{"past left", gamemath.V(-edge-1, 0), false},
		{"past top", gamemath.V(0, edge+1), false},
		{"past bottom", gamemath.V(0, -edge-1), false},
	}

	for owner, spawn := range spawners {
		for _, tt := range tests {
			t.Run(owner+"/"+tt.name, func(t *testing.T) {
				e := newTestECS(t)
				bullet := spawn(e, tt.pos).Entity()

				DespawnOutOfBounds(e)

				if got := e.World.Valid(bullet); got != tt.kept {
					t.Errorf("bullet at %v kept = %v, want %v", tt.pos, got, tt.kept)
				}
			})
		}
	}
}
