package systems

import (
	"math"
	"testing"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
)

func TestUpdatePlayerMovement(t *testing.T) {
	speed := cfg.Player.Speed
	diag := speed / math.Sqrt2

	tests := []struct {
		name    string
		moveX   float64
		moveY   float64
		altFire bool
		want    gamemath.Vec2
	}{
		{"idle", 0, 0, false, gamemath.V(0, 0)},
		{"right", 1, 0, false, gamemath.V(speed, 0)},
		{"up", 0, 1, false, gamemath.V(0, speed)},
		{"diagonal is normalized", 1, 1, false, gamemath.V(diag, diag)},
		{"analog below full tilt", 0.5, 0, false, gamemath.V(speed/2, 0)},
		{"alt-fire slows", -1, 0, true, gamemath.V(-speed/cfg.Player.AltFireSlowdown, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := factory.CreatePlayer(e)
			components.Transform.Get(player).Position = gamemath.Vec2{}

			in := GetInput(e)
			in.MoveX, in.MoveY, in.AltFire = tt.moveX, tt.moveY, tt.altFire
			UpdatePlayer(e)

			if got := components.Transform.Get(player).Position; !nearVec(got, tt.want) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerStaysInArena(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e)
	in := GetInput(e)
	in.MoveX, in.MoveY = 1, 1

	runTicks(e, 1000, UpdatePlayer)

	pos := components.Transform.Get(player).Position
	want := gamemath.V(cfg.Arena.Width/2-cfg.Player.Radius, cfg.Arena.Height/2-cfg.Player.Radius)
	if !nearVec(pos, want) {
		t.Errorf("position = %v, want pinned to corner %v", pos, want)
	}
}
