package systems

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player by the input axes. Diagonals are not faster
// than straight lines, and holding alt-fire slows movement down for precise
// dodging. The player never leaves the arena.
func UpdatePlayer(ecs *ecs.ECS) {
	input := GetInput(ecs)
	player, ok := FindPlayer(ecs)
	if input == nil || !ok {
		return
	}

	speed := components.Player.Get(player).Speed
	if input.AltFire && cfg.Player.AltFireSlowdown > 0 {
		speed /= cfg.Player.AltFireSlowdown
	}

	dir := gamemath.V(input.MoveX, input.MoveY)
	if dir.Magnitude() > 1 {
		dir = dir.Normalized()
	}

	t := components.Transform.Get(player)
	radius := components.Collider.Get(player).Radius
	arena := gamemath.RectFromCenter(gamemath.Vec2{}, cfg.Arena.Width, cfg.Arena.Height).Shrink(radius)
	t.Position = gamemath.Clamp(t.Position.Add(dir.MulScalar(speed)), arena.Min, arena.Max)
}

// UpdateInvulnerability counts down the grace period after a lost life.
func UpdateInvulnerability(ecs *ecs.ECS) {
	player, ok := FindPlayer(ecs)
	if !ok || !player.HasComponent(components.Invulnerability) {
		return
	}
	inv := components.Invulnerability.Get(player)
	inv.Timer.Tick(dt())
	if inv.Timer.Finished() {
		player.RemoveComponent(components.Invulnerability)
	}
}

// IsInvulnerable reports whether the player is inside the grace period.
func IsInvulnerable(player *donburi.Entry) bool {
	return player != nil && player.Valid() && player.HasComponent(components.Invulnerability)
}
