package factory

import (
	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broad-phase space covering the despawn rectangle.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	size := int(cfg.Arena.DespawnExtent * 2)
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(size, size, cfg.Arena.CellSize, cfg.Arena.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(e).Add(obj)
}
