package systems

import (
	"image/color"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broad-phase body in the space. project maps world
// coordinates to screen pixels and scale is the world to screen ratio.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image, project func(gamemath.Vec2) (float32, float32), scale float32) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	off := components.SpaceOffset()

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvPlayerBullet):
			c = color.RGBA{0, 255, 0, 255}
		}

		// Space Y grows with world Y, so the top edge is at Y+H.
		x, y := project(gamemath.V(obj.X-off, obj.Y+obj.H-off))
		w := float32(obj.W) * scale
		h := float32(obj.H) * scale

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
