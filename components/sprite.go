package components

import "github.com/yohamta/donburi"

// SpriteData names the visual of an entity. Renderers map the key to an image
// or a color; the simulation only carries it through.
type SpriteData struct {
	Key  string
	Size float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
