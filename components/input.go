package components

import "github.com/yohamta/donburi"

// InputData is the ambient input state polled once per tick. MoveX and MoveY
// are in [-1, 1] with +Y up.
type InputData struct {
	MoveX   float64
	MoveY   float64
	Fire    bool
	AltFire bool

	// AltFire as seen on the previous tick
	PrevAltFire bool
}

// AltFireChanged reports a press or release of the alt-fire modifier.
func (i *InputData) AltFireChanged() bool {
	return i.AltFire != i.PrevAltFire
}

var Input = donburi.NewComponentType[InputData]()
