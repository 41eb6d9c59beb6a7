package scenes

import (
	"math"

	"github.com/automoto/spellcard/encounter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type action int

const (
	actionLeft action = iota
	actionRight
	actionUp
	actionDown
	actionFire
	actionAltFire
	actionSelect
	actionBack
	actionPause
	actionDebug
)

// binding is a key or gamepad button mapped to an action
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = map[action]binding{
	actionLeft: {
		keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	actionRight: {
		keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	actionUp: {
		keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	actionDown: {
		keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	actionFire: {
		keys:    []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionAltFire: {
		keys:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	actionSelect: {
		keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionBack: {
		keys:    []ebiten.Key{ebiten.KeyEscape},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	actionPause: {
		keys:    []ebiten.Key{ebiten.KeyP},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	actionDebug: {
		keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// Deadzone for analog stick input
const analogDeadzone = 0.25

func pressed(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justPressed(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// pollInput reads the keyboard and the first gamepad into encounter input.
// World +Y points up, so the up key yields a positive MoveY.
func pollInput() encounter.Input {
	var in encounter.Input
	if pressed(actionLeft) {
		in.MoveX--
	}
	if pressed(actionRight) {
		in.MoveX++
	}
	if pressed(actionUp) {
		in.MoveY++
	}
	if pressed(actionDown) {
		in.MoveY--
	}

	if in.MoveX == 0 && in.MoveY == 0 {
		if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
			x := ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
			y := ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickVertical)
			if math.Hypot(x, y) > analogDeadzone {
				in.MoveX, in.MoveY = x, -y
			}
		}
	}

	in.Fire = pressed(actionFire)
	in.AltFire = pressed(actionAltFire)
	return in
}
