package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Speed float64
}

var Player = donburi.NewComponentType[PlayerData]()

type LivesData struct {
	Lives int
}

var Lives = donburi.NewComponentType[LivesData]()

type AmmoData struct {
	Ammo int
}

var Ammo = donburi.NewComponentType[AmmoData]()

// InvulnerabilityData is present while the player cannot lose lives.
type InvulnerabilityData struct {
	Timer Timer
}

var Invulnerability = donburi.NewComponentType[InvulnerabilityData]()
