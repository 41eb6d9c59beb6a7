package components

import "github.com/yohamta/donburi"

// WeaponData is a player gun. Weapons tagged AltFire belong to the
// alternate group.
type WeaponData struct {
	Name     string
	Owner    donburi.Entity
	Timer    Timer
	AmmoCost int
	Bullet   BulletSpawner
	Damage   int
	Salted   bool
	Phasing  bool
}

var Weapon = donburi.NewComponentType[WeaponData]()
