package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers Current by amount, stopping at zero.
func (h *HealthData) Damage(amount int) {
	if amount >= h.Current {
		h.Current = 0
		return
	}
	h.Current -= amount
}

var Health = donburi.NewComponentType[HealthData]()
