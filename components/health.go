package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

// Damage lowers health, never below zero.
func (h *HealthData) Damage(amount int) {
	h.Current = max(h.Current-amount, 0)
}

func (h *HealthData) Restore() {
	h.Current = h.Max
}

var Health = donburi.NewComponentType[HealthData]()
