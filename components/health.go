package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Fraction returns current over max health.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 1
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
