package bot

import (
	cfg "github.com/automoto/arenabots/config"
)

// BestWeapon returns the slot scoring highest for an engagement at dist.
// Weapons with neither magazine nor reserve ammo are skipped; ties keep the
// earliest slot.
func BestWeapon(weapons []Weapon, dist float64, preferred cfg.RangeClass) (int, bool) {
	scoring := &cfg.Weapons.Scoring
	best, bestScore := -1, -1
	for i, w := range weapons {
		if w.Ammo == 0 && w.Reserve == 0 {
			continue
		}
		if s := scoring.Score(w.Type, dist, preferred); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, best >= 0
}

// pickWeapon requests a switch when a better weapon is owned.
func (a *Agent) pickWeapon(dist float64) {
	self := a.tick.self
	slot, ok := BestWeapon(self.Weapons, dist, a.preferred)
	if ok && slot != self.CurrentWeapon {
		a.intent.WeaponSlot = slot
	}
}
