package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/arenabots/config"
)

// WeaponInstance is one owned weapon with its magazine state. Times are
// match milliseconds.
type WeaponInstance struct {
	Type        cfg.WeaponType
	Ammo        int
	Reserve     int
	Reloading   bool
	ReloadStart float64
	LastFire    float64
}

// NewWeapon returns a full weapon of type t.
func NewWeapon(t cfg.WeaponType) WeaponInstance {
	s := cfg.Weapons.Stats[t]
	return WeaponInstance{Type: t, Ammo: s.MagSize, Reserve: s.TotalAmmo, LastFire: -s.FireRate}
}

// Stats returns the static data of the weapon.
func (w *WeaponInstance) Stats() cfg.WeaponStats {
	return cfg.Weapons.Stats[w.Type]
}

// LoadoutData holds the weapons a combatant carries.
type LoadoutData struct {
	Weapons []WeaponInstance
	Current int
	Recoil  float64 // Radians added to the aim angle
}

// Weapon returns the equipped weapon, nil when the loadout is empty.
func (l *LoadoutData) Weapon() *WeaponInstance {
	if l.Current < 0 || l.Current >= len(l.Weapons) {
		return nil
	}
	return &l.Weapons[l.Current]
}

// Switch equips slot i when it exists and differs from the current one.
func (l *LoadoutData) Switch(i int) bool {
	if i < 0 || i >= len(l.Weapons) || i == l.Current {
		return false
	}
	l.Current = i
	l.Recoil = 0
	return true
}

// Pickup adds a weapon: owned types get reserve ammo capped at twice the
// total, new types fill a free slot or replace the current one.
func (l *LoadoutData) Pickup(t cfg.WeaponType) {
	s, ok := cfg.Weapons.Stats[t]
	if !ok {
		return
	}
	for i := range l.Weapons {
		if l.Weapons[i].Type == t {
			l.Weapons[i].Reserve = min(l.Weapons[i].Reserve+s.TotalAmmo, s.TotalAmmo*2)
			return
		}
	}
	if len(l.Weapons) < cfg.Player.MaxWeapons {
		l.Weapons = append(l.Weapons, NewWeapon(t))
		l.Current = len(l.Weapons) - 1
	} else {
		l.Weapons[l.Current] = NewWeapon(t)
	}
	l.Recoil = 0
}

var Loadout = donburi.NewComponentType[LoadoutData]()
