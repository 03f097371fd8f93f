package config

// WeaponType is the behavioral class of a weapon
type WeaponType string

const (
	WeaponPistol  WeaponType = "pistol"
	WeaponShotgun WeaponType = "shotgun"
	WeaponSMG     WeaponType = "smg"
	WeaponAssault WeaponType = "assault"
	WeaponSniper  WeaponType = "sniper"
	WeaponLaser   WeaponType = "laser"
	WeaponSlime   WeaponType = "slime"
	WeaponRocket  WeaponType = "rocket"
)

// RangeClass is a coarse engagement distance bucket
type RangeClass int

const (
	RangeClose RangeClass = iota
	RangeMid
	RangeFar
)

func (r RangeClass) String() string {
	switch r {
	case RangeClose:
		return "close"
	case RangeMid:
		return "mid"
	default:
		return "far"
	}
}

// WeaponStats is the static data for one weapon
type WeaponStats struct {
	Name        string
	Icon        string
	Type        WeaponType
	Damage      float64
	FireRate    float64 // Milliseconds between shots
	ReloadTime  float64 // Milliseconds
	MagSize     int
	TotalAmmo   int
	Spread      float64
	BulletSpeed float64 // Pixels per frame
	Range       float64
	BulletCount int

	Recoil          float64 // Radians of aim kick per shot
	Gravity         bool    // Bullets drop over distance
	ExplosionRadius float64 // Splash radius, 0 for direct hits only
	SlowFactor      float64 // Victim speed multiplier on hit, 0 for none
}

// WeaponScoringConfig drives bot weapon choice by engagement distance
type WeaponScoringConfig struct {
	CloseRange      float64 // Distances below this use the close bucket
	MidRange        float64 // Distances below this use the mid bucket
	Buckets         map[WeaponType][3]int
	DefaultBucket   [3]int
	PreferenceBonus int
	Preferred       map[RangeClass][]WeaponType
}

// WeaponConfigData holds the weapon tables
type WeaponConfigData struct {
	Stats   map[WeaponType]WeaponStats
	Scoring WeaponScoringConfig
	// Loadout pools handed to bots by preferred range at spawn
	Loadouts map[RangeClass][]WeaponType
	// Every bot starts with this weapon in slot 0
	Sidearm WeaponType
	// Weapons that can lie on the map as pickups
	PickupPool []WeaponType
}

var Weapons WeaponConfigData

func init() {
	Weapons = WeaponConfigData{
		Stats: map[WeaponType]WeaponStats{
			WeaponPistol: {
				Name: "Pistol", Icon: "🔫", Type: WeaponPistol,
				Damage: 18, FireRate: 280, ReloadTime: 1100, MagSize: 12, TotalAmmo: 120,
				Spread: 0.02, BulletSpeed: 28, Range: 520, BulletCount: 1,
				Recoil: 0.03, Gravity: true,
			},
			WeaponShotgun: {
				Name: "Shotgun", Icon: "💥", Type: WeaponShotgun,
				Damage: 9, FireRate: 750, ReloadTime: 2000, MagSize: 6, TotalAmmo: 36,
				Spread: 0.14, BulletSpeed: 22, Range: 260, BulletCount: 8,
				Recoil: 0.09, Gravity: true,
			},
			WeaponSMG: {
				Name: "SMG", Icon: "🔥", Type: WeaponSMG,
				Damage: 11, FireRate: 75, ReloadTime: 1400, MagSize: 30, TotalAmmo: 180,
				Spread: 0.045, BulletSpeed: 24, Range: 380, BulletCount: 1,
				Recoil: 0.015, Gravity: true,
			},
			WeaponAssault: {
				Name: "Assault Rifle", Icon: "🎯", Type: WeaponAssault,
				Damage: 22, FireRate: 115, ReloadTime: 1700, MagSize: 25, TotalAmmo: 150,
				Spread: 0.03, BulletSpeed: 30, Range: 650, BulletCount: 1,
				Recoil: 0.02, Gravity: true,
			},
			WeaponSniper: {
				Name: "Sniper", Icon: "🔭", Type: WeaponSniper,
				Damage: 90, FireRate: 1100, ReloadTime: 2400, MagSize: 5, TotalAmmo: 25,
				Spread: 0.003, BulletSpeed: 50, Range: 1400, BulletCount: 1,
				Recoil: 0.12, Gravity: true,
			},
			WeaponLaser: {
				Name: "Laser Gun", Icon: "⚡", Type: WeaponLaser,
				Damage: 14, FireRate: 55, ReloadTime: 1900, MagSize: 40, TotalAmmo: 200,
				Spread: 0.01, BulletSpeed: 50, Range: 750, BulletCount: 1,
				Recoil: 0.005,
			},
			WeaponSlime: {
				Name: "Slime Blaster", Icon: "🟢", Type: WeaponSlime,
				Damage: 28, FireRate: 480, ReloadTime: 1700, MagSize: 8, TotalAmmo: 48,
				Spread: 0.06, BulletSpeed: 16, Range: 340, BulletCount: 3,
				Recoil: 0.04, Gravity: true, SlowFactor: 0.5,
			},
			WeaponRocket: {
				Name: "Rocket Launcher", Icon: "🚀", Type: WeaponRocket,
				Damage: 70, FireRate: 1500, ReloadTime: 3000, MagSize: 2, TotalAmmo: 10,
				Spread: 0.01, BulletSpeed: 14, Range: 800, BulletCount: 1,
				Recoil: 0.1, ExplosionRadius: 110,
			},
		},
		Scoring: WeaponScoringConfig{
			CloseRange: 120,
			MidRange:   350,
			// close, mid, far
			Buckets: map[WeaponType][3]int{
				WeaponShotgun: {10, 4, 3},
				WeaponSMG:     {8, 7, 3},
				WeaponPistol:  {5, 4, 3},
				WeaponAssault: {3, 10, 6},
				WeaponLaser:   {3, 8, 7},
				WeaponSlime:   {3, 6, 3},
				WeaponSniper:  {3, 4, 10},
				WeaponRocket:  {3, 4, 5},
			},
			DefaultBucket:   [3]int{3, 4, 3},
			PreferenceBonus: 3,
			Preferred: map[RangeClass][]WeaponType{
				RangeClose: {WeaponShotgun, WeaponSMG},
				RangeMid:   {WeaponAssault, WeaponLaser, WeaponSlime},
				RangeFar:   {WeaponSniper, WeaponRocket},
			},
		},
		Loadouts: map[RangeClass][]WeaponType{
			RangeClose: {WeaponShotgun, WeaponSMG},
			RangeMid:   {WeaponAssault, WeaponLaser, WeaponSlime, WeaponSMG},
			RangeFar:   {WeaponSniper, WeaponAssault, WeaponRocket},
		},
		Sidearm: WeaponPistol,
		PickupPool: []WeaponType{
			WeaponShotgun, WeaponSMG, WeaponAssault, WeaponSniper,
			WeaponLaser, WeaponSlime, WeaponRocket,
		},
	}
}

// Bucket returns the range class for dist.
func (s *WeaponScoringConfig) Bucket(dist float64) RangeClass {
	switch {
	case dist < s.CloseRange:
		return RangeClose
	case dist < s.MidRange:
		return RangeMid
	default:
		return RangeFar
	}
}

// Score returns the bucket score for weapon type t at distance dist, including
// the preferred-range bonus.
func (s *WeaponScoringConfig) Score(t WeaponType, dist float64, preferred RangeClass) int {
	bucket, ok := s.Buckets[t]
	if !ok {
		bucket = s.DefaultBucket
	}
	score := bucket[s.Bucket(dist)]
	for _, p := range s.Preferred[preferred] {
		if p == t {
			score += s.PreferenceBonus
			break
		}
	}
	return score
}
