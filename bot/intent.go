package bot

// NoWeaponSwitch is the WeaponSlot value meaning keep the current weapon.
const NoWeaponSwitch = -1

// Intent is one tick of bot input, consumed by the player simulation exactly
// like a human input sample.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
	Sprint bool
	Shoot  bool
	Reload bool
	Dash   bool
	Shield bool
	Invis  bool

	// Aim is the aim angle in radians
	Aim float64
	// WeaponSlot is the slot to switch to, NoWeaponSwitch otherwise
	WeaponSlot int
}

// reset clears every flag. The aim angle is rewritten later in the tick.
func (in *Intent) reset() {
	*in = Intent{Aim: in.Aim, WeaponSlot: NoWeaponSwitch}
}

// Moving reports whether a horizontal movement flag is set.
func (in Intent) Moving() bool {
	return in.Left || in.Right
}

// Direction returns -1, 0 or 1 for the horizontal movement flags.
func (in Intent) Direction() int {
	switch {
	case in.Right && !in.Left:
		return 1
	case in.Left && !in.Right:
		return -1
	}
	return 0
}

func (in *Intent) move(dir int) {
	in.Right = dir > 0
	in.Left = dir < 0
}
