package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX    float64
	SpeedY    float64
	OnGround  bool
	Facing    float64 // cfg.DirectionLeft or cfg.DirectionRight
	JumpsLeft int
	JumpHeld  bool
	Crouching bool
	Sprinting bool

	// Slime hits scale movement until SlowTimer runs out
	SlowFactor float64
	SlowTimer  float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
