package arena

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/arenabots/shared/leveldata"
)

const framesPerSecond = 60

// Platform is a piece of arena geometry registered in the collision space.
type Platform struct {
	Object *resolv.Object
	OneWay bool

	originX, originY float64
	moveX, moveY     float64

	// motion yields the phase in [0, 1]; nil for static platforms
	motion *gween.Sequence
	phase  float64
}

func newPlatform(r leveldata.PlatformRect) *Platform {
	tag := tagFor(r)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))

	p := &Platform{
		Object:  obj,
		OneWay:  r.OneWay,
		originX: r.X,
		originY: r.Y,
	}
	if !r.Moving() {
		return p
	}

	// One cycle takes 1/speed frames. The phase eases up then back down,
	// which traces the same curve as (sin+1)/2.
	half := float32(1 / (r.Speed * framesPerSecond) / 2)
	p.moveX = r.MoveX
	p.moveY = r.MoveY
	p.motion = gween.NewSequence(
		gween.New(0, 1, half, ease.InOutSine),
		gween.New(1, 0, half, ease.InOutSine),
	)
	// Start at the midpoint so the first frame matches sin(0)
	p.advance(float64(half) / 2)
	return p
}

func tagFor(r leveldata.PlatformRect) string {
	if r.OneWay {
		return platformTag
	}
	return solidTag
}

// Moving reports whether the platform follows a motion path.
func (p *Platform) Moving() bool {
	return p.motion != nil
}

// Phase returns the motion phase in [0, 1].
func (p *Platform) Phase() float64 {
	return p.phase
}

// Contains reports whether the point lies on or inside the platform.
func (p *Platform) Contains(x, y float64) bool {
	o := p.Object
	return x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H
}

func (p *Platform) advance(dt float64) {
	if p.motion == nil {
		return
	}
	v, _, done := p.motion.Update(float32(dt))
	p.phase = float64(v)
	if done {
		p.motion.Reset()
	}

	p.Object.X = p.originX + p.moveX*(2*p.phase-1)
	p.Object.Y = p.originY + p.moveY*p.phase
	p.Object.Update()
}
