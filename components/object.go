package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the body of an entity in the arena collision space.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal middle of the body.
func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }

// CenterY returns the vertical middle of the body.
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

var Object = donburi.NewComponentType[ObjectData]()
