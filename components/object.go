package components

import (
	"github.com/automoto/charmove2d/physics"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its level geometry in the physics space.
type ObjectData struct {
	*physics.Surface
}

var Object = donburi.NewComponentType[ObjectData]()
