package components

import (
	"github.com/automoto/charmove2d/physics"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[physics.Space]()
