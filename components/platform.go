package components

import (
	cfg "github.com/automoto/stickybomb/config"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Kind cfg.PlatformKind
}

var Platform = donburi.NewComponentType[PlatformData]()
