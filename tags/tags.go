package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Bomb     = donburi.NewTag().SetName("Bomb")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvOneWay = "oneway"
	ResolvPlayer = "Player"
	ResolvBomb   = "Bomb"
)
