package components

import "github.com/yohamta/donburi"

// Rand is the random source used for spawn nodes and particle spread.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type RNGData struct {
	Rand Rand
}

var RNG = donburi.NewComponentType[RNGData]()
