package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Crossed reports whether an edge at y was reached from above during a
// vertical move from prev to now.
func Crossed(prev, now, y float64) bool {
	return prev <= y && now >= y
}
