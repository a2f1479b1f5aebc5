package gamemath

// Decay moves speed toward zero by amount without crossing it.
func Decay(speed, amount float64) float64 {
	if speed > 0 {
		speed -= amount
		if speed < 0 {
			return 0
		}
		return speed
	}
	if speed < 0 {
		speed += amount
		if speed > 0 {
			return 0
		}
	}
	return speed
}

// Clamp clamps a value to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Accelerate pushes speed in the direction of sign (+1 or -1).
// When speed currently points the other way the faster reversing rate is used.
func Accelerate(speed, sign, accel, reverse, dt float64) float64 {
	if speed*sign < 0 {
		return speed + sign*reverse*dt
	}
	return speed + sign*accel*dt
}
