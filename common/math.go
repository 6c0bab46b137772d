// Package common holds small scalar helpers shared by the motion and camera
// code.
package common

import "github.com/chewxy/math32"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1]. NaN maps to 0.
func Clamp01(t float32) float32 {
	switch {
	case t != t || t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// WrapAngle maps a to [-π, π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}
