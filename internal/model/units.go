package model

import "math"

// epsilon is the tolerance used when comparing lengths in meters.
const epsilon = 1e-9

// CentimetersToMeters converts a width entered in cm to meters.
func CentimetersToMeters(cm float64) float64 {
	return cm / 100.0
}

// MetersToCentimeters converts meters to cm for display.
func MetersToCentimeters(m float64) float64 {
	return m * 100.0
}

// IsPositive reports whether v is a finite number greater than zero.
func IsPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// NearlyEqual compares two lengths within the package tolerance.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
