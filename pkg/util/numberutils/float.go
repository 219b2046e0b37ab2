package numberutils

import (
	"math"
	"time"
)

// Round rounds value to the given number of decimal places.
func Round(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}

// Milliseconds returns d in milliseconds rounded to two decimal places.
func Milliseconds(d time.Duration) float64 {
	return Round(float64(d.Microseconds())/1000, 2)
}

// Seconds returns d in seconds rounded to two decimal places.
func Seconds(d time.Duration) float64 {
	return Round(d.Seconds(), 2)
}
