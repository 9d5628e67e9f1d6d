package synthetic

import (
	"math"
	"unicode/utf16"
)

const hashPrime = 31

// hashKey folds the UTF-16 code units of key into a wrapped signed 32-bit hash.
func hashKey(key string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(key)) {
		h = h*hashPrime + int32(c)
	}
	return h
}

// SeedFrom returns a deterministic pseudo-random function of the index, with values in [0,1).
// Not suitable for anything but stable synthetic data.
func SeedFrom(key string) func(i int) float64 {
	h := float64(hashKey(key))
	return func(i int) float64 {
		x := math.Sin(h+float64(i)) * 10000
		return x - math.Floor(x)
	}
}
