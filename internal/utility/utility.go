package utility

import (
	"fmt"
	"math/rand"
)

// Intn is the part of *math/rand.Rand colour picking needs.
type Intn interface {
	Intn(n int) int
}

// RandomColorHex returns a #rrggbb colour whose channels stay clear of pure
// black and white so targets remain visible on any background.
func RandomColorHex() string {
	return ColorFrom(globalRand{})
}

// ColorFrom is RandomColorHex drawing from rng, for reproducible sessions.
func ColorFrom(rng Intn) string {
	r := rng.Intn(248) + 4
	g := rng.Intn(248) + 4
	b := rng.Intn(248) + 4
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }
