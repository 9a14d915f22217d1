package utility

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestRandomColorHex(t *testing.T) {
	for i := 0; i < 100; i++ {
		color := RandomColorHex()
		if !hexPattern.MatchString(color) {
			t.Errorf("RandomColorHex() = %q, want matching #rrggbb pattern", color)
		}
	}
}

func TestColorFrom_ChannelRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		color := ColorFrom(rng)
		for c := 1; c < 7; c += 2 {
			v, err := strconv.ParseUint(color[c:c+2], 16, 8)
			if err != nil {
				t.Fatalf("parsing %q: %v", color, err)
			}
			if v < 4 || v > 251 {
				t.Errorf("channel %d of %q = %d, want within [4, 251]", c/2, color, v)
			}
		}
	}
}

type stubIntn []int

func (s *stubIntn) Intn(n int) int {
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func TestColorFrom_Bounds(t *testing.T) {
	low := stubIntn{0, 0, 0}
	if got := ColorFrom(&low); got != "#040404" {
		t.Errorf("ColorFrom(min) = %q, want #040404", got)
	}
	high := stubIntn{247, 247, 247}
	if got := ColorFrom(&high); got != "#fbfbfb" {
		t.Errorf("ColorFrom(max) = %q, want #fbfbfb", got)
	}
}

func TestColorFrom_Seeded(t *testing.T) {
	a := ColorFrom(rand.New(rand.NewSource(42)))
	b := ColorFrom(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
}
