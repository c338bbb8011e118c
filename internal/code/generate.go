package code

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewRand returns a generator source for seed. A zero seed draws from the
// clock, so only non-zero seeds reproduce a game.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x5eed))
}

// Generate produces a secret of the given length using rng as the only
// source of entropy.
//
// With allowRepeats false every position is drawn uniformly from the
// digits not yet used, by rejecting draws that collide with the partial
// sequence. More than ten distinct digits cannot exist, so such lengths
// fail with ErrInvalidLength. With allowRepeats true each position is an
// independent uniform draw.
func Generate(rng *rand.Rand, length int, allowRepeats bool) (Code, error) {
	if length < 1 || (length > MaxLength && !allowRepeats) {
		return Code{}, fmt.Errorf("%w: %d (repeats allowed: %t)", ErrInvalidLength, length, allowRepeats)
	}

	digits := make([]Digit, length)
	if allowRepeats {
		for i := range digits {
			digits[i] = Digit(rng.IntN(Base))
		}
		return Code{digits: digits}, nil
	}

	var used [Base]bool
	for i := range digits {
		for {
			d := Digit(rng.IntN(Base))
			if used[d] {
				continue
			}
			used[d] = true
			digits[i] = d
			break
		}
	}
	return Code{digits: digits}, nil
}
