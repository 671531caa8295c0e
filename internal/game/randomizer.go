package game

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer chooses the kind of each upcoming piece.
type Randomizer interface {
	Next() Kind
}

// Uniform draws every piece independently with equal probability.
// There is no protection against droughts or repeats.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

func (u *Uniform) Next() Kind {
	return Kind(u.rng.IntN(KindCount))
}

// Bag deals all seven kinds in a shuffled order before reshuffling.
type Bag struct {
	rng *rand.Rand
	bag []Kind
}

func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) Next() Kind {
	if len(b.bag) == 0 {
		b.bag = []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}

	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// NewRandomizer builds the randomizer registered under name, seeded with seed.
func NewRandomizer(name string, seed uint64) (Randomizer, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	switch name {
	case "", "uniform":
		return NewUniform(rng), nil
	case "bag":
		return NewBag(rng), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}
