package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDealsEveryKindPerRound(t *testing.T) {
	for seed := range uint64(20) {
		r, err := NewRandomizer("bag", seed)
		require.NoError(t, err)

		for round := range 5 {
			seen := make(map[Kind]int)
			for range KindCount {
				seen[r.Next()]++
			}
			assert.Len(t, seen, KindCount, "seed %d round %d", seed, round)
		}
	}
}

func TestUniformStaysInCatalog(t *testing.T) {
	r, err := NewRandomizer("uniform", 7)
	require.NoError(t, err)

	counts := make([]int, KindCount)
	for range 7000 {
		k := r.Next()
		require.GreaterOrEqual(t, int(k), 0)
		require.Less(t, int(k), KindCount)
		counts[k]++
	}

	for k, n := range counts {
		assert.Greater(t, n, 700, "kind %s drawn too rarely", Kind(k))
	}
}

func TestRandomizerSeedIsReproducible(t *testing.T) {
	a, err := NewRandomizer("", 42)
	require.NoError(t, err)
	b, err := NewRandomizer("uniform", 42)
	require.NoError(t, err)

	for range 50 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestUnknownRandomizer(t *testing.T) {
	_, err := NewRandomizer("weighted", 1)
	assert.ErrorContains(t, err, "weighted")
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, CommandLeft, km.Lookup('a'))
	assert.Equal(t, CommandRight, km.Lookup('d'))
	assert.Equal(t, CommandSoftDrop, km.Lookup('s'))
	assert.Equal(t, CommandRotate, km.Lookup('w'))
	assert.Equal(t, CommandHardDrop, km.Lookup(' '))
	assert.Equal(t, CommandQuit, km.Lookup('q'))
	assert.Equal(t, CommandNone, km.Lookup('z'))
	assert.Equal(t, CommandNone, km.Lookup('W'))
	assert.Equal(t, "hard-drop", CommandHardDrop.String())
}
