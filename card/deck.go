package card

import (
	"math/rand"
	"time"
)

// CanonicalDeck returns the 52 cards of a standard deck in a fixed,
// reproducible order: spades, hearts, clubs, diamonds, ace-to-king within
// each suit. Any shuffled deck is a permutation of this slice.
func CanonicalDeck() CardList {
	cards := make(CardList, 0, 52)
	for _, suitBase := range []Card{0x00, 0x10, 0x20, 0x30} {
		for rank := Card(1); rank <= 13; rank++ {
			cards = append(cards, suitBase+rank)
		}
	}
	return cards
}

// DeterministicRNG is the seeded pseudo-random generator fixed by the
// engine's determinism contract: the same seed string must yield the same
// deck permutation in every conformant implementation, so neither the
// hashing step nor the generator may be swapped for a "better" one.
type DeterministicRNG struct {
	state uint64
}

// NewDeterministicRNG derives the generator's initial state from the seed
// bytes: h starts at 0 and is updated as h = (h*31 + byte) using wrapping
// 32-bit arithmetic, a simple polynomial hash.
func NewDeterministicRNG(seed string) *DeterministicRNG {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return &DeterministicRNG{state: uint64(h)}
}

// Float64 advances the generator by one step and returns a value in
// [0, 1). The recurrence is a classic linear-congruential generator:
// h' = (h*9301 + 49297) mod 233280.
func (r *DeterministicRNG) Float64() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280
}

// ShuffleSeeded performs an in-place Fisher-Yates shuffle driven by a
// seeded DeterministicRNG: i runs from n-1 down to 1, swapping index i
// with floor(rand*(i+1)).
func ShuffleSeeded(cards CardList, seed string) {
	rng := NewDeterministicRNG(seed)
	for i := len(cards) - 1; i >= 1; i-- {
		j := int(rng.Float64() * float64(i+1))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ShuffleRandom performs a Fisher-Yates shuffle using a time-seeded,
// non-reproducible source. Used only when the host doesn't supply a seed.
func ShuffleRandom(cards CardList) {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	src.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// NewShuffledDeck returns a freshly shuffled 52-card deck. When seed is
// non-empty the deterministic algorithm is used; callers that need
// cross-implementation reproducibility must always pass a seed.
func NewShuffledDeck(seed string) CardList {
	cards := CanonicalDeck()
	if seed != "" {
		ShuffleSeeded(cards, seed)
	} else {
		ShuffleRandom(cards)
	}
	return cards
}
