package deck

import (
	rand "math/rand/v2"
	"slices"
)

// Deck is the finite multiset of cards in play for one round. It is built
// from a fixed composition so that extras policies (ditching low cards,
// padding with jokers) survive a Reset between rounds.
type Deck struct {
	cards       []Card
	composition []Card
	rng         *rand.Rand
}

// Standard52 returns the 52-card composition, clubs through spades.
func Standard52() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// New creates a standard 52-card deck using the provided RNG for shuffling.
// The RNG is required to make randomness explicit and testing deterministic.
func New(rng *rand.Rand) *Deck {
	return NewFromComposition(rng, Standard52())
}

// NewFromComposition creates a deck over an arbitrary card multiset.
func NewFromComposition(rng *rand.Rand, composition []Card) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{
		composition: slices.Clone(composition),
		rng:         rng,
	}
	d.Reset()
	return d
}

// Composition returns a copy of the full card multiset the deck deals from.
func (d *Deck) Composition() []Card {
	return slices.Clone(d.composition)
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DealN deals up to n cards from the deck.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Remaining returns the undealt cards. The caller must not mutate the slice.
func (d *Deck) Remaining() []Card {
	return d.cards
}

// TakeRemaining drains and returns every undealt card (kitty handling).
func (d *Deck) TakeRemaining() []Card {
	cards := d.cards
	d.cards = nil
	return cards
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Reset restores the deck to its full composition and shuffles it.
func (d *Deck) Reset() {
	d.cards = slices.Clone(d.composition)
	d.Shuffle()
}
