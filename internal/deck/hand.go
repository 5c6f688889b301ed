package deck

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is an ordered sequence of cards owned by exactly one holder at a
// time. The same container backs player hands, pass buffers, tricks and
// taken piles; moving a card between two hands is the only way cards change
// ownership, which keeps the round-wide card count conserved.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: slices.Clone(cards)}
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Empty returns true if the hand holds no cards.
func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the held cards in order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// At returns the card at position i.
func (h *Hand) At(i int) Card {
	return h.cards[i]
}

// Contains reports whether the hand holds the card.
func (h *Hand) Contains(c Card) bool {
	return slices.Contains(h.cards, c)
}

// Count returns how many copies of the card the hand holds. Padded decks can
// carry duplicate jokers.
func (h *Hand) Count(c Card) int {
	n := 0
	for _, held := range h.cards {
		if held == c {
			n++
		}
	}
	return n
}

// Add appends a card to the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// AddAll appends cards to the hand, preserving their order.
func (h *Hand) AddAll(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// Remove removes the first copy of the card. Returns false if not held.
func (h *Hand) Remove(c Card) bool {
	i := slices.Index(h.cards, c)
	if i < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return true
}

// Shift moves a card from this hand to another, appending it so the
// receiver's insertion order reflects arrival order.
func (h *Hand) Shift(c Card, to *Hand) error {
	if !h.Remove(c) {
		return fmt.Errorf("hand does not hold the %s", c.Name())
	}
	to.Add(c)
	return nil
}

// TakeAll drains the hand and returns its cards in order.
func (h *Hand) TakeAll() []Card {
	cards := h.cards
	h.cards = nil
	return cards
}

// Sort orders the hand by suit then rank for display.
func (h *Hand) Sort() {
	slices.SortFunc(h.cards, func(a, b Card) int {
		if Less(a, b) {
			return -1
		}
		if Less(b, a) {
			return 1
		}
		return 0
	})
}

// HasSuit reports whether the hand holds any card of the suit.
func (h *Hand) HasSuit(s Suit) bool {
	for _, c := range h.cards {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// CardsOfSuit returns the held cards of the suit, in hand order.
func (h *Hand) CardsOfSuit(s Suit) []Card {
	var cards []Card
	for _, c := range h.cards {
		if c.Suit == s {
			cards = append(cards, c)
		}
	}
	return cards
}

// String renders the hand as space-separated card tokens.
func (h *Hand) String() string {
	tokens := make([]string, len(h.cards))
	for i, c := range h.cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
