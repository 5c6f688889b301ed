package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit. The ordering (clubs low, spades high) is the
// display sort order for hands, not a trick-taking precedence.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit token used in card tokens.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Name returns the full suit name.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Symbol returns the suit glyph for display.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits lists all four suits in display order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank represents a card rank. Jokers rank below every natural card so they
// can never win a trick.
type Rank int

const (
	Joker Rank = 0
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// String returns the single-character rank token.
func (r Rank) String() string {
	switch r {
	case Joker:
		return "X"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Name returns the full rank name.
func (r Rank) Name() string {
	switch r {
	case Joker:
		return "Joker"
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Ranks lists the natural ranks from Two up to Ace.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card. Cards are immutable values; two cards are
// equal iff rank and suit match. Jokers carry a suit so that padded decks
// still divide cleanly and a led joker has a suit to follow.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token for the card (e.g. "QS", "XC").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long name of the card (e.g. "Queen of Spades").
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// IsJoker returns true for joker cards of either suit.
func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

// IsRed returns true if the card is red.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

var cardRe = regexp.MustCompile(`(?i)\b([x2-9tjqka])([cdhs])\b`)

var rankTokens = map[byte]Rank{
	'X': Joker, '2': Two, '3': Three, '4': Four, '5': Five, '6': Six,
	'7': Seven, '8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen,
	'K': King, 'A': Ace,
}

var suitTokens = map[byte]Suit{'C': Clubs, 'D': Diamonds, 'H': Hearts, 'S': Spades}

// ParseCard parses a single two-character card token like "AH" or "xc".
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) != 2 {
		return Card{}, fmt.Errorf("%q is not a card token", token)
	}
	rank, ok := rankTokens[t[0]]
	if !ok {
		return Card{}, fmt.Errorf("%q is not a card rank", string(t[0]))
	}
	suit, ok := suitTokens[t[1]]
	if !ok {
		return Card{}, fmt.Errorf("%q is not a card suit", string(t[1]))
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// FindCards extracts every card token from free-form text, in order.
func FindCards(text string) []Card {
	var cards []Card
	for _, m := range cardRe.FindAllString(text, -1) {
		card, err := ParseCard(m)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

// MustParseCard parses a card token or panics. For tests and static tables.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards parses a space-separated list of card tokens or panics.
func MustParseCards(tokens string) []Card {
	var cards []Card
	for _, t := range strings.Fields(tokens) {
		cards = append(cards, MustParseCard(t))
	}
	return cards
}

// Less orders cards for hand display: by suit (clubs, diamonds, hearts,
// spades), then by rank.
func Less(a, b Card) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	return a.Rank < b.Rank
}
