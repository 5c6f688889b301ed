package hearts

import (
	"fmt"
	"strings"

	"github.com/lox/heartsforbots/internal/deck"
)

// The engine rejects illegal intents with typed errors so callers can report
// them back to the acting player and re-prompt. None of these mutate state.

// CardNotHeldError reports a nominated card absent from the actor's hand.
type CardNotHeldError struct {
	Card deck.Card
}

func (e CardNotHeldError) Error() string {
	return fmt.Sprintf("you do not have the %s", e.Card.Name())
}

// IllegalPassError reports a protected card nominated for passing, or the
// wrong number of cards.
type IllegalPassError struct {
	Card deck.Card // zero when the count is wrong
	Want int
	Got  int
}

func (e IllegalPassError) Error() string {
	if e.Want != e.Got {
		return fmt.Sprintf("you must pass exactly %d cards, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("you may not pass the %s", e.Card.Name())
}

// LeadViolation identifies why a lead was rejected.
type LeadViolation int

const (
	LeadHeartsNotBroken LeadViolation = iota
	LeadJokerBanned
	LeadLowClubRequired
)

// IllegalLeadError reports a card that may not lead the trick.
type IllegalLeadError struct {
	Card      deck.Card
	Violation LeadViolation
	Required  deck.Card // set for LeadLowClubRequired
}

func (e IllegalLeadError) Error() string {
	switch e.Violation {
	case LeadJokerBanned:
		return "you cannot lead with a joker"
	case LeadLowClubRequired:
		return fmt.Sprintf("you must lead the %s", e.Required.Name())
	default:
		return "you cannot lead with a heart until they are broken"
	}
}

// SuitNotFollowedError reports an off-suit play while the actor still held a
// card of the suit led.
type SuitNotFollowedError struct {
	Card deck.Card
	Led  deck.Suit
}

func (e SuitNotFollowedError) Error() string {
	return fmt.Sprintf("you must play a card of the suit led (%s)", e.Led.Name())
}

// InvalidDirectionChoiceError reports a dealer's choice outside the set of
// topologies legal for the current player count.
type InvalidDirectionChoiceError struct {
	Choice string
	Valid  []string
}

func (e InvalidDirectionChoiceError) Error() string {
	return fmt.Sprintf("%q is not a valid choice, choose one of %s", e.Choice, strings.Join(e.Valid, ", "))
}
