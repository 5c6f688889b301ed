package hearts

import (
	"github.com/lox/heartsforbots/internal/deck"
)

// Legality checks validate proposed intents against the current round state.
// They never mutate anything; callers apply the intent only after a nil
// return.

var protectedSpades = deck.MustParseCards("QS KS AS")

// checkPass validates a nominated pass against the passer's hand. Every
// nominated card must be held (counting copies for duplicate jokers), and
// the high spades are protected under keep-spades.
func (g *Game) checkPass(seat int, cards []deck.Card) error {
	want := g.round.Pass.Count
	if len(cards) != want {
		return IllegalPassError{Want: want, Got: len(cards)}
	}
	hand := g.round.Hands[seat]
	nominated := make(map[deck.Card]int)
	for _, c := range cards {
		nominated[c]++
		if hand.Count(c) < nominated[c] {
			return CardNotHeldError{Card: c}
		}
		if g.rules.opts.KeepSpades {
			for _, p := range protectedSpades {
				if c == p {
					return IllegalPassError{Card: c, Want: want, Got: want}
				}
			}
		}
	}
	return nil
}

// checkPlay validates a proposed play against the current trick.
func (g *Game) checkPlay(seat int, card deck.Card) error {
	hand := g.round.Hands[seat]
	if !hand.Contains(card) {
		return CardNotHeldError{Card: card}
	}

	if g.round.Trick.Empty() {
		return g.checkLead(hand, card)
	}

	led := g.round.Trick.At(0).Suit
	if card.Suit != led && hand.HasSuit(led) {
		return SuitNotFollowedError{Card: card, Led: led}
	}
	return nil
}

// checkLead validates the card that would open a trick. The low-club
// obligation overrides free choice entirely; otherwise hearts need the gate
// open and jokers may be banned, each waived when the hand has no
// alternative.
func (g *Game) checkLead(hand *deck.Hand, card deck.Card) error {
	if g.rules.hasLowClub && !g.round.LowClubOut && hand.Contains(g.rules.lowClub) && card != g.rules.lowClub {
		return IllegalLeadError{Card: card, Violation: LeadLowClubRequired, Required: g.rules.lowClub}
	}

	alternatives := 0
	for _, c := range hand.Cards() {
		if c.IsJoker() && g.rules.opts.JokersFol {
			continue
		}
		if c.Suit == deck.Hearts && !g.round.HeartsBroken {
			continue
		}
		alternatives++
	}
	if alternatives == 0 {
		return nil
	}

	if card.IsJoker() && g.rules.opts.JokersFol {
		return IllegalLeadError{Card: card, Violation: LeadJokerBanned}
	}
	if card.Suit == deck.Hearts && !g.round.HeartsBroken {
		return IllegalLeadError{Card: card, Violation: LeadHeartsNotBroken}
	}
	return nil
}
