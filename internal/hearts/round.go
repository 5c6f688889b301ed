package hearts

import (
	"github.com/lox/heartsforbots/internal/deck"
)

// Phase is the round controller's state.
type Phase int

const (
	PhaseDealing Phase = iota
	PhasePassing
	PhaseTrickPlay
	PhaseScoring
	PhaseRoundEnd
	PhaseGameEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePassing:
		return "passing"
	case PhaseTrickPlay:
		return "trick-play"
	case PhaseScoring:
		return "scoring"
	case PhaseRoundEnd:
		return "round-end"
	case PhaseGameEnd:
		return "game-end"
	default:
		return "unknown"
	}
}

// RoundState is the per-round mutable state, created fresh each deal and
// owned exclusively by the round controller.
type RoundState struct {
	Phase        Phase
	Dealer       int // seat that dealt this round
	HeartsBroken bool
	Trick        *deck.Hand
	TrickLeader  int // seat that led the current trick
	Turn         int // seat expected to act next
	TricksPlayed int
	Pass         PassRound
	Hands        []*deck.Hand
	PassBuffers  []*deck.Hand
	Taken        []*deck.Hand
	Kitty        []deck.Card
	KittyAwarded bool
	// LowClubOut is true once the designated low club has been played (or
	// was never dealt to a hand), releasing the lead obligation.
	LowClubOut bool

	passed []bool // seats that have committed a pass buffer
}

func newRoundState(numPlayers, dealer int) *RoundState {
	r := &RoundState{
		Phase:       PhaseDealing,
		Dealer:      dealer,
		Trick:       deck.NewHand(),
		Hands:       make([]*deck.Hand, numPlayers),
		PassBuffers: make([]*deck.Hand, numPlayers),
		Taken:       make([]*deck.Hand, numPlayers),
		passed:      make([]bool, numPlayers),
	}
	for i := 0; i < numPlayers; i++ {
		r.Hands[i] = deck.NewHand()
		r.PassBuffers[i] = deck.NewHand()
		r.Taken[i] = deck.NewHand()
	}
	return r
}

// eldest returns the seat left of the dealer, which leads the round.
func (r *RoundState) eldest() int {
	return (r.Dealer + 1) % len(r.Hands)
}

// allPassed reports whether every seat has committed its pass buffer.
func (r *RoundState) allPassed() bool {
	for _, p := range r.passed {
		if !p {
			return false
		}
	}
	return true
}

// trickFull reports whether every active seat has played to the trick.
func (r *RoundState) trickFull() bool {
	return r.Trick.Len() == len(r.Hands)
}

// handsEmpty reports whether every hand has been played out.
func (r *RoundState) handsEmpty() bool {
	for _, h := range r.Hands {
		if !h.Empty() {
			return false
		}
	}
	return true
}

// cardCount totals every card in hands, pass buffers, taken piles, the
// trick, and the kitty. It must equal the deck composition size at every
// instant between intents.
func (r *RoundState) cardCount() int {
	n := r.Trick.Len() + len(r.Kitty)
	for i := range r.Hands {
		n += r.Hands[i].Len() + r.PassBuffers[i].Len() + r.Taken[i].Len()
	}
	return n
}
