package hearts

import (
	"github.com/lox/heartsforbots/internal/deck"
)

// TrickResult reports how a trick resolved.
type TrickResult struct {
	Winner      int
	WinningCard deck.Card
	Kitty       []deck.Card // cards awarded alongside the trick, if any
	BrokeHearts bool        // this trick flipped the gate
}

// resolveTrick determines the winner of a full trick, moves the cards (and
// any due kitty) to the winner's taken pile, updates the hearts-broken gate,
// and sets up the next lead.
func (g *Game) resolveTrick() TrickResult {
	r := g.round
	cards := r.Trick.Cards()
	led := cards[0].Suit

	// Highest rank among cards of the suit led; off-suit cards never win.
	bestIdx := 0
	for i, c := range cards {
		if c.Suit == led && c.Rank > cards[bestIdx].Rank {
			bestIdx = i
		}
	}
	winner := (r.TrickLeader + bestIdx) % len(r.Hands)

	res := TrickResult{Winner: winner, WinningCard: cards[bestIdx]}

	containsHeart := false
	for _, c := range cards {
		if c.Suit == deck.Hearts {
			containsHeart = true
			break
		}
	}

	r.Taken[winner].AddAll(r.Trick.TakeAll())

	// Kitty: awarded at most once per round, to the winner of the first
	// trick (policy "first") or of the first trick containing a heart
	// (policy "heart").
	if len(r.Kitty) > 0 && !r.KittyAwarded {
		award := false
		switch g.rules.kittyPolicy {
		case ExtrasFirst:
			award = true
		case ExtrasHeart:
			award = containsHeart
		}
		if award {
			res.Kitty = r.Kitty
			r.Taken[winner].AddAll(r.Kitty)
			r.Kitty = nil
			r.KittyAwarded = true
		}
	}

	// Breaker gate: monotonic, flips at most once per round.
	if !r.HeartsBroken {
		for _, c := range cards {
			if g.rules.breakers[c] {
				r.HeartsBroken = true
				res.BrokeHearts = true
				break
			}
		}
	}

	r.TricksPlayed++
	r.TrickLeader = winner
	r.Turn = winner
	return res
}
