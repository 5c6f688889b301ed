package hearts

import (
	"github.com/lox/heartsforbots/internal/deck"
)

var ladyCard = deck.MustParseCard("QS")

// SeatScore is one player's scoring breakdown for a round.
type SeatScore struct {
	Seat        int
	Hearts      int  // hearts taken
	HeartPoints int  // points from hearts under the configured scheme
	TookLady    bool // took the queen of spades
	Jokers      int  // jokers taken
	TookBonus   bool // took the configured bonus card
	NoTricks    bool // won no tricks and the bonus applied
	Raw         int  // card-based points before moon/no-tricks adjustment
	Round       int  // final round score (may be negative)
	Total       int  // cumulative score after flooring at zero
}

// RoundReport is the scoring engine's output for one round.
type RoundReport struct {
	Seats     []SeatScore
	Shooter   int  // seat that shot the moon, -1 if none
	MoonValue int  // value applied when someone shot
	MoonAsOld bool // whether the old-style adjustment was used
	GameOver  bool
}

// scoreRound converts taken piles into round points, applies the
// shoot-the-moon and no-tricks adjustments, and folds the result into the
// cumulative scores, flooring each at zero.
func (g *Game) scoreRound() *RoundReport {
	n := len(g.players)
	report := &RoundReport{Seats: make([]SeatScore, n), Shooter: -1}

	// Raw card-based points per seat.
	for seat := 0; seat < n; seat++ {
		s := SeatScore{Seat: seat}
		for _, c := range g.round.Taken[seat].Cards() {
			switch {
			case c.Suit == deck.Hearts && !c.IsJoker():
				s.Hearts++
				s.HeartPoints += g.rules.heartPoints[c.Rank]
			case c == ladyCard:
				s.TookLady = true
			case c.IsJoker():
				s.Jokers++
			}
			if g.rules.hasBonus && c == g.rules.bonus {
				s.TookBonus = true
			}
		}
		s.Raw = s.HeartPoints
		if s.TookLady {
			s.Raw += g.rules.opts.LadyScore
		}
		if g.rules.opts.JokerPoints {
			s.Raw += s.Jokers
		}
		if g.rules.hasBonus && s.TookBonus {
			s.Raw = max(0, s.Raw-10)
		}
		s.Round = s.Raw

		// Shooting the moon means taking every penalty card in the deck.
		if s.Raw == g.rules.maxScore && (s.TookBonus || !g.rules.hasBonus) {
			report.Shooter = seat
		}

		// The no-tricks bonus replaces the card-based score outright.
		if g.round.Taken[seat].Empty() && g.rules.opts.NoTricks > 0 {
			s.NoTricks = true
			s.Round = -g.rules.opts.NoTricks
		}
		report.Seats[seat] = s
	}

	// Moon adjustment.
	if report.Shooter >= 0 {
		moonValue := g.rules.maxScore
		if g.rules.hasBonus {
			moonValue += 10
		}
		report.MoonValue = moonValue

		maxTotal := 0
		for _, t := range g.scores {
			maxTotal = max(maxTotal, t)
		}
		useOld := g.rules.opts.Moon == MoonOld ||
			(g.rules.opts.Moon == MoonAuto && maxTotal+moonValue < g.rules.opts.End)
		report.MoonAsOld = useOld

		if useOld {
			for seat := range report.Seats {
				if seat == report.Shooter {
					report.Seats[seat].Round = 0
				} else {
					report.Seats[seat].Round += moonValue
				}
			}
		} else {
			report.Seats[report.Shooter].Round = -moonValue
		}
	}

	// Fold into cumulative scores, floored at zero.
	for seat := range report.Seats {
		g.scores[seat] = max(g.scores[seat]+report.Seats[seat].Round, 0)
		report.Seats[seat].Total = g.scores[seat]
	}

	report.GameOver = g.gameOver()
	return report
}

// gameOver reports whether any cumulative score has reached the end
// threshold.
func (g *Game) gameOver() bool {
	for _, s := range g.scores {
		if s >= g.rules.opts.End {
			return true
		}
	}
	return false
}

// winners returns the seats holding the lowest cumulative score. More than
// one seat means the game is a draw.
func (g *Game) winners() []int {
	best := g.scores[0]
	for _, s := range g.scores[1:] {
		best = min(best, s)
	}
	var seats []int
	for seat, s := range g.scores {
		if s == best {
			seats = append(seats, seat)
		}
	}
	return seats
}
