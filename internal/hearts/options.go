package hearts

import (
	"fmt"
	"slices"

	"github.com/lox/heartsforbots/internal/deck"
)

// ExtrasPolicy selects how a deck that doesn't divide evenly is handled.
type ExtrasPolicy string

const (
	ExtrasDitch  ExtrasPolicy = "ditch"  // remove low clubs/diamonds
	ExtrasFirst  ExtrasPolicy = "first"  // kitty to winner of the first trick
	ExtrasHeart  ExtrasPolicy = "heart"  // kitty to winner of the first trick with a heart
	ExtrasJokers ExtrasPolicy = "jokers" // pad the deck with jokers
)

// HeartScheme selects the per-heart point table.
type HeartScheme string

const (
	HeartsOne  HeartScheme = "one"  // 1 point each
	HeartsFace HeartScheme = "face" // J=2 Q=3 K=4 A=5, others 1
	HeartsPips HeartScheme = "pips" // pip count capped at 10, ace 10
	HeartsRank HeartScheme = "rank" // full rank value, J=11 .. A=14
)

// MoonPolicy selects how shooting the moon is scored.
type MoonPolicy string

const (
	MoonOld  MoonPolicy = "old"  // everyone else gains the moon value
	MoonNew  MoonPolicy = "new"  // the shooter loses the moon value
	MoonAuto MoonPolicy = "auto" // old unless that would end the game
)

// Player count bounds. The ditch stack holds four cards, which covers every
// remainder a 52-card deck leaves for 3-7 players.
const (
	MinPlayers = 3
	MaxPlayers = 7
)

// Options is the configuration surface for one game. Zero values mean "use
// the default"; Validate rejects out-of-range values before play starts, and
// nothing during play is fatal.
type Options struct {
	Extras      ExtrasPolicy
	HeartScore  HeartScheme
	LadyScore   int // points for the queen of spades, 0-49
	Moon        MoonPolicy
	NoTricks    int    // deduction for winning no tricks, 0-24
	PassDir     string // topology label, see passing.go
	NumPass     int    // cards passed, 0 means the player-count default
	KeepSpades  bool   // QS/KS/AS may not be passed
	AllBreak    bool   // any penalty card breaks hearts
	BreakHearts bool   // hearts must be played before hearts may lead
	LowClub     bool   // lowest club in play must lead the first trick
	JokersFol   bool   // jokers may not lead
	JokerPoints bool   // jokers score one point each
	Bonus       string // card token that deducts 10 points when taken, "" for none
	End         int    // score that ends the game, 50-999
}

// DefaultOptions returns the classic four-player rules: pass three right,
// hearts score one, queen of spades thirteen, game to 100.
func DefaultOptions() Options {
	return Options{
		Extras:     ExtrasDitch,
		HeartScore: HeartsOne,
		LadyScore:  13,
		Moon:       MoonOld,
		PassDir:    "right",
		End:        100,
	}
}

// passDirAliases maps short option spellings to canonical labels.
var passDirAliases = map[string]string{
	"l": "left", "r": "right", "lr": "left-right", "rl": "right-left",
	"@": "rot-left", "c": "central", "d": "dealer", "n": "not", "s": "scatter",
	"a": "across", "center": "central",
}

var passDirLabels = []string{
	"left", "right", "across", "left-right", "right-left", "lran",
	"rot-left", "central", "dealer", "not", "scatter",
}

// Normalize fills defaulted fields and resolves pass-direction aliases.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.Extras == "" {
		o.Extras = def.Extras
	}
	if o.HeartScore == "" {
		o.HeartScore = def.HeartScore
	}
	if o.Moon == "" {
		o.Moon = def.Moon
	}
	if o.PassDir == "" {
		o.PassDir = def.PassDir
	}
	if o.End == 0 {
		o.End = def.End
	}
	if alias, ok := passDirAliases[o.PassDir]; ok {
		o.PassDir = alias
	}
	return o
}

// Validate rejects option values outside their configured bounds. This is
// the only fatal surface; every in-game rejection is recoverable.
func (o Options) Validate() error {
	switch o.Extras {
	case ExtrasDitch, ExtrasFirst, ExtrasHeart, ExtrasJokers:
	default:
		return fmt.Errorf("invalid extras policy %q", o.Extras)
	}
	switch o.HeartScore {
	case HeartsOne, HeartsFace, HeartsPips, HeartsRank:
	default:
		return fmt.Errorf("invalid heart-score scheme %q", o.HeartScore)
	}
	switch o.Moon {
	case MoonOld, MoonNew, MoonAuto:
	default:
		return fmt.Errorf("invalid moon policy %q", o.Moon)
	}
	if !slices.Contains(passDirLabels, o.PassDir) {
		return fmt.Errorf("invalid pass direction %q", o.PassDir)
	}
	if o.LadyScore < 0 || o.LadyScore > 49 {
		return fmt.Errorf("lady-score must be 0-49, got %d", o.LadyScore)
	}
	if o.NoTricks < 0 || o.NoTricks > 24 {
		return fmt.Errorf("no-tricks must be 0-24, got %d", o.NoTricks)
	}
	if o.NumPass < 0 || o.NumPass > 4 {
		return fmt.Errorf("num-pass must be 0-4, got %d", o.NumPass)
	}
	if o.End < 50 || o.End > 999 {
		return fmt.Errorf("end must be 50-999, got %d", o.End)
	}
	if o.Bonus != "" {
		if _, err := deck.ParseCard(o.Bonus); err != nil {
			return fmt.Errorf("invalid bonus card: %w", err)
		}
	}
	return nil
}

// ruleset holds the tables derived from Options once at setup. Everything
// here is read-only for the rest of the game.
type ruleset struct {
	opts        Options
	numPlayers  int
	composition []deck.Card
	heartPoints map[deck.Rank]int
	breakers    map[deck.Card]bool
	maxScore    int // raw points of every penalty card in the deck
	numPass     int // resolved count; dealer's choice overrides per round
	kittyPolicy ExtrasPolicy
	lowClub     deck.Card
	hasLowClub  bool
	bonus       deck.Card
	hasBonus    bool
}

// ditchStack is the removal order used to even out the deck: low clubs and
// diamonds alternating, lowest first.
var ditchStack = []string{"2C", "2D", "3C", "3D"}

func buildRuleset(opts Options, numPlayers int) (*ruleset, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("player count must be %d-%d, got %d", MinPlayers, MaxPlayers, numPlayers)
	}

	r := &ruleset{opts: opts, numPlayers: numPlayers}

	// Deck composition per the extras policy.
	comp := deck.Standard52()
	switch opts.Extras {
	case ExtrasDitch:
		for i := 0; len(comp)%numPlayers != 0; i++ {
			ditch := deck.MustParseCard(ditchStack[i])
			comp = slices.DeleteFunc(comp, func(c deck.Card) bool { return c == ditch })
		}
	case ExtrasJokers:
		suit := deck.Clubs
		for len(comp)%numPlayers != 0 {
			comp = append(comp, deck.NewCard(deck.Joker, suit))
			if suit == deck.Clubs {
				suit = deck.Diamonds
			} else {
				suit = deck.Clubs
			}
		}
	case ExtrasFirst, ExtrasHeart:
		if len(comp)%numPlayers != 0 {
			r.kittyPolicy = opts.Extras
		}
	}
	r.composition = comp

	// Per-heart point table.
	r.heartPoints = make(map[deck.Rank]int, len(deck.Ranks))
	for _, rank := range deck.Ranks {
		switch opts.HeartScore {
		case HeartsFace:
			switch rank {
			case deck.Jack:
				r.heartPoints[rank] = 2
			case deck.Queen:
				r.heartPoints[rank] = 3
			case deck.King:
				r.heartPoints[rank] = 4
			case deck.Ace:
				r.heartPoints[rank] = 5
			default:
				r.heartPoints[rank] = 1
			}
		case HeartsPips:
			r.heartPoints[rank] = min(int(rank), 10)
		case HeartsRank:
			r.heartPoints[rank] = int(rank)
		default:
			r.heartPoints[rank] = 1
		}
	}

	// Theoretical maximum: every penalty card in the deck.
	jokers := 0
	for _, c := range comp {
		if c.Suit == deck.Hearts {
			r.maxScore += r.heartPoints[c.Rank]
		}
		if c.IsJoker() {
			jokers++
		}
	}
	r.maxScore += opts.LadyScore
	if opts.JokerPoints {
		r.maxScore += jokers
	}

	// Breaker set: hearts always; the lady and scoring jokers only under
	// the all-break variant.
	r.breakers = make(map[deck.Card]bool)
	for _, c := range comp {
		if c.Suit == deck.Hearts && !c.IsJoker() {
			r.breakers[c] = true
		}
	}
	if opts.AllBreak {
		r.breakers[deck.MustParseCard("QS")] = true
		if opts.JokerPoints {
			for _, c := range comp {
				if c.IsJoker() {
					r.breakers[c] = true
				}
			}
		}
	}

	if opts.Bonus != "" {
		r.bonus = deck.MustParseCard(opts.Bonus)
		r.hasBonus = true
		r.maxScore -= 10
	}

	// Designated low club: the lowest-ranked club in play, skipping jokers
	// when they may not lead.
	if opts.LowClub {
		clubs := []deck.Card{}
		for _, c := range comp {
			if c.Suit == deck.Clubs {
				clubs = append(clubs, c)
			}
		}
		slices.SortFunc(clubs, func(a, b deck.Card) int { return int(a.Rank) - int(b.Rank) })
		for _, c := range clubs {
			if c.IsJoker() && opts.JokersFol {
				continue
			}
			r.lowClub = c
			r.hasLowClub = true
			break
		}
	}

	// Resolved pass count; scatter and no-pass force their own counts, and
	// dealer's choice asks every round.
	switch opts.PassDir {
	case "scatter":
		r.numPass = numPlayers - 1
	case "not":
		r.numPass = 0
	default:
		r.numPass = opts.NumPass
		if r.numPass == 0 {
			if numPlayers < 5 {
				r.numPass = 3
			} else {
				r.numPass = 2
			}
		}
	}

	return r, nil
}

func (r *ruleset) heartsBrokenAtDeal() bool {
	return !(r.opts.BreakHearts || r.opts.AllBreak)
}

func (r *ruleset) handSize() int {
	return len(r.composition) / r.numPlayers
}

func (r *ruleset) kittySize() int {
	return len(r.composition) % r.numPlayers
}
