package hearts

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/heartsforbots/internal/deck"
	"github.com/lox/heartsforbots/internal/randutil"
)

// BotNames is the default roster used when seating unnamed bots.
var BotNames = []string{"Maud", "Edith", "Mabel", "Gladys", "Ethel", "Doris", "Vera"}

// Bot is the built-in heuristic player. It answers every prompt through the
// same command surface a human uses; it reads state only through its View and
// never assumes a player count or rule variant.
type Bot struct {
	name string
	rng  *rand.Rand
	view View
}

// NewBot creates a bot. The RNG breaks ties so seeded games stay
// reproducible.
func NewBot(name string, rng *rand.Rand) *Bot {
	if rng == nil {
		panic("rng is required for bot creation")
	}
	return &Bot{name: name, rng: rng}
}

func (b *Bot) Name() string          { return b.name }
func (b *Bot) Join(view View)        { b.view = view }
func (b *Bot) Notify(message string) {}

// ReportError panics: every intent the bot submits should already be legal,
// so a rejection is an engine or heuristic bug worth surfacing loudly.
func (b *Bot) ReportError(message string) {
	panic(fmt.Sprintf("bot %s intent rejected: %s", b.name, message))
}

func (b *Bot) RequestText(ctx context.Context, prompt Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch prompt.Kind {
	case PromptPass:
		return b.passCommand(), nil
	case PromptPlay:
		return b.playCommand(), nil
	case PromptDirection:
		return b.chooseDirection(), nil
	default:
		return "", fmt.Errorf("bot %s cannot answer prompt kind %d", b.name, prompt.Kind)
	}
}

func (b *Bot) RequestInt(ctx context.Context, prompt Prompt, low, high int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	// Pass-count choice: three cards is the classic count.
	return min(max(3, low), high), nil
}

// passCommand nominates the most dangerous cards: the queen of spades and
// the high spades that can catch her, then high hearts, then whatever ranks
// highest.
func (b *Bot) passCommand() string {
	opts := b.view.Options()
	hand := b.view.Hand()

	candidates := slices.Clone(hand)
	if opts.KeepSpades {
		candidates = slices.DeleteFunc(candidates, func(c deck.Card) bool {
			return c.Suit == deck.Spades && c.Rank >= deck.Queen
		})
	}
	slices.SortFunc(candidates, func(a, c deck.Card) int {
		return b.passDanger(c) - b.passDanger(a)
	})

	count := min(b.view.PassCount(), len(candidates))
	tokens := make([]string, count)
	for i := 0; i < count; i++ {
		tokens[i] = candidates[i].String()
	}
	return "PASS " + strings.Join(tokens, " ")
}

func (b *Bot) passDanger(c deck.Card) int {
	switch {
	case c.Suit == deck.Spades && c.Rank >= deck.Queen:
		return 100 + int(c.Rank)
	case c.Suit == deck.Hearts && !c.IsJoker():
		return 50 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

// playCommand picks a play that is legal under the current rules, following
// suit low when the trick is dangerous and shedding penalty cards when void.
func (b *Bot) playCommand() string {
	card, ok := b.followPlay()
	if !ok {
		card = b.leadPlay()
	}
	return "PLAY " + card.String()
}

// followPlay handles a non-empty trick. Returns false when the bot leads.
func (b *Bot) followPlay() (deck.Card, bool) {
	led, ok := b.view.TrickLed()
	if !ok {
		return deck.Card{}, false
	}
	hand := b.view.Hand()
	trick := b.view.Trick()

	var suited []deck.Card
	for _, c := range hand {
		if c.Suit == led.Suit {
			suited = append(suited, c)
		}
	}

	if len(suited) == 0 {
		return b.shedCard(hand), true
	}

	slices.SortFunc(suited, func(a, c deck.Card) int { return int(a.Rank) - int(c.Rank) })

	// Duck under the current winner when possible; otherwise the lowest
	// card limits the damage. As last to act on a clean trick, winning
	// cheaply with the highest card is safe.
	winning := deck.Rank(-1)
	for _, c := range trick {
		if c.Suit == led.Suit && c.Rank > winning {
			winning = c.Rank
		}
	}
	lastToAct := len(trick) == b.view.NumPlayers()-1

	if lastToAct && !b.trickHasPenalty(trick) {
		return suited[len(suited)-1], true
	}
	var under deck.Card
	found := false
	for _, c := range suited {
		if c.Rank < winning {
			under = c
			found = true
		}
	}
	if found {
		return under, true
	}
	return suited[0], true
}

// shedCard picks the discard when void in the led suit: the queen of spades
// first, then the spades that can catch her, then the worst heart, then the
// highest card.
func (b *Bot) shedCard(hand []deck.Card) deck.Card {
	best := hand[0]
	bestScore := -1
	for _, c := range hand {
		score := b.passDanger(c)
		if c.IsJoker() && b.view.Options().JokerPoints {
			score = 40
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// leadPlay opens a trick with the lowest card the rules allow, preferring
// non-penalty suits.
func (b *Bot) leadPlay() deck.Card {
	opts := b.view.Options()
	hand := b.view.Hand()

	if lc, ok := b.view.LowClub(); ok && slices.Contains(hand, lc) {
		return lc
	}

	var allowed []deck.Card
	for _, c := range hand {
		if c.IsJoker() && opts.JokersFol {
			continue
		}
		if c.Suit == deck.Hearts && !b.view.HeartsBroken() {
			continue
		}
		allowed = append(allowed, c)
	}
	if len(allowed) == 0 {
		allowed = hand
	}

	best := allowed[0]
	bestScore := b.leadScore(best)
	for _, c := range allowed[1:] {
		if s := b.leadScore(c); s < bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// leadScore ranks lead candidates, lower is better. High spades and hearts
// make poor leads.
func (b *Bot) leadScore(c deck.Card) int {
	score := int(c.Rank)
	if c.Suit == deck.Spades && c.Rank >= deck.Queen {
		score += 100
	}
	if c.Suit == deck.Hearts {
		score += 20
	}
	return score
}

func (b *Bot) trickHasPenalty(trick []deck.Card) bool {
	for _, c := range trick {
		if c.Suit == deck.Hearts && !c.IsJoker() {
			return true
		}
		if c == ladyCard {
			return true
		}
		if c.IsJoker() && b.view.Options().JokerPoints {
			return true
		}
	}
	return false
}

// chooseDirection answers a dealer's-choice prompt. Left and right are legal
// at every table size.
func (b *Bot) chooseDirection() string {
	return randutil.Pick(b.rng, []string{"left", "right"})
}
