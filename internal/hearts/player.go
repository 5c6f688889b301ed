package hearts

import (
	"context"

	"github.com/lox/heartsforbots/internal/deck"
)

// PromptKind tells a programmatic player what is being asked without parsing
// prompt text. Humans see only the Text.
type PromptKind int

const (
	PromptPass      PromptKind = iota // respond with a PASS command
	PromptPlay                        // respond with a PLAY command
	PromptDirection                   // respond with a direction token
	PromptPassCount                   // respond with an integer (RequestInt)
)

// Prompt is a request put to a player at a suspension point.
type Prompt struct {
	Kind PromptKind
	Text string
}

// Player is the collaborator contract consumed by the round controller.
// Players never mutate game state directly: they read through the View they
// are handed when seated and submit intents as command text through the same
// surface a human uses. Requests carry a context so the controller can be
// aborted at any suspension point.
type Player interface {
	// Name identifies the player in notifications and results.
	Name() string

	// Join is called once when the player is seated, handing them their
	// read-only window onto the game.
	Join(view View)

	// RequestText asks for a command response (PLAY/PASS/direction).
	RequestText(ctx context.Context, prompt Prompt) (string, error)

	// RequestInt asks for an integer in [low, high].
	RequestInt(ctx context.Context, prompt Prompt, low, high int) (int, error)

	// Notify delivers game information.
	Notify(message string)

	// ReportError delivers a rejection of the player's last intent. It is a
	// channel distinct from Notify so front ends can render it differently.
	ReportError(message string)
}

// View is the read-only window a seated player has onto the game. All
// accessors return copies; mutation happens only through controller intents.
type View struct {
	g    *Game
	seat int
}

// Seat returns the player's seat index.
func (v View) Seat() int { return v.seat }

// NumPlayers returns the number of seats.
func (v View) NumPlayers() int { return len(v.g.players) }

// PlayerNames returns the seated player names in seat order.
func (v View) PlayerNames() []string {
	names := make([]string, len(v.g.players))
	for i, p := range v.g.players {
		names[i] = p.Name()
	}
	return names
}

// Hand returns the player's current hand in sorted order.
func (v View) Hand() []deck.Card {
	return v.g.round.Hands[v.seat].Cards()
}

// Trick returns the cards played to the current trick so far, in play order.
func (v View) Trick() []deck.Card {
	return v.g.round.Trick.Cards()
}

// TrickLed returns the card that led the current trick, if any.
func (v View) TrickLed() (deck.Card, bool) {
	if v.g.round.Trick.Empty() {
		return deck.Card{}, false
	}
	return v.g.round.Trick.At(0), true
}

// HeartsBroken reports whether hearts may lead.
func (v View) HeartsBroken() bool { return v.g.round.HeartsBroken }

// PassCount returns the number of cards to pass this round.
func (v View) PassCount() int { return v.g.round.Pass.Count }

// PassDirection returns this round's pass topology label.
func (v View) PassDirection() string { return v.g.round.Pass.Direction.Label() }

// Scores returns the cumulative scores by seat.
func (v View) Scores() []int {
	scores := make([]int, len(v.g.scores))
	copy(scores, v.g.scores)
	return scores
}

// Options returns the game's rule options.
func (v View) Options() Options { return v.g.rules.opts }

// LowClub returns the designated low club, if the rule is active.
func (v View) LowClub() (deck.Card, bool) {
	return v.g.rules.lowClub, v.g.rules.hasLowClub
}
