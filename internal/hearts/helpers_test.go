package hearts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/heartsforbots/internal/deck"
	"github.com/lox/heartsforbots/internal/randutil"
)

// scriptedPlayer answers prompts from a fixed queue. It fails the test if
// asked more than it was scripted for.
type scriptedPlayer struct {
	t        *testing.T
	name     string
	script   []string
	ints     []int
	notices  []string
	rejected []string
	view     View
}

func newScriptedPlayer(t *testing.T, name string, script ...string) *scriptedPlayer {
	return &scriptedPlayer{t: t, name: name, script: script}
}

func (p *scriptedPlayer) Name() string   { return p.name }
func (p *scriptedPlayer) Join(view View) { p.view = view }

func (p *scriptedPlayer) RequestText(ctx context.Context, prompt Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.script) == 0 {
		p.t.Fatalf("player %s has no scripted response for %q", p.name, prompt.Text)
	}
	resp := p.script[0]
	p.script = p.script[1:]
	return resp, nil
}

func (p *scriptedPlayer) RequestInt(ctx context.Context, prompt Prompt, low, high int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p.ints) == 0 {
		p.t.Fatalf("player %s has no scripted int for %q", p.name, prompt.Text)
	}
	n := p.ints[0]
	p.ints = p.ints[1:]
	return n, nil
}

func (p *scriptedPlayer) Notify(message string)      { p.notices = append(p.notices, message) }
func (p *scriptedPlayer) ReportError(message string) { p.rejected = append(p.rejected, message) }

// newTestGame builds a game with scripted players and an empty round ready
// for direct state injection.
func newTestGame(t *testing.T, numPlayers int, opts Options) (*Game, []*scriptedPlayer) {
	t.Helper()
	stubs := make([]*scriptedPlayer, numPlayers)
	players := make([]Player, numPlayers)
	for i := range players {
		stubs[i] = newScriptedPlayer(t, BotNames[i])
		players[i] = stubs[i]
	}
	g, err := NewGame(randutil.New(1), players, opts)
	require.NoError(t, err)
	g.round = newRoundState(numPlayers, 0)
	return g, stubs
}

// setHand replaces a seat's hand with the given card tokens.
func setHand(g *Game, seat int, tokens string) {
	g.round.Hands[seat] = deck.NewHand(deck.MustParseCards(tokens)...)
}

// playTrick submits one card per seat starting from the current leader and
// resolves the trick.
func playTrick(t *testing.T, g *Game, tokens string) TrickResult {
	t.Helper()
	for _, tok := range deck.MustParseCards(tokens) {
		require.NoError(t, g.SubmitPlay(g.round.Turn, tok))
	}
	return g.resolveTrick()
}
