package hearts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/heartsforbots/internal/deck"
	"github.com/lox/heartsforbots/internal/randutil"
)

// newBotTestGame seats real bots and returns them alongside the game so
// tests can inject state and inspect decisions.
func newBotTestGame(t *testing.T, numPlayers int, opts Options) (*Game, []*Bot) {
	t.Helper()
	bots := make([]*Bot, numPlayers)
	players := make([]Player, numPlayers)
	for i := range players {
		bots[i] = NewBot(BotNames[i], randutil.New(int64(i)))
		players[i] = bots[i]
	}
	g, err := NewGame(randutil.New(1), players, opts)
	require.NoError(t, err)
	g.round = newRoundState(numPlayers, 0)
	return g, bots
}

func TestBotPassesDangerousCards(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhasePassing
	g.round.Pass = PassRound{Direction: Direction{Kind: DirLeft}, Count: 3}
	setHand(g, 0, "2C 5D QS AH KS 4C")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPass})
	require.NoError(t, err)
	cards, err := ParsePassCommand(resp)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Contains(t, cards, deck.MustParseCard("QS"))
	assert.Contains(t, cards, deck.MustParseCard("KS"))
	assert.Contains(t, cards, deck.MustParseCard("AH"))
}

func TestBotPassRespectsKeepSpades(t *testing.T) {
	opts := DefaultOptions()
	opts.KeepSpades = true
	g, bots := newBotTestGame(t, 4, opts)
	g.round.Phase = PhasePassing
	g.round.Pass = PassRound{Direction: Direction{Kind: DirLeft}, Count: 3}
	setHand(g, 0, "QS KS AS AH KH 2C")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPass})
	require.NoError(t, err)
	cards, err := ParsePassCommand(resp)
	require.NoError(t, err)
	require.NoError(t, g.checkPass(0, cards))
	assert.NotContains(t, cards, deck.MustParseCard("QS"))
	assert.NotContains(t, cards, deck.MustParseCard("KS"))
	assert.NotContains(t, cards, deck.MustParseCard("AS"))
}

func TestBotFollowsSuitLow(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.Trick = deck.NewHand(deck.MustParseCards("QD 5D")...)
	g.round.TrickLeader = 2
	g.round.Turn = 0
	setHand(g, 0, "2D 9D KD AH")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	// Ducks under the queen with the highest losing diamond.
	assert.Equal(t, deck.MustParseCard("9D"), card)
}

func TestBotWinsCheapAsLastToAct(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.Trick = deck.NewHand(deck.MustParseCards("4D 5D 6D")...)
	g.round.TrickLeader = 1
	g.round.Turn = 0
	setHand(g, 0, "2D KD 3C")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCard("KD"), card)
}

func TestBotDucksDirtyTrickAsLastToAct(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.Trick = deck.NewHand(deck.MustParseCards("4D QS 6D")...)
	g.round.TrickLeader = 1
	g.round.Turn = 0
	setHand(g, 0, "2D KD 3C")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCard("2D"), card)
}

func TestBotShedsQueenWhenVoid(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.Trick = deck.NewHand(deck.MustParseCard("5D"))
	g.round.TrickLeader = 3
	g.round.Turn = 0
	setHand(g, 0, "QS AH 2C")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCard("QS"), card)
}

func TestBotLeadsLowAvoidingHearts(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.HeartsBroken = false
	g.round.Turn = 0
	setHand(g, 0, "2H 4C 9S QS")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	require.NoError(t, g.checkPlay(0, card))
	assert.Equal(t, deck.MustParseCard("4C"), card)
}

func TestBotLeadsHeartWhenForced(t *testing.T) {
	g, bots := newBotTestGame(t, 4, DefaultOptions())
	g.round.Phase = PhaseTrickPlay
	g.round.HeartsBroken = false
	g.round.Turn = 0
	setHand(g, 0, "2H 9H")

	resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptPlay})
	require.NoError(t, err)
	card, err := ParsePlayCommand(resp)
	require.NoError(t, err)
	require.NoError(t, g.checkPlay(0, card))
	assert.Equal(t, deck.Hearts, card.Suit)
}

func TestBotDirectionChoiceIsValid(t *testing.T) {
	_, bots := newBotTestGame(t, 3, DefaultOptions())
	valid := validDealerChoices(3)
	for i := 0; i < 20; i++ {
		resp, err := bots[0].RequestText(context.Background(), Prompt{Kind: PromptDirection})
		require.NoError(t, err)
		_, err = ParseDirectionChoice(resp, valid)
		assert.NoError(t, err)
	}
}

func TestBotPassCountWithinBounds(t *testing.T) {
	_, bots := newBotTestGame(t, 4, DefaultOptions())
	n, err := bots[0].RequestInt(context.Background(), Prompt{Kind: PromptPassCount}, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = bots[0].RequestInt(context.Background(), Prompt{Kind: PromptPassCount}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
