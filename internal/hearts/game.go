// Package hearts implements a configuration-driven trick-taking engine: a
// phase state machine coordinating card passing topologies, per-phase
// legality rules, trick resolution and scoring. Players (human or bot) act
// only through the command surface; the controller owns all state.
package hearts

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/heartsforbots/internal/deck"
	"github.com/lox/heartsforbots/internal/randutil"
)

// maxRejections bounds consecutive rejected intents from one actor so a
// misbehaving bot cannot wedge the controller.
const maxRejections = 100

// Game is the round controller. It exclusively owns RoundState and the
// cumulative scores; players read through Views and submit intents.
type Game struct {
	id      string
	rules   *ruleset
	players []Player
	scores  []int
	rng     *rand.Rand
	logger  *log.Logger
	seq     *PassSequencer
	deck    *deck.Deck
	round   *RoundState
	dealer  int // seat dealing the upcoming round
	rounds  int
}

// GameOption configures a Game during creation.
type GameOption func(*Game)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) { g.logger = logger }
}

// WithGameID overrides the generated game ID.
func WithGameID(id string) GameOption {
	return func(g *Game) { g.id = id }
}

// NewGame creates a game for the seated players. The RNG is required so
// that a single seed reproduces the whole game; it is the only source of
// nondeterminism (shuffles, central-pool redeals, first-dealer draws).
func NewGame(rng *rand.Rand, players []Player, opts Options, gopts ...GameOption) (*Game, error) {
	if rng == nil {
		panic("rng is required for game creation")
	}
	rules, err := buildRuleset(opts, len(players))
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:      uuid.NewString(),
		rules:   rules,
		players: players,
		scores:  make([]int, len(players)),
		rng:     rng,
		logger:  log.New(io.Discard),
		deck:    deck.NewFromComposition(rng, rules.composition),
	}
	for _, o := range gopts {
		o(g)
	}

	var chooser DirectionChooser
	if rules.opts.PassDir == "dealer" {
		chooser = g.dealersChoice
	}
	g.seq, err = NewPassSequencer(rules.opts, len(players), rules.numPass, chooser)
	if err != nil {
		return nil, err
	}

	for seat, p := range players {
		p.Join(View{g: g, seat: seat})
	}
	return g, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string { return g.id }

// Scores returns the cumulative scores by seat.
func (g *Game) Scores() []int { return slices.Clone(g.scores) }

// Result is the outcome of a completed game.
type Result struct {
	GameID  string
	Rounds  int
	Scores  []int
	Winners []int // seats with the lowest score; more than one is a draw
	Draw    bool
}

// Run plays rounds until a cumulative score reaches the end threshold. The
// context aborts the game at any suspension point; a play or pass is atomic,
// so an abort never leaves the round partially mutated.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	g.pickFirstDealer()

	for {
		g.deal()
		if err := g.passPhase(ctx); err != nil {
			return nil, err
		}
		if err := g.trickPhase(ctx); err != nil {
			return nil, err
		}

		g.round.Phase = PhaseScoring
		report := g.scoreRound()
		g.announceScores(report)
		g.rounds++

		if report.GameOver {
			g.round.Phase = PhaseGameEnd
			return g.result(), nil
		}
		g.round.Phase = PhaseRoundEnd
		g.dealer = (g.dealer + 1) % len(g.players)
	}
}

// pickFirstDealer deals one card to each contender; the highest card deals
// first, with tied contenders redealt until a single winner remains.
func (g *Game) pickFirstDealer() {
	contenders := make([]int, len(g.players))
	for i := range contenders {
		contenders[i] = i
	}

	for len(contenders) > 1 {
		g.deck.Reset()
		bestRank := deck.Rank(-1)
		var best []int
		for _, seat := range contenders {
			card, _ := g.deck.Deal()
			g.notifyAll("%s was dealt the %s.", g.players[seat].Name(), card.Name())
			switch {
			case card.Rank > bestRank:
				bestRank = card.Rank
				best = []int{seat}
			case card.Rank == bestRank:
				best = append(best, seat)
			}
		}
		if len(best) > 1 {
			g.notifyAll("There was a tie of %ss.", bestRank.Name())
		}
		contenders = best
	}

	g.dealer = contenders[0]
	g.logger.Debug("first dealer chosen", "game", g.id, "dealer", g.players[g.dealer].Name())
}

// deal shuffles the deck and deals it out evenly, holding any remainder
// aside as the kitty.
func (g *Game) deal() {
	n := len(g.players)
	g.round = newRoundState(n, g.dealer)
	g.deck.Reset()

	handSize := g.rules.handSize()
	eldest := g.round.eldest()
	for off := 0; off < n; off++ {
		seat := (eldest + off) % n
		g.round.Hands[seat].AddAll(g.deck.DealN(handSize))
		g.round.Hands[seat].Sort()
	}
	g.round.Kitty = g.deck.TakeRemaining()

	g.round.HeartsBroken = g.rules.heartsBrokenAtDeal()

	// The low-club obligation only binds while a hand actually holds the
	// designated card; a kitty deal can strand it.
	g.round.LowClubOut = true
	if g.rules.hasLowClub {
		for _, h := range g.round.Hands {
			if h.Contains(g.rules.lowClub) {
				g.round.LowClubOut = false
				break
			}
		}
	}

	g.notifyAll("%s deals.", g.players[g.dealer].Name())
	g.logger.Debug("dealt round", "game", g.id, "dealer", g.players[g.dealer].Name(),
		"handSize", handSize, "kitty", len(g.round.Kitty))
}

// passPhase pulls this round's topology from the sequencer, collects a pass
// buffer from every seat, and redistributes. Skipped entirely for a
// no-passing round.
func (g *Game) passPhase(ctx context.Context) error {
	pr, err := g.seq.Next(ctx)
	if err != nil {
		return err
	}
	g.round.Pass = pr
	g.round.Phase = PhasePassing
	g.logger.Debug("pass phase", "game", g.id, "direction", pr.Direction.Label(), "count", pr.Count)

	if pr.Direction.Kind == DirNone {
		if g.rules.opts.PassDir != "not" {
			g.notifyAll("There is no passing this round.")
		}
		g.startTricks()
		return nil
	}

	n := len(g.players)
	eldest := g.round.eldest()
	for off := 0; off < n; off++ {
		if err := g.promptPass(ctx, (eldest+off)%n); err != nil {
			return err
		}
	}

	g.redistribute()
	if err := g.validateConservation(); err != nil {
		return err
	}
	g.startTricks()
	return nil
}

// promptPass asks one seat for its pass until a legal buffer is committed.
func (g *Game) promptPass(ctx context.Context, seat int) error {
	p := g.players[seat]
	text := fmt.Sprintf("Your hand is: %s.\nWhich %d cards do you want to pass to %s?",
		g.round.Hands[seat], g.round.Pass.Count, g.passTarget(seat))

	for rejections := 0; ; rejections++ {
		if rejections >= maxRejections {
			return fmt.Errorf("%s exceeded %d rejected passes", p.Name(), maxRejections)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := p.RequestText(ctx, Prompt{Kind: PromptPass, Text: text})
		if err != nil {
			return fmt.Errorf("requesting pass from %s: %w", p.Name(), err)
		}
		cards, err := ParsePassCommand(resp)
		if err != nil {
			p.ReportError(err.Error())
			continue
		}
		if err := g.SubmitPass(seat, cards); err != nil {
			p.ReportError(err.Error())
			continue
		}
		return nil
	}
}

// passTarget describes where a seat's pass is going, for prompt text.
func (g *Game) passTarget(seat int) string {
	dir := g.round.Pass.Direction
	switch dir.Kind {
	case DirCenter:
		return "the center"
	case DirScatter:
		return "the other players"
	default:
		return g.players[dir.Recipient(seat, len(g.players))].Name()
	}
}

// SubmitPass commits a seat's pass buffer. The intent is atomic: it is
// fully validated before any card moves.
func (g *Game) SubmitPass(seat int, cards []deck.Card) error {
	if g.round == nil || g.round.Phase != PhasePassing {
		return fmt.Errorf("this is not the right time to pass cards")
	}
	if g.round.passed[seat] {
		return fmt.Errorf("%s has already passed", g.players[seat].Name())
	}
	if err := g.checkPass(seat, cards); err != nil {
		return err
	}
	for _, c := range cards {
		if err := g.round.Hands[seat].Shift(c, g.round.PassBuffers[seat]); err != nil {
			return err
		}
	}
	g.round.passed[seat] = true
	g.logger.Debug("pass committed", "game", g.id, "seat", seat, "cards", len(cards))
	return nil
}

// redistribute moves every committed pass buffer to its destination per the
// round's topology, then tells each player what arrived.
func (g *Game) redistribute() {
	r := g.round
	if !r.allPassed() {
		panic("redistribute before every seat has passed")
	}
	n := len(g.players)
	received := make([][]deck.Card, n)

	switch r.Pass.Direction.Kind {
	case DirCenter:
		// All buffers pool together, shuffle, redeal round-robin from the
		// eldest hand.
		var pool []deck.Card
		for seat := 0; seat < n; seat++ {
			pool = append(pool, r.PassBuffers[seat].TakeAll()...)
		}
		randutil.Shuffle(g.rng, pool)
		seat := r.eldest()
		for _, c := range pool {
			r.Hands[seat].Add(c)
			received[seat] = append(received[seat], c)
			seat = (seat + 1) % n
		}
	case DirScatter:
		// The k-th nominated card goes to the k-th other player in seat
		// order.
		for from := 0; from < n; from++ {
			cards := r.PassBuffers[from].TakeAll()
			k := 0
			for to := 0; to < n; to++ {
				if to == from {
					continue
				}
				r.Hands[to].Add(cards[k])
				received[to] = append(received[to], cards[k])
				k++
			}
		}
	default:
		for from := 0; from < n; from++ {
			to := r.Pass.Direction.Recipient(from, n)
			cards := r.PassBuffers[from].TakeAll()
			r.Hands[to].AddAll(cards)
			received[to] = append(received[to], cards...)
		}
	}

	for seat := 0; seat < n; seat++ {
		r.Hands[seat].Sort()
		if len(received[seat]) > 0 {
			g.players[seat].Notify(fmt.Sprintf("You were passed the %s.", cardList(received[seat])))
		}
	}
}

// startTricks transitions to trick play and designates the first leader:
// the low club holder when the rule binds, otherwise the eldest hand.
func (g *Game) startTricks() {
	r := g.round
	r.Phase = PhaseTrickPlay
	leader := r.eldest()
	if g.rules.hasLowClub && !r.LowClubOut {
		for seat, h := range r.Hands {
			if h.Contains(g.rules.lowClub) {
				leader = seat
				break
			}
		}
	}
	r.TrickLeader = leader
	r.Turn = leader
}

// trickPhase plays out every hand, resolving tricks as they fill.
func (g *Game) trickPhase(ctx context.Context) error {
	r := g.round

	for !r.handsEmpty() {
		for !r.trickFull() {
			if err := g.promptPlay(ctx, r.Turn); err != nil {
				return err
			}
		}
		res := g.resolveTrick()
		g.announceTrick(res)
		if err := g.validateConservation(); err != nil {
			return err
		}
	}
	return nil
}

// promptPlay asks one seat for a play until a legal card is applied. The
// low-club obligation is played automatically rather than prompted.
func (g *Game) promptPlay(ctx context.Context, seat int) error {
	p := g.players[seat]
	r := g.round

	if r.Trick.Empty() && g.rules.hasLowClub && !r.LowClubOut && r.Hands[seat].Contains(g.rules.lowClub) {
		p.Notify(fmt.Sprintf("You must play the %s.", g.rules.lowClub.Name()))
		g.notifyOthers(seat, "%s plays the %s.", p.Name(), g.rules.lowClub.Name())
		return g.SubmitPlay(seat, g.rules.lowClub)
	}

	var sb strings.Builder
	if r.Trick.Empty() {
		sb.WriteString("You lead the trick.\n")
	} else {
		fmt.Fprintf(&sb, "The trick to you is: %s.\n", r.Trick)
	}
	fmt.Fprintf(&sb, "Your hand is: %s.\nWhat is your play?", r.Hands[seat])
	text := sb.String()

	for rejections := 0; ; rejections++ {
		if rejections >= maxRejections {
			return fmt.Errorf("%s exceeded %d rejected plays", p.Name(), maxRejections)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := p.RequestText(ctx, Prompt{Kind: PromptPlay, Text: text})
		if err != nil {
			return fmt.Errorf("requesting play from %s: %w", p.Name(), err)
		}
		card, err := ParsePlayCommand(resp)
		if err != nil {
			p.ReportError(err.Error())
			continue
		}
		if err := g.SubmitPlay(seat, card); err != nil {
			p.ReportError(err.Error())
			continue
		}
		g.notifyOthers(seat, "%s plays the %s.", p.Name(), card.Name())
		return nil
	}
}

// SubmitPlay applies one seat's play to the trick. The intent is atomic:
// fully validated, then applied; a rejection mutates nothing.
func (g *Game) SubmitPlay(seat int, card deck.Card) error {
	r := g.round
	if r == nil || r.Phase != PhaseTrickPlay {
		return fmt.Errorf("this is not the right time to play cards")
	}
	if seat != r.Turn {
		return fmt.Errorf("it is not %s's turn", g.players[seat].Name())
	}
	if err := g.checkPlay(seat, card); err != nil {
		return err
	}

	if err := r.Hands[seat].Shift(card, r.Trick); err != nil {
		return err
	}
	if g.rules.hasLowClub && card == g.rules.lowClub {
		r.LowClubOut = true
	}
	r.Turn = (seat + 1) % len(g.players)
	g.logger.Debug("card played", "game", g.id, "seat", seat, "card", card.String())
	return nil
}

// announceTrick reports a resolved trick to all players.
func (g *Game) announceTrick(res TrickResult) {
	winner := g.players[res.Winner]
	g.notifyAll("%s won the trick with the %s.", winner.Name(), res.WinningCard.Name())
	if len(res.Kitty) > 0 {
		winner.Notify(fmt.Sprintf("You won the %s from the kitty.", cardList(res.Kitty)))
		g.notifyOthers(res.Winner, "%s won the kitty.", winner.Name())
	}
	g.logger.Debug("trick resolved", "game", g.id, "winner", winner.Name(),
		"card", res.WinningCard.String(), "brokeHearts", res.BrokeHearts)
}

// announceScores reports the round's scoring to all players.
func (g *Game) announceScores(report *RoundReport) {
	for _, s := range report.Seats {
		name := g.players[s.Seat].Name()
		var bits []string
		bits = append(bits, fmt.Sprintf("%d %s", s.Hearts, plural(s.Hearts, "heart", "hearts")))
		if s.TookLady {
			bits = append(bits, "the Queen of Spades")
		}
		if g.rules.opts.JokerPoints && s.Jokers > 0 {
			bits = append(bits, fmt.Sprintf("%d %s", s.Jokers, plural(s.Jokers, "joker", "jokers")))
		}
		if s.TookBonus {
			bits = append(bits, fmt.Sprintf("the %s", g.rules.bonus.Name()))
		}
		g.notifyAll("%s had %s, for %d %s this round.", name, strings.Join(bits, ", "),
			s.Raw, plural(s.Raw, "point", "points"))
		if s.NoTricks {
			g.notifyAll("%s gets %d points taken off for winning no tricks.", name, g.rules.opts.NoTricks)
		}
	}
	if report.Shooter >= 0 {
		g.notifyAll("%s shot the moon!", g.players[report.Shooter].Name())
	}
	g.notifyAll("Overall scores:")
	for _, s := range report.Seats {
		g.notifyAll("  %s: %d", g.players[s.Seat].Name(), s.Total)
	}
	g.logger.Info("round scored", "game", g.id, "round", g.rounds+1,
		"scores", fmt.Sprint(g.scores), "shooter", report.Shooter)
}

// result builds the final game result and announces the winners.
func (g *Game) result() *Result {
	winners := g.winners()
	for _, seat := range winners {
		g.notifyAll("%s wins with %d points.", g.players[seat].Name(), g.scores[seat])
	}
	return &Result{
		GameID:  g.id,
		Rounds:  g.rounds,
		Scores:  slices.Clone(g.scores),
		Winners: winners,
		Draw:    len(winners) > 1,
	}
}

// dealersChoice asks the current dealer for this round's topology and
// count, validated against the choices legal for the player count.
func (g *Game) dealersChoice(ctx context.Context) (PassRound, error) {
	seat := g.round.Dealer
	p := g.players[seat]
	valid := validDealerChoices(len(g.players))

	p.Notify(fmt.Sprintf("Your hand is: %s.", g.round.Hands[seat]))

	var token string
	for rejections := 0; ; rejections++ {
		if rejections >= maxRejections {
			return PassRound{}, fmt.Errorf("%s exceeded %d rejected direction choices", p.Name(), maxRejections)
		}
		resp, err := p.RequestText(ctx, Prompt{Kind: PromptDirection, Text: "What direction should cards be passed?"})
		if err != nil {
			return PassRound{}, fmt.Errorf("requesting direction from %s: %w", p.Name(), err)
		}
		token, err = ParseDirectionChoice(resp, valid)
		if err != nil {
			p.ReportError(err.Error())
			continue
		}
		break
	}

	var count int
	switch token {
	case "scatter":
		count = len(g.players) - 1
	case "not":
		count = 0
	default:
		n, err := p.RequestInt(ctx, Prompt{Kind: PromptPassCount, Text: "How many cards should be passed?"}, 1, 4)
		if err != nil {
			return PassRound{}, fmt.Errorf("requesting pass count from %s: %w", p.Name(), err)
		}
		count = n
	}

	return PassRound{Direction: directionForChoice(token), Count: count}, nil
}

// validateConservation checks that no card has been duplicated or lost.
func (g *Game) validateConservation() error {
	if got, want := g.round.cardCount(), len(g.rules.composition); got != want {
		return fmt.Errorf("card conservation violation: %d cards in play, want %d", got, want)
	}
	return nil
}

func (g *Game) notifyAll(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	for _, p := range g.players {
		p.Notify(msg)
	}
}

func (g *Game) notifyOthers(except int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	for seat, p := range g.players {
		if seat != except {
			p.Notify(msg)
		}
	}
}

func cardList(cards []deck.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name()
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
