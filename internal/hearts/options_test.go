package hearts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/heartsforbots/internal/deck"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	o := Options{}.Normalize()
	assert.Equal(t, ExtrasDitch, o.Extras)
	assert.Equal(t, HeartsOne, o.HeartScore)
	assert.Equal(t, MoonOld, o.Moon)
	assert.Equal(t, "right", o.PassDir)
	assert.Equal(t, 100, o.End)
}

func TestNormalizeResolvesAliases(t *testing.T) {
	for alias, want := range map[string]string{
		"l": "left", "r": "right", "lr": "left-right", "rl": "right-left",
		"@": "rot-left", "d": "dealer", "center": "central",
	} {
		o := Options{PassDir: alias}.Normalize()
		assert.Equal(t, want, o.PassDir, "alias %q", alias)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"bad extras", func(o *Options) { o.Extras = "burn" }},
		{"bad heart scheme", func(o *Options) { o.HeartScore = "double" }},
		{"bad moon", func(o *Options) { o.Moon = "never" }},
		{"bad direction", func(o *Options) { o.PassDir = "up" }},
		{"lady too high", func(o *Options) { o.LadyScore = 50 }},
		{"no-tricks too high", func(o *Options) { o.NoTricks = 25 }},
		{"num-pass too high", func(o *Options) { o.NumPass = 5 }},
		{"end too low", func(o *Options) { o.End = 49 }},
		{"end too high", func(o *Options) { o.End = 1000 }},
		{"bad bonus card", func(o *Options) { o.Bonus = "1B" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.mutate(&o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestRulesetDitchComposition(t *testing.T) {
	tests := []struct {
		players int
		size    int
		removed string
	}{
		{3, 51, "2C"},
		{4, 52, ""},
		{5, 50, "2C 2D"},
		{6, 48, "2C 2D 3C 3D"},
		{7, 49, "2C 2D 3C"},
	}
	for _, tc := range tests {
		r, err := buildRuleset(DefaultOptions(), tc.players)
		require.NoError(t, err)
		assert.Len(t, r.composition, tc.size, "%d players", tc.players)
		for _, c := range deck.MustParseCards(tc.removed) {
			assert.NotContains(t, r.composition, c, "%d players", tc.players)
		}
		assert.Zero(t, len(r.composition)%tc.players)
		assert.Zero(t, r.kittySize())
	}
}

func TestRulesetJokerComposition(t *testing.T) {
	opts := DefaultOptions()
	opts.Extras = ExtrasJokers

	r, err := buildRuleset(opts, 5)
	require.NoError(t, err)
	assert.Len(t, r.composition, 55)

	// Padding alternates black suits starting with clubs.
	jokers := []deck.Card{}
	for _, c := range r.composition {
		if c.IsJoker() {
			jokers = append(jokers, c)
		}
	}
	require.Len(t, jokers, 3)
	assert.Equal(t, deck.Clubs, jokers[0].Suit)
	assert.Equal(t, deck.Diamonds, jokers[1].Suit)
	assert.Equal(t, deck.Clubs, jokers[2].Suit)
}

func TestRulesetKittyComposition(t *testing.T) {
	opts := DefaultOptions()
	opts.Extras = ExtrasFirst

	r, err := buildRuleset(opts, 3)
	require.NoError(t, err)
	assert.Len(t, r.composition, 52)
	assert.Equal(t, 17, r.handSize())
	assert.Equal(t, 1, r.kittySize())
	assert.Equal(t, ExtrasFirst, r.kittyPolicy)
}

func TestRulesetHeartPointSchemes(t *testing.T) {
	tests := []struct {
		scheme   HeartScheme
		rank     deck.Rank
		points   int
		maxScore int // hearts total + lady 13
	}{
		{HeartsOne, deck.Five, 1, 26},
		{HeartsFace, deck.Jack, 2, 36},   // 9 + 2+3+4+5 = 23 hearts
		{HeartsPips, deck.Ace, 10, 107},  // 2..9 + 10*5 = 94 hearts
		{HeartsRank, deck.Ace, 14, 117},  // 2+..+14 = 104 hearts
	}
	for _, tc := range tests {
		opts := DefaultOptions()
		opts.HeartScore = tc.scheme
		r, err := buildRuleset(opts, 4)
		require.NoError(t, err)
		assert.Equal(t, tc.points, r.heartPoints[tc.rank], "scheme %s", tc.scheme)
		assert.Equal(t, tc.maxScore, r.maxScore, "scheme %s", tc.scheme)
	}
}

func TestRulesetBreakers(t *testing.T) {
	r, err := buildRuleset(DefaultOptions(), 4)
	require.NoError(t, err)
	assert.True(t, r.breakers[deck.MustParseCard("2H")])
	assert.False(t, r.breakers[deck.MustParseCard("QS")])
	assert.True(t, r.heartsBrokenAtDeal())

	opts := DefaultOptions()
	opts.AllBreak = true
	r, err = buildRuleset(opts, 4)
	require.NoError(t, err)
	assert.True(t, r.breakers[deck.MustParseCard("QS")])
	assert.False(t, r.heartsBrokenAtDeal())

	opts = DefaultOptions()
	opts.BreakHearts = true
	r, err = buildRuleset(opts, 4)
	require.NoError(t, err)
	assert.False(t, r.heartsBrokenAtDeal())
}

func TestRulesetLowClub(t *testing.T) {
	opts := DefaultOptions()
	opts.LowClub = true

	r, err := buildRuleset(opts, 4)
	require.NoError(t, err)
	require.True(t, r.hasLowClub)
	assert.Equal(t, deck.MustParseCard("2C"), r.lowClub)

	// Ditching the two of clubs promotes the three.
	r, err = buildRuleset(opts, 3)
	require.NoError(t, err)
	require.True(t, r.hasLowClub)
	assert.Equal(t, deck.MustParseCard("3C"), r.lowClub)

	// A joker of clubs outranks nothing, but when jokers may not lead it is
	// skipped as the designated card.
	opts.Extras = ExtrasJokers
	opts.JokersFol = true
	r, err = buildRuleset(opts, 5)
	require.NoError(t, err)
	require.True(t, r.hasLowClub)
	assert.Equal(t, deck.MustParseCard("2C"), r.lowClub)
}

func TestRulesetPassCountDefaults(t *testing.T) {
	tests := []struct {
		players int
		passDir string
		numPass int
		want    int
	}{
		{4, "right", 0, 3},
		{3, "left", 0, 3},
		{5, "right", 0, 2},
		{7, "left", 0, 2},
		{4, "right", 4, 4},
		{4, "scatter", 0, 3},
		{6, "scatter", 0, 5},
		{4, "not", 3, 0},
	}
	for _, tc := range tests {
		opts := DefaultOptions()
		opts.PassDir = tc.passDir
		opts.NumPass = tc.numPass
		r, err := buildRuleset(opts, tc.players)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.numPass, "%d players dir %s", tc.players, tc.passDir)
	}
}

func TestRulesetBonusCard(t *testing.T) {
	opts := DefaultOptions()
	opts.Bonus = "JD"
	r, err := buildRuleset(opts, 4)
	require.NoError(t, err)
	require.True(t, r.hasBonus)
	assert.Equal(t, deck.MustParseCard("JD"), r.bonus)
	assert.Equal(t, 16, r.maxScore) // 26 less the bonus deduction
}

func TestRulesetRejectsBadPlayerCounts(t *testing.T) {
	_, err := buildRuleset(DefaultOptions(), 2)
	assert.Error(t, err)
	_, err = buildRuleset(DefaultOptions(), 8)
	assert.Error(t, err)
}
