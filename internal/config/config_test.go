package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/heartsforbots/internal/hearts"
)

func TestBuiltinVariantsAreValid(t *testing.T) {
	for _, v := range Builtin() {
		t.Run(v.Name, func(t *testing.T) {
			assert.NoError(t, v.Validate())
		})
	}
}

func TestVariantOptionsLayering(t *testing.T) {
	v := Variant{
		Name:       "custom",
		HeartScore: "rank",
		LadyScore:  intp(0),
		PassDir:    "lr",
		End:        250,
	}
	o := v.Options()
	assert.Equal(t, hearts.HeartsRank, o.HeartScore)
	assert.Equal(t, 0, o.LadyScore)
	assert.Equal(t, "left-right", o.PassDir) // aliases resolve
	assert.Equal(t, 250, o.End)
	// Untouched fields keep the classic defaults.
	assert.Equal(t, hearts.ExtrasDitch, o.Extras)
	assert.Equal(t, hearts.MoonOld, o.Moon)

	// An absent lady_score keeps the default thirteen.
	o = Variant{Name: "plain"}.Options()
	assert.Equal(t, 13, o.LadyScore)
}

func TestLoadMissingFileReturnsBuiltins(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Len(t, f.Variants, len(Builtin()))

	f, err = Load("/nonexistent/variants.hcl")
	require.NoError(t, err)
	assert.Len(t, f.Variants, len(Builtin()))
}

func TestLoadFileAndShadowing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "variants.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
variant "house" {
  description  = "House rules"
  heart_score  = "face"
  no_tricks    = 10
  pass_dir     = "rot-left"
  break_hearts = true
}

variant "standard" {
  description = "Shadowed standard"
  end         = 150
}
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Variants, len(Builtin())+1)

	house, err := f.Lookup("house")
	require.NoError(t, err)
	o := house.Options()
	assert.Equal(t, hearts.HeartsFace, o.HeartScore)
	assert.Equal(t, 10, o.NoTricks)
	assert.Equal(t, "rot-left", o.PassDir)
	assert.True(t, o.BreakHearts)

	std, err := f.Lookup("standard")
	require.NoError(t, err)
	assert.Equal(t, 150, std.Options().End)
}

func TestLoadRejectsInvalidVariant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "variants.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
variant "broken" {
  end = 10
}
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLookupUnknown(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	_, err = f.Lookup("mystery")
	assert.ErrorContains(t, err, "unknown variant")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HEARTS_VARIANT", "spot-hearts")
	t.Setenv("HEARTS_SEED", "42")
	t.Setenv("HEARTS_LOG_LEVEL", "debug")

	e, err := EnvOverrides()
	require.NoError(t, err)
	assert.Equal(t, "spot-hearts", e.Variant)
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, "debug", e.LogLevel)
}

func TestEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore, then the unset makes the variable
	// truly absent so envDefault applies.
	for _, k := range []string{"HEARTS_VARIANT", "HEARTS_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	e, err := EnvOverrides()
	require.NoError(t, err)
	assert.Equal(t, "standard", e.Variant)
	assert.Equal(t, "info", e.LogLevel)
}
