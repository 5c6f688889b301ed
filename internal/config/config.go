// Package config loads rule variants from HCL files and resolves them
// against the built-in variant table. Environment variables override the
// defaults the CLI falls back to.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/heartsforbots/internal/hearts"
)

// File represents a variants configuration file.
type File struct {
	Variants []Variant `hcl:"variant,block"`
}

// Variant is a named rule preset. Unset fields fall back to the classic
// rules; lady_score is a pointer because zero is a meaningful value.
type Variant struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	Extras      string `hcl:"extras,optional"`
	HeartScore  string `hcl:"heart_score,optional"`
	LadyScore   *int   `hcl:"lady_score,optional"`
	Moon        string `hcl:"moon,optional"`
	NoTricks    int    `hcl:"no_tricks,optional"`
	PassDir     string `hcl:"pass_dir,optional"`
	NumPass     int    `hcl:"num_pass,optional"`
	KeepSpades  bool   `hcl:"keep_spades,optional"`
	AllBreak    bool   `hcl:"all_break,optional"`
	BreakHearts bool   `hcl:"break_hearts,optional"`
	LowClub     bool   `hcl:"low_club,optional"`
	JokersFol   bool   `hcl:"jokers_fol,optional"`
	JokerPoints bool   `hcl:"joker_points,optional"`
	Bonus       string `hcl:"bonus,optional"`
	End         int    `hcl:"end,optional"`
}

// Options converts the variant to engine options, layering it over the
// classic defaults.
func (v Variant) Options() hearts.Options {
	o := hearts.DefaultOptions()
	if v.Extras != "" {
		o.Extras = hearts.ExtrasPolicy(v.Extras)
	}
	if v.HeartScore != "" {
		o.HeartScore = hearts.HeartScheme(v.HeartScore)
	}
	if v.LadyScore != nil {
		o.LadyScore = *v.LadyScore
	}
	if v.Moon != "" {
		o.Moon = hearts.MoonPolicy(v.Moon)
	}
	if v.NoTricks != 0 {
		o.NoTricks = v.NoTricks
	}
	if v.PassDir != "" {
		o.PassDir = v.PassDir
	}
	if v.NumPass != 0 {
		o.NumPass = v.NumPass
	}
	o.KeepSpades = v.KeepSpades
	o.AllBreak = v.AllBreak
	o.BreakHearts = v.BreakHearts
	o.LowClub = v.LowClub
	o.JokersFol = v.JokersFol
	o.JokerPoints = v.JokerPoints
	if v.Bonus != "" {
		o.Bonus = v.Bonus
	}
	if v.End != 0 {
		o.End = v.End
	}
	return o.Normalize()
}

// Validate checks that the variant resolves to legal options.
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variant requires a name")
	}
	if err := v.Options().Validate(); err != nil {
		return fmt.Errorf("variant %q: %w", v.Name, err)
	}
	return nil
}

func intp(n int) *int { return &n }

// Builtin returns the variants that ship with the engine.
func Builtin() []Variant {
	return []Variant{
		{
			Name:        "standard",
			Description: "Classic rules: hearts one point, queen of spades thirteen, pass three.",
		},
		{
			Name:        "jack-of-diamonds",
			Description: "Taking the jack of diamonds deducts ten points.",
			Bonus:       "JD",
			LowClub:     true,
			BreakHearts: true,
		},
		{
			Name:        "spot-hearts",
			Description: "Hearts score their pip value, game to 500.",
			HeartScore:  "pips",
			End:         500,
		},
		{
			Name:        "black-maria",
			Description: "Three-handed style: high spades stay put, no-trick bonus.",
			KeepSpades:  true,
			NoTricks:    5,
			PassDir:     "left",
		},
		{
			Name:        "joker-hearts",
			Description: "Jokers pad the deck, score a point each and may not lead.",
			Extras:      "jokers",
			JokerPoints: true,
			JokersFol:   true,
		},
		{
			Name:        "cutthroat",
			Description: "No passing, every penalty card breaks hearts.",
			PassDir:     "not",
			AllBreak:    true,
			Moon:        "new",
		},
		{
			Name:        "dealers-choice",
			Description: "The dealer picks the passing direction every round.",
			PassDir:     "dealer",
			Moon:        "auto",
		},
		{
			Name:        "hooligan",
			Description: "Scatter passing with a shuffled central variant and face scoring.",
			PassDir:     "scatter",
			HeartScore:  "face",
			LadyScore:   intp(25),
		},
	}
}

// Load reads variants from an HCL file. A missing path returns only the
// built-in variants.
func Load(path string) (*File, error) {
	f := &File{Variants: Builtin()}
	if path == "" {
		return f, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return f, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var loaded File
	if diags := gohcl.DecodeBody(file.Body, nil, &loaded); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	for _, v := range loaded.Variants {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	// File variants shadow built-ins of the same name.
	byName := make(map[string]int, len(f.Variants))
	for i, v := range f.Variants {
		byName[v.Name] = i
	}
	for _, v := range loaded.Variants {
		if i, ok := byName[v.Name]; ok {
			f.Variants[i] = v
		} else {
			f.Variants = append(f.Variants, v)
		}
	}
	return f, nil
}

// Lookup finds a variant by name.
func (f *File) Lookup(name string) (Variant, error) {
	for _, v := range f.Variants {
		if v.Name == name {
			return v, nil
		}
	}
	names := make([]string, len(f.Variants))
	for i, v := range f.Variants {
		names[i] = v.Name
	}
	sort.Strings(names)
	return Variant{}, fmt.Errorf("unknown variant %q, available: %v", name, names)
}

// Env is the environment override surface for the CLI.
type Env struct {
	ConfigFile string `env:"HEARTS_CONFIG"`
	Variant    string `env:"HEARTS_VARIANT" envDefault:"standard"`
	LogLevel   string `env:"HEARTS_LOG_LEVEL" envDefault:"info"`
	Seed       int64  `env:"HEARTS_SEED"`
}

// EnvOverrides reads the environment override surface.
func EnvOverrides() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
