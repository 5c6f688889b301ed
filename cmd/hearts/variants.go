package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/heartsforbots/internal/config"
)

type VariantsCmd struct {
	Config string `help:"Variants HCL file ($HEARTS_CONFIG)"`
}

var variantNameStyle = lipgloss.NewStyle().Bold(true)

func (c *VariantsCmd) Run() error {
	env, err := config.EnvOverrides()
	if err != nil {
		return err
	}
	variants, err := config.Load(firstOf(c.Config, env.ConfigFile))
	if err != nil {
		return err
	}

	for _, v := range variants.Variants {
		fmt.Printf("%-20s %s\n", variantNameStyle.Render(v.Name), v.Description)
		o := v.Options()
		fmt.Printf("%-20s extras=%s hearts=%s lady=%d moon=%s pass=%s end=%d\n",
			"", o.Extras, o.HeartScore, o.LadyScore, o.Moon, o.PassDir, o.End)
	}
	return nil
}
