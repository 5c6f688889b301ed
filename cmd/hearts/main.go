package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive game against bots"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-only games and report per-seat outcomes"`
	Variants VariantsCmd      `cmd:"" help:"List the available rule variants"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hearts"),
		kong.Description("Configurable Hearts engine for human and bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
