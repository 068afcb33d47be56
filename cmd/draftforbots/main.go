package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run seeded bot-vs-bot match batches"`
	Play     PlayCmd          `cmd:"" help:"Play a single narrated match"`
	Catalog  CatalogCmd       `cmd:"" help:"Validate and inspect card catalogs"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("draftforbots"),
		kong.Description("Deterministic card-drafting engine for bot-vs-bot play"),
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
