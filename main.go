package main

import (
	"github.com/alecthomas/kong"

	"luppolo.dev/Luppolo/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Luppolo"), kong.Description("Luppolo is the backend of a craft beer discovery platform for pubs, breweries and beers."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
