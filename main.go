package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/pqlens/pqlens/cmd"
)

// version is set at build time via -ldflags
var version = "dev"

var cli struct {
	cmd.ViewCmd
	Version kong.VersionFlag `short:"V" help:"Show version and exit."`
}

func main() {
	parser := kong.Must(
		&cli,
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Description("View the contents of a Parquet file as a formatted table, with an interactive paging mode for large or wide datasets."),
		kong.Vars{"version": version},
	)
	kongplete.Complete(parser, kongplete.WithPredictor("file", complete.PredictFiles("*")))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
