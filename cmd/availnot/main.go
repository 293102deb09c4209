// Command availnot shows whether you are available or not, from your
// Microsoft 365 calendar and Teams presence.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI is the command tree.
type CLI struct {
	Config string `help:"Config file path (default ~/.config/availnot/config.yaml)" type:"path"`
	Debug  bool   `help:"Write debug logs"`

	UI       UICmd       `cmd:"" default:"1" help:"Run the interactive terminal UI"`
	Presence PresenceCmd `cmd:"" help:"Print the current Teams presence"`
	Snapshot SnapshotCmd `cmd:"" help:"Render a view of the page as HTML"`
	SignOut  SignOutCmd  `cmd:"" name:"signout" help:"Forget the cached session"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("availnot"),
		kong.Description("Available/Not: Microsoft 365 calendar and presence in the terminal."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cli.Config, cli.Debug)
	kctx.FatalIfErrorf(err)

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(a)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	kctx.FatalIfErrorf(err)
}
