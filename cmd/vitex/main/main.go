package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/vitex/cmd/vitex"
	"github.com/arthur-debert/vitex/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := vitex.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		ui.NewRenderer(os.Stderr, ui.FormatAuto.Resolve(os.Stderr)).RenderError(err)
		os.Exit(1)
	}
}
