package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shubham-kumr/portfolio/internal/config"
	"github.com/shubham-kumr/portfolio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, err := cfg.Profile()
		if err != nil {
			return err
		}
		f, err := cfg.Formatter()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGTERM)
		defer stop()
		return tui.Run(ctx, p, f, cfg.Timings())
	},
}
