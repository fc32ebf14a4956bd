package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shubham-kumr/portfolio/internal/config"
	"github.com/shubham-kumr/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	srv, err := newServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, ":"+cfg.Port)
}

func newServer(cfg *config.Config) (*web.Server, error) {
	p, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	f, err := cfg.Formatter()
	if err != nil {
		return nil, err
	}
	return web.New(web.Options{
		Profile:   p,
		Formatter: f,
		Timings:   cfg.Timings(),
		Lang:      cfg.Language(),
		StaticDir: cfg.StaticDir,
		ImagesDir: cfg.ImagesDir,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
