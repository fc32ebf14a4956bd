// Package cli wires configuration into the HTTP and terminal hosts.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio with a splash screen and a profile page",
	Long: `portfolio serves a splash screen that counts from 0 to 100 beside a
clock set to India Standard Time, then hands off to a profile page with
projects, skills and contact links. It can serve the site over HTTP or show
it in the terminal.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("portfolio version {{.Version}}\n")
	rootCmd.AddCommand(serveCmd, tuiCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
