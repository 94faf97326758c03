package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Single-page personal portfolio server",
		Long: `Portfolio serves a single-page personal portfolio: hero banner, about,
project gallery, experience timeline, technology showcase and a contact form.

Configuration is read from the environment (and a .env file when present).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newContentCmd())
	cmd.AddCommand(newInboxCmd())

	return cmd
}
