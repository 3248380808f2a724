package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "liquify",
		Short: "liquify",
		Long:  `A CLI tool to plan e-liquid mixes from the fluids on hand.`,

		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newSolveCmd(), newInspectCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	return rootCmd
}
