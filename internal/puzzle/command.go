package puzzle

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"aoc2023/internal/config"
)

// NewCommand returns the command line interface for the puzzle.
// Without an input file it prints its usage to stderr and does nothing.
func NewCommand(p Puzzle) *cobra.Command {
	var cfg config.Config

	return &cobra.Command{
		Use:                   p.Name + " <input-file>",
		Short:                 p.Short,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// usage is printed without touching the config
			if len(args) == 0 {
				return nil
			}

			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			return SetupLogger(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
				return nil
			}

			answers, err := p.Run(cfg, args[0])
			if err != nil {
				return err
			}

			for i, answer := range answers {
				fmt.Fprintf(cmd.OutOrStdout(), "Part %d: %d\n", i+1, answer)
			}

			return nil
		},
	}
}

// Execute runs the puzzle command and exits the process on failure
func Execute(p Puzzle) {
	if err := NewCommand(p).Execute(); err != nil {
		logrus.WithError(err).WithField("puzzle", p.Name).Fatal("could not solve puzzle")
	}
}
