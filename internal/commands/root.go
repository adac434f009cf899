// Package commands wires the CLI surface: flag parsing, configuration
// loading and the glue between the git inspector, the rules engine, the
// refiner and the presenters.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazycommit/lazycommit/internal/config"
)

type rootState struct {
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the lazycommit command tree.
func NewRootCmd() *cobra.Command {
	state := &rootState{}

	root := &cobra.Command{
		Use:           "lazycommit",
		Short:         "Generate commit messages from staged changes",
		Long:          "lazycommit inspects the staged changes and the branch name, applies a set of weighted heuristics, and proposes a Conventional Commits message. Optionally an LLM polishes the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			state.cfg = cfg
			state.logger = newLogger(state.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = state.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCommitCmd(state),
		newInstallShortcutCmd(state),
		newUninstallShortcutCmd(state),
		newConfigCmd(state),
		newVersionCmd(),
	)
	return root
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
