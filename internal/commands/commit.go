package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazycommit/lazycommit/internal/models"
	"github.com/lazycommit/lazycommit/internal/rules"
	"github.com/lazycommit/lazycommit/internal/services"
	"github.com/lazycommit/lazycommit/internal/ui"
	"github.com/lazycommit/lazycommit/pkg/helpers"
)

type commitOptions struct {
	noAI    bool
	plain   bool
	copy    bool
	dryRun  bool
	message string
}

func newCommitCmd(state *rootState) *cobra.Command {
	opts := &commitOptions{}

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message for the staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, state, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.noAI, "no-ai", false, "skip LLM refinement even when a provider is configured")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "use the line-based prompt instead of the full-screen ui")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the message to the clipboard and exit")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the message and exit without committing")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "skip generation and present this message instead")
	return cmd
}

func runCommit(cmd *cobra.Command, state *rootState, opts *commitOptions) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %v", err)
	}
	inspector, err := services.NewInspector(wd, state.logger)
	if err != nil {
		return err
	}
	snap, err := inspector.Snapshot()
	if err != nil {
		return err
	}
	if snap.IsEmpty() {
		return fmt.Errorf("no staged changes; stage files with git add first")
	}

	message := generateMessage(state, opts, snap)

	if !opts.noAI && opts.message == "" && state.cfg.AIEnabled() {
		provider, err := services.NewProvider(state.cfg.AI(), state.logger)
		if err != nil {
			return err
		}
		refiner := services.NewRefiner(provider, state.cfg.AI(), state.logger)
		message = refiner.Refine(cmd.Context(), snap, message)
	}

	if opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	}
	if opts.copy {
		if err := clipboard.WriteAll(message); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied to clipboard: %s\n", message)
		return nil
	}
	if !state.cfg.UI().Interactive {
		return finishNonInteractive(cmd, state, message)
	}

	decision, err := presenterFor(opts).Present(snap, message)
	if err != nil {
		return err
	}
	switch decision.Action {
	case ui.ActionCommit:
		final := helpers.SanitizeCommitMessage(decision.Message)
		if final == "" {
			return fmt.Errorf("empty commit message")
		}
		if err := inspector.Commit(final); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Committed: %s\n", final)
	case ui.ActionCopy:
		fmt.Fprintf(cmd.OutOrStdout(), "Copied to clipboard: %s\n", decision.Message)
	case ui.ActionQuit:
		state.logger.Debug("user quit without committing")
	}
	return nil
}

func generateMessage(state *rootState, opts *commitOptions, snap models.Snapshot) string {
	if opts.message != "" {
		return helpers.SanitizeCommitMessage(opts.message)
	}
	message, winner := rules.NewGenerator(state.cfg).Generate(snap)
	state.logger.Debug("generated message",
		zap.String("message", message),
		zap.String("category", string(winner.Source)),
		zap.Float64("confidence", winner.Confidence))
	return message
}

func presenterFor(opts *commitOptions) ui.Presenter {
	if opts.plain {
		return ui.NewPlain(os.Stdin, os.Stdout)
	}
	return ui.NewTUI()
}

// finishNonInteractive prints the message, and copies it when the config
// asks for that, so lazygit pipelines can consume it.
func finishNonInteractive(cmd *cobra.Command, state *rootState, message string) error {
	fmt.Fprintln(cmd.OutOrStdout(), message)
	if state.cfg.UI().CopyToClipboard {
		if err := clipboard.WriteAll(message); err != nil {
			state.logger.Warn("clipboard copy failed", zap.Error(err))
		}
	}
	return nil
}
