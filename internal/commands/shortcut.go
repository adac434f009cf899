package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazycommit/lazycommit/internal/shortcuts"
)

func newInstallShortcutCmd(state *rootState) *cobra.Command {
	var (
		key     string
		context string
		force   bool
		path    string
	)

	cmd := &cobra.Command{
		Use:   "install-shortcut",
		Short: "Add a lazygit custom command that runs lazycommit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := state.cfg.LazyGit()
			if key == "" {
				key = defaults.DefaultKey
			}
			if context == "" {
				context = defaults.DefaultContext
			}
			manager, err := shortcuts.NewManager(path, state.logger)
			if err != nil {
				return err
			}
			if err := manager.Install(key, context, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed shortcut %q in the %s context (%s)\n", key, context, manager.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key binding inside lazygit (default from config)")
	cmd.Flags().StringVarP(&context, "context", "c", "", "lazygit context for the binding (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing binding on the same key")
	cmd.Flags().StringVar(&path, "config-file", "", "lazygit config file to modify (default: ~/.config/lazygit/config.yml)")
	return cmd
}

func newUninstallShortcutCmd(state *rootState) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "uninstall-shortcut",
		Short: "Remove the lazygit custom command installed by lazycommit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := shortcuts.NewManager(path, state.logger)
			if err != nil {
				return err
			}
			removed, err := manager.Uninstall()
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "No lazycommit shortcut found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed shortcut from %s\n", manager.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config-file", "", "lazygit config file to modify (default: ~/.config/lazygit/config.yml)")
	return cmd
}
