package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(state *rootState) *cobra.Command {
	var (
		show     bool
		showPath bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath && !show {
				fmt.Fprintln(cmd.OutOrStdout(), state.cfg.Path())
				return nil
			}
			out, err := yaml.Marshal(state.cfg.AllSettings())
			if err != nil {
				return fmt.Errorf("failed to render settings: %v", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the effective settings (the default)")
	cmd.Flags().BoolVar(&showPath, "path", false, "print only the config file location")
	return cmd
}
