package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xcpp-labs/xcpp/internal/notify"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the saved defaults",
		Long:  `Inspect the defaults written by 'xcpp store'. Set XCPP_CONFIG_DIR to use another location.`,
	}
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigPathCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			rec, err := store.Load()
			if err != nil {
				return err
			}
			if rec.IsZero() {
				notify.Infof(cmd.OutOrStdout(), "No saved defaults at %s", store.Path())
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "std:  %s\n", rec.Std)
			fmt.Fprintf(out, "path: %s\n", rec.ToolchainPath)
			fmt.Fprintf(out, "file: %s\n", store.Path())
			return nil
		},
	}
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}
