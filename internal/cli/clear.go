package cli

import (
	"github.com/spf13/cobra"

	"github.com/xcpp-labs/xcpp/internal/notify"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			a.log.Infof("looking for %s", store.Path())
			if err := store.Delete(); err != nil {
				return err
			}
			notify.Successf(cmd.OutOrStdout(), "Deleted %s", store.Path())
			return nil
		},
	}
}
