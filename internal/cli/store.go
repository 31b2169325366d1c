package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/xcpp-labs/xcpp/internal/config"
	"github.com/xcpp-labs/xcpp/internal/notify"
	"github.com/xcpp-labs/xcpp/internal/scaffold"
	"github.com/xcpp-labs/xcpp/internal/standard"
)

func newStoreCmd(a *app) *cobra.Command {
	var (
		std  string
		path string
	)

	cmd := &cobra.Command{
		Use:   "store --std=<std> --path=<path>",
		Short: "Save the default standard and toolchain path",
		Long:  `Save the defaults used by 'xcpp new' when --std or --path is omitted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return errors.New("--path must not be empty")
			}
			rec := config.Record{Std: std, ToolchainPath: scaffold.NormalizePath(path)}

			result, err := config.Validate(rec)
			if err != nil {
				return err
			}
			if err := result.Err(); err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			a.log.WithField("std", rec.Std).WithField("path", rec.ToolchainPath).Infof("saving defaults to %s", store.Path())
			if err := store.Save(rec); err != nil {
				return err
			}

			notify.Successf(cmd.OutOrStdout(), "Saved std=%s path=%s to %s", rec.Std, rec.ToolchainPath, store.Path())
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue("std", &std, "", standard.Real()), "std", "C++ standard to use by default")
	cmd.Flags().StringVar(&path, "path", "", "MinGW bin directory to use by default")
	_ = cmd.MarkFlagRequired("std")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
